package services

import (
	"time"

	svc "notekeep/internal/notekeep/ports/services"
)

// ServiceFactory создает вспомогательные сервисы с общей конфигурацией.
type ServiceFactory struct {
	secretKey  string
	tokenTTL   time.Duration
	bcryptCost int
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(secretKey string, tokenTTL time.Duration, bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		secretKey:  secretKey,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// PasswordService возвращает сервис работы с паролями.
func (f *ServiceFactory) PasswordService() svc.PasswordService {
	return NewBcrypt(f.bcryptCost)
}

// TokenService возвращает сервис токенов сессий.
func (f *ServiceFactory) TokenService() svc.TokenService {
	return NewJWT(f.secretKey, f.tokenTTL)
}
