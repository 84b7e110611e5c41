// Package services определяет доменные типы и ошибки сервисного уровня.
package services

import (
	"errors"
	"time"
)

// Ошибки домена сессий.
var (
	ErrSessionNotFound     = errors.New("session not found or revoked")
	ErrInvalidSessionToken = errors.New("invalid session token")
	ErrTokenIssueFailed    = errors.New("failed to issue session token")
)

// Session представляет активную сессию пользователя. Объект сессии передается
// явно во все операции, требующие аутентификации; глобального текущего
// пользователя нет.
type Session struct {
	Email    string
	TokenID  string
	IssuedAt time.Time
}

// IssuedSession - результат успешной регистрации или входа.
type IssuedSession struct {
	Token string
	Email string
	Name  string
}

// SessionConfig содержит настройки выпуска токенов сессии.
type SessionConfig struct {
	SecretKey []byte
	TokenTTL  time.Duration
}
