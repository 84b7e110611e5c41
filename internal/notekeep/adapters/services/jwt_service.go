package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"notekeep/internal/notekeep/domain/services"
	svc "notekeep/internal/notekeep/ports/services"
	"notekeep/pkg/logger"
)

// Константы для работы с токенами сессий.
const (
	methodIssueToken = "Issue"
	methodParseToken = "Parse"

	msgIssuingToken   = "issuing session token"
	msgTokenIssued    = "session token issued"
	msgParsingToken   = "parsing session token"
	msgInvalidToken   = "invalid token"
	msgEmptySecretKey = "empty secret key provided"

	errCtxSigningToken = "signing token"
	errCtxParsingToken = "parsing token"
)

// ErrInvalidAlgorithm представляет ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims описывает содержимое токена сессии.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует интерфейс TokenService поверх подписанных JWT.
// Идентификатор сессии кладется в jti; отзыв выполняется на уровне
// хранилища сессий, сам токен отозванность не кодирует.
type ServiceJWT struct {
	config services.SessionConfig
}

// NewJWT создает новый экземпляр сервиса токенов.
// Нулевой tokenTTL означает токены без срока действия.
func NewJWT(secretKey string, tokenTTL time.Duration) svc.TokenService {
	return &ServiceJWT{
		config: services.SessionConfig{
			SecretKey: []byte(secretKey),
			TokenTTL:  tokenTTL,
		},
	}
}

// Issue выпускает подписанный токен сессии для email.
func (s *ServiceJWT) Issue(ctx context.Context, email string) (string, *services.Session, error) {
	log := logger.Log(ctx).With(zap.String("method", methodIssueToken), zap.String("email", email))
	log.Debug(ctx, msgIssuingToken)

	if len(s.config.SecretKey) == 0 {
		log.Error(ctx, msgEmptySecretKey)
		return "", nil, fmt.Errorf("%s: %w", errCtxSigningToken, services.ErrTokenIssueFailed)
	}

	now := time.Now()
	tokenID := uuid.New().String()

	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       tokenID,
			Subject:  email,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.config.TokenTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.config.TokenTTL))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, errCtxSigningToken, zap.Error(err))
		return "", nil, fmt.Errorf("%s: %w", errCtxSigningToken, services.ErrTokenIssueFailed)
	}

	log.Debug(ctx, msgTokenIssued)
	return signed, &services.Session{
		Email:    email,
		TokenID:  tokenID,
		IssuedAt: now,
	}, nil
}

// Parse проверяет подпись токена и извлекает описание сессии.
func (s *ServiceJWT) Parse(ctx context.Context, tokenString string) (*services.Session, error) {
	log := logger.Log(ctx).With(zap.String("method", methodParseToken))
	log.Debug(ctx, msgParsingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, t.Header["alg"])
		}
		return s.config.SecretKey, nil
	})
	if err != nil {
		log.Debug(ctx, msgInvalidToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxParsingToken, services.ErrInvalidSessionToken)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" || claims.ID == "" {
		log.Debug(ctx, msgInvalidToken)
		return nil, fmt.Errorf("%s: %w", errCtxParsingToken, services.ErrInvalidSessionToken)
	}

	var issuedAt time.Time
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}

	return &services.Session{
		Email:    claims.Email,
		TokenID:  claims.ID,
		IssuedAt: issuedAt,
	}, nil
}
