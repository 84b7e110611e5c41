// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/internal/notekeep/domain/services"
	"notekeep/internal/notekeep/ports/api"
	"notekeep/pkg/logger"
)

// Ключи Locals для данных запроса.
const (
	LocalsSessionKey    = "session"
	LocalsRequestCtxKey = "requestContext"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidSession     = "invalid or revoked session"
)

// RequestCtx возвращает контекст запроса, сохраненный logger middleware.
func RequestCtx(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(LocalsRequestCtxKey).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}

// SessionFromLocals возвращает сессию, сохраненную auth middleware.
func SessionFromLocals(ctx fiber.Ctx) (*services.Session, bool) {
	sess, ok := ctx.Locals(LocalsSessionKey).(*services.Session)
	return sess, ok
}

// BearerToken извлекает токен из заголовка Authorization.
func BearerToken(ctx fiber.Ctx) (string, bool) {
	authHeader := ctx.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// NewAuthMiddleware создает промежуточное ПО, которое разбирает токен сессии
// и кладет объект сессии в Locals для последующих обработчиков.
func NewAuthMiddleware(authUseCase api.AuthUseCase) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestCtx(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorNoAuthHeader,
			})
		}

		token, ok := BearerToken(ctx)
		if !ok {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidTokenFormat,
			})
		}

		sess, err := authUseCase.Authenticate(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidSession, zap.Error(err))
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidSession,
			})
		}

		ctx.Locals(LocalsSessionKey, sess)

		return ctx.Next()
	}
}
