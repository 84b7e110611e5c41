// Package app реализует бизнес-логику приложения заметок.
package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"notekeep/internal/notekeep/domain/entities"
	"notekeep/internal/notekeep/domain/services"
	"notekeep/internal/notekeep/ports/api"
	"notekeep/internal/notekeep/ports/repositories"
	svc "notekeep/internal/notekeep/ports/services"
	"notekeep/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodRegister     = "Register"
	methodLogin        = "Login"
	methodLogout       = "Logout"
	methodAuthenticate = "Authenticate"
	methodLookup       = "Lookup"

	msgStartRegistration  = "starting user registration"
	msgInvalidEmailFormat = "invalid email format"
	msgEmptyName          = "empty name provided"
	msgEmptyPassword      = "empty password provided"
	msgEmailExists        = "user with this email already exists"
	msgUserRegistered     = "user registered successfully"
	msgSessionEstablished = "session established"
	msgLoginAttempt       = "login attempt"
	msgLoginNonExistent   = "login attempt with non-existent email"
	msgInvalidPassword    = "invalid password provided"
	msgUserLoggedIn       = "user logged in successfully"
	msgProcessingLogout   = "processing logout request"
	msgSessionRevoked     = "session revoked"
	msgSessionRejected    = "session token rejected"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrIssueToken        = "failed to issue session token"
	msgErrStoreSession      = "failed to store session"
	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"
	msgErrRevokingSession   = "failed to revoke session"

	errCtxValidatingEmail    = "validating email"
	errCtxValidatingName     = "validating name"
	errCtxValidatingPassword = "validating password"
	errCtxCheckingUser       = "checking existing user"
	errCtxEmailRegistered    = "email already registered"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxIssuingToken       = "issuing session token"
	errCtxStoringSession     = "storing session"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxParsingToken       = "parsing session token"
	errCtxFindingSession     = "finding session"
	errCtxRevokingSession    = "revoking session"
)

// emailPattern - упрощенная проверка формата local@domain.tld.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthUseCaseImpl реализует интерфейс api.AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сервиса учетных записей.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Register создает нового пользователя и устанавливает для него сессию.
func (a *AuthUseCaseImpl) Register(ctx context.Context, name, email, password string) (*services.IssuedSession, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", email))
	log.Debug(ctx, msgStartRegistration)

	if err := validateEmail(email); err != nil {
		log.Debug(ctx, msgInvalidEmailFormat, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
	}
	if strings.TrimSpace(name) == "" {
		log.Debug(ctx, msgEmptyName)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingName, entities.ErrEmptyName)
	}
	if password == "" {
		log.Debug(ctx, msgEmptyPassword)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, entities.ErrEmptyPassword)
	}

	existingUser, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if existingUser != nil {
		log.Debug(ctx, msgEmailExists)
		return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, entities.ErrUserAlreadyExists)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
	}

	if err := a.userRepo.Create(ctx, newUser); err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered)

	issued, err := a.establishSession(ctx, newUser)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, msgSessionEstablished)
	return issued, nil
}

// Login аутентифицирует пользователя по email и паролю.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*services.IssuedSession, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPassword)
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	issued, err := a.establishSession(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, msgUserLoggedIn)
	return issued, nil
}

// Logout отзывает сессию, связанную с токеном.
func (a *AuthUseCaseImpl) Logout(ctx context.Context, token string) error {
	log := logger.Log(ctx).With(zap.String("method", methodLogout))
	log.Debug(ctx, msgProcessingLogout)

	sess, err := a.tokenSvc.Parse(ctx, token)
	if err != nil {
		log.Debug(ctx, msgSessionRejected, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxParsingToken, err)
	}

	if err := a.sessionRepo.Revoke(ctx, sess.TokenID); err != nil {
		log.Error(ctx, msgErrRevokingSession, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxRevokingSession, err)
	}

	log.Info(ctx, msgSessionRevoked, zap.String("email", sess.Email))
	return nil
}

// Authenticate разбирает токен и проверяет, что сессия все еще активна.
func (a *AuthUseCaseImpl) Authenticate(ctx context.Context, token string) (*services.Session, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate))

	sess, err := a.tokenSvc.Parse(ctx, token)
	if err != nil {
		log.Debug(ctx, msgSessionRejected, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxParsingToken, err)
	}

	email, err := a.sessionRepo.Find(ctx, sess.TokenID)
	if err != nil {
		log.Debug(ctx, msgSessionRejected, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingSession, err)
	}
	if email != sess.Email {
		log.Warn(ctx, msgSessionRejected, zap.String("email", sess.Email))
		return nil, fmt.Errorf("%s: %w", errCtxFindingSession, services.ErrInvalidSessionToken)
	}

	return sess, nil
}

// Lookup возвращает запись пользователя по email.
func (a *AuthUseCaseImpl) Lookup(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLookup), zap.String("email", email))

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, entities.ErrUserNotFound) {
			log.Error(ctx, msgErrFindingUser, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}
	return user, nil
}

// establishSession выпускает токен и сохраняет сессию в хранилище.
func (a *AuthUseCaseImpl) establishSession(ctx context.Context, user *entities.User) (*services.IssuedSession, error) {
	log := logger.Log(ctx).With(zap.String("email", user.Email))

	token, sess, err := a.tokenSvc.Issue(ctx, user.Email)
	if err != nil {
		log.Error(ctx, msgErrIssueToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	if err := a.sessionRepo.Store(ctx, sess.TokenID, user.Email); err != nil {
		log.Error(ctx, msgErrStoreSession, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxStoringSession, err)
	}

	return &services.IssuedSession{
		Token: token,
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

// validateEmail проверяет формат адреса электронной почты.
func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return entities.ErrInvalidEmail
	}
	return nil
}
