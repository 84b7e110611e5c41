// Package entities определяет доменные сущности приложения заметок.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrEmptyPassword     = errors.New("password cannot be empty")
)

// User представляет зарегистрированного пользователя.
// Email является уникальным ключом; запись неизменяема после регистрации.
type User struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
