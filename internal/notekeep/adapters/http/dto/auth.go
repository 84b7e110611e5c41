// Package dto содержит структуры запросов и ответов HTTP API.
package dto

import "time"

// RegisterRequest - запрос на регистрацию нового пользователя.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest - запрос на вход пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse - ответ с токеном сессии после регистрации или входа.
type SessionResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ProfileResponse - профиль текущего пользователя.
type ProfileResponse struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
