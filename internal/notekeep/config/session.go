package config

import "time"

// SessionConfig содержит настройки токенов сессий.
// Нулевой TokenTTLHours означает сессии без срока действия.
type SessionConfig struct {
	SecretKey     string `yaml:"secret_key" env:"NOTEKEEP_SESSION_SECRET" env-default:"insecure-dev-secret"`
	TokenTTLHours int    `yaml:"token_ttl_hours" env:"NOTEKEEP_SESSION_TTL_HOURS" env-default:"0"`
	BCryptCost    int    `yaml:"bcrypt_cost" env:"NOTEKEEP_BCRYPT_COST" env-default:"10"`
}

// GetTokenTTL возвращает срок действия токена как time.Duration.
func (s *SessionConfig) GetTokenTTL() time.Duration {
	return time.Duration(s.TokenTTLHours) * time.Hour
}
