package config

import (
	"time"

	"notekeep/pkg/kv"
)

// RedisConfig содержит настройки подключения к key-value хранилищу.
type RedisConfig struct {
	Host     string `yaml:"host" env:"NOTEKEEP_REDIS_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"NOTEKEEP_REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"NOTEKEEP_REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"NOTEKEEP_REDIS_DB" env-default:"0"`
	PoolSize int    `yaml:"pool_size" env:"NOTEKEEP_REDIS_POOL_SIZE" env-default:"10"`
	Timeout  int    `yaml:"timeout" env:"NOTEKEEP_REDIS_TIMEOUT" env-default:"5"`
}

// KVConfig преобразует настройки в конфигурацию хранилища.
func (r *RedisConfig) KVConfig() *kv.Config {
	return &kv.Config{
		Host:     r.Host,
		Port:     r.Port,
		Password: r.Password,
		DB:       r.DB,
		PoolSize: r.PoolSize,
		Timeout:  time.Duration(r.Timeout) * time.Second,
	}
}
