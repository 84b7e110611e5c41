package config

// Поддерживаемые бэкенды хранения.
const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// StorageConfig выбирает бэкенд хранения данных приложения.
// Сессии при любом бэкенде живут в key-value хранилище.
type StorageConfig struct {
	Backend string `yaml:"backend" env:"NOTEKEEP_STORAGE_BACKEND" env-default:"redis"`
}
