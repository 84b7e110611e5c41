package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Константы для сообщений об ошибках.
const (
	ErrConnect       = "failed to connect to key-value store"
	ErrGetBlob       = "failed to get blob"
	ErrSetBlob       = "failed to set blob"
	ErrDeleteBlob    = "failed to delete blob"
	ErrMutateBlob    = "failed to mutate blob"
	ErrMutateRetries = "mutation retries exhausted"
)

// maxMutateRetries - число повторов оптимистичной транзакции при конкурентной записи.
const maxMutateRetries = 16

// ErrTooMuchContention возвращается, когда оптимистичная транзакция
// не смогла завершиться за отведенное число повторов.
var ErrTooMuchContention = errors.New("too much contention on key")

// ErrNoChange возвращается функцией мутации, когда запись не требуется.
// Mutate трактует его как успешное завершение без записи.
var ErrNoChange = errors.New("no change")

// Store - хранилище именованных блобов поверх Redis.
// Значения хранятся как строки без TTL, ключи задаются вызывающей стороной.
type Store struct {
	client *redis.Client
}

// New создает хранилище и проверяет соединение.
func New(ctx context.Context, cfg *Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrConnect, err)
	}

	return &Store{client: client}, nil
}

// Get возвращает блоб по ключу. Второй результат false, если ключа нет.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%s: %w", ErrGetBlob, err)
	}
	return data, true, nil
}

// Set записывает блоб по ключу. Нулевой ttl означает хранение без срока.
func (s *Store) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrSetBlob, err)
	}
	return nil
}

// Delete удаляет ключи.
func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrDeleteBlob, err)
	}
	return nil
}

// Mutate выполняет чтение-изменение-запись блоба в оптимистичной транзакции
// (WATCH/MULTI). При конкурентной модификации ключа транзакция повторяется.
// Если fn возвращает nil, ключ удаляется.
func (s *Store) Mutate(ctx context.Context, key string, fn func(old []byte, found bool) ([]byte, error)) error {
	txn := func(tx *redis.Tx) error {
		old, err := tx.Get(ctx, key).Bytes()
		found := true
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				return fmt.Errorf("%s: %w", ErrGetBlob, err)
			}
			old, found = nil, false
		}

		updated, err := fn(old, found)
		if err != nil {
			if errors.Is(err, ErrNoChange) {
				return nil
			}
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if updated == nil {
				pipe.Del(ctx, key)
				return nil
			}
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		return err
	}

	for range maxMutateRetries {
		err := s.client.Watch(ctx, txn, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return fmt.Errorf("%s: %w", ErrMutateBlob, err)
	}
	return fmt.Errorf("%s: %w", ErrMutateRetries, ErrTooMuchContention)
}

// Close закрывает соединение с хранилищем.
func (s *Store) Close() error {
	return s.client.Close()
}
