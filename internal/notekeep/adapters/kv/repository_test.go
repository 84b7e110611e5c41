package kv_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	repo "notekeep/internal/notekeep/adapters/kv"
	"notekeep/pkg/kv"
)

// newTestFactory поднимает miniredis и возвращает фабрику репозиториев.
func newTestFactory(t *testing.T) (*repo.RepositoryFactory, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	store, err := kv.New(context.Background(), &kv.Config{
		Host:     mr.Host(),
		Port:     port,
		PoolSize: 4,
		Timeout:  time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return repo.NewRepositoryFactory(store), mr
}
