package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fintrack/internal/repository/memory"
	"fintrack/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeSeed(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSeedTransactions(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cacheFile := filepath.Join(dir, "cache.json")
	seedFile := writeSeed(t, dir, `[
		{"date": "2024-01-02", "category": "Salary", "amount": 3200},
		{"date": "2024-01-15", "category": "Food"},
		{"date": "2024-01-16", "category": "Food", "amount": -42.50}
	]`)

	store := memory.New()
	svc := service.NewTransactionService(store, zap.NewNop())

	created, err := seedTransactions(ctx, seedFile, cacheFile, svc, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 2, store.Len())

	// Unchanged file is skipped on the next run.
	created, err = seedTransactions(ctx, seedFile, cacheFile, svc, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 2, store.Len())
}

func TestSeedTransactionsRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	seedFile := writeSeed(t, dir, `{"not": "an array"}`)
	svc := service.NewTransactionService(memory.New(), zap.NewNop())

	_, err := seedTransactions(context.Background(), seedFile, filepath.Join(dir, "cache.json"), svc, zap.NewNop())
	assert.ErrorContains(t, err, "failed to parse seed file")
}

func TestBundledSeedFileIsValid(t *testing.T) {
	dir := t.TempDir()
	store := memory.New()
	svc := service.NewTransactionService(store, zap.NewNop())

	created, err := seedTransactions(context.Background(), "transactions.json", filepath.Join(dir, "cache.json"), svc, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 10, created)
}
