package main

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/repository"
	"fintrack/internal/service"
	"fintrack/pkg/config"
	"fintrack/pkg/logger"
	"fintrack/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	seedFile := flag.String("file", filepath.Join("cmd", "seed", "transactions.json"), "JSON array of transactions to load")
	cacheFile := flag.String("cache", filepath.Join("cmd", "seed", ".seed_cache.json"), "record of already loaded files")
	runMigrations := flag.Bool("migrate", false, "apply database migrations before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if *runMigrations {
		if err := postgres.Migrate(&cfg.Database, appLogger); err != nil {
			appLogger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	txService := service.NewTransactionService(repository.NewTransactionRepository(db, appLogger), appLogger)

	appLogger.Info("Starting database seeding...", zap.String("file", *seedFile))

	created, err := seedTransactions(ctx, *seedFile, *cacheFile, txService, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to seed transactions", zap.Error(err))
	}

	appLogger.Info("Database seeding completed", zap.Int("created", created))
}

// ProcessedFile represents a seed file that was already loaded.
type ProcessedFile struct {
	FilePath    string    `json:"file_path"`
	FileHash    string    `json:"file_hash"`
	ProcessedAt time.Time `json:"processed_at"`
}

// CacheData stores information about loaded seed files
type CacheData struct {
	ProcessedFiles map[string]ProcessedFile `json:"processed_files"` // key: file path
}

type transactionCreator interface {
	CreateTransaction(ctx context.Context, req *dto.TransactionRequest) (*dto.TransactionResponse, error)
}

// seedTransactions loads every entry of seedFile through the service, skipping the file when its
// content is unchanged since the last run. Invalid entries are logged and skipped.
func seedTransactions(
	ctx context.Context,
	seedFile string,
	cacheFile string,
	creator transactionCreator,
	logger *zap.Logger,
) (int, error) {
	cache, err := loadCache(cacheFile)
	if err != nil {
		logger.Warn("Failed to load cache, seeding anyway", zap.Error(err))
		cache = &CacheData{ProcessedFiles: make(map[string]ProcessedFile)}
	}

	fileHash, err := calculateFileHash(seedFile)
	if err != nil {
		return 0, err
	}

	if cached, exists := cache.ProcessedFiles[seedFile]; exists && cached.FileHash == fileHash {
		logger.Info("Seed file already loaded, skipping",
			zap.String("path", seedFile),
			zap.Time("processed_at", cached.ProcessedAt),
		)
		return 0, nil
	}

	data, err := os.ReadFile(seedFile)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var requests []dto.TransactionRequest
	if err := json.Unmarshal(data, &requests); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	created := 0
	for i := range requests {
		resp, err := creator.CreateTransaction(ctx, &requests[i])
		if err != nil {
			var validationErr *service.ValidationError
			if errors.As(err, &validationErr) {
				logger.Warn("Skipping invalid seed entry", zap.Int("index", i), zap.String("reason", validationErr.Message))
				continue
			}
			return created, fmt.Errorf("failed to create transaction %d: %w", i, err)
		}
		created++
		logger.Debug("Seeded transaction", zap.Int64("id", resp.ID), zap.String("category", resp.Category))
	}

	cache.ProcessedFiles[seedFile] = ProcessedFile{
		FilePath:    seedFile,
		FileHash:    fileHash,
		ProcessedAt: time.Now(),
	}
	if err := saveCache(cacheFile, cache); err != nil {
		logger.Warn("Failed to save cache", zap.Error(err))
	}

	return created, nil
}

func loadCache(cacheFile string) (*CacheData, error) {
	cache := &CacheData{
		ProcessedFiles: make(map[string]ProcessedFile),
	}

	data, err := os.ReadFile(cacheFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cache, nil
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	if len(data) == 0 {
		return cache, nil
	}

	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}
	if cache.ProcessedFiles == nil {
		cache.ProcessedFiles = make(map[string]ProcessedFile)
	}

	return cache, nil
}

func saveCache(cacheFile string, cache *CacheData) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(cacheFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

func calculateFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to calculate hash: %w", err)
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}
