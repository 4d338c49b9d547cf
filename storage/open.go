package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"go-storefront/utils"
)

// Drivers accepted by Open
const (
	DriverMemory   = "memory"
	DriverBolt     = "bolt"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Open builds the slots adapter selected in the configuration
func Open(ctx context.Context, cfg utils.StorageConfig) (Slots, error) {
	switch cfg.Driver {
	case "", DriverMemory:
		zap.S().Warn("Using in-memory storage, data is lost on restart")
		return NewMemorySlots(), nil
	case DriverBolt:
		zap.S().Infof("Using bolt storage at %s", cfg.BoltPath)
		return OpenBolt(cfg.BoltPath)
	case DriverMongo:
		client, err := utils.ConnectDB(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		zap.S().Infof("Using mongo storage, database %s", cfg.MongoDatabase)
		return NewMongoSlots(client, cfg.MongoDatabase), nil
	case DriverPostgres:
		connStr, err := cfg.PostgresConnString()
		if err != nil {
			return nil, err
		}
		zap.S().Info("Using postgres storage")
		return OpenPostgres(ctx, connStr)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
