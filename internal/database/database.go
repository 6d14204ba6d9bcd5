// Package database
package database

import (
	"context"
	"fmt"
	c "github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/config"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/global"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"time"
)

type databaseShutdownCallback struct {
	db *gorm.DB
}

func (callback *databaseShutdownCallback) Invoke(_ context.Context) error {
	pool, err := callback.db.DB()
	if err != nil {
		return err
	}
	return pool.Close()
}

// ConnectDatabase 建立数据库连接, 迁移归档表并组装操作集合
func ConnectDatabase(loggerInterface log.LoggerInterface, config *c.Config, debugMode bool) (global.Callable, *operation.DatabaseOperations, error) {
	databaseConfig := config.Database

	logLevel := logger.Silent
	if debugMode {
		logLevel = logger.Info
	}

	connectionConfig := &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logLevel),
	}

	db, err := gorm.Open(databaseConfig.GetConnection(loggerInterface), connectionConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while connecting to database: %w", err)
	}

	if err := db.AutoMigrate(&operation.SnapshotRun{}, &operation.PersonResult{}, &operation.RunWarning{}); err != nil {
		return nil, nil, fmt.Errorf("error occured while migrating database: %w", err)
	}

	pool, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while creating database pool: %w", err)
	}

	maxOpenConnections := float32(databaseConfig.ServerMaxConnections) * 0.8 // 不超过数据库最大连接的80%
	maxIdleConnections := maxOpenConnections / 5                             // 空闲连接约为最大连接的20%

	pool.SetMaxIdleConns(int(maxIdleConnections))
	pool.SetMaxOpenConns(int(maxOpenConnections))
	pool.SetConnMaxLifetime(databaseConfig.ConnectIdleDuration)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.PingContext(pingCtx); err != nil {
		return nil, nil, fmt.Errorf("error occured while pinging database: %w", err)
	}

	operations := operation.NewDatabaseOperations(
		NewSnapshotOperation(db, databaseConfig.QueryDuration),
	)

	return &databaseShutdownCallback{db}, operations, nil
}
