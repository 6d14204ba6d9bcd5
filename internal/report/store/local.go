// Package store 快照导出存储, 本地存储为基础实现, 云存储在其上叠加上传
package store

import (
	"fmt"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/config"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/global"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	. "github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/service"
	"os"
	"path/filepath"
	"time"
)

type LocalExportStore struct {
	logger log.LoggerInterface
	config *config.ExportStoreConfig
}

func NewLocalExportStore(logger log.LoggerInterface, config *config.ExportStoreConfig) *LocalExportStore {
	return &LocalExportStore{
		logger: logger,
		config: config,
	}
}

func (store *LocalExportStore) SaveSnapshotFile(runId string, payload []byte) (*ExportInfo, error) {
	info := &ExportInfo{
		FileName: fmt.Sprintf("%s_%s.json", time.Now().Format("20060102"), runId),
	}
	info.FilePath = filepath.Join(store.config.LocalStorePath, info.FileName)

	if err := os.WriteFile(info.FilePath, payload, global.DefaultFilePermissions); err != nil {
		store.logger.ErrorF("LocalExportStore.SaveSnapshotFile write file error: %v", err)
		return nil, err
	}
	return info, nil
}

// NewExportStore 按配置的存储类型组装导出链
func NewExportStore(logger log.LoggerInterface, config *config.ExportStoreConfig) ExportStoreInterface {
	localStore := NewLocalExportStore(logger, config)
	switch config.StoreType {
	case 1:
		return NewALiYunOssExportStore(logger, config, localStore)
	case 2:
		return NewTencentCosExportStore(logger, config, localStore)
	default:
		return localStore
	}
}
