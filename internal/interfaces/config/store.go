// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	"os"
	"path/filepath"
)

type ExportStoreConfig struct {
	StoreType       int    `json:"store_type"`        // 快照导出存储类型, 0: 本地存储, 1: 阿里云OSS存储, 2: 腾讯云对象存储
	Region          string `json:"region"`            // 云存储地域
	Bucket          string `json:"bucket"`            // 云存储桶名
	AccessId        string `json:"access_id"`         // 访问id
	AccessKey       string `json:"access_key"`        // 访问秘钥
	UseInternalUrl  bool   `json:"use_internal_url"`  // 上传使用内部域名
	LocalStorePath  string `json:"local_store_path"`  // 本地存储路径
	RemoteStorePath string `json:"remote_store_path"` // 远程存储路径
}

func defaultExportStoreConfig() *ExportStoreConfig {
	return &ExportStoreConfig{
		StoreType:       0,
		Region:          "",
		Bucket:          "",
		AccessId:        "",
		AccessKey:       "",
		UseInternalUrl:  false,
		LocalStorePath:  "snapshots",
		RemoteStorePath: "",
	}
}

func (config *ExportStoreConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if config.LocalStorePath == "" {
		return ValidFail(errors.New("invalid json field store.local_store_path, path cannot be empty"))
	}
	if err := os.MkdirAll(filepath.Clean(config.LocalStorePath), 0755); err != nil {
		return ValidFailWith(fmt.Errorf("error while creating local store path(%s)", config.LocalStorePath), err)
	}
	switch config.StoreType {
	case 0:
		// 本地存储
		// 不用任何额外操作, 仅占位使用
	case 1, 2:
		// 阿里云OSS存储或者腾讯云对象存储
		if config.Region == "" {
			return ValidFail(errors.New("invalid json field store.region, region cannot be empty"))
		}
		if config.Bucket == "" {
			return ValidFail(errors.New("invalid json field store.bucket, bucket cannot be empty"))
		}
		if config.AccessId == "" {
			return ValidFail(errors.New("invalid json field store.access_id, access_id cannot be empty"))
		}
		if config.AccessKey == "" {
			return ValidFail(errors.New("invalid json field store.access_key, access_key cannot be empty"))
		}
	default:
		return ValidFail(fmt.Errorf("invalid json field store.store_type %d, only support 0, 1, 2", config.StoreType))
	}
	return ValidPass()
}
