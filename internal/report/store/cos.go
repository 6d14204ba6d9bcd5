// Package store
package store

import (
	"bytes"
	"context"
	"fmt"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/config"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	. "github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/service"
	"github.com/tencentyun/cos-go-sdk-v5"
	"net/http"
	"net/url"
	"path"
	"strings"
)

type TencentCosExportStore struct {
	logger     log.LoggerInterface
	localStore ExportStoreInterface
	config     *config.ExportStoreConfig
	client     *cos.Client
}

func NewTencentCosExportStore(
	logger log.LoggerInterface,
	config *config.ExportStoreConfig,
	localStore ExportStoreInterface,
) *TencentCosExportStore {
	store := &TencentCosExportStore{logger: logger, localStore: localStore, config: config}
	bucketUrl, _ := url.Parse(fmt.Sprintf("https://%s.cos.%s.myqcloud.com", config.Bucket, strings.ToLower(config.Region)))
	serviceUrl, _ := url.Parse(fmt.Sprintf("https://cos.%s.myqcloud.com", strings.ToLower(config.Region)))
	baseUrl := &cos.BaseURL{BucketURL: bucketUrl, ServiceURL: serviceUrl}
	store.client = cos.NewClient(baseUrl, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  config.AccessId,
			SecretKey: config.AccessKey,
		},
	})
	return store
}

func (store *TencentCosExportStore) SaveSnapshotFile(runId string, payload []byte) (*ExportInfo, error) {
	info, err := store.localStore.SaveSnapshotFile(runId, payload)
	if err != nil {
		return nil, err
	}

	info.RemotePath = path.Join(store.config.RemoteStorePath, info.FileName)

	if _, err := store.client.Object.Put(context.Background(), info.RemotePath, bytes.NewReader(payload), nil); err != nil {
		store.logger.ErrorF("TencentCosExportStore.SaveSnapshotFile upload snapshot to remote storage error: %v", err)
		return nil, err
	}
	return info, nil
}
