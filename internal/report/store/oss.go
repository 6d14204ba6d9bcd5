// Package store
package store

import (
	"bytes"
	"context"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/config"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	. "github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/service"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"path"
)

type ALiYunOssExportStore struct {
	logger     log.LoggerInterface
	localStore ExportStoreInterface
	config     *config.ExportStoreConfig
	client     *oss.Client
}

func NewALiYunOssExportStore(
	logger log.LoggerInterface,
	config *config.ExportStoreConfig,
	localStore ExportStoreInterface,
) *ALiYunOssExportStore {
	store := &ALiYunOssExportStore{logger: logger, localStore: localStore, config: config}
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(credentials.NewStaticCredentialsProvider(config.AccessId, config.AccessKey)).
		WithRegion(config.Region).
		WithUseInternalEndpoint(config.UseInternalUrl)
	store.client = oss.NewClient(cfg)
	return store
}

func (store *ALiYunOssExportStore) SaveSnapshotFile(runId string, payload []byte) (*ExportInfo, error) {
	info, err := store.localStore.SaveSnapshotFile(runId, payload)
	if err != nil {
		return nil, err
	}

	info.RemotePath = path.Join(store.config.RemoteStorePath, info.FileName)

	putRequest := &oss.PutObjectRequest{
		Bucket:       oss.Ptr(store.config.Bucket),
		Key:          oss.Ptr(info.RemotePath),
		StorageClass: oss.StorageClassStandard,
		Body:         bytes.NewReader(payload),
	}

	if _, err := store.client.PutObject(context.TODO(), putRequest); err != nil {
		store.logger.ErrorF("ALiYunOssExportStore.SaveSnapshotFile upload snapshot to remote storage error: %v", err)
		return nil, err
	}
	return info, nil
}
