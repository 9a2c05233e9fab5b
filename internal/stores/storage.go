package stores

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/youruser/newscard/internal/config"
	"github.com/youruser/newscard/internal/core"
	"github.com/youruser/newscard/internal/stores/aws"
	"github.com/youruser/newscard/internal/stores/filesystem"
	"github.com/youruser/newscard/internal/stores/memory"
)

// GetStore builds the output store selected by cfg.StorageType.
func GetStore(ctx context.Context, cfg *config.Config) (core.OutputStore, error) {
	storageField := logrus.Fields{"storageType": cfg.StorageType}

	var (
		store core.OutputStore
		err   error
	)
	switch cfg.StorageType {
	case "filesystem":
		storageField["basePath"] = cfg.LocalStoragePath
		store, err = filesystem.NewStore(cfg.LocalStoragePath)
	case "s3":
		storageField["bucketName"] = cfg.S3BucketName
		store, err = aws.NewStore(ctx, cfg.S3BucketName)
	default:
		storageField["storageType"] = "in-memory"
		store = memory.NewStore()
	}
	if err != nil {
		return nil, err
	}
	logrus.WithFields(storageField).Info("Use storage")
	return store, nil
}
