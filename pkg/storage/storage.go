package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/mahou-anisphia/koala-restaurant-sub000/config"
)

// ErrForeignURL 传入的 URL 不属于本存储，无法反解对象 Key
var ErrForeignURL = errors.New("图片 URL 不属于当前对象存储")

const minioSetupTimeout = 10 * time.Second

// MediaStore 媒体存储接口（菜品图片）
type MediaStore interface {
	// Store 上传对象并返回对外访问 URL
	Store(ctx context.Context, reader io.Reader, size int64, contentType, filename string) (string, error)
	// Remove 按对外 URL 删除对象；URL 不匹配存储前缀时返回 ErrForeignURL
	Remove(ctx context.Context, publicURL string) error
}

// MinioStore 基于 MinIO（S3 兼容）的 MediaStore 实现
type MinioStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	logger        *zap.Logger
}

// NewMinioStore 创建 MinIO 客户端并确保桶存在
func NewMinioStore(cfg *config.StorageConfig, logger *zap.Logger) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建对象存储客户端失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), minioSetupTimeout)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("检查存储桶失败: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("创建存储桶失败: %w", err)
		}
	}

	logger.Info("对象存储就绪",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.Bucket),
	)

	return &MinioStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// Store 上传对象，Key 为随机前缀 + 原始文件名，避免同名覆盖
func (s *MinioStore) Store(ctx context.Context, reader io.Reader, size int64, contentType, filename string) (string, error) {
	key := BuildObjectKey(filename)

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("上传对象失败: %w", err)
	}

	return s.publicBaseURL + "/" + s.bucket + "/" + key, nil
}

// Remove 按对外 URL 删除对象
func (s *MinioStore) Remove(ctx context.Context, publicURL string) error {
	key, err := ParseObjectKey(publicURL, s.publicBaseURL, s.bucket)
	if err != nil {
		return err
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("删除对象失败: %w", err)
	}
	return nil
}

// BuildObjectKey 生成对象 Key：UUID 前缀 + "_" + 原始文件名
func BuildObjectKey(filename string) string {
	return uuid.New().String() + "_" + filename
}

// ParseObjectKey 从对外 URL 反解对象 Key
// URL 必须形如 <publicBaseURL>/<bucket>/<key>，否则返回 ErrForeignURL
func ParseObjectKey(publicURL, publicBaseURL, bucket string) (string, error) {
	prefix := strings.TrimRight(publicBaseURL, "/") + "/" + bucket + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return "", ErrForeignURL
	}
	key := strings.TrimPrefix(publicURL, prefix)
	if key == "" {
		return "", ErrForeignURL
	}
	return key, nil
}
