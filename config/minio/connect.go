package minio

import (
	"context"
	"fmt"

	"automation-srv/config"
	"automation-srv/pkg/minio"
)

// Connect creates a MinIO client and makes sure the archive bucket exists.
// Returns (nil, nil) when no endpoint is configured; archiving is optional.
func Connect(ctx context.Context, cfg config.MinIOConfig) (minio.IMinIO, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}

	client, err := minio.NewMinIO(minio.Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		UseSSL:    cfg.UseSSL,
		Region:    cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	if err := client.EnsureBucket(ctx, cfg.Bucket); err != nil {
		return nil, fmt.Errorf("failed to prepare MinIO bucket %s: %w", cfg.Bucket, err)
	}

	return client, nil
}

// Disconnect closes the MinIO client.
func Disconnect(client minio.IMinIO) error {
	if client == nil {
		return nil
	}
	return client.Close()
}
