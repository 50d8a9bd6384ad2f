package repository

import (
	"context"

	"automation-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	// ListActiveByPost returns active automations for the post joined with their
	// account credentials, ordered by creation time. Invalid rows are skipped.
	ListActiveByPost(ctx context.Context, postID string) ([]model.Automation, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// GetProfile returns ok=false on a cache miss.
	GetProfile(ctx context.Context, commenterID string) (model.CommenterProfile, bool, error)
	SaveProfile(ctx context.Context, commenterID string, profile model.CommenterProfile) error
}
