package redis

import (
	"time"

	"automation-srv/internal/automation/repository"
	"automation-srv/pkg/log"
	pkgRedis "automation-srv/pkg/redis"
)

const (
	profileKeyFormat  = "commenter_profile:%s"
	defaultProfileTTL = 6 * time.Hour
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New - Factory function. A non-positive ttl falls back to six hours.
func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.CacheRepository {
	if ttl <= 0 {
		ttl = defaultProfileTTL
	}
	return &implCacheRepository{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}
