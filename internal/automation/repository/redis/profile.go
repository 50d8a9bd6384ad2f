package redis

import (
	"context"
	"errors"
	"fmt"

	"automation-srv/internal/model"
	pkgRedis "automation-srv/pkg/redis"

	"github.com/goccy/go-json"
)

type cachedProfile struct {
	Username          string `json:"username,omitempty"`
	Name              string `json:"name,omitempty"`
	Biography         string `json:"biography,omitempty"`
	FollowersCount    *int   `json:"followers_count,omitempty"`
	MediaCount        *int   `json:"media_count,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}

func profileKey(commenterID string) string {
	return fmt.Sprintf(profileKeyFormat, commenterID)
}

// GetProfile - Cached commenter profile, ok=false on miss
func (r *implCacheRepository) GetProfile(ctx context.Context, commenterID string) (model.CommenterProfile, bool, error) {
	val, err := r.redis.Get(ctx, profileKey(commenterID))
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNotFound) {
			return model.CommenterProfile{}, false, nil
		}
		r.l.Errorf(ctx, "automation.repository.redis.GetProfile: %v", err)
		return model.CommenterProfile{}, false, err
	}

	var p cachedProfile
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		// A corrupt entry is evicted and treated as a miss.
		r.l.Warnf(ctx, "automation.repository.redis.GetProfile: unmarshal %s: %v", commenterID, err)
		if err := r.redis.Delete(ctx, profileKey(commenterID)); err != nil {
			r.l.Warnf(ctx, "automation.repository.redis.GetProfile: evict %s: %v", commenterID, err)
		}
		return model.CommenterProfile{}, false, nil
	}

	return model.CommenterProfile{
		Username:          p.Username,
		Name:              p.Name,
		Biography:         p.Biography,
		FollowersCount:    p.FollowersCount,
		MediaCount:        p.MediaCount,
		ProfilePictureURL: p.ProfilePictureURL,
	}, true, nil
}

// SaveProfile - Cache a commenter profile for the configured TTL
func (r *implCacheRepository) SaveProfile(ctx context.Context, commenterID string, profile model.CommenterProfile) error {
	data, err := json.Marshal(cachedProfile{
		Username:          profile.Username,
		Name:              profile.Name,
		Biography:         profile.Biography,
		FollowersCount:    profile.FollowersCount,
		MediaCount:        profile.MediaCount,
		ProfilePictureURL: profile.ProfilePictureURL,
	})
	if err != nil {
		r.l.Errorf(ctx, "automation.repository.redis.SaveProfile: marshal: %v", err)
		return err
	}

	if err := r.redis.Set(ctx, profileKey(commenterID), string(data), r.ttl); err != nil {
		r.l.Errorf(ctx, "automation.repository.redis.SaveProfile: %v", err)
		return err
	}
	return nil
}
