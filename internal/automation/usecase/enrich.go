package usecase

import (
	"context"

	"automation-srv/internal/model"
	"automation-srv/pkg/instagram"
	"automation-srv/pkg/metrics"
)

func usernameOnly(event model.CommentEvent) model.CommenterProfile {
	return model.CommenterProfile{Username: event.CommenterUsername}
}

// enrich returns the commenter profile from the cache or the Graph API.
// It never fails: any error yields a profile holding only the event username.
func (uc *implUseCase) enrich(ctx context.Context, event model.CommentEvent, token string) model.CommenterProfile {
	if event.CommenterID == "" {
		return usernameOnly(event)
	}

	if uc.cache != nil {
		cached, ok, err := uc.cache.GetProfile(ctx, event.CommenterID)
		switch {
		case err != nil:
			uc.l.Warnf(ctx, "automation.usecase.enrich: cache get %s: %v", event.CommenterID, err)
		case ok:
			metrics.ProfileCacheHits.Inc()
			return withEventUsername(cached, event)
		default:
			metrics.ProfileCacheMisses.Inc()
		}
	}

	p, err := uc.instagram.GetUserProfile(ctx, token, event.CommenterID, instagram.ProfileFields)
	if err != nil {
		uc.l.Warnf(ctx, "automation.usecase.enrich: fetch profile %s: %v", event.CommenterID, err)
		return usernameOnly(event)
	}

	profile := withEventUsername(model.CommenterProfile{
		Username:          p.Username,
		Name:              p.Name,
		Biography:         p.Biography,
		FollowersCount:    p.FollowersCount,
		MediaCount:        p.MediaCount,
		ProfilePictureURL: p.ProfilePic,
	}, event)

	if uc.cache != nil {
		if err := uc.cache.SaveProfile(ctx, event.CommenterID, profile); err != nil {
			uc.l.Warnf(ctx, "automation.usecase.enrich: cache save %s: %v", event.CommenterID, err)
		}
	}
	return profile
}

func withEventUsername(p model.CommenterProfile, event model.CommentEvent) model.CommenterProfile {
	if p.Username == "" {
		p.Username = event.CommenterUsername
	}
	return p
}
