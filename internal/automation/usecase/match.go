package usecase

import (
	"context"
	"fmt"

	"automation-srv/internal/automation"
	"automation-srv/internal/model"
)

// findCandidates returns the active automations of a post in a stable order.
// An empty result is normal; a lookup error is an infrastructure failure.
func (uc *implUseCase) findCandidates(ctx context.Context, postID string) ([]model.Automation, error) {
	candidates, err := uc.repo.ListActiveByPost(ctx, postID)
	if err != nil {
		uc.l.Errorf(ctx, "automation.usecase.findCandidates: post %s: %v", postID, err)
		return nil, fmt.Errorf("%w: %w", automation.ErrLookupFailed, err)
	}
	return candidates, nil
}
