package postgre

import (
	"context"
	"fmt"

	"automation-srv/internal/automation/repository"
	"automation-srv/internal/model"
)

// ListActiveByPost - Active automations for a post with their account credentials
func (r *implRepository) ListActiveByPost(ctx context.Context, postID string) ([]model.Automation, error) {
	rows, err := r.db.QueryContext(ctx, queryListActiveByPost, postID)
	if err != nil {
		r.l.Errorf(ctx, "automation.repository.postgre.ListActiveByPost: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	var automations []model.Automation
	for rows.Next() {
		var row automationRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			r.l.Errorf(ctx, "automation.repository.postgre.ListActiveByPost: scan: %v", err)
			return nil, fmt.Errorf("%w: %w", repository.ErrFailedToScan, err)
		}

		a, err := buildAutomation(row)
		if err != nil {
			r.l.Warnf(ctx, "automation.repository.postgre.ListActiveByPost: skip automation %s: %v", row.ID, err)
			continue
		}
		automations = append(automations, a)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "automation.repository.postgre.ListActiveByPost: rows: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}

	return automations, nil
}
