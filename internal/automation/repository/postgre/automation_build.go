package postgre

import (
	"database/sql"
	"fmt"

	"automation-srv/internal/model"

	"github.com/goccy/go-json"
	"github.com/lib/pq"
)

// automationRow mirrors one row of queryListActiveByPost.
type automationRow struct {
	ID                   string
	Name                 string
	AccountID            string
	PostID               string
	TriggerType          string
	Keywords             pq.StringArray
	MessageType          string
	DMMessageTemplate    sql.NullString
	CarouselElements     []byte
	CommentReplyEnabled  bool
	CommentReplyTemplate sql.NullString
	IsActive             bool
	InstagramUserID      string
	AccessToken          string
}

func (r *automationRow) scanArgs() []any {
	return []any{
		&r.ID, &r.Name, &r.AccountID, &r.PostID,
		&r.TriggerType, &r.Keywords,
		&r.MessageType, &r.DMMessageTemplate, &r.CarouselElements,
		&r.CommentReplyEnabled, &r.CommentReplyTemplate,
		&r.IsActive,
		&r.InstagramUserID, &r.AccessToken,
	}
}

// buildAutomation - Convert a row into a validated model.Automation
func buildAutomation(r automationRow) (model.Automation, error) {
	trigger, err := model.NewTrigger(r.TriggerType, []string(r.Keywords))
	if err != nil {
		return model.Automation{}, err
	}

	message, err := buildMessage(r)
	if err != nil {
		return model.Automation{}, err
	}

	return model.Automation{
		ID:        r.ID,
		Name:      r.Name,
		AccountID: r.AccountID,
		PostID:    r.PostID,
		Trigger:   trigger,
		Message:   message,
		Reply: model.ReplyConfig{
			Enabled:  r.CommentReplyEnabled,
			Template: r.CommentReplyTemplate.String,
		},
		Active: r.IsActive,
		Credentials: model.Credentials{
			InstagramUserID: r.InstagramUserID,
			EncryptedToken:  r.AccessToken,
		},
	}, nil
}

func buildMessage(r automationRow) (model.MessageContent, error) {
	switch model.MessageKind(r.MessageType) {
	case model.MessageKindText, "":
		return model.NewTextMessage(r.DMMessageTemplate.String)
	case model.MessageKindCarousel:
		var elements []model.CarouselElement
		if len(r.CarouselElements) > 0 {
			if err := json.Unmarshal(r.CarouselElements, &elements); err != nil {
				return nil, fmt.Errorf("%w: carousel_elements: %v", model.ErrInvalidMessage, err)
			}
		}
		return model.NewCarouselMessage(elements)
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownMessageType, r.MessageType)
	}
}
