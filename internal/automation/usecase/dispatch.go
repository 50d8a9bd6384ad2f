package usecase

import (
	"context"

	"automation-srv/internal/automation"
	"automation-srv/internal/model"
	"automation-srv/pkg/instagram"
)

// sendDM sends the automation's message as a private reply to the comment.
func (uc *implUseCase) sendDM(ctx context.Context, a model.Automation, token string, event model.CommentEvent) automation.DispatchResult {
	req := instagram.SendMessageRequest{
		SenderID:  a.Credentials.InstagramUserID,
		Recipient: instagram.Recipient{CommentID: event.CommentID},
		Message:   toGraphMessage(a.Message),
	}

	resp, err := uc.instagram.SendMessage(ctx, token, req)
	if err != nil {
		uc.l.Errorf(ctx, "automation.usecase.sendDM: %q to comment %s: %v", a.Name, event.CommentID, err)
		return automation.DispatchFailed{Err: err}
	}

	uc.l.Infof(ctx, "automation.usecase.sendDM: %q sent %s DM %s to %s", a.Name, a.Message.Kind(), resp.MessageID, event.CommenterID)
	return automation.DispatchSent{ID: resp.MessageID}
}

// replyToComment posts the public reply under the comment.
func (uc *implUseCase) replyToComment(ctx context.Context, token, commentID, template string) automation.DispatchResult {
	resp, err := uc.instagram.ReplyToComment(ctx, token, commentID, template)
	if err != nil {
		uc.l.Errorf(ctx, "automation.usecase.replyToComment: comment %s: %v", commentID, err)
		return automation.DispatchFailed{Err: err}
	}

	uc.l.Infof(ctx, "automation.usecase.replyToComment: replied %s to comment %s", resp.ID, commentID)
	return automation.DispatchSent{ID: resp.ID}
}

func toGraphMessage(content model.MessageContent) instagram.Message {
	switch m := content.(type) {
	case model.CarouselMessage:
		elements := make([]instagram.TemplateElement, 0, len(m.Elements))
		for _, e := range m.Elements {
			elements = append(elements, toTemplateElement(e))
		}
		return instagram.Message{
			Attachment: &instagram.Attachment{
				Type: instagram.AttachmentTypeTemplate,
				Payload: instagram.TemplatePayload{
					TemplateType: instagram.TemplateTypeGeneric,
					Elements:     elements,
				},
			},
		}
	case model.TextMessage:
		return instagram.Message{Text: m.Template}
	default:
		return instagram.Message{}
	}
}

func toTemplateElement(e model.CarouselElement) instagram.TemplateElement {
	el := instagram.TemplateElement{
		Title:    e.Title,
		Subtitle: e.Subtitle,
		ImageURL: e.ImageURL,
	}
	if e.DefaultAction != nil {
		actionType := e.DefaultAction.Type
		if actionType == "" {
			actionType = instagram.ButtonTypeWebURL
		}
		el.DefaultAction = &instagram.DefaultAction{Type: actionType, URL: e.DefaultAction.URL}
	}
	for _, b := range e.Buttons {
		el.Buttons = append(el.Buttons, instagram.TemplateButton{
			Type:    string(b.Type),
			Title:   b.Title,
			URL:     b.URL,
			Payload: b.Payload,
		})
	}
	return el
}
