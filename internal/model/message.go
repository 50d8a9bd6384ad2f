package model

import (
	"fmt"
)

// MessageKind is the stored DM type of an automation.
type MessageKind string

const (
	MessageKindText     MessageKind = "text"
	MessageKindCarousel MessageKind = "carousel"
)

// ButtonType is the action type of a carousel button.
type ButtonType string

const (
	ButtonTypeWebURL   ButtonType = "web_url"
	ButtonTypePostback ButtonType = "postback"
)

// MessageContent is the DM body of an automation.
// The set of implementations is closed: TextMessage and CarouselMessage.
type MessageContent interface {
	Kind() MessageKind
	isMessageContent()
}

// TextMessage is a plain text DM.
type TextMessage struct {
	Template string `validate:"required"`
}

func (TextMessage) Kind() MessageKind { return MessageKindText }
func (TextMessage) isMessageContent() {}

// CarouselMessage is a generic template DM with 1 to 10 cards.
type CarouselMessage struct {
	Elements []CarouselElement `validate:"min=1,max=10,dive"`
}

func (CarouselMessage) Kind() MessageKind { return MessageKindCarousel }
func (CarouselMessage) isMessageContent() {}

type CarouselElement struct {
	Title         string         `json:"title" validate:"required"`
	Subtitle      string         `json:"subtitle,omitempty"`
	ImageURL      string         `json:"image_url,omitempty"`
	DefaultAction *DefaultAction `json:"default_action,omitempty"`
	Buttons       []Button       `json:"buttons" validate:"min=1,max=3,dive"`
}

type DefaultAction struct {
	Type string `json:"type"`
	URL  string `json:"url" validate:"required"`
}

type Button struct {
	Type    ButtonType `json:"type" validate:"required,oneof=web_url postback"`
	Title   string     `json:"title" validate:"required"`
	URL     string     `json:"url,omitempty" validate:"required_if=Type web_url"`
	Payload string     `json:"payload,omitempty" validate:"required_if=Type postback"`
}

// NewTextMessage validates and returns a text message.
func NewTextMessage(template string) (TextMessage, error) {
	m := TextMessage{Template: template}
	if err := validate(m); err != nil {
		return TextMessage{}, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}
	return m, nil
}

// NewCarouselMessage validates and returns a carousel message.
func NewCarouselMessage(elements []CarouselElement) (CarouselMessage, error) {
	m := CarouselMessage{Elements: elements}
	if err := validate(m); err != nil {
		return CarouselMessage{}, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}
	return m, nil
}
