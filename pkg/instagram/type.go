package instagram

import (
	"time"

	pkghttp "automation-srv/pkg/http"
	"automation-srv/pkg/log"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// Config holds configuration for the Graph API client.
type Config struct {
	GraphURL           string
	Timeout            time.Duration
	RateLimitPerSecond float64
	RateLimitBurst     int
	BreakerMaxFailures uint32
	BreakerTimeout     time.Duration

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient pkghttp.IClient
}

type instagramImpl struct {
	l       log.Logger
	baseURL string
	client  pkghttp.IClient
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[response]
}

type response struct {
	body   []byte
	status int
}

// Recipient addresses a message. Comment-scoped private replies use CommentID.
type Recipient struct {
	CommentID string `json:"comment_id,omitempty"`
	ID        string `json:"id,omitempty"`
}

// Message is either a text message or a template attachment.
type Message struct {
	Text       string      `json:"text,omitempty"`
	Attachment *Attachment `json:"attachment,omitempty"`
}

// Attachment wraps a structured template.
type Attachment struct {
	Type    string          `json:"type"`
	Payload TemplatePayload `json:"payload"`
}

// TemplatePayload is the generic template payload.
type TemplatePayload struct {
	TemplateType string            `json:"template_type"`
	Elements     []TemplateElement `json:"elements"`
}

// TemplateElement is one card of a generic template.
type TemplateElement struct {
	Title         string           `json:"title"`
	Subtitle      string           `json:"subtitle,omitempty"`
	ImageURL      string           `json:"image_url,omitempty"`
	DefaultAction *DefaultAction   `json:"default_action,omitempty"`
	Buttons       []TemplateButton `json:"buttons,omitempty"`
}

// DefaultAction is the action taken when the card itself is tapped.
type DefaultAction struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// TemplateButton is a web_url or postback button.
type TemplateButton struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	URL     string `json:"url,omitempty"`
	Payload string `json:"payload,omitempty"`
}

// SendMessageRequest is the body of POST /{ig_user_id}/messages plus the sender id.
type SendMessageRequest struct {
	SenderID  string    `json:"-"`
	Recipient Recipient `json:"recipient"`
	Message   Message   `json:"message"`
}

// SendMessageResponse is returned by a successful send.
type SendMessageResponse struct {
	RecipientID string `json:"recipient_id"`
	MessageID   string `json:"message_id"`
}

// ReplyResponse is returned by a successful comment reply.
type ReplyResponse struct {
	ID string `json:"id"`
}

// UserProfile is the subset of Instagram user fields the worker reads.
type UserProfile struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Biography      string `json:"biography"`
	FollowersCount *int   `json:"followers_count"`
	MediaCount     *int   `json:"media_count"`
	ProfilePic     string `json:"profile_pic"`
}

// graphErrorEnvelope is the Graph API error body.
type graphErrorEnvelope struct {
	Error struct {
		Message      string `json:"message"`
		Type         string `json:"type"`
		Code         int    `json:"code"`
		ErrorSubcode int    `json:"error_subcode"`
		FBTraceID    string `json:"fbtrace_id"`
	} `json:"error"`
}
