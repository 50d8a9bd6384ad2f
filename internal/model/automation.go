package model

import "strings"

// Automation is an active rule bound to one post of one Instagram account.
type Automation struct {
	ID          string
	Name        string
	AccountID   string
	PostID      string
	Trigger     Trigger
	Message     MessageContent
	Reply       ReplyConfig
	Active      bool
	Credentials Credentials
}

// ReplyConfig is the optional public reply posted after a successful DM.
type ReplyConfig struct {
	Enabled  bool
	Template string
}

// ShouldReply is true only when replies are enabled and a template is set.
func (r ReplyConfig) ShouldReply() bool {
	return r.Enabled && strings.TrimSpace(r.Template) != ""
}

// Credentials are the sending account's Instagram id and its encrypted access token.
type Credentials struct {
	InstagramUserID string
	EncryptedToken  string
}
