package model

import (
	"fmt"
	"strings"
)

// TriggerKind is the stored trigger type of an automation.
type TriggerKind string

const (
	TriggerKindAllComments TriggerKind = "all_comments"
	TriggerKindKeyword     TriggerKind = "keyword"
)

// Trigger decides whether a comment fires an automation.
// The set of implementations is closed: TriggerAllComments and TriggerKeyword.
type Trigger interface {
	Kind() TriggerKind
	Matches(commentText string) bool
	isTrigger()
}

// TriggerAllComments fires on every comment.
type TriggerAllComments struct{}

func (TriggerAllComments) Kind() TriggerKind     { return TriggerKindAllComments }
func (TriggerAllComments) Matches(_ string) bool { return true }
func (TriggerAllComments) isTrigger()            {}

// TriggerKeyword fires when the comment contains any keyword, case-insensitively.
type TriggerKeyword struct {
	Keywords []string
}

func (TriggerKeyword) Kind() TriggerKind { return TriggerKindKeyword }
func (TriggerKeyword) isTrigger()        {}

// Matches is a substring match, so "price" matches "What's the PRICE?".
// Keywords are not trimmed: " sale " only matches sale as a separate word. Empty keywords never match.
func (t TriggerKeyword) Matches(commentText string) bool {
	text := strings.ToLower(commentText)
	for _, kw := range t.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// NewTrigger builds a Trigger from its stored form.
func NewTrigger(kind string, keywords []string) (Trigger, error) {
	switch TriggerKind(kind) {
	case TriggerKindAllComments:
		return TriggerAllComments{}, nil
	case TriggerKindKeyword:
		return TriggerKeyword{Keywords: keywords}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTrigger, kind)
	}
}
