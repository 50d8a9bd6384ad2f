package discord

import (
	"errors"
	"time"
)

const (
	DefaultBaseURL = "https://discord.com/api/webhooks"

	colorInfo    = 0x3498DB
	colorWarning = 0xF1C40F
	colorError   = 0xE74C3C

	// Discord limits
	maxDescriptionLength = 4096
	maxTitleLength       = 256
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// DefaultConfig returns the default Discord config.
func DefaultConfig() Config {
	return Config{
		BaseURL:         DefaultBaseURL,
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      500 * time.Millisecond,
		DefaultUsername: "automation-srv",
	}
}
