package instagram

import (
	"context"
	"fmt"
	"strings"

	pkghttp "automation-srv/pkg/http"
	"automation-srv/pkg/log"

	"golang.org/x/time/rate"
)

// IInstagram is the Instagram Graph API surface used by the automation worker.
// Implementations are safe for concurrent use.
type IInstagram interface {
	// SendMessage posts a private reply DM from req.SenderID. Never retried.
	SendMessage(ctx context.Context, accessToken string, req SendMessageRequest) (*SendMessageResponse, error)
	// ReplyToComment posts a public reply under commentID. Never retried.
	ReplyToComment(ctx context.Context, accessToken, commentID, message string) (*ReplyResponse, error)
	// GetUserProfile reads the requested fields of an Instagram-scoped user.
	GetUserProfile(ctx context.Context, accessToken, userID string, fields []string) (*UserProfile, error)
}

// New creates a Graph API client guarded by a circuit breaker and an outbound rate limit.
func New(l log.Logger, cfg Config) (IInstagram, error) {
	if l == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.GraphURL == "" {
		return nil, fmt.Errorf("graph url is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RateLimitPerSecond <= 0 {
		cfg.RateLimitPerSecond = DefaultRateLimitPerSecond
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = DefaultRateLimitBurst
	}
	if cfg.BreakerMaxFailures == 0 {
		cfg.BreakerMaxFailures = DefaultBreakerMaxFailures
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = DefaultBreakerTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   cfg.Timeout,
			Retries:   DefaultProfileRetries,
			RetryWait: DefaultRetryWait,
		})
	}

	impl := &instagramImpl{
		l:       l,
		baseURL: strings.TrimRight(cfg.GraphURL, "/"),
		client:  httpClient,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst),
	}
	impl.cb = newBreaker(l, BreakerName, cfg.BreakerMaxFailures, cfg.BreakerTimeout)
	return impl, nil
}
