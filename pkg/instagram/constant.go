package instagram

import "time"

const (
	DefaultTimeout            = 15 * time.Second
	DefaultRateLimitPerSecond = 20
	DefaultRateLimitBurst     = 5
	DefaultBreakerMaxFailures = 5
	DefaultBreakerTimeout     = 60 * time.Second
	DefaultProfileRetries     = 2
	DefaultRetryWait          = 500 * time.Millisecond

	BreakerName = "instagram-graph-api"
)

// Graph API vocabulary
const (
	AttachmentTypeTemplate = "template"
	TemplateTypeGeneric    = "generic"
	ButtonTypeWebURL       = "web_url"
	ButtonTypePostback     = "postback"
)

// Endpoint labels used for metrics and logs
const (
	endpointMessages = "messages"
	endpointReplies  = "replies"
	endpointProfile  = "profile"
)

// ProfileFields is the default field set for commenter enrichment.
var ProfileFields = []string{"username", "name", "biography", "followers_count", "media_count", "profile_pic"}
