package consumer

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"automation-srv/internal/automation"
	rabbitDelivery "automation-srv/internal/automation/delivery/rabbitmq"
	"automation-srv/pkg/discord"
	"automation-srv/pkg/log"
	pkgRabbit "automation-srv/pkg/rabbitmq"
)

// Config holds the configuration for the comment consumer
type Config struct {
	Logger      log.Logger
	Channel     pkgRabbit.IChannel
	UseCase     automation.UseCase
	Queue       string
	ConsumerTag string
	Prefetch    int
	// Discord is optional; when set, nacks raise an alert at most once per AlertCooldown
	// and a lost subscription raises a warning once per outage.
	Discord discord.IDiscord
}

// Consumer processes comment events from RabbitMQ one at a time
type Consumer struct {
	l           log.Logger
	ch          pkgRabbit.IChannel
	uc          automation.UseCase
	queue       string
	consumerTag string
	prefetch    int
	discord     discord.IDiscord

	resubscribeDelay time.Duration

	ready      atomic.Bool
	subscribed atomic.Bool

	alertMu   sync.Mutex
	lastAlert time.Time
}

// New creates a new comment consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Channel == nil {
		return nil, fmt.Errorf("channel is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if cfg.Queue == "" {
		cfg.Queue = rabbitDelivery.QueueComments
	}
	if cfg.ConsumerTag == "" {
		cfg.ConsumerTag = rabbitDelivery.DefaultConsumerTag
	}
	if cfg.Prefetch <= 0 {
		cfg.Prefetch = rabbitDelivery.DefaultPrefetch
	}

	return &Consumer{
		l:           cfg.Logger,
		ch:          cfg.Channel,
		uc:          cfg.UseCase,
		queue:       cfg.Queue,
		consumerTag: cfg.ConsumerTag,
		prefetch:    cfg.Prefetch,
		discord:     cfg.Discord,

		resubscribeDelay: rabbitDelivery.ResubscribeDelay,
	}, nil
}

// IsReady reports whether the consumer currently holds a live subscription.
func (c *Consumer) IsReady() bool {
	return c.ready.Load()
}
