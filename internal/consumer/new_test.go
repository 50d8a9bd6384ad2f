package consumer

import (
	"database/sql"
	"testing"

	"automation-srv/config"
	"automation-srv/pkg/encrypter"
	"automation-srv/pkg/log"
	pkgRabbit "automation-srv/pkg/rabbitmq"
	"automation-srv/pkg/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct{ ready bool }

func (f fakeConn) Close()                               {}
func (f fakeConn) IsReady() bool                        { return f.ready }
func (f fakeConn) IsClosed() bool                       { return false }
func (f fakeConn) Channel() (pkgRabbit.IChannel, error) { return nil, pkgRabbit.ErrNotConnected }

func validConfig(t *testing.T) Config {
	t.Helper()
	rc, err := redis.NewRedis(redis.RedisConfig{Host: "localhost", Port: 6379})
	require.NoError(t, err)
	return Config{
		Logger:          log.NewNop(),
		RabbitMQConfig:  config.RabbitMQConfig{Queue: "instagram.comments", Prefetch: 10},
		InstagramConfig: config.InstagramConfig{GraphURL: "https://graph.instagram.com"},
		PostgresDB:      &sql.DB{},
		RedisClient:     rc,
		RabbitMQConn:    fakeConn{},
		Encrypter:       encrypter.New("AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8="),
	}
}

func TestNew(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		srv, err := New(validConfig(t))
		require.NoError(t, err)
		assert.False(t, srv.IsReady())
	})

	tcs := map[string]func(*Config){
		"missing logger":    func(c *Config) { c.Logger = nil },
		"missing queue":     func(c *Config) { c.RabbitMQConfig.Queue = "" },
		"missing graph url": func(c *Config) { c.InstagramConfig.GraphURL = "" },
		"missing postgres":  func(c *Config) { c.PostgresDB = nil },
		"missing redis":     func(c *Config) { c.RedisClient = nil },
		"missing rabbitmq":  func(c *Config) { c.RabbitMQConn = nil },
		"missing encrypter": func(c *Config) { c.Encrypter = nil },
	}
	for name, mutate := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig(t)
			mutate(&cfg)
			_, err := New(cfg)
			assert.Error(t, err)
		})
	}
}

func TestRun_ChannelError(t *testing.T) {
	srv, err := New(validConfig(t))
	require.NoError(t, err)

	err = srv.Run(t.Context())
	assert.ErrorIs(t, err, pkgRabbit.ErrNotConnected)
}
