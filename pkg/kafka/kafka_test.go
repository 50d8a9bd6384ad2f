package kafka

import (
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProducerConfig(t *testing.T) {
	assert.Error(t, validateProducerConfig(Config{Topic: "t"}))
	assert.Error(t, validateProducerConfig(Config{Brokers: []string{"localhost:9092"}}))
	assert.NoError(t, validateProducerConfig(Config{Brokers: []string{"localhost:9092"}, Topic: "t"}))
}

func TestProducerPublish(t *testing.T) {
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true

	t.Run("success", func(t *testing.T) {
		sp := mocks.NewSyncProducer(t, cfg)
		sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			assert.JSONEq(t, `{"a":1}`, string(val))
			return nil
		})
		p := &producerImpl{producer: sp, topic: "automation.delivery.events"}

		require.NoError(t, p.Publish([]byte("k"), []byte(`{"a":1}`)))
		require.NoError(t, p.Close())
	})

	t.Run("failure", func(t *testing.T) {
		sp := mocks.NewSyncProducer(t, cfg)
		sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
		p := &producerImpl{producer: sp, topic: "automation.delivery.events"}

		err := p.Publish([]byte("k"), []byte(`{}`))
		assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		require.NoError(t, p.Close())
	})
}
