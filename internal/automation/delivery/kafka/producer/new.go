package producer

import (
	"automation-srv/internal/automation"
	pkgKafka "automation-srv/pkg/kafka"
	"automation-srv/pkg/log"
)

// implProducer implements automation.Publisher on Kafka
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new delivery event producer
func New(l log.Logger, producer pkgKafka.IProducer) automation.Publisher {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
