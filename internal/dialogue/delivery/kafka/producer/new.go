package producer

import (
	"jewelbot-srv/internal/dialogue"
	pkgKafka "jewelbot-srv/pkg/kafka"
	"jewelbot-srv/pkg/log"
)

// implProducer implements dialogue.Producer on top of Kafka.
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new dialogue event producer.
func New(l log.Logger, producer pkgKafka.IProducer) dialogue.Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
