package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// ProducerTimeout is the Kafka producer request timeout.
	ProducerTimeout = 10 * time.Second
	// ProducerRetryMax is the max producer retries.
	ProducerRetryMax = 3
)

// KafkaVersion is the sarama protocol version used.
var KafkaVersion = sarama.V2_6_0_0

// Config holds configuration for the Kafka producer.
type Config struct {
	Brokers []string
	Topic   string
}

// producerImpl implements IProducer.
type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}
