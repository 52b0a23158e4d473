package kafka

import "fmt"

// IProducer defines the interface for the Kafka producer.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	Close() error
	HealthCheck() error
}

// NewProducer creates a new Kafka sync producer. Returns the interface.
func NewProducer(cfg Config) (IProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka: at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka: topic is required")
	}
	return newProducerImpl(cfg)
}
