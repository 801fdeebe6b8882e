package kafka

import (
	"fmt"

	"github.com/IBM/sarama"
)

// ClientID identifies producer in broker logs.
const ClientID = "syntara-client"

// NewSyncProducer returns producer which waits until message is committed by all in-sync replicas.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewConfig())
	if err != nil {
		return nil, fmt.Errorf("can't create kafka producer for %v: %w", brokers, err)
	}

	return producer, nil
}

// NewConfig returns producer configuration.
func NewConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = ClientID
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1

	return cfg
}
