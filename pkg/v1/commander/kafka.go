package commander

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
)

//go:generate mockery --name KafkaProducer --filename kafkaproducer.go

// KafkaProducer is synchronous Kafka producer, it's satisfied by sarama.SyncProducer.
type KafkaProducer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}

// KafkaSender sends report commands to Kafka topic.
type KafkaSender struct {
	producer KafkaProducer
	topic    string
}

// NewKafkaSender returns new KafkaSender producing messages to provided topic.
func NewKafkaSender(producer KafkaProducer, topic string) KafkaSender {
	return KafkaSender{
		producer: producer,
		topic:    topic,
	}
}

// Send produces message to KafkaSender's topic and waits for broker acknowledgement.
func (s KafkaSender) Send(ctx context.Context, msg []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, _, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		return fmt.Errorf("can't produce message to %q: %w", s.topic, err)
	}

	return nil
}
