package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// HandlerFunc handles message body. Returned error rejects the message.
type HandlerFunc func(ctx context.Context, message []byte) error

// RabbitMQ publishes report commands and consumes report notices.
type RabbitMQ struct {
	channel  *amqp.Channel
	exchange string
	done     chan struct{}
}

// NewRabbitMQ opens channel on connection. Messages are published to exchange.
func NewRabbitMQ(connection *amqp.Connection, exchange string) (*RabbitMQ, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("can't open channel: %w", err)
	}

	return &RabbitMQ{
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Bind declares durable queue and binds it to routing key of the exchange.
func (mq *RabbitMQ) Bind(queue, routingKey string) error {
	if _, err := mq.channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("can't declare queue %q: %w", queue, err)
	}

	if err := mq.channel.QueueBind(queue, routingKey, mq.exchange, false, nil); err != nil {
		return fmt.Errorf("can't bind queue %q to %q: %w", queue, routingKey, err)
	}

	return nil
}

// BindPrivate declares exclusive, server named queue and binds it to routing key of the exchange.
// Queue receives copies of messages published after binding and is deleted with the connection.
func (mq *RabbitMQ) BindPrivate(routingKey string) (string, error) {
	queue, err := mq.channel.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return "", fmt.Errorf("can't declare private queue: %w", err)
	}

	if err := mq.channel.QueueBind(queue.Name, routingKey, mq.exchange, false, nil); err != nil {
		return "", fmt.Errorf("can't bind queue %q to %q: %w", queue.Name, routingKey, err)
	}

	return queue.Name, nil
}

// Publish publishes persistent JSON message to routing key.
func (mq *RabbitMQ) Publish(ctx context.Context, routingKey string, message []byte) error {
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Body:         message,
	}

	if err := mq.channel.PublishWithContext(ctx, mq.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("can't publish to %q: %w", routingKey, err)
	}

	return nil
}

// Consume passes messages from queue to handler in background until ctx is done or channel is closed.
// Handler and acknowledgement errors are sent to returned channel, which is closed when consuming stops.
func (mq *RabbitMQ) Consume(ctx context.Context, queue string, handler HandlerFunc) (<-chan error, error) {
	deliveries, err := mq.channel.ConsumeWithContext(
		ctx,
		queue,
		"syntara-"+uuid.NewString(),
		false, // auto acknowledge
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("can't start consuming %q: %w", queue, err)
	}

	consumingErrors := make(chan error)
	mq.done = make(chan struct{})
	go func() {
		defer close(mq.done)
		defer close(consumingErrors)
		consume(ctx, deliveries, consumingErrors, handler)
	}()

	return consumingErrors, nil
}

// Done returns channel closed when consuming is finished.
func (mq *RabbitMQ) Done() <-chan struct{} {
	return mq.done
}

// Close closes the channel.
func (mq *RabbitMQ) Close() error {
	return mq.channel.Close()
}

// acknowledger is implemented by amqp.Delivery.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

type delivery struct {
	body []byte
	ack  acknowledger
}

func consume(ctx context.Context, deliveries <-chan amqp.Delivery, errs chan<- error, handler HandlerFunc) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			if err := handle(ctx, delivery{body: d.Body, ack: &d}, errs, handler); err != nil {
				return
			}
		}
	}
}

// handle runs handler on delivery and acknowledges it. Rejected messages are not requeued.
// It returns error only when ctx is done while reporting errors.
func handle(ctx context.Context, d delivery, errs chan<- error, handler HandlerFunc) error {
	if err := handler(ctx, d.body); err != nil {
		if pushErr := pushError(ctx, err, errs); pushErr != nil {
			return pushErr
		}
		if err := d.ack.Nack(false, false); err != nil {
			return pushError(ctx, fmt.Errorf("can't nack message: %w", err), errs)
		}
		return nil
	}

	if err := d.ack.Ack(false); err != nil {
		return pushError(ctx, fmt.Errorf("can't ack message: %w", err), errs)
	}

	return nil
}

func pushError(ctx context.Context, err error, errs chan<- error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case errs <- err:
	}
	return nil
}
