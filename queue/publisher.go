// Package queue publishes reservation events to RabbitMQ.
package queue

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	RoutingReservationCreated         = "reservation.created"
	RoutingReservationCancelRequested = "reservation.cancel_requested"
)

// ReservationEvent is the body of every message on the reservations exchange.
type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID uint      `json:"reservation_id"`
	Code          string    `json:"code"`
	RoomID        uint      `json:"room_id"`
	CategoryID    uint      `json:"category_id"`
	ArrivalDate   time.Time `json:"arrival_date"`
	DepartureDate time.Time `json:"departure_date"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, event ReservationEvent) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, ReservationEvent) error { return nil }
func (NopPublisher) Close() error                                            { return nil }

// AMQPPublisher keeps one connection and channel and redials once when a
// publish finds them closed.
type AMQPPublisher struct {
	url      string
	exchange string
	log      *zap.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQPPublisher dials url and declares a durable topic exchange.
func NewAMQPPublisher(url, exchange string, log *zap.Logger) (*AMQPPublisher, error) {
	p := &AMQPPublisher{url: url, exchange: exchange, log: log.With(zap.String("component", "amqp"))}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPublisher returns an AMQP publisher, or a NopPublisher when url is
// empty or the broker cannot be reached.
func NewPublisher(url, exchange string, log *zap.Logger) Publisher {
	if url == "" {
		return NopPublisher{}
	}
	p, err := NewAMQPPublisher(url, exchange, log)
	if err != nil {
		log.Warn("rabbitmq unavailable, events disabled", zap.Error(err))
		return NopPublisher{}
	}
	return p
}

func (p *AMQPPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errors.Wrap(err, "rabbitmq dial")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errors.Wrap(err, "rabbitmq channel")
	}
	if err := ch.ExchangeDeclare(
		p.exchange, // name
		"topic",    // kind
		true,       // durable
		false,      // autoDelete
		false,      // internal
		false,      // noWait
		nil,        // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errors.Wrap(err, "rabbitmq exchange declare")
	}
	p.conn, p.ch = conn, ch
	return nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, event ReservationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() || p.ch == nil || p.ch.IsClosed() {
		if err := p.connect(); err != nil {
			return err
		}
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         event.Type,
		Body:         body,
	}
	if err := p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, pub); err != nil {
		return errors.Wrapf(err, "publish %s", routingKey)
	}
	p.log.Debug("event published", zap.String("routing_key", routingKey), zap.String("code", event.Code))
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var err error
	if p.ch != nil {
		err = p.ch.Close()
	}
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
