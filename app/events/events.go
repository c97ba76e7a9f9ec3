// Package events publishes payment audit events to Kafka.
package events

import (
	"context"
	"time"
)

const (
	TypePaymentInitiated = "payment.initiated"
	TypePaymentOutcome   = "payment.outcome"
)

type Event struct {
	Type          string    `json:"type"`
	ApplicationID uint64    `json:"application_id"`
	RequestID     string    `json:"request_id,omitempty"`
	TargetKey     string    `json:"target_key,omitempty"`
	Amount        string    `json:"amount,omitempty"`
	OrderID       *int64    `json:"order_id,omitempty"`
	Outcome       string    `json:"outcome,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher drops every event. It is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
