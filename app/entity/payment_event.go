package entity

import "time"

const (
	PaymentEventInitiated = "payment_initiated"
	PaymentEventOutcome   = "payment_outcome"
)

type PaymentEvent struct {
	ID uint64

	ApplicationID uint64
	RequestID     string

	EventType string

	TargetKey *string
	Amount    *string
	OrderID   *int64
	Outcome   *string

	CreatedAt time.Time
}
