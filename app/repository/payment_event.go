package repository

import (
	"context"
	"errors"

	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
)

var ErrPaymentEventAlreadyExists = errors.New("payment event already exists")

type PaymentEventRepository struct {
	db DBTX
}

func NewPaymentEventRepository(db DBTX) *PaymentEventRepository {
	return &PaymentEventRepository{db: db}
}

func (r *PaymentEventRepository) Create(ctx context.Context, event *entity.PaymentEvent) error {
	query := `
		INSERT INTO payment_events (
			application_id, request_id, event_type, target_key, amount, order_id, outcome, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		event.ApplicationID,
		event.RequestID,
		event.EventType,
		nullableStringValue(event.TargetKey),
		nullableStringValue(event.Amount),
		nullableInt64Value(event.OrderID),
		nullableStringValue(event.Outcome),
		event.CreatedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrPaymentEventAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	event.ID = uint64(id)

	return nil
}
