package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusFulfilled OrderStatus = "fulfilled"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusPending   OrderStatus = "pending"
)

// Order is a payment or refund recorded against an application. A negative
// TotalPricePaid is a refund. UpdatedOn is the zero time when the source row
// has no timestamp.
type Order struct {
	ID            int64
	ApplicationID uint64

	TotalPricePaid decimal.Decimal
	PaymentMethod  *string
	Status         OrderStatus

	UpdatedOn time.Time
}
