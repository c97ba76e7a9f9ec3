package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Application struct {
	ID uint64

	UserID uint64

	BootcampRunID uint64
	RunKey        string
	RunTitle      string

	Price decimal.Decimal

	Orders []Order

	CreatedAt time.Time
	UpdatedAt time.Time
}
