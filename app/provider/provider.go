package provider

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vibast-solutions/ms-go-enrollment/app/checkout"
)

const (
	FlowRunKey        = "run_key"
	FlowBootcampRunID = "bootcamp_run_id"
)

type InitiateInput struct {
	RequestID string
	Target    checkout.Target
	Amount    decimal.Decimal
}

// Initiator asks the payment-initiation endpoint for a redirect instruction.
// Each implementation speaks one flow; flows differ only in how the target is
// identified in the request body.
type Initiator interface {
	Flow() string
	Initiate(ctx context.Context, input *InitiateInput) (*checkout.RedirectInstruction, error)
}
