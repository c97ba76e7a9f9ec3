package types

import "github.com/vibast-solutions/ms-go-enrollment/app/checkout"

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// AmountResponse carries an amount both as an exact decimal string and in
// display form.
type AmountResponse struct {
	Value     string `json:"value"`
	Formatted string `json:"formatted"`
}

type StatementEntryResponse struct {
	OrderId       int64          `json:"order_id"`
	DateLabel     string         `json:"date_label"`
	Date          string         `json:"date"`
	UpdatedOn     string         `json:"updated_on,omitempty"`
	Amount        AmountResponse `json:"amount"`
	Balance       AmountResponse `json:"balance"`
	PaymentMethod string         `json:"payment_method,omitempty"`
	Status        string         `json:"status"`
	IsRefund      bool           `json:"is_refund"`
}

type StatementResponse struct {
	ApplicationId    uint64                    `json:"application_id"`
	RunKey           string                    `json:"run_key"`
	RunTitle         string                    `json:"run_title"`
	Entries          []*StatementEntryResponse `json:"entries"`
	TotalPaid        AmountResponse            `json:"total_paid"`
	TotalPrice       AmountResponse            `json:"total_price"`
	BalanceRemaining AmountResponse            `json:"balance_remaining"`
}

type PaymentTargetResponse struct {
	Key           string         `json:"key"`
	ApplicationId uint64         `json:"application_id"`
	BootcampRunId uint64         `json:"bootcamp_run_id"`
	Title         string         `json:"title"`
	Price         AmountResponse `json:"price"`
	Balance       AmountResponse `json:"balance"`
}

type PaymentTargetsResponse struct {
	Targets  []*PaymentTargetResponse `json:"targets"`
	Selected *PaymentTargetResponse   `json:"selected"`
}

type RedirectResponse struct {
	Url     string            `json:"url"`
	Payload map[string]string `json:"payload"`
}

type ReturnStatusResponse struct {
	Outcome string          `json:"outcome"`
	Final   bool            `json:"final"`
	Toast   *checkout.Toast `json:"toast,omitempty"`
	// RetryAfterSeconds is set while the outcome is pending.
	RetryAfterSeconds int `json:"retry_after_seconds,omitempty"`
}

type SubmissionResponse struct {
	Id            uint64 `json:"id"`
	ApplicationId uint64 `json:"application_id"`
	StepTitle     string `json:"step_title"`
	Status        string `json:"status"`
	ReviewerNote  string `json:"reviewer_note,omitempty"`
	ReviewedAt    string `json:"reviewed_at,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type ListSubmissionsResponse struct {
	Submissions []*SubmissionResponse `json:"submissions"`
}

type SubmissionEnvelopeResponse struct {
	Submission *SubmissionResponse `json:"submission"`
}
