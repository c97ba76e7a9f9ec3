package checkout

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ToastSuccess = "success"
	ToastWarning = "warning"
	ToastError   = "error"
)

type Toast struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
}

var (
	successToast   = Toast{Title: "Payment received", Message: "Thank you, your payment was received", Icon: ToastSuccess}
	cancelledToast = Toast{Title: "Payment cancelled", Message: "Order was cancelled", Icon: ToastWarning}
	timedOutToast  = Toast{Title: "Payment failed", Message: "Order was not processed", Icon: ToastError}
)

// State is the per-visit state of the pay page. It belongs to a single caller
// and is never shared.
type State struct {
	SelectedTargetKey string
	AmountEntered     string
	TimeoutActive     bool
	InitialTime       time.Time
	Toast             *Toast
}

// EnteredAmount validates what the applicant typed into AmountEntered.
func (s *State) EnteredAmount() (decimal.Decimal, error) {
	return ValidateAmount(s.AmountEntered)
}

// Apply folds an outcome into the state. The toast is set at most once, so
// re-applying the same outcome is a no-op.
func (s *State) Apply(outcome Outcome, now time.Time) {
	switch outcome {
	case OutcomeSuccess:
		s.TimeoutActive = false
		s.SetToastOnce(successToast)
	case OutcomeCancelled:
		s.TimeoutActive = false
		s.SetToastOnce(cancelledToast)
	case OutcomePending:
		if !s.TimeoutActive && s.Toast == nil {
			s.TimeoutActive = true
			s.InitialTime = now
		}
	case OutcomeTimedOut:
		s.TimeoutActive = false
		s.SetToastOnce(timedOutToast)
	}
}

// SetToastOnce reports whether the toast was set.
func (s *State) SetToastOnce(toast Toast) bool {
	if s.Toast != nil {
		return false
	}
	s.Toast = &toast
	return true
}

// Poll asks the policy what to do next for an active pending poll. When the
// policy gives up the state moves to TimedOut.
func (s *State) Poll(policy PollPolicy, now time.Time) PollDecision {
	if !s.TimeoutActive {
		return PollDecision{GiveUp: true}
	}
	decision := policy.Decide(s.InitialTime, now)
	if decision.GiveUp {
		s.Apply(OutcomeTimedOut, now)
	}
	return decision
}
