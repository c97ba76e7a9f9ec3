package checkout

import "errors"

var (
	ErrInvalidAmount = errors.New("invalid payment amount")
	ErrInvalidFormat = errors.New("payment amount is not a valid number")
	ErrNotPositive   = errors.New("payment amount must be greater than zero")
	ErrMissingURL    = errors.New("redirect url is empty")
)

// amountError keeps the specific reason while still matching ErrInvalidAmount.
type amountError struct {
	reason error
}

func (e *amountError) Error() string {
	return e.reason.Error()
}

func (e *amountError) Is(target error) bool {
	return target == ErrInvalidAmount || target == e.reason
}

func (e *amountError) Unwrap() error {
	return e.reason
}
