package checkout

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/vibast-solutions/ms-go-enrollment/app/ledger"
)

// amountRules admits plain decimal notation only. decimal.NewFromString also
// takes exponents, and rounding "1e100000000" never finishes.
const amountRules = "required,numeric"

var validate = validator.New()

// ValidateAmount parses the amount typed by the applicant. There is no upper
// bound; paying more than the balance is allowed. The amount must still be
// positive once rounded to cents.
func ValidateAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if err := validate.Var(raw, amountRules); err != nil {
		return decimal.Zero, &amountError{reason: ErrInvalidFormat}
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &amountError{reason: ErrInvalidFormat}
	}
	if !ledger.RoundCents(amount).IsPositive() {
		return decimal.Zero, &amountError{reason: ErrNotPositive}
	}

	return amount, nil
}

// FormatSubmissionAmount is the value sent as payment_amount, e.g. "123.46".
func FormatSubmissionAmount(amount decimal.Decimal) string {
	return ledger.RoundCents(amount).StringFixed(2)
}
