package checkout

import (
	"github.com/shopspring/decimal"
	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
	"github.com/vibast-solutions/ms-go-enrollment/app/ledger"
)

// Target is something an applicant can pay towards: one application for one
// bootcamp run.
type Target struct {
	Key           string
	ApplicationID uint64
	BootcampRunID uint64
	Title         string
	Price         decimal.Decimal
	Balance       decimal.Decimal
}

func TargetFromApplication(application entity.Application) Target {
	statement := ledger.ComputeBalances(application)
	return Target{
		Key:           application.RunKey,
		ApplicationID: application.ID,
		BootcampRunID: application.BootcampRunID,
		Title:         application.RunTitle,
		Price:         statement.TotalPrice,
		Balance:       statement.BalanceRemaining,
	}
}

// SelectTarget picks the target matching key. Without a match it falls back
// to the first target that still has something to pay.
func SelectTarget(targets []Target, key string) (Target, bool) {
	if key != "" {
		for _, target := range targets {
			if target.Key == key {
				return target, true
			}
		}
	}
	for _, target := range targets {
		if target.Balance.IsPositive() {
			return target, true
		}
	}
	return Target{}, false
}
