// Package ledger turns an applicant's order history into a statement with a
// running balance.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
)

const (
	paymentDateLabel = "Payment Date"
	refundDateLabel  = "Refund Date"
)

// Entry pairs an order with the amount still owed right after it was applied.
type Entry struct {
	Order   entity.Order
	Balance decimal.Decimal
}

// Statement is the ledger view of one application, entries oldest first.
type Statement struct {
	Entries          []Entry
	TotalPaid        decimal.Decimal
	TotalPrice       decimal.Decimal
	BalanceRemaining decimal.Decimal
}

// ComputeBalances orders the account's orders by UpdatedOn (oldest first,
// ties keep their input order) and subtracts each amount from the price.
// BalanceRemaining may be negative when the account is overpaid.
func ComputeBalances(account entity.Application) Statement {
	orders := make([]entity.Order, len(account.Orders))
	copy(orders, account.Orders)
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].UpdatedOn.Before(orders[j].UpdatedOn)
	})

	running := account.Price
	totalPaid := decimal.Zero
	entries := make([]Entry, 0, len(orders))
	for _, order := range orders {
		running = running.Sub(order.TotalPricePaid)
		totalPaid = totalPaid.Add(order.TotalPricePaid)
		entries = append(entries, Entry{Order: order, Balance: running})
	}

	return Statement{
		Entries:          entries,
		TotalPaid:        totalPaid,
		TotalPrice:       account.Price,
		BalanceRemaining: account.Price.Sub(totalPaid),
	}
}

// IsRefund reports whether the order moved money back to the applicant.
func IsRefund(order entity.Order) bool {
	return order.TotalPricePaid.IsNegative()
}

// EntryDateLabel is the caption shown next to an order's date.
func EntryDateLabel(order entity.Order) string {
	if IsRefund(order) {
		return refundDateLabel
	}
	return paymentDateLabel
}
