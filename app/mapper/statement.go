package mapper

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vibast-solutions/ms-go-enrollment/app/checkout"
	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
	"github.com/vibast-solutions/ms-go-enrollment/app/ledger"
	"github.com/vibast-solutions/ms-go-enrollment/app/types"
)

func StatementToResponse(account *entity.Application, statement ledger.Statement) *types.StatementResponse {
	if account == nil {
		return nil
	}

	entries := make([]*types.StatementEntryResponse, 0, len(statement.Entries))
	for _, entry := range statement.Entries {
		entries = append(entries, &types.StatementEntryResponse{
			OrderId:       entry.Order.ID,
			DateLabel:     ledger.EntryDateLabel(entry.Order),
			Date:          ledger.FormatDate(entry.Order.UpdatedOn),
			UpdatedOn:     formatTimestamp(entry.Order.UpdatedOn),
			Amount:        AmountToResponse(entry.Order.TotalPricePaid),
			Balance:       AmountToResponse(entry.Balance),
			PaymentMethod: derefString(entry.Order.PaymentMethod),
			Status:        string(entry.Order.Status),
			IsRefund:      ledger.IsRefund(entry.Order),
		})
	}

	return &types.StatementResponse{
		ApplicationId:    account.ID,
		RunKey:           account.RunKey,
		RunTitle:         account.RunTitle,
		Entries:          entries,
		TotalPaid:        AmountToResponse(statement.TotalPaid),
		TotalPrice:       AmountToResponse(statement.TotalPrice),
		BalanceRemaining: AmountToResponse(statement.BalanceRemaining),
	}
}

func AmountToResponse(amount decimal.Decimal) types.AmountResponse {
	return types.AmountResponse{
		Value:     ledger.RoundCents(amount).StringFixed(2),
		Formatted: ledger.FormatAmount(amount),
	}
}

func TargetToResponse(target *checkout.Target) *types.PaymentTargetResponse {
	if target == nil {
		return nil
	}
	return &types.PaymentTargetResponse{
		Key:           target.Key,
		ApplicationId: target.ApplicationID,
		BootcampRunId: target.BootcampRunID,
		Title:         target.Title,
		Price:         AmountToResponse(target.Price),
		Balance:       AmountToResponse(target.Balance),
	}
}

func TargetsToResponse(targets []checkout.Target, selected *checkout.Target) *types.PaymentTargetsResponse {
	items := make([]*types.PaymentTargetResponse, 0, len(targets))
	for i := range targets {
		items = append(items, TargetToResponse(&targets[i]))
	}
	return &types.PaymentTargetsResponse{
		Targets:  items,
		Selected: TargetToResponse(selected),
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
