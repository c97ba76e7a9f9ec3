// Package export renders a ledger statement as a downloadable document.
package export

import (
	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
	"github.com/vibast-solutions/ms-go-enrollment/app/ledger"
)

var columns = []string{"Type", "Date", "Amount", "Payment Method", "Status", "Balance"}

type row struct {
	Label   string
	Date    string
	Amount  string
	Method  string
	Status  string
	Balance string
}

func statementRows(statement ledger.Statement) []row {
	rows := make([]row, 0, len(statement.Entries))
	for _, entry := range statement.Entries {
		rows = append(rows, row{
			Label:   ledger.EntryDateLabel(entry.Order),
			Date:    ledger.FormatDate(entry.Order.UpdatedOn),
			Amount:  ledger.FormatAmount(entry.Order.TotalPricePaid),
			Method:  paymentMethod(entry.Order),
			Status:  string(entry.Order.Status),
			Balance: ledger.FormatAmount(entry.Balance),
		})
	}
	return rows
}

func paymentMethod(order entity.Order) string {
	if order.PaymentMethod == nil {
		return ""
	}
	return *order.PaymentMethod
}

func (r row) values() []string {
	return []string{r.Label, r.Date, r.Amount, r.Method, r.Status, r.Balance}
}

type summaryLine struct {
	Label string
	Value string
}

func summary(statement ledger.Statement) []summaryLine {
	return []summaryLine{
		{Label: "Amount Paid", Value: ledger.FormatAmount(statement.TotalPaid)},
		{Label: "Balance Due", Value: ledger.FormatAmount(statement.BalanceRemaining)},
		{Label: "Total Due", Value: ledger.FormatAmount(statement.TotalPrice)},
	}
}

func title(account entity.Application) string {
	if account.RunTitle == "" {
		return "Statement"
	}
	return account.RunTitle + " Statement"
}
