package export

import (
	"io"

	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
	"github.com/vibast-solutions/ms-go-enrollment/app/ledger"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName = "Statement"
	// #,##0.00
	amountNumFmt = 4
)

// WriteXLSX writes the statement as a single-sheet workbook. Amounts are
// numeric cells so the sheet can be summed.
func WriteXLSX(w io.Writer, account entity.Application, statement ledger.Statement) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}

	header := make([]interface{}, 0, len(columns))
	for _, name := range columns {
		header = append(header, name)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	rowNum := 2
	for i, r := range statementRows(statement) {
		entry := statement.Entries[i]
		values := []interface{}{
			r.Label,
			r.Date,
			ledger.RoundCents(entry.Order.TotalPricePaid).InexactFloat64(),
			r.Method,
			r.Status,
			ledger.RoundCents(entry.Balance).InexactFloat64(),
		}
		if err := setRow(f, rowNum, values); err != nil {
			return err
		}
		rowNum++
	}

	rowNum++
	totals := []struct {
		label string
		value float64
	}{
		{label: "Amount Paid", value: ledger.RoundCents(statement.TotalPaid).InexactFloat64()},
		{label: "Balance Due", value: ledger.RoundCents(statement.BalanceRemaining).InexactFloat64()},
		{label: "Total Due", value: ledger.RoundCents(statement.TotalPrice).InexactFloat64()},
	}
	for _, total := range totals {
		if err := setRow(f, rowNum, []interface{}{total.label, "", total.value}); err != nil {
			return err
		}
		rowNum++
	}

	style, err := f.NewStyle(&excelize.Style{NumFmt: amountNumFmt})
	if err != nil {
		return err
	}
	for _, col := range []int{3, 6} {
		top, err := excelize.CoordinatesToCellName(col, 2)
		if err != nil {
			return err
		}
		bottom, err := excelize.CoordinatesToCellName(col, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, top, bottom, style); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(sheetName, "A", "F", 18); err != nil {
		return err
	}
	if err := f.SetDocProps(&excelize.DocProperties{Title: title(account)}); err != nil {
		return err
	}

	return f.Write(w)
}

func setRow(f *excelize.File, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheetName, cell, &values)
}
