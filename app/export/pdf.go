package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
	"github.com/vibast-solutions/ms-go-enrollment/app/ledger"
)

var pdfColumnWidths = []float64{30, 32, 30, 38, 26, 30}

// WritePDF renders the statement on A4 pages.
func WritePDF(w io.Writer, account entity.Application, statement ledger.Statement) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title(account), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, title(account))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	for i, name := range columns {
		pdf.CellFormat(pdfColumnWidths[i], 8, name, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, r := range statementRows(statement) {
		for i, value := range r.values() {
			align := "L"
			if i == 2 || i == 5 {
				align = "R"
			}
			pdf.CellFormat(pdfColumnWidths[i], 7, value, "", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	for _, line := range summary(statement) {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(60, 8, line.Label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(40, 8, line.Value, "", 1, "R", false, 0, "")
	}

	return pdf.Output(w)
}
