package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
	"github.com/vibast-solutions/ms-go-enrollment/app/ledger"
)

// WriteText prints the statement as aligned columns for terminals.
func WriteText(w io.Writer, account entity.Application, statement ledger.Statement) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "%s\n\n", title(account)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(tw, strings.Join(columns, "\t")); err != nil {
		return err
	}
	for _, r := range statementRows(statement) {
		if _, err := fmt.Fprintln(tw, strings.Join(r.values(), "\t")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(tw); err != nil {
		return err
	}
	for _, line := range summary(statement) {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", line.Label, line.Value); err != nil {
			return err
		}
	}

	return tw.Flush()
}
