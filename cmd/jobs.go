package cmd

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
	"github.com/vibast-solutions/ms-go-enrollment/app/export"
	"github.com/vibast-solutions/ms-go-enrollment/app/ledger"
	"github.com/vibast-solutions/ms-go-enrollment/app/types"
)

const formatText = "text"

var (
	statementApplicationID uint64
	statementFormat        string
	statementOut           string

	awaitApplicationID uint64
	awaitOrderID       int64
)

var statementCmd = &cobra.Command{
	Use:   "statement",
	Short: "Render an application's payment statement",
	RunE: func(cmd *cobra.Command, _ []string) error {
		write, err := statementWriterFor(statementFormat)
		if err != nil {
			return err
		}

		_, svc, cleanup := mustCreateServices()
		defer cleanup()

		return runJob("statement", func() error {
			account, statement, err := svc.statement.GetStatement(cmd.Context(), statementApplicationID)
			if err != nil {
				return err
			}
			return writeStatementTo(statementOut, cmd.OutOrStdout(), func(w io.Writer) error {
				return write(w, *account, statement)
			})
		})
	},
}

var awaitOrderCmd = &cobra.Command{
	Use:   "await-order",
	Short: "Wait for an order to settle the way the pay page does",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, svc, cleanup := mustCreateServices()
		defer cleanup()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		query := url.Values{}
		query.Set("status", "receipt")
		query.Set("order", strconv.FormatInt(awaitOrderID, 10))

		return runJob("await_order", func() error {
			outcome, err := svc.payment.AwaitOutcome(ctx, &types.ReturnStatusRequest{
				RequestId:     fmt.Sprintf("cli-await-%d-%d", awaitApplicationID, awaitOrderID),
				ApplicationId: awaitApplicationID,
				Query:         query,
				Wait:          true,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), outcome.String())
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(statementCmd)
	rootCmd.AddCommand(awaitOrderCmd)

	statementCmd.Flags().Uint64Var(&statementApplicationID, "application-id", 0, "Application to render")
	statementCmd.Flags().StringVar(&statementFormat, "format", formatText, "Output format: text, pdf or xlsx")
	statementCmd.Flags().StringVar(&statementOut, "out", "", "Output file (defaults to stdout)")
	_ = statementCmd.MarkFlagRequired("application-id")

	awaitOrderCmd.Flags().Uint64Var(&awaitApplicationID, "application-id", 0, "Application the order belongs to")
	awaitOrderCmd.Flags().Int64Var(&awaitOrderID, "order", 0, "Order id returned by the processor")
	_ = awaitOrderCmd.MarkFlagRequired("application-id")
	_ = awaitOrderCmd.MarkFlagRequired("order")
}

type statementWriter func(w io.Writer, account entity.Application, statement ledger.Statement) error

func statementWriterFor(format string) (statementWriter, error) {
	switch format {
	case formatText:
		return export.WriteText, nil
	case types.FormatPDF:
		return export.WritePDF, nil
	case types.FormatXLSX:
		return export.WriteXLSX, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

//nolint:nonamedreturns
func writeStatementTo(path string, stdout io.Writer, write func(w io.Writer) error) (err error) {
	if path == "" {
		return write(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return write(f)
}

func runJob(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	latency := time.Since(start)
	if err != nil {
		logrus.WithError(err).WithField("job", name).WithField("latency", latency.String()).Error("job_failed")
		return err
	}
	logrus.WithField("job", name).WithField("latency", latency.String()).Info("job_completed")
	return nil
}
