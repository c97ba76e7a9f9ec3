package controller

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
	"github.com/vibast-solutions/ms-go-enrollment/app/export"
	"github.com/vibast-solutions/ms-go-enrollment/app/factory"
	"github.com/vibast-solutions/ms-go-enrollment/app/ledger"
	"github.com/vibast-solutions/ms-go-enrollment/app/mapper"
	"github.com/vibast-solutions/ms-go-enrollment/app/service"
	"github.com/vibast-solutions/ms-go-enrollment/app/types"
)

const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type StatementController struct {
	statementService *service.StatementService
	logger           logrus.FieldLogger
}

func NewStatementController(statementService *service.StatementService) *StatementController {
	return &StatementController{
		statementService: statementService,
		logger:           factory.NewModuleLogger("statement-controller"),
	}
}

// GetStatement serves the payment history as JSON, or as a PDF or XLSX
// download when ?format= asks for one.
func (c *StatementController) GetStatement(ctx echo.Context) error {
	format := strings.ToLower(strings.TrimSpace(ctx.QueryParam("format")))
	if format == "" {
		format = types.FormatJSON
	}
	return c.statement(ctx, format)
}

func (c *StatementController) DownloadPDF(ctx echo.Context) error {
	return c.statement(ctx, types.FormatPDF)
}

func (c *StatementController) DownloadXLSX(ctx echo.Context) error {
	return c.statement(ctx, types.FormatXLSX)
}

func (c *StatementController) statement(ctx echo.Context, format string) error {
	req, err := types.NewGetStatementRequestFromContext(ctx, format)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	account, statement, err := c.statementService.GetStatement(ctx.Request().Context(), req.GetApplicationId())
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			return c.writeError(ctx, http.StatusNotFound, "application not found")
		}
		factory.LoggerWithContext(c.logger.WithField("application_id", req.GetApplicationId()), ctx).
			WithError(err).Error("Get statement failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	switch req.Format {
	case types.FormatPDF:
		return c.download(ctx, account, statement, mimePDF, export.WritePDF)
	case types.FormatXLSX:
		return c.download(ctx, account, statement, mimeXLSX, export.WriteXLSX)
	default:
		return ctx.JSON(http.StatusOK, mapper.StatementToResponse(account, statement))
	}
}

func (c *StatementController) PaymentTargets(ctx echo.Context) error {
	req, err := types.NewPaymentTargetsRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	targets, selected, err := c.statementService.PaymentTargets(ctx.Request().Context(), req.UserId, req.Selected)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		}
		factory.LoggerWithContext(c.logger.WithField("user_id", req.UserId), ctx).
			WithError(err).Error("List payment targets failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, mapper.TargetsToResponse(targets, selected))
}

type statementWriter func(w io.Writer, account entity.Application, statement ledger.Statement) error

func (c *StatementController) download(ctx echo.Context, account *entity.Application, statement ledger.Statement, contentType string, write statementWriter) error {
	var buf bytes.Buffer
	if err := write(&buf, *account, statement); err != nil {
		c.logger.WithError(err).WithField("application_id", account.ID).Error("Render statement failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	extension := types.FormatPDF
	if contentType == mimeXLSX {
		extension = types.FormatXLSX
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="statement-%d.%s"`, account.ID, extension))
	return ctx.Blob(http.StatusOK, contentType, buf.Bytes())
}

func (c *StatementController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
