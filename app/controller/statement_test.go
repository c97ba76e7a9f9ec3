package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
	"github.com/vibast-solutions/ms-go-enrollment/app/service"
	"github.com/vibast-solutions/ms-go-enrollment/app/types"
)

func statementOrders() *controllerOrderRepo {
	return &controllerOrderRepo{listFn: func(context.Context, uint64) ([]entity.Order, error) {
		return []entity.Order{
			{ID: 2, TotalPricePaid: decimal.NewFromInt(30), Status: entity.OrderStatusFulfilled, UpdatedOn: time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 1, TotalPricePaid: decimal.NewFromInt(20), Status: entity.OrderStatusFulfilled, UpdatedOn: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		}, nil
	}}
}

func newStatementControllerForTest(applications *controllerApplicationRepo, orders *controllerOrderRepo) *StatementController {
	return NewStatementController(service.NewStatementService(applications, orders))
}

func TestGetStatementJSON(t *testing.T) {
	ctrl := newStatementControllerForTest(&controllerApplicationRepo{}, statementOrders())
	ctx, rec := newPayContext(http.MethodGet, "/applications/7/statement", nil, "")

	_ = ctrl.GetStatement(ctx)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var payload types.StatementResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(payload.Entries) != 2 || payload.Entries[0].OrderId != 1 || payload.Entries[0].Balance.Formatted != "$40.00" {
		t.Fatalf("unexpected entries: %+v", payload.Entries)
	}
	if payload.BalanceRemaining.Value != "10.00" || payload.TotalPaid.Formatted != "$50.00" {
		t.Fatalf("unexpected totals: %+v", payload)
	}
}

func TestGetStatementPDF(t *testing.T) {
	ctrl := newStatementControllerForTest(&controllerApplicationRepo{}, statementOrders())
	ctx, rec := newPayContext(http.MethodGet, "/applications/7/statement?format=pdf", nil, "")

	_ = ctrl.GetStatement(ctx)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get(echo.HeaderContentType) != mimePDF {
		t.Fatalf("unexpected content type: %s", rec.Header().Get(echo.HeaderContentType))
	}
	if !strings.Contains(rec.Header().Get(echo.HeaderContentDisposition), "statement-7.pdf") {
		t.Fatalf("unexpected disposition: %s", rec.Header().Get(echo.HeaderContentDisposition))
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Fatal("expected a pdf document")
	}
}

func TestDownloadXLSX(t *testing.T) {
	ctrl := newStatementControllerForTest(&controllerApplicationRepo{}, statementOrders())
	ctx, rec := newPayContext(http.MethodGet, "/applications/7/statement.xlsx", nil, "")

	_ = ctrl.DownloadXLSX(ctx)
	if rec.Code != http.StatusOK || rec.Header().Get(echo.HeaderContentType) != mimeXLSX {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Header().Get(echo.HeaderContentType))
	}
	if !strings.HasPrefix(rec.Body.String(), "PK") {
		t.Fatal("expected a zip container")
	}
}

func TestGetStatementUnknownFormat(t *testing.T) {
	ctrl := newStatementControllerForTest(&controllerApplicationRepo{}, statementOrders())
	ctx, rec := newPayContext(http.MethodGet, "/applications/7/statement?format=doc", nil, "")

	_ = ctrl.GetStatement(ctx)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetStatementNotFound(t *testing.T) {
	ctrl := newStatementControllerForTest(&controllerApplicationRepo{}, statementOrders())
	ctx, rec := newPayContext(http.MethodGet, "/applications/8/statement", nil, "")
	ctx.SetParamValues("8")

	_ = ctrl.GetStatement(ctx)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetStatementRepositoryFailure(t *testing.T) {
	applications := &controllerApplicationRepo{findByIDFn: func(context.Context, uint64) (*entity.Application, error) {
		return nil, errors.New("db down")
	}}
	ctrl := newStatementControllerForTest(applications, statementOrders())
	ctx, rec := newPayContext(http.MethodGet, "/applications/7/statement", nil, "")

	_ = ctrl.GetStatement(ctx)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestPaymentTargets(t *testing.T) {
	applications := &controllerApplicationRepo{listByUserFn: func(context.Context, uint64) ([]*entity.Application, error) {
		return []*entity.Application{
			{ID: 7, UserID: 1, RunKey: "web-2024", RunTitle: "Web 2024", Price: decimal.NewFromInt(60)},
		}, nil
	}}
	ctrl := newStatementControllerForTest(applications, statementOrders())
	ctx, rec := newPayContext(http.MethodGet, "/users/1/payment-targets", nil, "")
	ctx.SetParamValues("1")

	_ = ctrl.PaymentTargets(ctx)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var payload types.PaymentTargetsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if payload.Selected == nil || payload.Selected.Key != "web-2024" || payload.Selected.Balance.Value != "10.00" {
		t.Fatalf("unexpected selection: %+v", payload.Selected)
	}
}
