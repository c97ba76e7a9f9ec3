package types

import (
	"bytes"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newContext(method, target, body, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestNewInitiatePaymentRequestFromJSON(t *testing.T) {
	ctx, _ := newContext("POST", "/pay/applications/12", `{"amount":" 123.456 "}`, echo.MIMEApplicationJSON)
	ctx.Request().Header.Set(echo.HeaderXRequestID, "req-1")
	ctx.SetParamNames("id")
	ctx.SetParamValues("12")

	parsed, err := NewInitiatePaymentRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.GetApplicationId() != 12 || parsed.GetAmount() != "123.456" || parsed.GetRequestId() != "req-1" {
		t.Fatalf("unexpected request: %+v", parsed)
	}
	if parsed.Format != FormatJSON {
		t.Fatalf("expected json format for json body, got %q", parsed.Format)
	}
	if err := parsed.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestNewInitiatePaymentRequestFromFormDefaultsToHTML(t *testing.T) {
	form := url.Values{"amount": {"50"}}
	ctx, _ := newContext("POST", "/pay/applications/3", form.Encode(), echo.MIMEApplicationForm)
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")

	parsed, err := NewInitiatePaymentRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.GetAmount() != "50" || parsed.Format != FormatHTML {
		t.Fatalf("unexpected request: %+v", parsed)
	}
}

func TestNewInitiatePaymentRequestRejectsBadID(t *testing.T) {
	ctx, _ := newContext("POST", "/pay/applications/abc", `{}`, echo.MIMEApplicationJSON)
	ctx.SetParamNames("id")
	ctx.SetParamValues("abc")

	if _, err := NewInitiatePaymentRequestFromContext(ctx); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestInitiatePaymentValidateFormat(t *testing.T) {
	req := &InitiatePaymentRequest{ApplicationId: 1, Amount: "10", Format: "xml"}
	err := req.Validate()
	if err == nil || !strings.Contains(err.Error(), "format must be one of") {
		t.Fatalf("expected format validation error, got %v", err)
	}

	req = &InitiatePaymentRequest{Amount: "10", Format: FormatJSON}
	if err := req.Validate(); err == nil {
		t.Fatal("expected application id validation error")
	}
}

func TestNewReturnStatusRequestFromContext(t *testing.T) {
	ctx, _ := newContext("GET", "/pay/applications/9/return?status=receipt&order=42&wait=true", "", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("9")

	parsed, err := NewReturnStatusRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !parsed.Wait || parsed.GetApplicationId() != 9 {
		t.Fatalf("unexpected request: %+v", parsed)
	}
	if parsed.GetQuery().Get("order") != "42" {
		t.Fatalf("expected order in query, got %v", parsed.GetQuery())
	}

	ctx, _ = newContext("GET", "/pay/applications/9/return?wait=maybe", "", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("9")
	if _, err := NewReturnStatusRequestFromContext(ctx); err == nil {
		t.Fatal("expected wait parse error")
	}
}

func TestNewListSubmissionsRequestFromContextAndValidate(t *testing.T) {
	ctx, _ := newContext("GET", "/internal/submissions?status=Pending&limit=20&offset=40", "", "")

	parsed, err := NewListSubmissionsRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.GetStatus() != "pending" || parsed.GetLimit() != 20 || parsed.GetOffset() != 40 {
		t.Fatalf("unexpected request: %+v", parsed)
	}
	if err := parsed.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	bad := &ListSubmissionsRequest{Status: "archived", Limit: 10}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected status validation error")
	}
	bad = &ListSubmissionsRequest{Limit: 501}
	if err := bad.Validate(); err == nil || err.Error() != "limit must be <= 500" {
		t.Fatalf("expected limit validation error, got %v", err)
	}
}

func TestNewReviewSubmissionRequestFromContextAndValidate(t *testing.T) {
	ctx, _ := newContext("POST", "/internal/submissions/5/review", `{"decision":" Approved ","note":" looks good "}`, echo.MIMEApplicationJSON)
	ctx.SetParamNames("id")
	ctx.SetParamValues("5")

	parsed, err := NewReviewSubmissionRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.GetId() != 5 || parsed.GetDecision() != "approved" || parsed.GetNote() != "looks good" {
		t.Fatalf("unexpected request: %+v", parsed)
	}
	if err := parsed.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	missing := &ReviewSubmissionRequest{Id: 5}
	if err := missing.Validate(); err == nil || err.Error() != "decision is required" {
		t.Fatalf("expected decision required error, got %v", err)
	}
	wrong := &ReviewSubmissionRequest{Id: 5, Decision: "pending"}
	if err := wrong.Validate(); err == nil {
		t.Fatal("expected decision oneof error")
	}
}

func TestNewPaymentTargetsRequestFromContext(t *testing.T) {
	ctx, _ := newContext("GET", "/users/4/payment-targets?selected=web-2024", "", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("4")

	parsed, err := NewPaymentTargetsRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.UserId != 4 || parsed.Selected != "web-2024" {
		t.Fatalf("unexpected request: %+v", parsed)
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("ApplicationId"); got != "application_id" {
		t.Fatalf("unexpected snake case: %s", got)
	}
}
