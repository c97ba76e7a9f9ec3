package types

import (
	"errors"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	FormatJSON = "json"
	FormatHTML = "html"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

type GetStatementRequest struct {
	ApplicationId uint64 `validate:"gt=0"`
	Format        string `validate:"oneof=json pdf xlsx"`
}

func NewGetStatementRequestFromContext(ctx echo.Context, format string) (*GetStatementRequest, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}
	return &GetStatementRequest{ApplicationId: id, Format: format}, nil
}

func (r *GetStatementRequest) GetApplicationId() uint64 { return r.ApplicationId }

func (r *GetStatementRequest) Validate() error {
	if r.ApplicationId == 0 {
		return errors.New("invalid application id")
	}
	return validateStruct(r)
}

type PaymentTargetsRequest struct {
	UserId   uint64 `validate:"gt=0"`
	Selected string
}

func NewPaymentTargetsRequestFromContext(ctx echo.Context) (*PaymentTargetsRequest, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}
	return &PaymentTargetsRequest{
		UserId:   id,
		Selected: strings.TrimSpace(ctx.QueryParam("selected")),
	}, nil
}

func (r *PaymentTargetsRequest) Validate() error {
	if r.UserId == 0 {
		return errors.New("invalid user id")
	}
	return nil
}

// InitiatePaymentRequest is posted by the pay page, either as a form or JSON.
// Format decides whether the answer is the auto-submit page or the raw
// redirect instruction.
type InitiatePaymentRequest struct {
	RequestId     string `json:"-" form:"-"`
	ApplicationId uint64 `json:"-" form:"-" validate:"gt=0"`
	Amount        string `json:"amount" form:"amount"`
	Format        string `json:"format" form:"format" validate:"oneof=json html"`
}

func NewInitiatePaymentRequestFromContext(ctx echo.Context) (*InitiatePaymentRequest, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}

	var body InitiatePaymentRequest
	if err := ctx.Bind(&body); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	body.ApplicationId = id
	body.RequestId = strings.TrimSpace(ctx.Request().Header.Get(echo.HeaderXRequestID))
	if body.RequestId == "" {
		body.RequestId = strings.TrimSpace(ctx.Response().Header().Get(echo.HeaderXRequestID))
	}
	body.Amount = strings.TrimSpace(body.Amount)
	body.Format = strings.ToLower(strings.TrimSpace(body.Format))
	if body.Format == "" {
		body.Format = negotiateFormat(ctx)
	}

	return &body, nil
}

func (r *InitiatePaymentRequest) GetRequestId() string     { return r.RequestId }
func (r *InitiatePaymentRequest) GetApplicationId() uint64 { return r.ApplicationId }
func (r *InitiatePaymentRequest) GetAmount() string        { return r.Amount }

func (r *InitiatePaymentRequest) Validate() error {
	if r.ApplicationId == 0 {
		return errors.New("invalid application id")
	}
	return validateStruct(r)
}

// ReturnStatusRequest carries the query string the processor sent the browser
// back with. Wait asks the server to keep polling while the order is pending.
type ReturnStatusRequest struct {
	RequestId     string
	ApplicationId uint64
	Query         url.Values
	Wait          bool
}

func NewReturnStatusRequestFromContext(ctx echo.Context) (*ReturnStatusRequest, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}

	query := ctx.QueryParams()
	wait := false
	if raw := strings.TrimSpace(query.Get("wait")); raw != "" {
		wait, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
	}

	requestID := strings.TrimSpace(ctx.Request().Header.Get(echo.HeaderXRequestID))
	if requestID == "" {
		requestID = strings.TrimSpace(ctx.Response().Header().Get(echo.HeaderXRequestID))
	}

	return &ReturnStatusRequest{
		RequestId:     requestID,
		ApplicationId: id,
		Query:         query,
		Wait:          wait,
	}, nil
}

func (r *ReturnStatusRequest) GetRequestId() string     { return r.RequestId }
func (r *ReturnStatusRequest) GetApplicationId() uint64 { return r.ApplicationId }
func (r *ReturnStatusRequest) GetQuery() url.Values     { return r.Query }

func (r *ReturnStatusRequest) Validate() error {
	if r.ApplicationId == 0 {
		return errors.New("invalid application id")
	}
	return nil
}

type ListSubmissionsRequest struct {
	Status        string `validate:"omitempty,oneof=pending approved rejected waitlisted"`
	ApplicationId uint64
	Limit         int32 `validate:"gte=1,lte=500"`
	Offset        int32 `validate:"gte=0"`
}

func NewListSubmissionsRequestFromContext(ctx echo.Context) (*ListSubmissionsRequest, error) {
	req := &ListSubmissionsRequest{
		Status: strings.ToLower(strings.TrimSpace(ctx.QueryParam("status"))),
		Limit:  100,
	}

	if raw := strings.TrimSpace(ctx.QueryParam("application_id")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ApplicationId = id
	}
	if raw := strings.TrimSpace(ctx.QueryParam("limit")); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, err
		}
		req.Limit = int32(limit)
	}
	if raw := strings.TrimSpace(ctx.QueryParam("offset")); raw != "" {
		offset, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, err
		}
		req.Offset = int32(offset)
	}

	return req, nil
}

func (r *ListSubmissionsRequest) GetStatus() string        { return r.Status }
func (r *ListSubmissionsRequest) GetApplicationId() uint64 { return r.ApplicationId }
func (r *ListSubmissionsRequest) GetLimit() int32          { return r.Limit }
func (r *ListSubmissionsRequest) GetOffset() int32         { return r.Offset }

func (r *ListSubmissionsRequest) Validate() error {
	if r.Limit == 0 {
		r.Limit = 100
	}
	return validateStruct(r)
}

type ReviewSubmissionRequest struct {
	Id       uint64 `json:"-" validate:"gt=0"`
	Decision string `json:"decision" validate:"required,oneof=approved rejected waitlisted"`
	Note     string `json:"note" validate:"max=2000"`
}

func NewReviewSubmissionRequestFromContext(ctx echo.Context) (*ReviewSubmissionRequest, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}

	var body ReviewSubmissionRequest
	if err := ctx.Bind(&body); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	body.Id = id
	body.Decision = strings.ToLower(strings.TrimSpace(body.Decision))
	body.Note = strings.TrimSpace(body.Note)

	return &body, nil
}

func (r *ReviewSubmissionRequest) GetId() uint64       { return r.Id }
func (r *ReviewSubmissionRequest) GetDecision() string { return r.Decision }
func (r *ReviewSubmissionRequest) GetNote() string     { return r.Note }

func (r *ReviewSubmissionRequest) Validate() error {
	if r.Id == 0 {
		return errors.New("invalid submission id")
	}
	return validateStruct(r)
}

// negotiateFormat answers JSON clients with JSON and browsers with HTML.
func negotiateFormat(ctx echo.Context) string {
	accept := ctx.Request().Header.Get(echo.HeaderAccept)
	contentType := ctx.Request().Header.Get(echo.HeaderContentType)
	if strings.Contains(accept, echo.MIMEApplicationJSON) || strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		return FormatJSON
	}
	return FormatHTML
}
