package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/vibast-solutions/ms-go-enrollment/app/checkout"
	"github.com/vibast-solutions/ms-go-enrollment/app/mapper"
	"github.com/vibast-solutions/ms-go-enrollment/app/service"
	"github.com/vibast-solutions/ms-go-enrollment/app/types"
	"github.com/vibast-solutions/ms-go-enrollment/config"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

type Server struct {
	statementService *service.StatementService
	paymentService   *service.PaymentService
	pollPolicy       checkout.PollPolicy
}

func NewServer(statementService *service.StatementService, paymentService *service.PaymentService, checkoutCfg config.CheckoutConfig) *Server {
	return &Server{
		statementService: statementService,
		paymentService:   paymentService,
		pollPolicy: checkout.PollPolicy{
			Interval: checkoutCfg.PollInterval,
			Timeout:  checkoutCfg.PollTimeout,
		},
	}
}

// GetStatement expects {"application_id": N} and answers with the same body
// as the HTTP statement endpoint.
func (s *Server) GetStatement(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	l := loggerWithContext(ctx)
	applicationID, err := uint64Field(req, "application_id")
	if err != nil {
		l.WithError(err).Debug("Get statement validation failed")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	account, statement, err := s.statementService.GetStatement(ctx, applicationID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, service.ErrApplicationNotFound):
			return nil, status.Error(codes.NotFound, "application not found")
		default:
			l.WithError(err).Error("Get statement failed")
			return nil, status.Error(codes.Internal, "internal server error")
		}
	}

	return toStruct(mapper.StatementToResponse(account, statement))
}

// ClassifyReturn expects {"application_id": N, "query": "status=receipt&order=M",
// "wait": bool}. With wait the call blocks until the order settles, the poll
// times out or the call deadline passes.
func (s *Server) ClassifyReturn(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	l := loggerWithContext(ctx)
	applicationID, err := uint64Field(req, "application_id")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	query, err := url.ParseQuery(req.GetFields()["query"].GetStringValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "query must be a valid query string")
	}

	returnReq := &types.ReturnStatusRequest{
		RequestId:     RequestIDFromContext(ctx),
		ApplicationId: applicationID,
		Query:         query,
		Wait:          req.GetFields()["wait"].GetBoolValue(),
	}

	var outcome checkout.Outcome
	if returnReq.Wait {
		outcome, err = s.paymentService.AwaitOutcome(ctx, returnReq)
	} else {
		outcome, err = s.paymentService.ReturnStatus(ctx, returnReq)
	}
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, status.FromContextError(err).Err()
		case errors.Is(err, service.ErrInvalidRequest):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, service.ErrApplicationNotFound):
			return nil, status.Error(codes.NotFound, "application not found")
		default:
			l.WithError(err).Error("Classify return failed")
			return nil, status.Error(codes.Internal, "internal server error")
		}
	}

	return toStruct(mapper.OutcomeToResponse(outcome, s.pollPolicy))
}

func uint64Field(req *structpb.Struct, name string) (uint64, error) {
	value, ok := req.GetFields()[name]
	if !ok {
		return 0, fmt.Errorf("%s is required", name)
	}

	switch kind := value.GetKind().(type) {
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n < 1 || n != math.Trunc(n) || n >= math.MaxUint64 {
			return 0, fmt.Errorf("%s must be a positive integer", name)
		}
		return uint64(n), nil
	case *structpb.Value_StringValue:
		id, err := strconv.ParseUint(strings.TrimSpace(kind.StringValue), 10, 64)
		if err != nil || id == 0 {
			return 0, fmt.Errorf("%s must be a positive integer", name)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
}

func toStruct(v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal server error")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, status.Error(codes.Internal, "internal server error")
	}
	return out, nil
}
