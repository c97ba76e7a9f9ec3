package service

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-enrollment/app/checkout"
	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
	"github.com/vibast-solutions/ms-go-enrollment/app/events"
	"github.com/vibast-solutions/ms-go-enrollment/app/factory"
	"github.com/vibast-solutions/ms-go-enrollment/app/provider"
	"github.com/vibast-solutions/ms-go-enrollment/config"
)

type initiatePaymentRequest interface {
	GetRequestId() string
	GetApplicationId() uint64
	GetAmount() string
}

type returnStatusRequest interface {
	GetRequestId() string
	GetApplicationId() uint64
	GetQuery() url.Values
}

type paymentEventRepository interface {
	Create(ctx context.Context, event *entity.PaymentEvent) error
}

type PaymentService struct {
	applicationRepo applicationRepository
	orderRepo       orderRepository
	eventRepo       paymentEventRepository
	publisher       events.Publisher
	initiators      *provider.Registry
	flow            string
	pollPolicy      checkout.PollPolicy
	logger          *logrus.Entry
}

func NewPaymentService(
	applicationRepo applicationRepository,
	orderRepo orderRepository,
	eventRepo paymentEventRepository,
	publisher events.Publisher,
	initiators *provider.Registry,
	initiationCfg config.InitiationConfig,
	checkoutCfg config.CheckoutConfig,
) *PaymentService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	flow := strings.TrimSpace(initiationCfg.Flow)
	if flow == "" {
		flow = provider.FlowRunKey
	}

	return &PaymentService{
		applicationRepo: applicationRepo,
		orderRepo:       orderRepo,
		eventRepo:       eventRepo,
		publisher:       publisher,
		initiators:      initiators,
		flow:            flow,
		pollPolicy: checkout.PollPolicy{
			Interval: checkoutCfg.PollInterval,
			Timeout:  checkoutCfg.PollTimeout,
		},
		logger: factory.NewModuleLogger("payment-service"),
	}
}

// Initiate validates the amount and asks the initiation endpoint for a
// redirect. Nothing is returned unless the endpoint answered with a usable
// instruction.
func (s *PaymentService) Initiate(ctx context.Context, req initiatePaymentRequest) (*checkout.RedirectInstruction, error) {
	state := &checkout.State{AmountEntered: req.GetAmount()}
	amount, err := state.EnteredAmount()
	if err != nil {
		return nil, err
	}

	account, err := loadAccount(ctx, s.applicationRepo, s.orderRepo, req.GetApplicationId())
	if err != nil {
		return nil, err
	}

	initiator, err := s.initiators.Get(s.flow)
	if err != nil {
		if errors.Is(err, provider.ErrFlowNotSupported) {
			return nil, ErrFlowUnsupported
		}
		return nil, err
	}

	target := checkout.TargetFromApplication(*account)
	state.SelectedTargetKey = target.Key
	instruction, err := initiator.Initiate(ctx, &provider.InitiateInput{
		RequestID: strings.TrimSpace(req.GetRequestId()),
		Target:    target,
		Amount:    amount,
	})
	if err != nil {
		return nil, err
	}

	submitted := checkout.FormatSubmissionAmount(amount)
	s.recordEvent(ctx, &entity.PaymentEvent{
		ApplicationID: account.ID,
		RequestID:     strings.TrimSpace(req.GetRequestId()),
		EventType:     entity.PaymentEventInitiated,
		TargetKey:     &state.SelectedTargetKey,
		Amount:        &submitted,
		CreatedAt:     time.Now().UTC(),
	})

	return instruction, nil
}

// ReturnStatus classifies a return trip once, against the current orders.
func (s *PaymentService) ReturnStatus(ctx context.Context, req returnStatusRequest) (checkout.Outcome, error) {
	account, err := loadAccount(ctx, s.applicationRepo, s.orderRepo, req.GetApplicationId())
	if err != nil {
		return checkout.OutcomeNone, err
	}

	outcome := checkout.ClassifyReturnStatus(req.GetQuery(), account.Orders)
	s.recordOutcome(ctx, req, outcome)

	return outcome, nil
}

// AwaitOutcome re-checks a pending receipt until it settles or the poll
// policy gives up. Returns ctx.Err() with OutcomePending when ctx ends first.
func (s *PaymentService) AwaitOutcome(ctx context.Context, req returnStatusRequest) (checkout.Outcome, error) {
	account, err := loadAccount(ctx, s.applicationRepo, s.orderRepo, req.GetApplicationId())
	if err != nil {
		return checkout.OutcomeNone, err
	}

	query := req.GetQuery()
	orders := account.Orders
	state := &checkout.State{SelectedTargetKey: account.RunKey}
	for {
		outcome := checkout.ClassifyReturnStatus(query, orders)
		state.Apply(outcome, time.Now())
		if outcome != checkout.OutcomePending {
			s.recordOutcome(ctx, req, outcome)
			return outcome, nil
		}

		decision := state.Poll(s.pollPolicy, time.Now())
		if decision.GiveUp {
			s.recordOutcome(ctx, req, checkout.OutcomeTimedOut)
			return checkout.OutcomeTimedOut, nil
		}

		if err := wait(ctx, decision.RetryAfter); err != nil {
			return checkout.OutcomePending, err
		}

		orders, err = s.orderRepo.ListByApplication(ctx, account.ID)
		if err != nil {
			return checkout.OutcomePending, err
		}
	}
}

// wait blocks for d or until ctx is done. The timer is always released.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *PaymentService) recordOutcome(ctx context.Context, req returnStatusRequest, outcome checkout.Outcome) {
	if outcome == checkout.OutcomeNone {
		return
	}

	label := outcome.String()
	event := &entity.PaymentEvent{
		ApplicationID: req.GetApplicationId(),
		RequestID:     strings.TrimSpace(req.GetRequestId()),
		EventType:     entity.PaymentEventOutcome,
		Outcome:       &label,
		CreatedAt:     time.Now().UTC(),
	}
	params := checkout.ParseReturnParams(req.GetQuery())
	if orderID, err := strconv.ParseInt(params.OrderID, 10, 64); err == nil {
		event.OrderID = &orderID
	}

	s.recordEvent(ctx, event)
}

// recordEvent stores and publishes an audit event. Failures are logged and
// never fail the payment flow.
func (s *PaymentService) recordEvent(ctx context.Context, event *entity.PaymentEvent) {
	logger := factory.LoggerWithRequestID(s.logger, event.RequestID).WithFields(logrus.Fields{
		"application_id": event.ApplicationID,
		"event_type":     event.EventType,
	})

	if s.eventRepo != nil {
		if err := s.eventRepo.Create(ctx, event); err != nil {
			logger.WithError(err).Warn("Failed to store payment event")
		}
	}

	if err := s.publisher.Publish(ctx, toPublishedEvent(event)); err != nil {
		logger.WithError(err).Warn("Failed to publish payment event")
	}
}

func toPublishedEvent(event *entity.PaymentEvent) events.Event {
	published := events.Event{
		ApplicationID: event.ApplicationID,
		RequestID:     event.RequestID,
		OrderID:       event.OrderID,
		OccurredAt:    event.CreatedAt,
	}
	switch event.EventType {
	case entity.PaymentEventInitiated:
		published.Type = events.TypePaymentInitiated
	default:
		published.Type = events.TypePaymentOutcome
	}
	if event.TargetKey != nil {
		published.TargetKey = *event.TargetKey
	}
	if event.Amount != nil {
		published.Amount = *event.Amount
	}
	if event.Outcome != nil {
		published.Outcome = *event.Outcome
	}
	return published
}
