package service

import (
	"context"
	"strings"

	"github.com/vibast-solutions/ms-go-enrollment/app/checkout"
	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
	"github.com/vibast-solutions/ms-go-enrollment/app/ledger"
)

type StatementService struct {
	applicationRepo applicationRepository
	orderRepo       orderRepository
}

func NewStatementService(applicationRepo applicationRepository, orderRepo orderRepository) *StatementService {
	return &StatementService{
		applicationRepo: applicationRepo,
		orderRepo:       orderRepo,
	}
}

func (s *StatementService) GetStatement(ctx context.Context, applicationID uint64) (*entity.Application, ledger.Statement, error) {
	account, err := loadAccount(ctx, s.applicationRepo, s.orderRepo, applicationID)
	if err != nil {
		return nil, ledger.Statement{}, err
	}
	return account, ledger.ComputeBalances(*account), nil
}

// PaymentTargets lists what the user can pay towards and which of them is
// selected. selected is nil when nothing matches and nothing is owed.
func (s *StatementService) PaymentTargets(ctx context.Context, userID uint64, selectedKey string) ([]checkout.Target, *checkout.Target, error) {
	if userID == 0 {
		return nil, nil, ErrInvalidRequest
	}

	applications, err := s.applicationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	targets := make([]checkout.Target, 0, len(applications))
	for _, application := range applications {
		if application == nil {
			continue
		}
		orders, err := s.orderRepo.ListByApplication(ctx, application.ID)
		if err != nil {
			return nil, nil, err
		}
		application.Orders = orders
		targets = append(targets, checkout.TargetFromApplication(*application))
	}

	selected, ok := checkout.SelectTarget(targets, strings.TrimSpace(selectedKey))
	if !ok {
		return targets, nil, nil
	}
	return targets, &selected, nil
}
