package controller

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vibast-solutions/ms-go-enrollment/app/checkout"
	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
	"github.com/vibast-solutions/ms-go-enrollment/app/provider"
	"github.com/vibast-solutions/ms-go-enrollment/app/repository"
)

type controllerApplicationRepo struct {
	findByIDFn   func(ctx context.Context, id uint64) (*entity.Application, error)
	listByUserFn func(ctx context.Context, userID uint64) ([]*entity.Application, error)
}

func (r *controllerApplicationRepo) FindByID(ctx context.Context, id uint64) (*entity.Application, error) {
	if r.findByIDFn != nil {
		return r.findByIDFn(ctx, id)
	}
	if id != 7 {
		return nil, nil
	}
	return &entity.Application{ID: 7, UserID: 1, BootcampRunID: 3, RunKey: "web-2024", RunTitle: "Web 2024", Price: decimal.NewFromInt(60)}, nil
}

func (r *controllerApplicationRepo) ListByUser(ctx context.Context, userID uint64) ([]*entity.Application, error) {
	if r.listByUserFn != nil {
		return r.listByUserFn(ctx, userID)
	}
	return []*entity.Application{}, nil
}

type controllerOrderRepo struct {
	listFn func(ctx context.Context, applicationID uint64) ([]entity.Order, error)
}

func (r *controllerOrderRepo) ListByApplication(ctx context.Context, applicationID uint64) ([]entity.Order, error) {
	if r.listFn != nil {
		return r.listFn(ctx, applicationID)
	}
	return []entity.Order{}, nil
}

type controllerEventRepo struct{}

func (r *controllerEventRepo) Create(context.Context, *entity.PaymentEvent) error {
	return nil
}

type controllerInitiator struct {
	instruction *checkout.RedirectInstruction
	err         error
	calls       int
}

func (i *controllerInitiator) Flow() string {
	return provider.FlowRunKey
}

func (i *controllerInitiator) Initiate(context.Context, *provider.InitiateInput) (*checkout.RedirectInstruction, error) {
	i.calls++
	if i.err != nil {
		return nil, i.err
	}
	if i.instruction != nil {
		return i.instruction, nil
	}
	return &checkout.RedirectInstruction{
		URL:     "https://processor.example/pay",
		Payload: map[string]string{"signature": "abc+/=", "order_ref": "web-2024"},
	}, nil
}

type controllerSubmissionRepo struct {
	findByIDFn     func(ctx context.Context, id uint64) (*entity.Submission, error)
	listFn         func(ctx context.Context, filter repository.SubmissionFilter) ([]*entity.Submission, error)
	updateReviewFn func(ctx context.Context, submission *entity.Submission, fromStatus entity.SubmissionStatus) error
}

func (r *controllerSubmissionRepo) FindByID(ctx context.Context, id uint64) (*entity.Submission, error) {
	if r.findByIDFn != nil {
		return r.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (r *controllerSubmissionRepo) List(ctx context.Context, filter repository.SubmissionFilter) ([]*entity.Submission, error) {
	if r.listFn != nil {
		return r.listFn(ctx, filter)
	}
	return []*entity.Submission{}, nil
}

func (r *controllerSubmissionRepo) UpdateReview(ctx context.Context, submission *entity.Submission, fromStatus entity.SubmissionStatus) error {
	if r.updateReviewFn != nil {
		return r.updateReviewFn(ctx, submission, fromStatus)
	}
	return nil
}
