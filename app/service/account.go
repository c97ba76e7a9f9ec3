package service

import (
	"context"

	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
)

type applicationRepository interface {
	FindByID(ctx context.Context, id uint64) (*entity.Application, error)
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Application, error)
}

type orderRepository interface {
	ListByApplication(ctx context.Context, applicationID uint64) ([]entity.Order, error)
}

// loadAccount returns the application with its orders attached.
func loadAccount(ctx context.Context, applications applicationRepository, orders orderRepository, id uint64) (*entity.Application, error) {
	if id == 0 {
		return nil, ErrInvalidRequest
	}

	application, err := applications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, ErrApplicationNotFound
	}

	items, err := orders.ListByApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	application.Orders = items

	return application, nil
}
