package service

import (
	"context"
	"sort"
	"sync"

	"github.com/vibast-solutions/ms-go-enrollment/app/checkout"
	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
	"github.com/vibast-solutions/ms-go-enrollment/app/events"
	"github.com/vibast-solutions/ms-go-enrollment/app/provider"
	"github.com/vibast-solutions/ms-go-enrollment/app/repository"
)

type serviceApplicationRepo struct {
	applications map[uint64]*entity.Application
	err          error
}

func (r *serviceApplicationRepo) FindByID(_ context.Context, id uint64) (*entity.Application, error) {
	if r.err != nil {
		return nil, r.err
	}
	item, ok := r.applications[id]
	if !ok {
		return nil, nil
	}
	copyItem := *item
	return &copyItem, nil
}

func (r *serviceApplicationRepo) ListByUser(_ context.Context, userID uint64) ([]*entity.Application, error) {
	if r.err != nil {
		return nil, r.err
	}
	items := make([]*entity.Application, 0)
	for _, item := range r.applications {
		if item.UserID == userID {
			copyItem := *item
			items = append(items, &copyItem)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// serviceOrderRepo returns the next snapshot on every call and repeats the
// last one once exhausted.
type serviceOrderRepo struct {
	mu        sync.Mutex
	snapshots map[uint64][][]entity.Order
	calls     int
	err       error
}

func (r *serviceOrderRepo) ListByApplication(_ context.Context, applicationID uint64) ([]entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	snapshots := r.snapshots[applicationID]
	if len(snapshots) == 0 {
		return []entity.Order{}, nil
	}
	idx := r.calls
	if idx >= len(snapshots) {
		idx = len(snapshots) - 1
	}
	r.calls++
	return snapshots[idx], nil
}

type serviceEventRepo struct {
	mu     sync.Mutex
	events []*entity.PaymentEvent
	err    error
}

func (r *serviceEventRepo) Create(_ context.Context, event *entity.PaymentEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	copyItem := *event
	r.events = append(r.events, &copyItem)
	return nil
}

type servicePublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *servicePublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *servicePublisher) Close() error { return nil }

type serviceInitiator struct {
	flow        string
	instruction *checkout.RedirectInstruction
	err         error
	inputs      []*provider.InitiateInput
}

func (i *serviceInitiator) Flow() string {
	if i.flow == "" {
		return provider.FlowRunKey
	}
	return i.flow
}

func (i *serviceInitiator) Initiate(_ context.Context, input *provider.InitiateInput) (*checkout.RedirectInstruction, error) {
	i.inputs = append(i.inputs, input)
	if i.err != nil {
		return nil, i.err
	}
	if i.instruction != nil {
		return i.instruction, nil
	}
	return &checkout.RedirectInstruction{
		URL:     "https://processor.example/pay",
		Payload: map[string]string{"token": "signed+token="},
	}, nil
}

type serviceSubmissionRepo struct {
	submissions map[uint64]*entity.Submission
	updateErr   error
	updated     []*entity.Submission
	lastFilter  repository.SubmissionFilter
}

func (r *serviceSubmissionRepo) FindByID(_ context.Context, id uint64) (*entity.Submission, error) {
	item, ok := r.submissions[id]
	if !ok {
		return nil, nil
	}
	copyItem := *item
	return &copyItem, nil
}

func (r *serviceSubmissionRepo) List(_ context.Context, filter repository.SubmissionFilter) ([]*entity.Submission, error) {
	r.lastFilter = filter
	items := make([]*entity.Submission, 0)
	for _, item := range r.submissions {
		if filter.Status != "" && string(item.Status) != filter.Status {
			continue
		}
		copyItem := *item
		items = append(items, &copyItem)
	}
	return items, nil
}

func (r *serviceSubmissionRepo) UpdateReview(_ context.Context, submission *entity.Submission, fromStatus entity.SubmissionStatus) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	current, ok := r.submissions[submission.ID]
	if !ok || current.Status != fromStatus {
		return repository.ErrSubmissionNotFound
	}
	copyItem := *submission
	r.submissions[submission.ID] = &copyItem
	r.updated = append(r.updated, &copyItem)
	return nil
}
