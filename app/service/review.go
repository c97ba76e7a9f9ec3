package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
	"github.com/vibast-solutions/ms-go-enrollment/app/repository"
)

const (
	defaultListLimit = int32(100)
	maxListLimit     = int32(500)
)

type listSubmissionsRequest interface {
	GetStatus() string
	GetApplicationId() uint64
	GetLimit() int32
	GetOffset() int32
}

type reviewSubmissionRequest interface {
	GetId() uint64
	GetDecision() string
	GetNote() string
}

type submissionRepository interface {
	FindByID(ctx context.Context, id uint64) (*entity.Submission, error)
	List(ctx context.Context, filter repository.SubmissionFilter) ([]*entity.Submission, error)
	UpdateReview(ctx context.Context, submission *entity.Submission, fromStatus entity.SubmissionStatus) error
}

// ReviewService backs the staff dashboard where application steps are
// approved, rejected or waitlisted.
type ReviewService struct {
	submissionRepo submissionRepository
}

func NewReviewService(submissionRepo submissionRepository) *ReviewService {
	return &ReviewService{submissionRepo: submissionRepo}
}

func (s *ReviewService) ListSubmissions(ctx context.Context, req listSubmissionsRequest) ([]*entity.Submission, error) {
	status := strings.ToLower(strings.TrimSpace(req.GetStatus()))
	if status != "" && !isKnownSubmissionStatus(entity.SubmissionStatus(status)) {
		return nil, ErrInvalidStatus
	}

	limit := req.GetLimit()
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	return s.submissionRepo.List(ctx, repository.SubmissionFilter{
		Status:        status,
		ApplicationID: req.GetApplicationId(),
		Limit:         limit,
		Offset:        req.GetOffset(),
	})
}

// ReviewSubmission records a decision on a pending submission. Decided
// submissions cannot be reviewed again.
func (s *ReviewService) ReviewSubmission(ctx context.Context, req reviewSubmissionRequest) (*entity.Submission, error) {
	decision := entity.SubmissionStatus(strings.ToLower(strings.TrimSpace(req.GetDecision())))
	if req.GetId() == 0 || !isDecision(decision) {
		return nil, ErrInvalidRequest
	}

	submission, err := s.submissionRepo.FindByID(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, ErrSubmissionNotFound
	}
	if submission.Status != entity.SubmissionStatusPending {
		return nil, fmt.Errorf("%w: submission is already %s", ErrInvalidStatus, submission.Status)
	}

	now := time.Now().UTC()
	submission.Status = decision
	submission.ReviewerNote = normalizeOptionalString(req.GetNote())
	submission.ReviewedAt = &now
	submission.UpdatedAt = now

	if err := s.submissionRepo.UpdateReview(ctx, submission, entity.SubmissionStatusPending); err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return nil, fmt.Errorf("%w: submission was reviewed concurrently", ErrInvalidStatus)
		}
		return nil, err
	}

	return submission, nil
}

func isDecision(status entity.SubmissionStatus) bool {
	switch status {
	case entity.SubmissionStatusApproved, entity.SubmissionStatusRejected, entity.SubmissionStatusWaitlisted:
		return true
	default:
		return false
	}
}

func isKnownSubmissionStatus(status entity.SubmissionStatus) bool {
	return status == entity.SubmissionStatusPending || isDecision(status)
}

func normalizeOptionalString(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
