package entity

import "time"

type SubmissionStatus string

const (
	SubmissionStatusPending    SubmissionStatus = "pending"
	SubmissionStatusApproved   SubmissionStatus = "approved"
	SubmissionStatusRejected   SubmissionStatus = "rejected"
	SubmissionStatusWaitlisted SubmissionStatus = "waitlisted"
)

type Submission struct {
	ID uint64

	ApplicationID uint64
	StepTitle     string

	Status       SubmissionStatus
	ReviewerNote *string
	ReviewedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
