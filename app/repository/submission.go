package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
)

var ErrSubmissionNotFound = errors.New("submission not found")

type SubmissionFilter struct {
	Status        string
	ApplicationID uint64
	Limit         int32
	Offset        int32
}

type SubmissionRepository struct {
	db DBTX
}

func NewSubmissionRepository(db DBTX) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id uint64) (*entity.Submission, error) {
	query := `
		SELECT id, application_id, step_title, status, reviewer_note, reviewed_at, created_at, updated_at
		FROM submissions
		WHERE id = ?
	`

	submission := &entity.Submission{}
	if err := scanSubmission(r.db.QueryRowContext(ctx, query, id), submission); errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return submission, nil
}

func (r *SubmissionRepository) List(ctx context.Context, filter SubmissionFilter) ([]*entity.Submission, error) {
	query := `
		SELECT id, application_id, step_title, status, reviewer_note, reviewed_at, created_at, updated_at
		FROM submissions
	`

	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 4)

	if strings.TrimSpace(filter.Status) != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.ApplicationID > 0 {
		conditions = append(conditions, "application_id = ?")
		args = append(args, filter.ApplicationID)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at ASC, id ASC LIMIT ? OFFSET ?"
	args = append(args, normalizeLimit(filter.Limit), filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := make([]*entity.Submission, 0)
	for rows.Next() {
		item := &entity.Submission{}
		if err := scanSubmission(rows, item); err != nil {
			return nil, err
		}
		submissions = append(submissions, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}

// UpdateReview stores a review decision. The status guard keeps two
// reviewers from both deciding the same pending submission.
func (r *SubmissionRepository) UpdateReview(ctx context.Context, submission *entity.Submission, fromStatus entity.SubmissionStatus) error {
	query := `
		UPDATE submissions SET
			status = ?,
			reviewer_note = ?,
			reviewed_at = ?,
			updated_at = ?
		WHERE id = ? AND status = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		submission.Status,
		nullableStringValue(submission.ReviewerNote),
		nullableTimeValue(submission.ReviewedAt),
		submission.UpdatedAt,
		submission.ID,
		fromStatus,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}

func scanSubmission(scan rowScanner, submission *entity.Submission) error {
	var reviewerNote sql.NullString
	var reviewedAt sql.NullTime

	err := scan.Scan(
		&submission.ID,
		&submission.ApplicationID,
		&submission.StepTitle,
		&submission.Status,
		&reviewerNote,
		&reviewedAt,
		&submission.CreatedAt,
		&submission.UpdatedAt,
	)
	if err != nil {
		return err
	}

	submission.ReviewerNote = stringPtrFromNull(reviewerNote)
	submission.ReviewedAt = timePtrFromNull(reviewedAt)

	return nil
}
