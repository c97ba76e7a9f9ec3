package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
)

const applicationColumns = `
	a.id, a.user_id, a.bootcamp_run_id, r.run_key, r.title, a.price, a.created_at, a.updated_at
`

type ApplicationRepository struct {
	db DBTX
}

func NewApplicationRepository(db DBTX) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// FindByID returns nil when the application does not exist. Orders are not
// loaded.
func (r *ApplicationRepository) FindByID(ctx context.Context, id uint64) (*entity.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM applications a
		JOIN bootcamp_runs r ON r.id = a.bootcamp_run_id
		WHERE a.id = ?
	`

	application := &entity.Application{}
	if err := scanApplication(r.db.QueryRowContext(ctx, query, id), application); errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return application, nil
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM applications a
		JOIN bootcamp_runs r ON r.id = a.bootcamp_run_id
		WHERE a.user_id = ?
		ORDER BY a.created_at ASC, a.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := make([]*entity.Application, 0)
	for rows.Next() {
		item := &entity.Application{}
		if err := scanApplication(rows, item); err != nil {
			return nil, err
		}
		applications = append(applications, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

func scanApplication(scan rowScanner, application *entity.Application) error {
	return scan.Scan(
		&application.ID,
		&application.UserID,
		&application.BootcampRunID,
		&application.RunKey,
		&application.RunTitle,
		&application.Price,
		&application.CreatedAt,
		&application.UpdatedAt,
	)
}
