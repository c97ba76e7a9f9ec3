package repository

import (
	"context"
	"database/sql"

	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
)

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// ListByApplication returns orders in insertion order. Chronological ordering
// is left to the ledger.
func (r *OrderRepository) ListByApplication(ctx context.Context, applicationID uint64) ([]entity.Order, error) {
	query := `
		SELECT id, application_id, total_price_paid, payment_method, status, updated_on
		FROM orders
		WHERE application_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]entity.Order, 0)
	for rows.Next() {
		var order entity.Order
		if err := scanOrder(rows, &order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrder(scan rowScanner, order *entity.Order) error {
	var paymentMethod sql.NullString
	var updatedOn sql.NullTime

	err := scan.Scan(
		&order.ID,
		&order.ApplicationID,
		&order.TotalPricePaid,
		&paymentMethod,
		&order.Status,
		&updatedOn,
	)
	if err != nil {
		return err
	}

	order.PaymentMethod = stringPtrFromNull(paymentMethod)
	if updatedOn.Valid {
		order.UpdatedOn = updatedOn.Time
	}

	return nil
}
