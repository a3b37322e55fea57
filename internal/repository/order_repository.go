package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/mess-service/internal/domain"
)

// OrderRepository encapsulates the order ledger. Rows are only ever inserted;
// the single exception is the preorder-approval move, which lives on
// PreorderRepository so it can run in one transaction.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	ListByMessPass(ctx context.Context, messPass string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	const query = `
        INSERT INTO orders (items, name, mess_pass)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		order.Items,
		order.Name,
		order.MessPass,
	).Scan(&order.ID, &order.CreatedAt)
}

func (r *orderRepository) ListByMessPass(ctx context.Context, messPass string) ([]domain.Order, error) {
	const query = `
        SELECT id, items, name, mess_pass, created_at
        FROM orders WHERE mess_pass=$1 ORDER BY id DESC`
	rows, err := r.pool.Query(ctx, query, messPass)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	const query = `
        SELECT id, items, name, mess_pass, created_at
        FROM orders ORDER BY id DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]domain.Order, error) {
	var result []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.Items,
			&order.Name,
			&order.MessPass,
			&order.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, rows.Err()
}
