package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/mess-service/internal/domain"
)

// PreorderRepository encapsulates the pre-order workflow rows.
type PreorderRepository interface {
	Create(ctx context.Context, preorder *domain.Preorder) error
	// Approve atomically moves the preorder into the order ledger: the new
	// order keeps the preorder's items, name and created_at, carries the mess
	// pass resolved from the enrollment (empty when no student matches), and
	// the preorder row is deleted. Returns pgx.ErrNoRows when id is absent.
	Approve(ctx context.Context, id int64) error
	// Reject flips status to rejected in place; the row stays visible to the
	// student. Returns pgx.ErrNoRows when id is absent.
	Reject(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]domain.Preorder, error)
	ListByEnrollment(ctx context.Context, enrollment string) ([]domain.Preorder, error)
	ListApprovedByEnrollment(ctx context.Context, enrollment string) ([]domain.Preorder, error)
}

type preorderRepository struct {
	pool *pgxpool.Pool
}

// NewPreorderRepository instantiates repository.
func NewPreorderRepository(pool *pgxpool.Pool) PreorderRepository {
	return &preorderRepository{pool: pool}
}

func (r *preorderRepository) Create(ctx context.Context, preorder *domain.Preorder) error {
	const query = `
        INSERT INTO preorders (name, enrollment, category, items, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		preorder.Name,
		preorder.Enrollment,
		preorder.Category,
		preorder.Items,
		preorder.Status,
	).Scan(&preorder.ID, &preorder.CreatedAt)
}

func (r *preorderRepository) Approve(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var preorder domain.Preorder
	if err := tx.QueryRow(ctx, `
        SELECT name, enrollment, items, created_at
        FROM preorders WHERE id=$1`, id,
	).Scan(&preorder.Name, &preorder.Enrollment, &preorder.Items, &preorder.CreatedAt); err != nil {
		return err
	}

	// An orphaned enrollment does not fail the move; the order is recorded
	// with an empty mess pass.
	var messPass string
	err = tx.QueryRow(ctx,
		`SELECT mess_pass FROM students WHERE enrollment=$1`, preorder.Enrollment,
	).Scan(&messPass)
	if err != nil && err != pgx.ErrNoRows {
		return err
	}

	if _, err := tx.Exec(ctx, `
        INSERT INTO orders (items, name, mess_pass, created_at)
        VALUES ($1, $2, $3, $4)`,
		preorder.Items, preorder.Name, messPass, preorder.CreatedAt,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM preorders WHERE id=$1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *preorderRepository) Reject(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE preorders SET status=$1 WHERE id=$2`,
		domain.PreorderStatusRejected, id,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *preorderRepository) ListAll(ctx context.Context) ([]domain.Preorder, error) {
	const query = `
        SELECT id, name, enrollment, category, items, status, created_at
        FROM preorders ORDER BY id DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPreorders(rows)
}

func (r *preorderRepository) ListByEnrollment(ctx context.Context, enrollment string) ([]domain.Preorder, error) {
	const query = `
        SELECT id, name, enrollment, category, items, status, created_at
        FROM preorders WHERE enrollment=$1 ORDER BY id DESC`
	rows, err := r.pool.Query(ctx, query, enrollment)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPreorders(rows)
}

func (r *preorderRepository) ListApprovedByEnrollment(ctx context.Context, enrollment string) ([]domain.Preorder, error) {
	const query = `
        SELECT id, name, enrollment, category, items, status, created_at
        FROM preorders WHERE status=$1 AND enrollment=$2 ORDER BY id DESC`
	rows, err := r.pool.Query(ctx, query, domain.PreorderStatusApproved, enrollment)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPreorders(rows)
}

func scanPreorders(rows pgx.Rows) ([]domain.Preorder, error) {
	var result []domain.Preorder
	for rows.Next() {
		var preorder domain.Preorder
		if err := rows.Scan(
			&preorder.ID,
			&preorder.Name,
			&preorder.Enrollment,
			&preorder.Category,
			&preorder.Items,
			&preorder.Status,
			&preorder.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, preorder)
	}
	return result, rows.Err()
}
