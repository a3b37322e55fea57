package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/mess-service/internal/domain"
)

// SubscriptionRepository encapsulates the append-only subscription history.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) error
	// LatestByStudent returns the most recent row, pgx.ErrNoRows when none.
	LatestByStudent(ctx context.Context, studentID int64) (*domain.Subscription, error)
	// CancelLatestActive flips the single latest active row to cancelled.
	// Reports false without error when the student has no active row.
	CancelLatestActive(ctx context.Context, studentID int64) (bool, error)
}

type subscriptionRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriptionRepository instantiates repository.
func NewSubscriptionRepository(pool *pgxpool.Pool) SubscriptionRepository {
	return &subscriptionRepository{pool: pool}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	const query = `
        INSERT INTO subscriptions (student_id, duration, status)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		sub.StudentID,
		sub.Duration,
		sub.Status,
	).Scan(&sub.ID, &sub.CreatedAt)
}

func (r *subscriptionRepository) LatestByStudent(ctx context.Context, studentID int64) (*domain.Subscription, error) {
	const query = `
        SELECT id, student_id, duration, status, created_at
        FROM subscriptions WHERE student_id=$1
        ORDER BY created_at DESC, id DESC LIMIT 1`

	var sub domain.Subscription
	if err := r.pool.QueryRow(ctx, query, studentID).Scan(
		&sub.ID,
		&sub.StudentID,
		&sub.Duration,
		&sub.Status,
		&sub.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) CancelLatestActive(ctx context.Context, studentID int64) (bool, error) {
	// Single statement keeps the select-latest-then-update atomic.
	const query = `
        UPDATE subscriptions SET status=$1
        WHERE id = (
            SELECT id FROM subscriptions
            WHERE student_id=$2 AND status=$3
            ORDER BY created_at DESC, id DESC LIMIT 1
        )`
	cmd, err := r.pool.Exec(ctx, query,
		domain.SubscriptionStatusCancelled,
		studentID,
		domain.SubscriptionStatusActive,
	)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
