package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/mess-service/internal/domain"
)

// StudentRepository defines persistence access for the identity store.
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	GetByEnrollment(ctx context.Context, enrollment string) (*domain.Student, error)
	GetByMessPass(ctx context.Context, messPass string) (*domain.Student, error)
	ListWithSubscription(ctx context.Context) ([]domain.StudentOverview, error)
}

type studentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository returns a Postgres-backed implementation.
func NewStudentRepository(pool *pgxpool.Pool) StudentRepository {
	return &studentRepository{pool: pool}
}

func (r *studentRepository) Create(ctx context.Context, student *domain.Student) error {
	const query = `
        INSERT INTO students (name, enrollment, password_hash, mess_pass)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		student.Name,
		student.Enrollment,
		student.PasswordHash,
		student.MessPass,
	).Scan(&student.ID, &student.CreatedAt)
}

func (r *studentRepository) GetByEnrollment(ctx context.Context, enrollment string) (*domain.Student, error) {
	const query = `
        SELECT id, name, enrollment, password_hash, mess_pass, created_at
        FROM students WHERE enrollment=$1`
	return r.fetchSingle(ctx, query, enrollment)
}

func (r *studentRepository) GetByMessPass(ctx context.Context, messPass string) (*domain.Student, error) {
	const query = `
        SELECT id, name, enrollment, password_hash, mess_pass, created_at
        FROM students WHERE mess_pass=$1`
	return r.fetchSingle(ctx, query, messPass)
}

func (r *studentRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Student, error) {
	var student domain.Student
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&student.ID,
		&student.Name,
		&student.Enrollment,
		&student.PasswordHash,
		&student.MessPass,
		&student.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) ListWithSubscription(ctx context.Context) ([]domain.StudentOverview, error) {
	const query = `
        SELECT s.id, s.name, s.enrollment, s.password_hash, s.mess_pass, s.created_at,
            (SELECT duration FROM subscriptions WHERE student_id = s.id ORDER BY created_at DESC LIMIT 1),
            (SELECT status FROM subscriptions WHERE student_id = s.id ORDER BY created_at DESC LIMIT 1)
        FROM students s
        ORDER BY s.id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StudentOverview
	for rows.Next() {
		var overview domain.StudentOverview
		if err := rows.Scan(
			&overview.ID,
			&overview.Name,
			&overview.Enrollment,
			&overview.PasswordHash,
			&overview.MessPass,
			&overview.CreatedAt,
			&overview.SubscriptionDuration,
			&overview.SubscriptionStatus,
		); err != nil {
			return nil, err
		}
		result = append(result, overview)
	}
	return result, rows.Err()
}
