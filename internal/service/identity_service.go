package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/mess-service/internal/auth"
	"github.com/spec-kit/mess-service/internal/domain"
	"github.com/spec-kit/mess-service/internal/repository"
	apperrors "github.com/spec-kit/mess-service/pkg/util/errorutil"
)

const messPassAttempts = 5

// IdentityService coordinates student registration, authentication and lookups.
type IdentityService struct {
	students repository.StudentRepository
}

// NewIdentityService builds the service.
func NewIdentityService(students repository.StudentRepository) *IdentityService {
	return &IdentityService{students: students}
}

// Register creates a new student with a freshly generated unique mess pass.
func (s *IdentityService) Register(ctx context.Context, name, enrollment, password string) (*domain.Student, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < messPassAttempts; attempt++ {
		messPass, err := generateMessPass()
		if err != nil {
			return nil, err
		}

		student := &domain.Student{
			Name:         name,
			Enrollment:   enrollment,
			PasswordHash: hash,
			MessPass:     messPass,
		}
		err = s.students.Create(ctx, student)
		if err == nil {
			return student, nil
		}
		if isUniqueViolation(err, "enrollment") {
			return nil, apperrors.NewDuplicateEnrollment()
		}
		if isUniqueViolation(err, "mess_pass") {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("could not allocate a unique mess pass after %d attempts", messPassAttempts)
}

// Authenticate verifies credentials and returns the matching student.
// Any mismatch, including an unknown enrollment, reports the same failure.
func (s *IdentityService) Authenticate(ctx context.Context, enrollment, password string) (*domain.Student, error) {
	student, err := s.students.GetByEnrollment(ctx, enrollment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewAuthFailure()
		}
		return nil, err
	}
	if err := auth.ComparePassword(student.PasswordHash, password); err != nil {
		return nil, apperrors.NewAuthFailure()
	}
	return student, nil
}

// ByMessPass looks up a student; a miss is (nil, nil), not an error.
func (s *IdentityService) ByMessPass(ctx context.Context, messPass string) (*domain.Student, error) {
	return lookupByMessPass(ctx, s.students, messPass)
}

// lookupByMessPass resolves a mess pass to a student, mapping a repository
// miss to (nil, nil). Shared by the orchestration services.
func lookupByMessPass(ctx context.Context, students repository.StudentRepository, messPass string) (*domain.Student, error) {
	student, err := students.GetByMessPass(ctx, messPass)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return student, nil
}

// ByEnrollment looks up a student; a miss is (nil, nil), not an error.
func (s *IdentityService) ByEnrollment(ctx context.Context, enrollment string) (*domain.Student, error) {
	student, err := s.students.GetByEnrollment(ctx, enrollment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return student, nil
}

// ListWithSubscription returns the admin roster, newest first.
func (s *IdentityService) ListWithSubscription(ctx context.Context) ([]domain.StudentOverview, error) {
	return s.students.ListWithSubscription(ctx)
}

// generateMessPass draws a random 6-digit pass. Uniqueness is enforced by the
// DB constraint; Register retries on collision.
func generateMessPass() (string, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("generate mess pass: %w", err)
	}
	n := binary.BigEndian.Uint32(buf[:]) % 1000000
	return fmt.Sprintf("PASS%06d", n), nil
}

func isUniqueViolation(err error, column string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, column)
}
