package service_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/mess-service/internal/domain"
	"github.com/spec-kit/mess-service/internal/service"
	apperrors "github.com/spec-kit/mess-service/pkg/util/errorutil"
)

func newSubscriptionService(students *MockStudentRepository, subs *MockSubscriptionRepository) *service.SubscriptionService {
	return service.NewSubscriptionService(service.SubscriptionDependencies{
		StudentRepo:      students,
		SubscriptionRepo: subs,
	})
}

func knownStudent(students *MockStudentRepository) {
	students.On("GetByMessPass", "PASS000001").Return(&domain.Student{
		ID: 1, Enrollment: "e1", MessPass: "PASS000001",
	}, nil)
}

func TestSubscribeAppendsActiveRow(t *testing.T) {
	students := new(MockStudentRepository)
	knownStudent(students)

	subs := new(MockSubscriptionRepository)
	subs.On("Create", mock.AnythingOfType("*domain.Subscription")).Run(func(args mock.Arguments) {
		sub := args.Get(0).(*domain.Subscription)
		assert.Equal(t, int64(1), sub.StudentID)
		assert.Equal(t, domain.SubscriptionStatusActive, sub.Status)
		sub.ID = 10
	}).Return(nil).Once()

	svc := newSubscriptionService(students, subs)
	sub, err := svc.Subscribe(context.Background(), "PASS000001", "monthly")

	require.NoError(t, err)
	assert.Equal(t, "monthly", sub.Duration)
	subs.AssertExpectations(t)
}

func TestSubscribeUnknownStudent(t *testing.T) {
	students := new(MockStudentRepository)
	students.On("GetByMessPass", "PASS999999").Return(nil, pgx.ErrNoRows)

	svc := newSubscriptionService(students, new(MockSubscriptionRepository))
	_, err := svc.Subscribe(context.Background(), "PASS999999", "monthly")

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "STUDENT_NOT_FOUND", domainErr.Code)
}

func TestCurrentReportsLatestActiveRow(t *testing.T) {
	students := new(MockStudentRepository)
	knownStudent(students)

	subs := new(MockSubscriptionRepository)
	subs.On("LatestByStudent", int64(1)).Return(&domain.Subscription{
		ID: 2, StudentID: 1, Duration: "weekly", Status: domain.SubscriptionStatusActive,
	}, nil)

	svc := newSubscriptionService(students, subs)
	current, err := svc.Current(context.Background(), "PASS000001")

	require.NoError(t, err)
	assert.True(t, current.Active)
	assert.Equal(t, "weekly", current.Duration)
}

func TestCurrentIgnoresShadowedActiveRows(t *testing.T) {
	// The latest row is cancelled; an older active row must not leak through.
	students := new(MockStudentRepository)
	knownStudent(students)

	subs := new(MockSubscriptionRepository)
	subs.On("LatestByStudent", int64(1)).Return(&domain.Subscription{
		ID: 3, StudentID: 1, Duration: "monthly", Status: domain.SubscriptionStatusCancelled,
	}, nil)

	svc := newSubscriptionService(students, subs)
	current, err := svc.Current(context.Background(), "PASS000001")

	require.NoError(t, err)
	assert.False(t, current.Active)
	assert.Empty(t, current.Duration)
}

func TestCurrentWithNoHistory(t *testing.T) {
	students := new(MockStudentRepository)
	knownStudent(students)

	subs := new(MockSubscriptionRepository)
	subs.On("LatestByStudent", int64(1)).Return(nil, pgx.ErrNoRows)

	svc := newSubscriptionService(students, subs)
	current, err := svc.Current(context.Background(), "PASS000001")

	require.NoError(t, err)
	assert.False(t, current.Active)
}

func TestCurrentForUnknownStudentIsEmptyNotError(t *testing.T) {
	students := new(MockStudentRepository)
	students.On("GetByMessPass", "PASS999999").Return(nil, pgx.ErrNoRows)

	svc := newSubscriptionService(students, new(MockSubscriptionRepository))
	current, err := svc.Current(context.Background(), "PASS999999")

	require.NoError(t, err)
	assert.False(t, current.Active)
}

func TestStatusReportsLatestDurationRegardlessOfState(t *testing.T) {
	students := new(MockStudentRepository)
	knownStudent(students)

	subs := new(MockSubscriptionRepository)
	subs.On("LatestByStudent", int64(1)).Return(&domain.Subscription{
		ID: 3, StudentID: 1, Duration: "monthly", Status: domain.SubscriptionStatusCancelled,
	}, nil)

	svc := newSubscriptionService(students, subs)
	duration, err := svc.Status(context.Background(), "PASS000001")

	require.NoError(t, err)
	assert.Equal(t, "monthly", duration)
}

func TestCancelIsIdempotent(t *testing.T) {
	students := new(MockStudentRepository)
	knownStudent(students)

	subs := new(MockSubscriptionRepository)
	subs.On("CancelLatestActive", int64(1)).Return(true, nil).Once()
	subs.On("CancelLatestActive", int64(1)).Return(false, nil).Once()

	svc := newSubscriptionService(students, subs)

	require.NoError(t, svc.Cancel(context.Background(), "PASS000001"))
	// Second cancel finds no active row and still succeeds.
	require.NoError(t, svc.Cancel(context.Background(), "PASS000001"))
	subs.AssertExpectations(t)
}

func TestCancelUnknownStudent(t *testing.T) {
	students := new(MockStudentRepository)
	students.On("GetByMessPass", "PASS999999").Return(nil, pgx.ErrNoRows)

	svc := newSubscriptionService(students, new(MockSubscriptionRepository))
	err := svc.Cancel(context.Background(), "PASS999999")

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "STUDENT_NOT_FOUND", domainErr.Code)
}
