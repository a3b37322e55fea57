package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/mess-service/internal/domain"
)

// Mock implementations of the repository interfaces.

type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(ctx context.Context, student *domain.Student) error {
	args := m.Called(student)
	return args.Error(0)
}

func (m *MockStudentRepository) GetByEnrollment(ctx context.Context, enrollment string) (*domain.Student, error) {
	args := m.Called(enrollment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentRepository) GetByMessPass(ctx context.Context, messPass string) (*domain.Student, error) {
	args := m.Called(messPass)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentRepository) ListWithSubscription(ctx context.Context) ([]domain.StudentOverview, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StudentOverview), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) ListByMessPass(ctx context.Context, messPass string) ([]domain.Order, error) {
	args := m.Called(messPass)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

type MockPreorderRepository struct {
	mock.Mock
}

func (m *MockPreorderRepository) Create(ctx context.Context, preorder *domain.Preorder) error {
	args := m.Called(preorder)
	return args.Error(0)
}

func (m *MockPreorderRepository) Approve(ctx context.Context, id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPreorderRepository) Reject(ctx context.Context, id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPreorderRepository) ListAll(ctx context.Context) ([]domain.Preorder, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Preorder), args.Error(1)
}

func (m *MockPreorderRepository) ListByEnrollment(ctx context.Context, enrollment string) ([]domain.Preorder, error) {
	args := m.Called(enrollment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Preorder), args.Error(1)
}

func (m *MockPreorderRepository) ListApprovedByEnrollment(ctx context.Context, enrollment string) ([]domain.Preorder, error) {
	args := m.Called(enrollment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Preorder), args.Error(1)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	args := m.Called(sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) LatestByStudent(ctx context.Context, studentID int64) (*domain.Subscription, error) {
	args := m.Called(studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) CancelLatestActive(ctx context.Context, studentID int64) (bool, error) {
	args := m.Called(studentID)
	return args.Bool(0), args.Error(1)
}

type MockMenuNames struct {
	mock.Mock
}

func (m *MockMenuNames) ItemNames(ctx context.Context) (map[int]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]string), args.Error(1)
}
