package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/mess-service/internal/domain"
	"github.com/spec-kit/mess-service/internal/service"
	apperrors "github.com/spec-kit/mess-service/pkg/util/errorutil"
)

func newOrderService(students *MockStudentRepository, orders *MockOrderRepository, preorders *MockPreorderRepository, names *MockMenuNames) *service.OrderService {
	return service.NewOrderService(service.OrderDependencies{
		StudentRepo:  students,
		OrderRepo:    orders,
		PreorderRepo: preorders,
		Menu:         names,
	})
}

func TestPlacePayAtCounterSkipsIdentityCheck(t *testing.T) {
	students := new(MockStudentRepository)
	orders := new(MockOrderRepository)
	preorders := new(MockPreorderRepository)

	orders.On("Create", mock.AnythingOfType("*domain.Order")).Run(func(args mock.Arguments) {
		order := args.Get(0).(*domain.Order)
		assert.Nil(t, order.MessPass)
		order.ID = 7
	}).Return(nil).Once()

	svc := newOrderService(students, orders, preorders, new(MockMenuNames))
	result, err := svc.Place(context.Background(), service.PlaceOrderInput{
		Items:        `[{"menu_item_id":1,"quantity":2}]`,
		Name:         "Walk In",
		MessPass:     "does-not-matter",
		PayAtCounter: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "Order placed, pay at the counter.", result.Message)
	students.AssertNotCalled(t, "GetByMessPass", mock.Anything)
	orders.AssertExpectations(t)
}

func TestPlaceRejectsUnknownMessPass(t *testing.T) {
	students := new(MockStudentRepository)
	students.On("GetByMessPass", "PASS999999").Return(nil, pgx.ErrNoRows)
	orders := new(MockOrderRepository)
	preorders := new(MockPreorderRepository)

	svc := newOrderService(students, orders, preorders, new(MockMenuNames))
	_, err := svc.Place(context.Background(), service.PlaceOrderInput{
		Items:    `[]`,
		Name:     "Alice",
		MessPass: "PASS999999",
	})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_MESS_PASS", domainErr.Code)
	orders.AssertNotCalled(t, "Create", mock.Anything)
	preorders.AssertNotCalled(t, "Create", mock.Anything)
}

func TestPlacePreorderGoesToWorkflow(t *testing.T) {
	students := new(MockStudentRepository)
	students.On("GetByMessPass", "PASS000001").Return(&domain.Student{
		ID: 1, Enrollment: "e1", MessPass: "PASS000001",
	}, nil)
	orders := new(MockOrderRepository)
	preorders := new(MockPreorderRepository)
	preorders.On("Create", mock.AnythingOfType("*domain.Preorder")).Run(func(args mock.Arguments) {
		preorder := args.Get(0).(*domain.Preorder)
		assert.Equal(t, "e1", preorder.Enrollment)
		assert.Equal(t, domain.PreorderStatusPending, preorder.Status)
		assert.Equal(t, "lunch", preorder.Category)
		preorder.ID = 3
	}).Return(nil).Once()

	svc := newOrderService(students, orders, preorders, new(MockMenuNames))
	result, err := svc.Place(context.Background(), service.PlaceOrderInput{
		Items:    `[{"menu_item_id":2,"quantity":1}]`,
		Name:     "Alice",
		MessPass: "PASS000001",
		Preorder: true,
		Category: "lunch",
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", result.Status)
	orders.AssertNotCalled(t, "Create", mock.Anything)
	preorders.AssertExpectations(t)
}

func TestPlacePreorderDefaultsCategory(t *testing.T) {
	students := new(MockStudentRepository)
	students.On("GetByMessPass", "PASS000001").Return(&domain.Student{
		ID: 1, Enrollment: "e1", MessPass: "PASS000001",
	}, nil)
	preorders := new(MockPreorderRepository)
	preorders.On("Create", mock.AnythingOfType("*domain.Preorder")).Run(func(args mock.Arguments) {
		assert.Equal(t, "Unknown", args.Get(0).(*domain.Preorder).Category)
	}).Return(nil).Once()

	svc := newOrderService(students, new(MockOrderRepository), preorders, new(MockMenuNames))
	_, err := svc.Place(context.Background(), service.PlaceOrderInput{
		Items:    `[]`,
		Name:     "Alice",
		MessPass: "PASS000001",
		Preorder: true,
	})

	require.NoError(t, err)
	preorders.AssertExpectations(t)
}

func TestPlaceImmediateOrder(t *testing.T) {
	students := new(MockStudentRepository)
	students.On("GetByMessPass", "PASS000001").Return(&domain.Student{
		ID: 1, Enrollment: "e1", MessPass: "PASS000001",
	}, nil)
	orders := new(MockOrderRepository)
	orders.On("Create", mock.AnythingOfType("*domain.Order")).Run(func(args mock.Arguments) {
		order := args.Get(0).(*domain.Order)
		require.NotNil(t, order.MessPass)
		assert.Equal(t, "PASS000001", *order.MessPass)
		order.ID = 9
	}).Return(nil).Once()

	svc := newOrderService(students, orders, new(MockPreorderRepository), new(MockMenuNames))
	result, err := svc.Place(context.Background(), service.PlaceOrderInput{
		Items:    `[{"menu_item_id":1,"quantity":1}]`,
		Name:     "Alice",
		MessPass: "PASS000001",
	})

	require.NoError(t, err)
	assert.Equal(t, "success", result.Status)
	assert.Empty(t, result.Message)
	orders.AssertExpectations(t)
}

func TestHistoryRendersItemsAndMergesApprovedPreorders(t *testing.T) {
	messPass := "PASS000001"
	created := time.Now()

	students := new(MockStudentRepository)
	students.On("GetByMessPass", messPass).Return(&domain.Student{
		ID: 1, Enrollment: "e1", MessPass: messPass,
	}, nil)

	orders := new(MockOrderRepository)
	orders.On("ListByMessPass", messPass).Return([]domain.Order{
		{ID: 2, Items: `[{"menu_item_id":1,"quantity":2}]`, Name: "Alice", MessPass: &messPass, CreatedAt: created},
	}, nil)

	preorders := new(MockPreorderRepository)
	preorders.On("ListApprovedByEnrollment", "e1").Return([]domain.Preorder{
		{ID: 5, Items: `not json`, Name: "Alice", Status: domain.PreorderStatusApproved, CreatedAt: created},
	}, nil)

	names := new(MockMenuNames)
	names.On("ItemNames").Return(map[int]string{1: "Masala Dosa"}, nil)

	svc := newOrderService(students, orders, preorders, names)
	history, err := svc.HistoryFor(context.Background(), messPass)

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2x Masala Dosa", history[0].Items)
	assert.Equal(t, "order", history[0].Type)
	assert.Equal(t, "not json", history[1].Items)
	assert.Equal(t, "preorder", history[1].Type)
	require.NotNil(t, history[1].MessPass)
	assert.Equal(t, messPass, *history[1].MessPass)
}

func TestHistoryForUnknownMessPassListsRawOrders(t *testing.T) {
	students := new(MockStudentRepository)
	students.On("GetByMessPass", "PASS999999").Return(nil, pgx.ErrNoRows)
	orders := new(MockOrderRepository)
	orders.On("ListByMessPass", "PASS999999").Return([]domain.Order{}, nil)
	names := new(MockMenuNames)
	names.On("ItemNames").Return(map[int]string{}, nil)

	svc := newOrderService(students, orders, new(MockPreorderRepository), names)
	history, err := svc.HistoryFor(context.Background(), "PASS999999")

	require.NoError(t, err)
	assert.Empty(t, history)
}
