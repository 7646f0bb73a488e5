package membership

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/OmarZuritaEC/vitalgym/internal/customer"
	"github.com/OmarZuritaEC/vitalgym/internal/payment"
	"github.com/OmarZuritaEC/vitalgym/internal/user"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) TypeByID(ctx context.Context, id int) (*MembershipType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MembershipType), args.Error(1)
}

func (m *MockRepository) TypeExists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListTypes(ctx context.Context) ([]MembershipType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]MembershipType), args.Error(1)
}

func (m *MockRepository) CreateType(ctx context.Context, name string, price int64) (*MembershipType, error) {
	args := m.Called(ctx, name, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MembershipType), args.Error(1)
}

func (m *MockRepository) DeleteType(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) CreateOrder(ctx context.Context, order NewOrder) (*Membership, *payment.Payment, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*Membership), args.Get(1).(*payment.Payment), args.Error(2)
}

func (m *MockRepository) FindEndingOn(ctx context.Context, day time.Time) ([]ExpiringMembership, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ExpiringMembership), args.Error(1)
}

type mockCustomerReader struct {
	mock.Mock
}

func (m *mockCustomerReader) FindByID(ctx context.Context, id int) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendMembershipConfirmation(ctx context.Context, to, name, membershipType string, dateStart, dateEnd time.Time, totalDays int, totalPriceCents int64) error {
	args := m.Called(ctx, to, name, membershipType, dateStart, dateEnd, totalDays, totalPriceCents)
	return args.Error(0)
}

func (m *mockNotifier) SendMembershipExpired(ctx context.Context, to, name string, dateEnd time.Time) error {
	args := m.Called(ctx, to, name, dateEnd)
	return args.Error(0)
}

func testOrderInput() OrderInput {
	return OrderInput{
		DateStart:          time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		DateEnd:            time.Date(2026, 9, 27, 0, 0, 0, 0, time.UTC),
		TotalDays:          30,
		MembershipTypeID:   1,
		CustomerID:         7,
		MembershipQuantity: 2,
	}
}

func testActingUser() *user.User {
	return &user.User{ID: 3, Name: "Omar", LastName: "Andrade", Email: "omar@vitalgym.ec", Role: "admin"}
}

func testCustomer() *customer.Customer {
	return &customer.Customer{
		ID:       7,
		UserID:   12,
		Name:     "John",
		LastName: "Doe",
		Email:    "john@example.com",
	}
}

func TestCreateOrder_Success(t *testing.T) {
	repo := new(MockRepository)
	customers := new(mockCustomerReader)
	notifier := new(mockNotifier)
	svc := NewService(repo, customers, notifier)

	in := testOrderInput()
	monthly := &MembershipType{ID: 1, Name: "Monthly", Price: 3000}

	customers.On("FindByID", mock.Anything, 7).Return(testCustomer(), nil)
	repo.On("TypeByID", mock.Anything, 1).Return(monthly, nil)
	repo.On("CreateOrder", mock.Anything, NewOrder{
		CustomerID:         7,
		MembershipTypeID:   1,
		DateStart:          in.DateStart,
		DateEnd:            in.DateEnd,
		TotalDays:          30,
		MembershipQuantity: 2,
		TotalPrice:         6000,
		CreatedByUserID:    3,
	}).Return(
		&Membership{ID: 42, CustomerID: 7, MembershipTypeID: 1, DateStart: in.DateStart, DateEnd: in.DateEnd, TotalDays: 30},
		&payment.Payment{ID: 9, MembershipID: 42, CustomerID: 7, UserID: 3, MembershipQuantity: 2, TotalPrice: 6000},
		nil,
	)
	notifier.On("SendMembershipConfirmation",
		mock.Anything, "john@example.com", "John", "Monthly",
		in.DateStart, in.DateEnd, 30, int64(6000),
	).Return(nil)

	result, err := svc.CreateOrder(context.Background(), in, testActingUser())

	require.NoError(t, err)
	assert.Equal(t, 42, result.ID)
	assert.Equal(t, "2026-08-28", result.DateStart)
	assert.Equal(t, "2026-09-27", result.DateEnd)
	assert.Equal(t, 30, result.TotalDays)
	assert.Equal(t, "Monthly", result.Name)
	assert.Equal(t, int64(3000), result.UnitPrice)
	assert.Equal(t, int64(6000), result.TotalPrice)
	assert.Equal(t, 2, result.MembershipQuantity)
	assert.Equal(t, "Omar Andrade", result.CreatedBy)
	assert.Equal(t, OrderCustomer{Name: "John", LastName: "Doe", Email: "john@example.com"}, result.Customer)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateOrder_CustomerNotFound(t *testing.T) {
	repo := new(MockRepository)
	customers := new(mockCustomerReader)
	notifier := new(mockNotifier)
	svc := NewService(repo, customers, notifier)

	customers.On("FindByID", mock.Anything, 7).Return(nil, sql.ErrNoRows)

	result, err := svc.CreateOrder(context.Background(), testOrderInput(), testActingUser())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "SendMembershipConfirmation",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrder_MembershipTypeNotFound(t *testing.T) {
	repo := new(MockRepository)
	customers := new(mockCustomerReader)
	notifier := new(mockNotifier)
	svc := NewService(repo, customers, notifier)

	customers.On("FindByID", mock.Anything, 7).Return(testCustomer(), nil)
	repo.On("TypeByID", mock.Anything, 1).Return(nil, sql.ErrNoRows)

	result, err := svc.CreateOrder(context.Background(), testOrderInput(), testActingUser())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrMembershipTypeNotFound)
	repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrder_RepositoryFailureSkipsEmail(t *testing.T) {
	repo := new(MockRepository)
	customers := new(mockCustomerReader)
	notifier := new(mockNotifier)
	svc := NewService(repo, customers, notifier)

	customers.On("FindByID", mock.Anything, 7).Return(testCustomer(), nil)
	repo.On("TypeByID", mock.Anything, 1).Return(&MembershipType{ID: 1, Name: "Monthly", Price: 3000}, nil)
	repo.On("CreateOrder", mock.Anything, mock.AnythingOfType("membership.NewOrder")).
		Return(nil, nil, assert.AnError)

	result, err := svc.CreateOrder(context.Background(), testOrderInput(), testActingUser())

	assert.Nil(t, result)
	require.Error(t, err)
	notifier.AssertNotCalled(t, "SendMembershipConfirmation",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrder_EmailFailureDoesNotFailOrder(t *testing.T) {
	repo := new(MockRepository)
	customers := new(mockCustomerReader)
	notifier := new(mockNotifier)
	svc := NewService(repo, customers, notifier)

	in := testOrderInput()
	customers.On("FindByID", mock.Anything, 7).Return(testCustomer(), nil)
	repo.On("TypeByID", mock.Anything, 1).Return(&MembershipType{ID: 1, Name: "Monthly", Price: 3000}, nil)
	repo.On("CreateOrder", mock.Anything, mock.AnythingOfType("membership.NewOrder")).Return(
		&Membership{ID: 42, CustomerID: 7, MembershipTypeID: 1, DateStart: in.DateStart, DateEnd: in.DateEnd, TotalDays: 30},
		&payment.Payment{ID: 9, MembershipID: 42, CustomerID: 7, UserID: 3, MembershipQuantity: 2, TotalPrice: 6000},
		nil,
	)
	notifier.On("SendMembershipConfirmation",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything,
	).Return(assert.AnError)

	result, err := svc.CreateOrder(context.Background(), in, testActingUser())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(6000), result.TotalPrice)
}
