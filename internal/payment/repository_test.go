package payment

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewRepository(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func paymentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "membership_id", "customer_id", "user_id",
		"membership_quantity", "total_price", "created_at",
		"customer_name", "created_by",
	})
}

func TestListByCustomer(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.customer_id = $1`)).
		WithArgs(7).
		WillReturnRows(paymentRows().
			AddRow(9, 42, 7, 3, 2, 6000, time.Now(), "John Doe", "Omar Andrade").
			AddRow(5, 31, 7, 3, 1, 3000, time.Now(), "John Doe", "Omar Andrade"))

	payments, err := repo.ListByCustomer(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, 9, payments[0].ID)
	assert.Equal(t, "John Doe", payments[0].CustomerName)
	assert.Equal(t, "Omar Andrade", payments[0].CreatedBy)
	assert.Equal(t, int64(3000), payments[1].TotalPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByCustomer_NoPayments(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.customer_id = $1`)).
		WithArgs(7).
		WillReturnRows(paymentRows())

	payments, err := repo.ListByCustomer(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestListRecent(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`LIMIT $1`)).
		WithArgs(50).
		WillReturnRows(paymentRows().
			AddRow(9, 42, 7, 3, 2, 6000, time.Now(), "John Doe", "Omar Andrade"))

	payments, err := repo.ListRecent(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "60.00", payments[0].TotalPriceInDollars())
	assert.NoError(t, mock.ExpectationsWereMet())
}
