package membership

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/OmarZuritaEC/vitalgym/internal/customer"
	"github.com/OmarZuritaEC/vitalgym/internal/logger"
	"github.com/OmarZuritaEC/vitalgym/internal/metrics"
	"github.com/OmarZuritaEC/vitalgym/internal/pricing"
	"github.com/OmarZuritaEC/vitalgym/internal/user"
)

var (
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrMembershipTypeNotFound = errors.New("membership type not found")
)

// CustomerReader loads the customer a membership is sold to, including the
// contact details joined from the owning user account.
type CustomerReader interface {
	FindByID(ctx context.Context, id int) (*customer.Customer, error)
}

// Notifier delivers customer-facing membership messages. Delivery is
// fire-and-forget from the service's point of view.
type Notifier interface {
	SendMembershipConfirmation(ctx context.Context, to, name, membershipType string, dateStart, dateEnd time.Time, totalDays int, totalPriceCents int64) error
	SendMembershipExpired(ctx context.Context, to, name string, dateEnd time.Time) error
}

type Service interface {
	CreateOrder(ctx context.Context, in OrderInput, actingUser *user.User) (*OrderResult, error)
}

type service struct {
	repo      Repository
	customers CustomerReader
	notifier  Notifier
}

func NewService(repo Repository, customers CustomerReader, notifier Notifier) Service {
	return &service{
		repo:      repo,
		customers: customers,
		notifier:  notifier,
	}
}

// CreateOrder persists a membership and its payment as a unit and queues the
// confirmation email. The caller is expected to have validated the input;
// the existence checks here only guard referential integrity.
func (s *service) CreateOrder(ctx context.Context, in OrderInput, actingUser *user.User) (*OrderResult, error) {
	cust, err := s.customers.FindByID(ctx, in.CustomerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	membershipType, err := s.repo.TypeByID(ctx, in.MembershipTypeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMembershipTypeNotFound
		}
		return nil, fmt.Errorf("failed to load membership type: %w", err)
	}

	totalPrice := pricing.OrderTotal(membershipType.Price, in.MembershipQuantity)

	m, p, err := s.repo.CreateOrder(ctx, NewOrder{
		CustomerID:         in.CustomerID,
		MembershipTypeID:   in.MembershipTypeID,
		DateStart:          in.DateStart,
		DateEnd:            in.DateEnd,
		TotalDays:          in.TotalDays,
		MembershipQuantity: in.MembershipQuantity,
		TotalPrice:         totalPrice,
		CreatedByUserID:    actingUser.ID,
	})
	if err != nil {
		return nil, err
	}

	// The confirmation goes out after the transaction committed, so a mail
	// outage can never roll back a recorded payment.
	if err := s.notifier.SendMembershipConfirmation(
		ctx, cust.Email, cust.Name, membershipType.Name,
		m.DateStart, m.DateEnd, m.TotalDays, totalPrice,
	); err != nil {
		logger.Error("Failed to queue membership confirmation",
			"customer_id", cust.ID,
			"membership_id", m.ID,
			"error", err,
		)
	}

	metrics.RecordMembershipOrder(membershipType.Name, totalPrice)
	logger.Info("Membership order created",
		"membership_id", m.ID,
		"payment_id", p.ID,
		"customer_id", cust.ID,
		"total_price", totalPrice,
	)

	return &OrderResult{
		ID:                 m.ID,
		DateStart:          m.DateStart.Format(dateLayout),
		DateEnd:            m.DateEnd.Format(dateLayout),
		TotalDays:          m.TotalDays,
		Name:               membershipType.Name,
		UnitPrice:          membershipType.Price,
		TotalPrice:         p.TotalPrice,
		MembershipQuantity: p.MembershipQuantity,
		CreatedBy:          actingUser.FullName(),
		Customer: OrderCustomer{
			Name:     cust.Name,
			LastName: cust.LastName,
			Email:    cust.Email,
		},
	}, nil
}
