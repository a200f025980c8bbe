package queries

import (
	"context"
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGetCustomersQueryIsNotConstructed = errors.New(
		"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
	)
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
)

type CustomerView struct {
	ID        kernel.UUID `json:"id"`
	FullName  string      `json:"fullName"`
	Email     string      `json:"email"`
	CreatedAt time.Time   `json:"createdAt"`
}

// GetCustomersQuery lists all customers sorted by full name.
type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// GetCustomerQuery reads one customer by id.
type GetCustomerQuery struct {
	customerID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetCustomerQuery(customerID kernel.UUID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, errs.NewValueIsRequiredError("customerID")
	}
	return GetCustomerQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerQueryHandler serves both customer queries.
type CustomerQueryHandler struct {
	db *gorm.DB
}

func NewCustomerQueryHandler(db *gorm.DB) CustomerQueryHandler {
	return CustomerQueryHandler{db: db}
}

func (h CustomerQueryHandler) HandleList(ctx context.Context, query GetCustomersQuery) ([]CustomerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.load(ctx, "", nil)
}

// HandleOne returns nil when the customer does not exist.
func (h CustomerQueryHandler) HandleOne(ctx context.Context, query GetCustomerQuery) (*CustomerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers, err := h.load(ctx, "WHERE id = ?", []any{query.CustomerID().String()})
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, nil
	}
	return &customers[0], nil
}

func (h CustomerQueryHandler) load(ctx context.Context, filter string, args []any) ([]CustomerView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			email,
			created_at
		FROM customers
		`+filter+`
		ORDER BY full_name, id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]CustomerView, 0)
	for rows.Next() {
		var (
			view CustomerView
			id   uuid.UUID
		)
		if err = rows.Scan(&id, &view.FullName, &view.Email, &view.CreatedAt); err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = customerID
		view.CreatedAt = view.CreatedAt.UTC()
		customers = append(customers, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}
