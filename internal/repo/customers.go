package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erikm/ecommerce-orders/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var customerColumns = []string{"customer_id", "email", "first_name", "last_name"}

type customersRepo struct {
	base
}

func NewCustomersRepo(db *sqlx.DB) *customersRepo {
	return &customersRepo{base: newBase(db)}
}

func (r *customersRepo) CustomerByEmail(ctx context.Context, email string) (entities.Customer, error) {
	query, args := r.qb.Select(customerColumns...).
		From("customers").
		Where(sq.Eq{"email": email}).
		MustSql()

	return r.getCustomer(ctx, query, args)
}

func (r *customersRepo) CustomerByID(ctx context.Context, customerID string) (entities.Customer, error) {
	query, args := r.qb.Select(customerColumns...).
		From("customers").
		Where(sq.Eq{"customer_id": customerID}).
		MustSql()

	return r.getCustomer(ctx, query, args)
}

func (r *customersRepo) getCustomer(ctx context.Context, query string, args []any) (entities.Customer, error) {
	var customer Customer
	err := r.getContext(ctx, &customer, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return CustomerToEntity(customer), nil
}
