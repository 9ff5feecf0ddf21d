package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cmedia-api/internal/domain"
	"github.com/jhoicas/cmedia-api/internal/domain/entity"
	"github.com/jhoicas/cmedia-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente y devuelve su customer_id.
// Email duplicado -> domain.ErrDuplicate.
func (r *CustomerRepo) Create(customer *entity.Customer) (int64, error) {
	query := `
		INSERT INTO customers (full_name, email, password_hash, company_name, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING customer_id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		customer.FullName, customer.Email, customer.PasswordHash,
		customer.CompanyName, customer.Phone, customer.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	return id, nil
}

// GetByID obtiene un cliente por ID. Devuelve nil, nil si no existe.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	query := `
		SELECT customer_id, full_name, email, password_hash, company_name, phone, created_at
		FROM customers WHERE customer_id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.FullName, &c.Email, &c.PasswordHash, &c.CompanyName, &c.Phone, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// FindByEmail busca un cliente por email. Devuelve nil, nil si no existe.
func (r *CustomerRepo) FindByEmail(email string) (*entity.Customer, error) {
	query := `
		SELECT customer_id, full_name, email, password_hash, company_name, phone, created_at
		FROM customers WHERE email = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&c.ID, &c.FullName, &c.Email, &c.PasswordHash, &c.CompanyName, &c.Phone, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find customer by email: %w", err)
	}
	return &c, nil
}
