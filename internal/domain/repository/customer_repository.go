package repository

import "github.com/jhoicas/cmedia-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) (int64, error)
	GetByID(id int64) (*entity.Customer, error)
	// FindByEmail devuelve nil, nil si el email no existe.
	FindByEmail(email string) (*entity.Customer, error)
}
