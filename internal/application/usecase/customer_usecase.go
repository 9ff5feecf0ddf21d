package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cmedia-api/internal/application/dto"
	"github.com/jhoicas/cmedia-api/internal/domain"
	"github.com/jhoicas/cmedia-api/internal/domain/entity"
	"github.com/jhoicas/cmedia-api/internal/domain/repository"
)

// CustomerUseCase alta y consulta de clientes.
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// Create registra un cliente. Email duplicado -> domain.ErrDuplicate.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	customer := &entity.Customer{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	return uc.customers.Create(customer)
}

// GetByID obtiene un cliente sin credenciales. Devuelve ErrNotFound si no existe.
func (uc *CustomerUseCase) GetByID(id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CustomerResponse{
		CustomerID:  customer.ID,
		FullName:    customer.FullName,
		Email:       customer.Email,
		CompanyName: customer.CompanyName,
		Phone:       customer.Phone,
		CreatedAt:   customer.CreatedAt,
	}, nil
}
