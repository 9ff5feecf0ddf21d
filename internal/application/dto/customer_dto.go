package dto

import "time"

// CreateCustomerRequest alta de cliente vía /customers (el formulario usa camelCase).
type CreateCustomerRequest struct {
	FullName string `json:"fullName" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// CreateCustomerResponse salida del alta de cliente.
type CreateCustomerResponse struct {
	Message    string `json:"message"`
	CustomerID int64  `json:"customerId"`
}

// CustomerResponse cliente sin credenciales.
type CustomerResponse struct {
	CustomerID  int64     `json:"customer_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	CompanyName *string   `json:"company_name,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
