package dto

import "time"

// RegisterRequest registro de un cliente. Mantiene los nombres snake_case que ya
// envía el frontend de registro.
type RegisterRequest struct {
	FullName    string  `json:"full_name" validate:"required,min=3"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	CompanyName *string `json:"company_name"`
	Phone       *string `json:"phone"`
}

// RegisterResponse salida del registro.
type RegisterResponse struct {
	Message    string `json:"message"`
	CustomerID int64  `json:"customerId"`
}

// LoginRequest credenciales de login (clientes y staff comparten endpoint).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse usuario autenticado, sin hash. Según el tipo se llenan los campos
// de cliente (customer_id, company_name, phone) o de staff (staff_id, role_id).
type UserResponse struct {
	CustomerID  *int64  `json:"customer_id,omitempty"`
	StaffID     *int64  `json:"staff_id,omitempty"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	CompanyName *string `json:"company_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	RoleID      *int64  `json:"role_id,omitempty"`
	UserType    string  `json:"userType"`
}

// LoginResponse salida del login con token JWT.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// StaffResponse miembro del staff (gestión administrativa).
type StaffResponse struct {
	StaffID   int64     `json:"staff_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	RoleID    int64     `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateStaffRequest actualización de un miembro del staff.
type UpdateStaffRequest struct {
	FullName string `json:"full_name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	RoleID   int64  `json:"role_id" validate:"required"`
}

// RoleResponse rol del staff.
type RoleResponse struct {
	RoleID   int64  `json:"role_id"`
	RoleName string `json:"role_name"`
}
