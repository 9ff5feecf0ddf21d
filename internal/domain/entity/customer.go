package entity

import "time"

// Customer cliente del proveedor de servicios. Espacio de identidad separado de Staff.
type Customer struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	CompanyName  *string
	Phone        *string
	CreatedAt    time.Time
}

// SiteLocation sede de instalación de un cliente (opcional en suscripciones).
type SiteLocation struct {
	ID         int64
	CustomerID int64
	Name       string
	Address    *string
	CreatedAt  time.Time
}
