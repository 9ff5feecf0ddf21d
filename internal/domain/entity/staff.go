package entity

import "time"

// Staff usuario interno (soporte, administración). Identidad disjunta de Customer:
// el login revisa customers primero y staff después.
type Staff struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	RoleID       int64
	CreatedAt    time.Time
}

// Role rol de un miembro del staff.
type Role struct {
	ID   int64
	Name string
}
