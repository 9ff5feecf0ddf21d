package repository

import "github.com/jhoicas/cmedia-api/internal/domain/entity"

// StaffRepository define el puerto de persistencia para Staff y sus roles.
type StaffRepository interface {
	Create(staff *entity.Staff) (int64, error)
	GetByID(id int64) (*entity.Staff, error)
	// FindByEmail devuelve nil, nil si el email no existe.
	FindByEmail(email string) (*entity.Staff, error)
	List() ([]*entity.Staff, error)
	Update(staff *entity.Staff) error
	Delete(id int64) error
	ListRoles() ([]*entity.Role, error)
}
