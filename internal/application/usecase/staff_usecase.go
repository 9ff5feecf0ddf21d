package usecase

import (
	"github.com/jhoicas/cmedia-api/internal/application/dto"
	"github.com/jhoicas/cmedia-api/internal/domain"
	"github.com/jhoicas/cmedia-api/internal/domain/entity"
	"github.com/jhoicas/cmedia-api/internal/domain/repository"
)

// StaffUseCase gestión administrativa del staff y sus roles.
type StaffUseCase struct {
	staff repository.StaffRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(staff repository.StaffRepository) *StaffUseCase {
	return &StaffUseCase{staff: staff}
}

// List devuelve todo el staff.
func (uc *StaffUseCase) List() ([]*dto.StaffResponse, error) {
	list, err := uc.staff.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StaffResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toStaffResponse(s))
	}
	return out, nil
}

// GetByID obtiene un miembro del staff. Devuelve ErrNotFound si no existe.
func (uc *StaffUseCase) GetByID(id int64) (*dto.StaffResponse, error) {
	s, err := uc.staff.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toStaffResponse(s), nil
}

// Update actualiza nombre, email y rol de un miembro del staff.
func (uc *StaffUseCase) Update(id int64, in dto.UpdateStaffRequest) error {
	return uc.staff.Update(&entity.Staff{
		ID:       id,
		FullName: in.FullName,
		Email:    in.Email,
		RoleID:   in.RoleID,
	})
}

// Delete elimina un miembro del staff.
func (uc *StaffUseCase) Delete(id int64) error {
	return uc.staff.Delete(id)
}

// ListRoles devuelve los roles disponibles.
func (uc *StaffUseCase) ListRoles() ([]*dto.RoleResponse, error) {
	roles, err := uc.staff.ListRoles()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, &dto.RoleResponse{RoleID: r.ID, RoleName: r.Name})
	}
	return out, nil
}

func toStaffResponse(s *entity.Staff) *dto.StaffResponse {
	return &dto.StaffResponse{
		StaffID:   s.ID,
		FullName:  s.FullName,
		Email:     s.Email,
		RoleID:    s.RoleID,
		CreatedAt: s.CreatedAt,
	}
}
