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

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación de StaffRepository (usable con pool o tx).
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

// Create persiste un miembro del staff y devuelve su staff_id.
func (r *StaffRepo) Create(staff *entity.Staff) (int64, error) {
	query := `
		INSERT INTO staff (full_name, email, password_hash, role_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING staff_id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		staff.FullName, staff.Email, staff.PasswordHash, staff.RoleID, staff.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert staff: %w", err)
	}
	return id, nil
}

// GetByID obtiene un miembro del staff. Devuelve nil, nil si no existe.
func (r *StaffRepo) GetByID(id int64) (*entity.Staff, error) {
	query := `
		SELECT staff_id, full_name, email, password_hash, role_id, created_at
		FROM staff WHERE staff_id = $1`
	var s entity.Staff
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.FullName, &s.Email, &s.PasswordHash, &s.RoleID, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return &s, nil
}

// FindByEmail busca un miembro del staff por email. Devuelve nil, nil si no existe.
func (r *StaffRepo) FindByEmail(email string) (*entity.Staff, error) {
	query := `
		SELECT staff_id, full_name, email, password_hash, role_id, created_at
		FROM staff WHERE email = $1`
	var s entity.Staff
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&s.ID, &s.FullName, &s.Email, &s.PasswordHash, &s.RoleID, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find staff by email: %w", err)
	}
	return &s, nil
}

// List devuelve todo el staff.
func (r *StaffRepo) List() ([]*entity.Staff, error) {
	query := `
		SELECT staff_id, full_name, email, password_hash, role_id, created_at
		FROM staff ORDER BY staff_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	var list []*entity.Staff
	for rows.Next() {
		var s entity.Staff
		if err := rows.Scan(&s.ID, &s.FullName, &s.Email, &s.PasswordHash, &s.RoleID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza nombre, email y rol. Devuelve ErrNotFound si no existe.
func (r *StaffRepo) Update(staff *entity.Staff) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE staff SET full_name = $2, email = $3, role_id = $4 WHERE staff_id = $1`,
		staff.ID, staff.FullName, staff.Email, staff.RoleID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un miembro del staff. Devuelve ErrNotFound si no existe.
func (r *StaffRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM staff WHERE staff_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListRoles devuelve los roles disponibles.
func (r *StaffRepo) ListRoles() ([]*entity.Role, error) {
	rows, err := r.q.Query(context.Background(), `SELECT role_id, role_name FROM roles ORDER BY role_id`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}
