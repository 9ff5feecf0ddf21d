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

var _ repository.ServicePlanRepository = (*ServicePlanRepo)(nil)

// ServicePlanRepo implementación de ServicePlanRepository (usable con pool o tx).
type ServicePlanRepo struct {
	q Querier
}

// NewServicePlanRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServicePlanRepository(q Querier) *ServicePlanRepo {
	return &ServicePlanRepo{q: q}
}

// Create persiste un plan y devuelve el plan_id generado.
func (r *ServicePlanRepo) Create(plan *entity.ServicePlan) (int64, error) {
	query := `
		INSERT INTO service_plans (service_type_id, name, description, monthly_fee, currency,
			is_active, sla_id, attributes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING plan_id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		plan.ServiceTypeID, plan.Name, plan.Description, plan.MonthlyFee, plan.Currency,
		plan.IsActive, plan.SLAID, plan.Attributes, plan.CreatedAt, plan.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert service plan: %w", err)
	}
	return id, nil
}

// GetByID obtiene un plan con tipo de servicio y SLA unidos. Devuelve nil, nil si no existe.
func (r *ServicePlanRepo) GetByID(id int64) (*entity.ServicePlanDetail, error) {
	query := `
		SELECT sp.plan_id, sp.service_type_id, sp.name, sp.description, sp.monthly_fee,
			sp.currency, sp.is_active, sp.sla_id, sp.attributes, sp.created_at, sp.updated_at,
			st.code, st.name, s.name, s.availability_target
		FROM service_plans sp
		JOIN service_types st ON st.service_type_id = sp.service_type_id
		LEFT JOIN slas s ON s.sla_id = sp.sla_id
		WHERE sp.plan_id = $1`
	var d entity.ServicePlanDetail
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.ServiceTypeID, &d.Name, &d.Description, &d.MonthlyFee,
		&d.Currency, &d.IsActive, &d.SLAID, &d.Attributes, &d.CreatedAt, &d.UpdatedAt,
		&d.ServiceTypeCode, &d.ServiceTypeName, &d.SLAName, &d.SLAAvailability,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service plan: %w", err)
	}
	return &d, nil
}

// List lista planes con filtros opcionales, ordenados por tarifa mensual ascendente.
func (r *ServicePlanRepo) List(filter repository.ServicePlanFilter) ([]*entity.ServicePlan, error) {
	query := `
		SELECT plan_id, service_type_id, name, description, monthly_fee, currency,
			is_active, sla_id, attributes, created_at, updated_at
		FROM service_plans WHERE 1=1`
	var args []any
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		query += fmt.Sprintf(" AND is_active = $%d", len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		query += fmt.Sprintf(" AND monthly_fee <= $%d", len(args))
	}
	query += " ORDER BY monthly_fee ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list service plans: %w", err)
	}
	defer rows.Close()

	var list []*entity.ServicePlan
	for rows.Next() {
		var p entity.ServicePlan
		if err := rows.Scan(
			&p.ID, &p.ServiceTypeID, &p.Name, &p.Description, &p.MonthlyFee, &p.Currency,
			&p.IsActive, &p.SLAID, &p.Attributes, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan service plan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// FindByLegacyPackageID busca el plan cuyos attributes contienen el legacy_package_id dado.
// La unicidad no está garantizada en el modelo: gana la primera coincidencia por plan_id.
func (r *ServicePlanRepo) FindByLegacyPackageID(packageID int64) (*entity.ServicePlan, error) {
	query := `
		SELECT plan_id, service_type_id, name, description, monthly_fee, currency,
			is_active, sla_id, attributes, created_at, updated_at
		FROM service_plans
		WHERE attributes @> jsonb_build_object('legacy_package_id', $1::bigint)
		ORDER BY plan_id
		LIMIT 1`
	var p entity.ServicePlan
	err := r.q.QueryRow(context.Background(), query, packageID).Scan(
		&p.ID, &p.ServiceTypeID, &p.Name, &p.Description, &p.MonthlyFee, &p.Currency,
		&p.IsActive, &p.SLAID, &p.Attributes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find plan by legacy package: %w", err)
	}
	return &p, nil
}

// Update escribe todos los campos mutables del plan. Devuelve ErrNotFound si no existe.
func (r *ServicePlanRepo) Update(plan *entity.ServicePlan) error {
	query := `
		UPDATE service_plans
		SET service_type_id = $2, name = $3, description = $4, monthly_fee = $5,
			currency = $6, is_active = $7, sla_id = $8, attributes = $9, updated_at = $10
		WHERE plan_id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		plan.ID, plan.ServiceTypeID, plan.Name, plan.Description, plan.MonthlyFee,
		plan.Currency, plan.IsActive, plan.SLAID, plan.Attributes, plan.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update service plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un plan (hard delete). Devuelve ErrNotFound si no existe.
func (r *ServicePlanRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM service_plans WHERE plan_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
