package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cmedia-api/internal/domain/entity"
	"github.com/jhoicas/cmedia-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo lecturas del catálogo (tipos de servicio y SLAs).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// ListServiceTypes devuelve los tipos de servicio ordenados por nombre.
func (r *CatalogRepo) ListServiceTypes() ([]*entity.ServiceType, error) {
	query := `SELECT service_type_id, code, name, description FROM service_types ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list service types: %w", err)
	}
	defer rows.Close()

	var list []*entity.ServiceType
	for rows.Next() {
		var t entity.ServiceType
		if err := rows.Scan(&t.ID, &t.Code, &t.Name, &t.Description); err != nil {
			return nil, fmt.Errorf("scan service type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// ListSLAs devuelve los SLAs con mayor disponibilidad primero.
func (r *CatalogRepo) ListSLAs() ([]*entity.SLA, error) {
	query := `
		SELECT sla_id, name, availability_target, response_time_minutes, restore_time_minutes, description
		FROM slas ORDER BY availability_target DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list slas: %w", err)
	}
	defer rows.Close()

	var list []*entity.SLA
	for rows.Next() {
		var s entity.SLA
		if err := rows.Scan(&s.ID, &s.Name, &s.AvailabilityTarget, &s.ResponseTimeMin, &s.RestoreTimeMin, &s.Description); err != nil {
			return nil, fmt.Errorf("scan sla: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
