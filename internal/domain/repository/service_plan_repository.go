package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cmedia-api/internal/domain/entity"
)

// ServicePlanFilter filtros opcionales para el listado de planes.
type ServicePlanFilter struct {
	IsActive *bool
	MaxPrice *decimal.Decimal
}

// ServicePlanRepository define el puerto de persistencia para ServicePlan.
type ServicePlanRepository interface {
	Create(plan *entity.ServicePlan) (int64, error)
	GetByID(id int64) (*entity.ServicePlanDetail, error)
	List(filter ServicePlanFilter) ([]*entity.ServicePlan, error)
	// FindByLegacyPackageID resuelve el plan cuyo attributes.legacy_package_id
	// coincide con el paquete dado. Si hay varios gana el de menor plan_id.
	// Devuelve nil, nil si ninguno coincide.
	FindByLegacyPackageID(packageID int64) (*entity.ServicePlan, error)
	Update(plan *entity.ServicePlan) error
	Delete(id int64) error
}
