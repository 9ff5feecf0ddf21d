package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cmedia-api/internal/domain/entity"
)

// CreateServicePlanRequest entrada para crear un plan. Los campos llegan en camelCase
// como los envía el frontend; la respuesta usa snake_case como las filas de la DB.
type CreateServicePlanRequest struct {
	ServiceTypeID int64           `json:"serviceTypeId" validate:"required"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   *string         `json:"description"`
	MonthlyFee    decimal.Decimal `json:"monthlyFee"`
	Currency      string          `json:"currency" validate:"omitempty,len=3"`
	IsActive      *bool           `json:"isActive"`
	SLAID         *int64          `json:"slaId"`
	Attributes    json.RawMessage `json:"attributes"`
}

// UpdateServicePlanRequest actualización parcial: solo los campos presentes cambian.
// Attributes distingue ausente (nil) de null explícito ("null" limpia la columna).
type UpdateServicePlanRequest struct {
	ServiceTypeID *int64           `json:"serviceTypeId"`
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	MonthlyFee    *decimal.Decimal `json:"monthlyFee"`
	Currency      *string          `json:"currency" validate:"omitempty,len=3"`
	IsActive      *bool            `json:"isActive"`
	SLAID         *int64           `json:"slaId"`
	Attributes    json.RawMessage  `json:"attributes"`
}

// Empty indica que no llegó ningún campo a actualizar.
func (r UpdateServicePlanRequest) Empty() bool {
	return r.ServiceTypeID == nil && r.Name == nil && r.Description == nil &&
		r.MonthlyFee == nil && r.Currency == nil && r.IsActive == nil &&
		r.SLAID == nil && r.Attributes == nil
}

// ServicePlanResponse salida de un plan. Attributes es el mapa ya parseado
// (null si la columna está vacía o corrupta). Los campos de catálogo solo
// aparecen en lecturas por ID.
type ServicePlanResponse struct {
	PlanID          int64             `json:"plan_id"`
	ServiceTypeID   int64             `json:"service_type_id"`
	Name            string            `json:"name"`
	Description     *string           `json:"description"`
	MonthlyFee      decimal.Decimal   `json:"monthly_fee"`
	Currency        string            `json:"currency"`
	IsActive        bool              `json:"is_active"`
	SLAID           *int64            `json:"sla_id"`
	Attributes      entity.Attributes `json:"attributes"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	ServiceTypeCode string            `json:"service_type_code,omitempty"`
	ServiceTypeName string            `json:"service_type_name,omitempty"`
	SLAName         *string           `json:"sla_name,omitempty"`
	SLAAvailability *decimal.Decimal  `json:"sla_availability,omitempty"`
}

// ServicePlanEnvelope respuesta de creación/actualización de plan.
type ServicePlanEnvelope struct {
	Message string               `json:"message"`
	Plan    *ServicePlanResponse `json:"plan"`
}

// ServiceTypeResponse tipo de servicio del catálogo.
type ServiceTypeResponse struct {
	ServiceTypeID int64   `json:"service_type_id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
}

// SLAResponse SLA del catálogo.
type SLAResponse struct {
	SLAID              int64           `json:"sla_id"`
	Name               string          `json:"name"`
	AvailabilityTarget decimal.Decimal `json:"availability_target"`
	ResponseTimeMin    *int64          `json:"response_time_minutes"`
	RestoreTimeMin     *int64          `json:"restore_time_minutes"`
	Description        *string         `json:"description"`
}
