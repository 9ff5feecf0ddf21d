package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ServicePlan representa una oferta de servicio con precio mensual (modelo moderno).
// Attributes es un mapa libre persistido como JSONB; puede incluir legacy_package_id
// para compatibilidad con los paquetes del sistema anterior.
type ServicePlan struct {
	ID            int64
	ServiceTypeID int64
	Name          string
	Description   *string
	MonthlyFee    decimal.Decimal
	Currency      string
	IsActive      bool
	SLAID         *int64
	Attributes    json.RawMessage
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ServicePlanDetail es el plan con los datos de catálogo unidos para lectura.
type ServicePlanDetail struct {
	ServicePlan
	ServiceTypeCode string
	ServiceTypeName string
	SLAName         *string
	SLAAvailability *decimal.Decimal
}

// ServiceType tipo de servicio del catálogo (fibra hogar, internet dedicado, etc.).
type ServiceType struct {
	ID          int64
	Code        string
	Name        string
	Description *string
}

// SLA acuerdo de nivel de servicio asociable a un plan.
type SLA struct {
	ID                 int64
	Name               string
	AvailabilityTarget decimal.Decimal
	ResponseTimeMin    *int64
	RestoreTimeMin     *int64
	Description        *string
}
