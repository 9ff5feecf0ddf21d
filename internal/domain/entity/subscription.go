package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionStatus estado de una suscripción.
type SubscriptionStatus string

const (
	StatusPending    SubscriptionStatus = "pending"
	StatusActive     SubscriptionStatus = "active"
	StatusSuspended  SubscriptionStatus = "suspended"
	StatusTerminated SubscriptionStatus = "terminated"
	StatusCancelled  SubscriptionStatus = "cancelled"
)

// SubscriptionStatuses todos los estados válidos, en orden de ciclo de vida.
var SubscriptionStatuses = []SubscriptionStatus{
	StatusPending, StatusActive, StatusSuspended, StatusTerminated, StatusCancelled,
}

// Valid indica si el estado pertenece al enum.
func (s SubscriptionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusSuspended, StatusTerminated, StatusCancelled:
		return true
	}
	return false
}

// Terminal indica si el estado no admite más transiciones.
func (s SubscriptionStatus) Terminal() bool {
	return s == StatusTerminated || s == StatusCancelled
}

// CanTransitionTo valida la transición: cualquier estado no terminal puede moverse
// a cualquier otro estado válido; terminated y cancelled son finales.
func (s SubscriptionStatus) CanTransitionTo(next SubscriptionStatus) bool {
	return next.Valid() && !s.Terminal()
}

// Subscription contrata un plan para un cliente. PlanID siempre queda resuelto al crear;
// PackageID conserva la referencia legacy con la que llegó la solicitud, si la hubo.
type Subscription struct {
	ID             int64
	CustomerID     int64
	PlanID         int64
	PackageID      *int64
	Status         SubscriptionStatus
	StartDate      time.Time
	EndDate        *time.Time
	BillingCycle   string
	SiteLocationID *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SubscriptionDetail es la suscripción con los datos del plan y tipo de servicio unidos.
// Los campos legacy (legacy_package_id, speed_mbps, quota_gb) NO se guardan aquí:
// se derivan de PlanAttributes en cada lectura para evitar copias desincronizadas.
type SubscriptionDetail struct {
	Subscription
	PlanName        *string
	PlanFee         *decimal.Decimal
	PlanAttributes  json.RawMessage
	ServiceTypeCode *string
	ServiceTypeName *string
}
