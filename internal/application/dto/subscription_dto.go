package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSubscriptionRequest entrada para crear una suscripción. Acepta planId
// (moderno) o packageId (legacy, deprecado); al menos uno debe resolver a un plan.
type CreateSubscriptionRequest struct {
	CustomerID     int64   `json:"customerId" validate:"required"`
	PlanID         *int64  `json:"planId"`
	PackageID      *int64  `json:"packageId"`
	Status         string  `json:"status" validate:"omitempty,oneof=pending active suspended terminated cancelled"`
	StartDate      string  `json:"startDate" validate:"required"`
	EndDate        *string `json:"endDate"`
	BillingCycle   string  `json:"billingCycle" validate:"omitempty,oneof=monthly quarterly yearly"`
	SiteLocationID *int64  `json:"siteLocationId"`
}

// UpdateSubscriptionStatusRequest entrada del PATCH de estado.
type UpdateSubscriptionStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SubscriptionResponse salida de una suscripción con los datos del plan unidos.
// Los campos legacy (legacy_package_id, speed_mbps, quota_gb) se derivan de los
// attributes del plan en cada lectura; si faltan o están corruptos se omiten.
type SubscriptionResponse struct {
	SubscriptionID  int64            `json:"subscription_id"`
	CustomerID      int64            `json:"customer_id"`
	PlanID          int64            `json:"plan_id"`
	PackageID       *int64           `json:"package_id,omitempty"`
	Status          string           `json:"status"`
	StartDate       string           `json:"start_date"`
	EndDate         *string          `json:"end_date,omitempty"`
	BillingCycle    string           `json:"billing_cycle"`
	SiteLocationID  *int64           `json:"site_location_id,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	PlanName        *string          `json:"plan_name,omitempty"`
	PlanFee         *decimal.Decimal `json:"plan_fee,omitempty"`
	ServiceTypeCode *string          `json:"service_type_code,omitempty"`
	ServiceTypeName *string          `json:"service_type_name,omitempty"`
	LegacyPackageID *int64           `json:"legacy_package_id,omitempty"`
	SpeedMbps       *float64         `json:"speed_mbps,omitempty"`
	QuotaGB         *float64         `json:"quota_gb,omitempty"`
}

// SubscriptionEnvelope respuesta de creación/actualización de suscripción.
type SubscriptionEnvelope struct {
	Message      string                `json:"message"`
	Subscription *SubscriptionResponse `json:"subscription"`
}
