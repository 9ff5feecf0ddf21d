package usecase

import (
	"time"

	"github.com/jhoicas/cmedia-api/internal/application/dto"
	"github.com/jhoicas/cmedia-api/internal/domain"
	"github.com/jhoicas/cmedia-api/internal/domain/entity"
	"github.com/jhoicas/cmedia-api/internal/domain/repository"
)

// SubscriptionUseCase crea y consulta suscripciones reconciliando las referencias
// legacy de paquete contra el catálogo de planes.
type SubscriptionUseCase struct {
	subs  repository.SubscriptionRepository
	plans repository.ServicePlanRepository
}

// NewSubscriptionUseCase construye el caso de uso.
func NewSubscriptionUseCase(subs repository.SubscriptionRepository, plans repository.ServicePlanRepository) *SubscriptionUseCase {
	return &SubscriptionUseCase{subs: subs, plans: plans}
}

// Create crea una suscripción. Si solo llega packageId, se resuelve al plan cuyo
// attributes.legacy_package_id coincide; si nada resuelve, falla con ErrInvalidInput
// y no se persiste fila alguna. La fila siempre se inserta con plan_id resuelto.
func (uc *SubscriptionUseCase) Create(in dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if in.CustomerID == 0 || in.StartDate == "" || (in.PlanID == nil && in.PackageID == nil) {
		return nil, domain.ErrInvalidInput
	}

	planID := in.PlanID
	if planID == nil && in.PackageID != nil {
		plan, err := uc.plans.FindByLegacyPackageID(*in.PackageID)
		if err != nil {
			return nil, err
		}
		if plan != nil {
			planID = &plan.ID
		}
	}
	if planID == nil {
		return nil, domain.ErrInvalidInput // ni planId ni packageId resuelven a un plan
	}

	status := entity.StatusPending
	if in.Status != "" {
		status = entity.SubscriptionStatus(in.Status)
		if !status.Valid() {
			return nil, domain.ErrInvalidInput
		}
	}

	startDate, err := time.Parse(dto.DateLayout, in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var endDate *time.Time
	if in.EndDate != nil && *in.EndDate != "" {
		t, err := time.Parse(dto.DateLayout, *in.EndDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		endDate = &t
	}

	billingCycle := in.BillingCycle
	if billingCycle == "" {
		billingCycle = "monthly"
	}

	now := time.Now()
	sub := &entity.Subscription{
		CustomerID:     in.CustomerID,
		PlanID:         *planID,
		PackageID:      in.PackageID,
		Status:         status,
		StartDate:      startDate,
		EndDate:        endDate,
		BillingCycle:   billingCycle,
		SiteLocationID: in.SiteLocationID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	id, err := uc.subs.Create(sub)
	if err != nil {
		return nil, err
	}

	// Relectura con plan y tipo de servicio unidos para derivar los campos legacy.
	return uc.GetByID(id)
}

// GetByID obtiene una suscripción. Devuelve ErrNotFound si no existe.
func (uc *SubscriptionUseCase) GetByID(id int64) (*dto.SubscriptionResponse, error) {
	detail, err := uc.subs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return toSubscriptionResponse(detail), nil
}

// ListByCustomer lista las suscripciones de un cliente.
func (uc *SubscriptionUseCase) ListByCustomer(customerID int64) ([]*dto.SubscriptionResponse, error) {
	details, err := uc.subs.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SubscriptionResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toSubscriptionResponse(d))
	}
	return out, nil
}

// UpdateStatus cambia el estado. Los estados terminated y cancelled son finales:
// una transición desde ellos falla con ErrInvalidInput.
func (uc *SubscriptionUseCase) UpdateStatus(id int64, status entity.SubscriptionStatus) (*dto.SubscriptionResponse, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	detail, err := uc.subs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	if !detail.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.subs.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// toSubscriptionResponse arma la salida y deriva los campos legacy desde los
// attributes del plan. Attributes ausentes o corruptos simplemente omiten los
// campos, nunca fallan la lectura.
func toSubscriptionResponse(d *entity.SubscriptionDetail) *dto.SubscriptionResponse {
	out := &dto.SubscriptionResponse{
		SubscriptionID:  d.ID,
		CustomerID:      d.CustomerID,
		PlanID:          d.PlanID,
		PackageID:       d.PackageID,
		Status:          string(d.Status),
		StartDate:       d.StartDate.Format(dto.DateLayout),
		BillingCycle:    d.BillingCycle,
		SiteLocationID:  d.SiteLocationID,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		PlanName:        d.PlanName,
		PlanFee:         d.PlanFee,
		ServiceTypeCode: d.ServiceTypeCode,
		ServiceTypeName: d.ServiceTypeName,
	}
	if d.EndDate != nil {
		s := d.EndDate.Format(dto.DateLayout)
		out.EndDate = &s
	}

	attrs := entity.DecodeAttributes(d.PlanAttributes)
	if id, ok := attrs.LegacyPackageID(); ok {
		out.LegacyPackageID = &id
	}
	if speed, ok := attrs.SpeedMbps(); ok {
		out.SpeedMbps = &speed
	}
	if quota, ok := attrs.QuotaGB(); ok {
		out.QuotaGB = &quota
	}
	return out
}
