package usecase

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/jhoicas/cmedia-api/internal/application/dto"
	"github.com/jhoicas/cmedia-api/internal/domain"
	"github.com/jhoicas/cmedia-api/internal/domain/entity"
	"github.com/jhoicas/cmedia-api/internal/domain/repository"
)

// ServicePlanUseCase casos de uso CRUD para planes de servicio y catálogo.
type ServicePlanUseCase struct {
	plans   repository.ServicePlanRepository
	catalog repository.CatalogRepository
}

// NewServicePlanUseCase construye el caso de uso.
func NewServicePlanUseCase(plans repository.ServicePlanRepository, catalog repository.CatalogRepository) *ServicePlanUseCase {
	return &ServicePlanUseCase{plans: plans, catalog: catalog}
}

// Create crea un plan. Currency por defecto USD, IsActive por defecto true.
func (uc *ServicePlanUseCase) Create(in dto.CreateServicePlanRequest) (*dto.ServicePlanResponse, error) {
	attrs, err := normalizeAttributes(in.Attributes)
	if err != nil {
		return nil, err
	}
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	plan := &entity.ServicePlan{
		ServiceTypeID: in.ServiceTypeID,
		Name:          in.Name,
		Description:   in.Description,
		MonthlyFee:    in.MonthlyFee,
		Currency:      currency,
		IsActive:      isActive,
		SLAID:         in.SLAID,
		Attributes:    attrs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	id, err := uc.plans.Create(plan)
	if err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// GetByID obtiene un plan con su catálogo unido. Devuelve ErrNotFound si no existe.
func (uc *ServicePlanUseCase) GetByID(id int64) (*dto.ServicePlanResponse, error) {
	detail, err := uc.plans.GetByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return toServicePlanDetailResponse(detail), nil
}

// List lista planes con filtros opcionales.
func (uc *ServicePlanUseCase) List(filter repository.ServicePlanFilter) ([]*dto.ServicePlanResponse, error) {
	plans, err := uc.plans.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServicePlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, toServicePlanResponse(p))
	}
	return out, nil
}

// Update aplica una actualización parcial: solo los campos presentes cambian.
// Sin campos no hay escritura y se devuelve el plan tal cual está.
func (uc *ServicePlanUseCase) Update(id int64, in dto.UpdateServicePlanRequest) (*dto.ServicePlanResponse, error) {
	detail, err := uc.plans.GetByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	if in.Empty() {
		return toServicePlanDetailResponse(detail), nil
	}

	plan := detail.ServicePlan
	if in.ServiceTypeID != nil {
		plan.ServiceTypeID = *in.ServiceTypeID
	}
	if in.Name != nil {
		plan.Name = *in.Name
	}
	if in.Description != nil {
		plan.Description = in.Description
	}
	if in.MonthlyFee != nil {
		plan.MonthlyFee = *in.MonthlyFee
	}
	if in.Currency != nil {
		plan.Currency = *in.Currency
	}
	if in.IsActive != nil {
		plan.IsActive = *in.IsActive
	}
	if in.SLAID != nil {
		plan.SLAID = in.SLAID
	}
	if in.Attributes != nil {
		attrs, err := normalizeAttributes(in.Attributes)
		if err != nil {
			return nil, err
		}
		plan.Attributes = attrs
	}
	plan.UpdatedAt = time.Now()

	if err := uc.plans.Update(&plan); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina un plan (hard delete).
func (uc *ServicePlanUseCase) Delete(id int64) error {
	return uc.plans.Delete(id)
}

// ListServiceTypes devuelve el catálogo de tipos de servicio.
func (uc *ServicePlanUseCase) ListServiceTypes() ([]*dto.ServiceTypeResponse, error) {
	types, err := uc.catalog.ListServiceTypes()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, &dto.ServiceTypeResponse{
			ServiceTypeID: t.ID, Code: t.Code, Name: t.Name, Description: t.Description,
		})
	}
	return out, nil
}

// ListSLAs devuelve el catálogo de SLAs.
func (uc *ServicePlanUseCase) ListSLAs() ([]*dto.SLAResponse, error) {
	slas, err := uc.catalog.ListSLAs()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SLAResponse, 0, len(slas))
	for _, s := range slas {
		out = append(out, &dto.SLAResponse{
			SLAID: s.ID, Name: s.Name, AvailabilityTarget: s.AvailabilityTarget,
			ResponseTimeMin: s.ResponseTimeMin, RestoreTimeMin: s.RestoreTimeMin,
			Description: s.Description,
		})
	}
	return out, nil
}

// normalizeAttributes valida que los attributes de entrada sean un objeto JSON o null.
// null explícito limpia la columna (se persiste NULL).
func normalizeAttributes(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, domain.ErrInvalidInput
	}
	return raw, nil
}

func toServicePlanResponse(p *entity.ServicePlan) *dto.ServicePlanResponse {
	return &dto.ServicePlanResponse{
		PlanID:        p.ID,
		ServiceTypeID: p.ServiceTypeID,
		Name:          p.Name,
		Description:   p.Description,
		MonthlyFee:    p.MonthlyFee,
		Currency:      p.Currency,
		IsActive:      p.IsActive,
		SLAID:         p.SLAID,
		Attributes:    entity.DecodeAttributes(p.Attributes),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toServicePlanDetailResponse(d *entity.ServicePlanDetail) *dto.ServicePlanResponse {
	out := toServicePlanResponse(&d.ServicePlan)
	out.ServiceTypeCode = d.ServiceTypeCode
	out.ServiceTypeName = d.ServiceTypeName
	out.SLAName = d.SLAName
	out.SLAAvailability = d.SLAAvailability
	return out
}
