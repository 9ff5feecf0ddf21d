package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cmedia-api/internal/application/dto"
	"github.com/jhoicas/cmedia-api/internal/application/usecase"
	"github.com/jhoicas/cmedia-api/internal/domain"
	"github.com/jhoicas/cmedia-api/internal/domain/repository"
	"github.com/jhoicas/cmedia-api/pkg/validation"
)

// ServicePlanHandler maneja el catálogo de planes de servicio.
type ServicePlanHandler struct {
	uc *usecase.ServicePlanUseCase
}

// NewServicePlanHandler construye el handler de planes.
func NewServicePlanHandler(uc *usecase.ServicePlanUseCase) *ServicePlanHandler {
	return &ServicePlanHandler{uc: uc}
}

// Create godoc
// @Summary      Crear plan de servicio
// @Tags         service-plans
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServicePlanRequest  true  "serviceTypeId, name, monthlyFee"
// @Success      201   {object}  dto.ServicePlanEnvelope
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /service-plans [post]
func (h *ServicePlanHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServicePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body."})
	}
	if fieldErrs := validation.Struct(in); fieldErrs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{Errors: fieldErrs})
	}
	plan, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ServicePlanEnvelope{
		Message: "Service plan created successfully!",
		Plan:    plan,
	})
}

// List godoc
// @Summary      Listar planes (filtros isActive, maxPrice)
// @Tags         service-plans
// @Produce      json
// @Param        isActive  query  bool    false  "solo activos/inactivos"
// @Param        maxPrice  query  number  false  "cuota mensual máxima"
// @Success      200  {array}  dto.ServicePlanResponse
// @Router       /service-plans [get]
func (h *ServicePlanHandler) List(c *fiber.Ctx) error {
	var filter repository.ServicePlanFilter
	if raw := c.Query("isActive"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid isActive filter."})
		}
		filter.IsActive = &active
	}
	if raw := c.Query("maxPrice"); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid maxPrice filter."})
		}
		filter.MaxPrice = &maxPrice
	}
	plans, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plans)
}

// GetByID godoc
// @Summary      Obtener plan por ID
// @Tags         service-plans
// @Produce      json
// @Param        id  path  int  true  "plan_id"
// @Success      200  {object}  dto.ServicePlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /service-plans/{id} [get]
func (h *ServicePlanHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	plan, err := h.uc.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Service plan not found."})
		}
		return respondError(c, err)
	}
	return c.JSON(plan)
}

// Update godoc
// @Summary      Actualizar plan (parcial)
// @Tags         service-plans
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "plan_id"
// @Param        body  body  dto.UpdateServicePlanRequest  true  "campos a actualizar"
// @Success      200  {object}  dto.ServicePlanEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /service-plans/{id} [put]
func (h *ServicePlanHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateServicePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body."})
	}
	if fieldErrs := validation.Struct(in); fieldErrs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{Errors: fieldErrs})
	}
	plan, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Service plan not found."})
		}
		return respondError(c, err)
	}
	return c.JSON(dto.ServicePlanEnvelope{
		Message: "Service plan updated successfully!",
		Plan:    plan,
	})
}

// Delete godoc
// @Summary      Eliminar plan
// @Tags         service-plans
// @Produce      json
// @Param        id  path  int  true  "plan_id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /service-plans/{id} [delete]
func (h *ServicePlanHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Service plan not found."})
		}
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Service plan deleted successfully!"})
}

// ListServiceTypes godoc
// @Summary      Catálogo de tipos de servicio
// @Tags         service-plans
// @Produce      json
// @Success      200  {array}  dto.ServiceTypeResponse
// @Router       /service-plans/types [get]
func (h *ServicePlanHandler) ListServiceTypes(c *fiber.Ctx) error {
	types, err := h.uc.ListServiceTypes()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types)
}

// ListSLAs godoc
// @Summary      Catálogo de SLAs
// @Tags         service-plans
// @Produce      json
// @Success      200  {array}  dto.SLAResponse
// @Router       /service-plans/types/slas [get]
func (h *ServicePlanHandler) ListSLAs(c *fiber.Ctx) error {
	slas, err := h.uc.ListSLAs()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(slas)
}

// parseIDParam lee un parámetro de ruta numérico; inválido -> 400 vía el
// ErrorHandler global.
func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name+" parameter.")
	}
	return id, nil
}
