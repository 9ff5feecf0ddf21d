package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cmedia-api/internal/application/dto"
	"github.com/jhoicas/cmedia-api/internal/application/usecase"
	"github.com/jhoicas/cmedia-api/internal/domain"
	"github.com/jhoicas/cmedia-api/internal/domain/entity"
	"github.com/jhoicas/cmedia-api/pkg/jwt"
	"github.com/jhoicas/cmedia-api/pkg/validation"
)

// SubscriptionHandler maneja suscripciones.
type SubscriptionHandler struct {
	uc *usecase.SubscriptionUseCase
}

// NewSubscriptionHandler construye el handler de suscripciones.
func NewSubscriptionHandler(uc *usecase.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear suscripción (acepta planId o packageId legacy)
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubscriptionRequest  true  "customerId, planId|packageId, startDate"
// @Success      201   {object}  dto.SubscriptionEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /subscriptions [post]
func (h *SubscriptionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubscriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body."})
	}
	if fieldErrs := validation.Struct(in); fieldErrs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{Errors: fieldErrs})
	}
	sub, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "customerId, startDate, and either planId or packageId are required.",
			})
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SubscriptionEnvelope{
		Message:      "Subscription created successfully!",
		Subscription: sub,
	})
}

// ListMine godoc
// @Summary      Suscripciones del cliente autenticado
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.SubscriptionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /subscriptions [get]
func (h *SubscriptionHandler) ListMine(c *fiber.Ctx) error {
	if GetUserType(c) != jwt.UserTypeCustomer {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Access denied. Customer access required."})
	}
	subs, err := h.uc.ListByCustomer(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(subs)
}

// GetByID godoc
// @Summary      Obtener suscripción por ID
// @Tags         subscriptions
// @Produce      json
// @Param        id  path  int  true  "subscription_id"
// @Success      200  {object}  dto.SubscriptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /subscriptions/{id} [get]
func (h *SubscriptionHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	sub, err := h.uc.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Subscription not found."})
		}
		return respondError(c, err)
	}
	return c.JSON(sub)
}

// ListByCustomer godoc
// @Summary      Suscripciones de un cliente
// @Tags         subscriptions
// @Produce      json
// @Param        customerId  path  int  true  "customer_id"
// @Success      200  {array}  dto.SubscriptionResponse
// @Router       /subscriptions/customer/{customerId} [get]
func (h *SubscriptionHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID, err := parseIDParam(c, "customerId")
	if err != nil {
		return err
	}
	subs, err := h.uc.ListByCustomer(customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(subs)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una suscripción
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "subscription_id"
// @Param        body  body  dto.UpdateSubscriptionStatusRequest  true  "status"
// @Success      200  {object}  dto.SubscriptionEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /subscriptions/{id}/status [patch]
func (h *SubscriptionHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateSubscriptionStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body."})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Status is required."})
	}
	status := entity.SubscriptionStatus(in.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid status. Must be one of: " + statusList(),
		})
	}
	sub, err := h.uc.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Subscription not found."})
		}
		return respondError(c, err)
	}
	return c.JSON(dto.SubscriptionEnvelope{
		Message:      "Subscription status updated successfully!",
		Subscription: sub,
	})
}

func statusList() string {
	names := make([]string, 0, len(entity.SubscriptionStatuses))
	for _, s := range entity.SubscriptionStatuses {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
