package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cmedia-api/internal/application/dto"
	"github.com/jhoicas/cmedia-api/internal/application/usecase"
	"github.com/jhoicas/cmedia-api/pkg/validation"
)

// StaffHandler gestión administrativa del staff.
type StaffHandler struct {
	uc *usecase.StaffUseCase
}

// NewStaffHandler construye el handler de staff.
func NewStaffHandler(uc *usecase.StaffUseCase) *StaffHandler {
	return &StaffHandler{uc: uc}
}

// List godoc
// @Summary      Listar staff
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.StaffResponse
// @Router       /auth/staff [get]
func (h *StaffHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener miembro del staff
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "staff_id"
// @Success      200  {object}  dto.StaffResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/staff/{id} [get]
func (h *StaffHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	s, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(s)
}

// Update godoc
// @Summary      Actualizar miembro del staff
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "staff_id"
// @Param        body  body  dto.UpdateStaffRequest  true  "full_name, email, role_id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/staff/{id} [put]
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateStaffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body."})
	}
	if fieldErrs := validation.Struct(in); fieldErrs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{Errors: fieldErrs})
	}
	if err := h.uc.Update(id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Staff member updated successfully!"})
}

// Delete godoc
// @Summary      Eliminar miembro del staff
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "staff_id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/staff/{id} [delete]
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Staff member deleted successfully!"})
}

// ListRoles godoc
// @Summary      Listar roles del staff
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.RoleResponse
// @Router       /auth/staff/roles [get]
func (h *StaffHandler) ListRoles(c *fiber.Ctx) error {
	roles, err := h.uc.ListRoles()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(roles)
}
