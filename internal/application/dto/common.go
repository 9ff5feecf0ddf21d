package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cmedia-api/pkg/validation"
)

// Los montos viajan como número JSON (monthly_fee: 29.99), no como string:
// el frontend y los clientes legacy esperan números.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout formato de fechas de negocio (start_date, end_date).
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP. Details solo se adjunta en development.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ValidationErrorResponse cuerpo 422 con los errores por campo.
type ValidationErrorResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
