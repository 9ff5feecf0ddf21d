package http

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cmedia-api/pkg/logger"
)

// DeprecationHeader header que anuncia el uso de campos legacy.
const DeprecationHeader = "X-Deprecation-Warning"

const (
	deprecatedRequestWarning  = "Fields packageId are deprecated"
	deprecatedResponseWarning = "Response contains legacy fields that will be removed in future versions"
)

// legacyResponseFields claves que delatan datos legacy en una respuesta.
var legacyResponseFields = map[string]struct{}{
	"package_id":        {},
	"legacy_package_id": {},
	"speed_mbps":        {},
	"quota_gb":          {},
}

// CompatMiddleware detecta el uso del contrato legacy en ambas direcciones.
// Si el request trae packageId, o la respuesta contiene campos legacy en
// cualquier nivel, se agrega el header de deprecación. Nunca altera el cuerpo
// ni el status; los cuerpos que no parsean como JSON se ignoran.
func CompatMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if body := c.Body(); len(body) > 0 && requestUsesPackageID(body) {
			c.Set(DeprecationHeader, deprecatedRequestWarning)
			log.Warn().
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("request usa el campo legacy packageId")
		}

		err := c.Next()

		if c.GetRespHeader(DeprecationHeader) == "" && isJSONResponse(c) {
			if containsLegacyFields(c.Response().Body()) {
				c.Set(DeprecationHeader, deprecatedResponseWarning)
			}
		}
		return err
	}
}

func isJSONResponse(c *fiber.Ctx) bool {
	ct := string(c.Response().Header.ContentType())
	return strings.HasPrefix(ct, fiber.MIMEApplicationJSON)
}

func requestUsesPackageID(body []byte) bool {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return false
	}
	return hasKey(payload, "packageId")
}

func containsLegacyFields(body []byte) bool {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return false
	}
	return hasLegacyKey(payload)
}

// hasKey busca una clave exacta en objetos y arrays, a cualquier profundidad.
func hasKey(v any, key string) bool {
	switch t := v.(type) {
	case map[string]any:
		if _, ok := t[key]; ok {
			return true
		}
		for _, child := range t {
			if hasKey(child, key) {
				return true
			}
		}
	case []any:
		for _, child := range t {
			if hasKey(child, key) {
				return true
			}
		}
	}
	return false
}

func hasLegacyKey(v any) bool {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			if _, ok := legacyResponseFields[k]; ok {
				return true
			}
			if hasLegacyKey(child) {
				return true
			}
		}
	case []any:
		for _, child := range t {
			if hasLegacyKey(child) {
				return true
			}
		}
	}
	return false
}
