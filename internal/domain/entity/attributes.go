package entity

import "encoding/json"

// Claves legacy que pueden venir embebidas en los attributes de un plan.
const (
	AttrLegacyPackageID = "legacy_package_id"
	AttrSpeedMbps       = "speed_mbps"
	AttrQuotaGB         = "quota_gb"
)

// Attributes mapa de atributos de un plan ya deserializado.
type Attributes map[string]any

// DecodeAttributes parsea el JSON crudo de la columna attributes.
// Datos ausentes, "null" o corruptos se tratan como "sin atributos" (nil), nunca como error.
func DecodeAttributes(raw json.RawMessage) Attributes {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

// LegacyPackageID devuelve el identificador de paquete legacy embebido, si existe.
func (a Attributes) LegacyPackageID() (int64, bool) {
	return a.intValue(AttrLegacyPackageID)
}

// SpeedMbps devuelve la velocidad legacy del plan, si existe.
func (a Attributes) SpeedMbps() (float64, bool) {
	return a.floatValue(AttrSpeedMbps)
}

// QuotaGB devuelve la cuota de datos legacy del plan, si existe.
func (a Attributes) QuotaGB() (float64, bool) {
	return a.floatValue(AttrQuotaGB)
}

// intValue normaliza el valor numérico de una clave a int64. Los números JSON
// llegan como float64 tras deserializar; también se aceptan json.Number e int64
// para que todos los llamadores reciban el mismo tipo.
func (a Attributes) intValue(key string) (int64, bool) {
	v, ok := a[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func (a Attributes) floatValue(key string) (float64, bool) {
	v, ok := a[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
