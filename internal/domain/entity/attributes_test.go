package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cmedia-api/internal/domain/entity"
)

func TestDecodeAttributes_ObjetoValido(t *testing.T) {
	raw := json.RawMessage(`{"legacy_package_id": 42, "speed_mbps": 300, "quota_gb": 500.5}`)
	attrs := entity.DecodeAttributes(raw)
	require.NotNil(t, attrs)

	id, ok := attrs.LegacyPackageID()
	assert.True(t, ok)
	assert.Equal(t, int64(42), id, "el id legacy debe normalizarse a int64")

	speed, ok := attrs.SpeedMbps()
	assert.True(t, ok)
	assert.Equal(t, float64(300), speed)

	quota, ok := attrs.QuotaGB()
	assert.True(t, ok)
	assert.Equal(t, 500.5, quota)
}

func TestDecodeAttributes_VacioYNull(t *testing.T) {
	assert.Nil(t, entity.DecodeAttributes(nil), "sin datos -> nil")
	assert.Nil(t, entity.DecodeAttributes(json.RawMessage(``)), "cadena vacía -> nil")
	// "null" deserializa a un mapa nil sin error
	attrs := entity.DecodeAttributes(json.RawMessage(`null`))
	_, ok := attrs.LegacyPackageID()
	assert.False(t, ok, "null no tiene claves legacy")
}

// Columnas con basura histórica no deben tumbar una lectura.
func TestDecodeAttributes_CorruptoNoFalla(t *testing.T) {
	assert.Nil(t, entity.DecodeAttributes(json.RawMessage(`{not json`)))
	assert.Nil(t, entity.DecodeAttributes(json.RawMessage(`"un string"`)))
	assert.Nil(t, entity.DecodeAttributes(json.RawMessage(`[1,2,3]`)))
}

func TestAttributes_ClavesAusentes(t *testing.T) {
	attrs := entity.DecodeAttributes(json.RawMessage(`{"otra_cosa": true}`))
	require.NotNil(t, attrs)

	_, ok := attrs.LegacyPackageID()
	assert.False(t, ok)
	_, ok = attrs.SpeedMbps()
	assert.False(t, ok)
	_, ok = attrs.QuotaGB()
	assert.False(t, ok)
}

// Valores con tipo equivocado (string donde va número) se tratan como ausentes.
func TestAttributes_TiposInvalidos(t *testing.T) {
	attrs := entity.DecodeAttributes(json.RawMessage(`{"legacy_package_id": "42", "speed_mbps": "rápido"}`))
	require.NotNil(t, attrs)

	_, ok := attrs.LegacyPackageID()
	assert.False(t, ok, "un string no es un id legacy válido")
	_, ok = attrs.SpeedMbps()
	assert.False(t, ok)
}

// Ida y vuelta: lo que se persiste como JSON debe recuperarse con los mismos valores.
func TestAttributes_RoundTrip(t *testing.T) {
	original := entity.Attributes{
		"legacy_package_id": float64(7),
		"speed_mbps":        float64(100),
		"custom":            "valor",
	}
	raw, err := json.Marshal(original)
	require.NoError(t, err)

	decoded := entity.DecodeAttributes(raw)
	require.NotNil(t, decoded)

	id, ok := decoded.LegacyPackageID()
	require.True(t, ok)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "valor", decoded["custom"])
}
