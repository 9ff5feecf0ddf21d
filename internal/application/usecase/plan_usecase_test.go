package usecase_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cmedia-api/internal/application/dto"
	"github.com/jhoicas/cmedia-api/internal/application/usecase"
	"github.com/jhoicas/cmedia-api/internal/domain"
	"github.com/jhoicas/cmedia-api/internal/domain/entity"
)

type fakeCatalogRepo struct{}

func (fakeCatalogRepo) ListServiceTypes() ([]*entity.ServiceType, error) {
	return []*entity.ServiceType{{ID: 1, Code: "HOME_FIBER", Name: "Home Fiber"}}, nil
}

func (fakeCatalogRepo) ListSLAs() ([]*entity.SLA, error) {
	return []*entity.SLA{{ID: 1, Name: "Standard 99.5%", AvailabilityTarget: decimal.RequireFromString("99.50")}}, nil
}

func buildPlanUC() (*usecase.ServicePlanUseCase, *fakePlanRepo) {
	plans := newFakePlanRepo()
	return usecase.NewServicePlanUseCase(plans, fakeCatalogRepo{}), plans
}

func TestPlanCreate_Defaults(t *testing.T) {
	uc, _ := buildPlanUC()

	out, err := uc.Create(dto.CreateServicePlanRequest{
		ServiceTypeID: 1,
		Name:          "Fibra 300",
		MonthlyFee:    decimal.RequireFromString("29.99"),
	})
	require.NoError(t, err)

	assert.Equal(t, "USD", out.Currency, "currency por defecto")
	assert.True(t, out.IsActive, "los planes nacen activos")
	assert.Nil(t, out.Attributes, "sin attributes la respuesta lleva null")
	assert.True(t, out.MonthlyFee.Equal(decimal.RequireFromString("29.99")))
}

func TestPlanCreate_AttributesNoObjeto(t *testing.T) {
	uc, plans := buildPlanUC()

	_, err := uc.Create(dto.CreateServicePlanRequest{
		ServiceTypeID: 1,
		Name:          "Fibra 300",
		MonthlyFee:    decimal.RequireFromString("29.99"),
		Attributes:    json.RawMessage(`[1,2,3]`),
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "attributes debe ser objeto JSON o null")
	assert.Empty(t, plans.rows)
}

func TestPlanUpdate_SinCamposNoEscribe(t *testing.T) {
	uc, plans := buildPlanUC()
	plan := plans.seed(`{"speed_mbps": 300}`, "29.99")

	out, err := uc.Update(plan.ID, dto.UpdateServicePlanRequest{})
	require.NoError(t, err)

	assert.Zero(t, plans.updateCalls, "un update vacío no debe tocar la base")
	assert.Equal(t, plan.Name, out.Name)
	speed, ok := out.Attributes.SpeedMbps()
	require.True(t, ok)
	assert.Equal(t, float64(300), speed)
}

func TestPlanUpdate_Parcial(t *testing.T) {
	uc, plans := buildPlanUC()
	plan := plans.seed(`{"speed_mbps": 300}`, "29.99")

	newName := "Fibra 600"
	newFee := decimal.RequireFromString("39.99")
	out, err := uc.Update(plan.ID, dto.UpdateServicePlanRequest{
		Name:       &newName,
		MonthlyFee: &newFee,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, plans.updateCalls)
	assert.Equal(t, "Fibra 600", out.Name)
	assert.True(t, out.MonthlyFee.Equal(newFee))
	// Los campos no enviados no cambian
	speed, ok := out.Attributes.SpeedMbps()
	require.True(t, ok, "attributes no enviados deben conservarse")
	assert.Equal(t, float64(300), speed)
	assert.Equal(t, "USD", out.Currency)
}

func TestPlanUpdate_AttributesNullLimpia(t *testing.T) {
	uc, plans := buildPlanUC()
	plan := plans.seed(`{"speed_mbps": 300}`, "29.99")

	out, err := uc.Update(plan.ID, dto.UpdateServicePlanRequest{
		Attributes: json.RawMessage(`null`),
	})
	require.NoError(t, err)
	assert.Nil(t, out.Attributes, "null explícito limpia la columna")
}

func TestPlanUpdate_NoExiste(t *testing.T) {
	uc, _ := buildPlanUC()
	name := "x"
	_, err := uc.Update(999, dto.UpdateServicePlanRequest{Name: &name})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestPlanGetByID_NoExiste(t *testing.T) {
	uc, _ := buildPlanUC()
	_, err := uc.GetByID(999)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestPlanCatalogos(t *testing.T) {
	uc, _ := buildPlanUC()

	types, err := uc.ListServiceTypes()
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "HOME_FIBER", types[0].Code)

	slas, err := uc.ListSLAs()
	require.NoError(t, err)
	require.Len(t, slas, 1)
	assert.Equal(t, "Standard 99.5%", slas[0].Name)
}
