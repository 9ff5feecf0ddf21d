package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cmedia-api/internal/application/auth"
	"github.com/jhoicas/cmedia-api/internal/application/usecase"
	"github.com/jhoicas/cmedia-api/internal/domain"
	"github.com/jhoicas/cmedia-api/internal/domain/entity"
	"github.com/jhoicas/cmedia-api/internal/domain/repository"
	apphttp "github.com/jhoicas/cmedia-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/cmedia-api/pkg/jwt"
	"github.com/jhoicas/cmedia-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el stack HTTP completo
// ──────────────────────────────────────────────────────────────────────────────

type memPlanRepo struct {
	nextID int64
	rows   map[int64]*entity.ServicePlan
}

func (m *memPlanRepo) Create(p *entity.ServicePlan) (int64, error) {
	for _, existing := range m.rows {
		if existing.Name == p.Name {
			return 0, domain.ErrDuplicate
		}
	}
	id := m.nextID
	m.nextID++
	copied := *p
	copied.ID = id
	m.rows[id] = &copied
	return id, nil
}

func (m *memPlanRepo) GetByID(id int64) (*entity.ServicePlanDetail, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &entity.ServicePlanDetail{
		ServicePlan:     *p,
		ServiceTypeCode: "HOME_FIBER",
		ServiceTypeName: "Home Fiber",
	}, nil
}

func (m *memPlanRepo) List(repository.ServicePlanFilter) ([]*entity.ServicePlan, error) {
	var out []*entity.ServicePlan
	for _, p := range m.rows {
		out = append(out, p)
	}
	return out, nil
}

func (m *memPlanRepo) FindByLegacyPackageID(packageID int64) (*entity.ServicePlan, error) {
	var best *entity.ServicePlan
	for _, p := range m.rows {
		attrs := entity.DecodeAttributes(p.Attributes)
		if id, ok := attrs.LegacyPackageID(); ok && id == packageID {
			if best == nil || p.ID < best.ID {
				best = p
			}
		}
	}
	return best, nil
}

func (m *memPlanRepo) Update(p *entity.ServicePlan) error {
	if _, ok := m.rows[p.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *p
	m.rows[p.ID] = &copied
	return nil
}

func (m *memPlanRepo) Delete(id int64) error {
	if _, ok := m.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type memSubscriptionRepo struct {
	nextID int64
	rows   map[int64]*entity.Subscription
	plans  *memPlanRepo
}

func (m *memSubscriptionRepo) Create(s *entity.Subscription) (int64, error) {
	id := m.nextID
	m.nextID++
	copied := *s
	copied.ID = id
	m.rows[id] = &copied
	return id, nil
}

func (m *memSubscriptionRepo) GetByID(id int64) (*entity.SubscriptionDetail, error) {
	s, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	d := &entity.SubscriptionDetail{Subscription: *s}
	if p, ok := m.plans.rows[s.PlanID]; ok {
		d.PlanName = &p.Name
		d.PlanFee = &p.MonthlyFee
		d.PlanAttributes = p.Attributes
	}
	return d, nil
}

func (m *memSubscriptionRepo) ListByCustomer(customerID int64) ([]*entity.SubscriptionDetail, error) {
	out := []*entity.SubscriptionDetail{}
	for id, s := range m.rows {
		if s.CustomerID == customerID {
			d, _ := m.GetByID(id)
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memSubscriptionRepo) UpdateStatus(id int64, status entity.SubscriptionStatus) error {
	s, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Status = status
	return nil
}

type memCustomerRepo struct {
	nextID int64
	rows   map[string]*entity.Customer
}

func (m *memCustomerRepo) Create(c *entity.Customer) (int64, error) {
	if _, exists := m.rows[c.Email]; exists {
		return 0, domain.ErrDuplicate
	}
	id := m.nextID
	m.nextID++
	copied := *c
	copied.ID = id
	m.rows[c.Email] = &copied
	return id, nil
}

func (m *memCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	for _, c := range m.rows {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCustomerRepo) FindByEmail(email string) (*entity.Customer, error) {
	return m.rows[email], nil
}

type memStaffRepo struct{}

func (memStaffRepo) Create(*entity.Staff) (int64, error)        { return 0, nil }
func (memStaffRepo) GetByID(int64) (*entity.Staff, error)       { return nil, nil }
func (memStaffRepo) FindByEmail(string) (*entity.Staff, error)  { return nil, nil }
func (memStaffRepo) List() ([]*entity.Staff, error)             { return []*entity.Staff{}, nil }
func (memStaffRepo) Update(*entity.Staff) error                 { return domain.ErrNotFound }
func (memStaffRepo) Delete(int64) error                         { return domain.ErrNotFound }
func (memStaffRepo) ListRoles() ([]*entity.Role, error)         { return []*entity.Role{}, nil }

type memCatalogRepo struct{}

func (memCatalogRepo) ListServiceTypes() ([]*entity.ServiceType, error) {
	return []*entity.ServiceType{{ID: 1, Code: "HOME_FIBER", Name: "Home Fiber"}}, nil
}

func (memCatalogRepo) ListSLAs() ([]*entity.SLA, error) {
	return []*entity.SLA{{ID: 1, Name: "Standard 99.5%", AvailabilityTarget: decimal.RequireFromString("99.50")}}, nil
}

type testServer struct {
	app   *fiber.App
	plans *memPlanRepo
	subs  *memSubscriptionRepo
}

// buildServer arma la app igual que main: error handler, compat middleware y router.
func buildServer(t *testing.T) *testServer {
	t.Helper()
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	plans := &memPlanRepo{nextID: 1, rows: map[int64]*entity.ServicePlan{}}
	subs := &memSubscriptionRepo{nextID: 1, rows: map[int64]*entity.Subscription{}, plans: plans}
	customers := &memCustomerRepo{nextID: 1, rows: map[string]*entity.Customer{}}

	app := fiber.New(fiber.Config{
		ErrorHandler: apphttp.NewErrorHandler(log, false),
	})
	app.Use(apphttp.CompatMiddleware(log))

	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(customers, memStaffRepo{}, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		PlanUC:         usecase.NewServicePlanUseCase(plans, memCatalogRepo{}),
		SubscriptionUC: usecase.NewSubscriptionUseCase(subs, plans),
		CustomerUC:     usecase.NewCustomerUseCase(customers),
		StaffUC:        usecase.NewStaffUseCase(memStaffRepo{}),
		JWTSecret:      testJWTSecret,
	})
	return &testServer{app: app, plans: plans, subs: subs}
}

func (s *testServer) seedPlan(t *testing.T, name, fee, attrs string) *entity.ServicePlan {
	t.Helper()
	plan := &entity.ServicePlan{
		ServiceTypeID: 1,
		Name:          name,
		MonthlyFee:    decimal.RequireFromString(fee),
		Currency:      "USD",
		IsActive:      true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if attrs != "" {
		plan.Attributes = json.RawMessage(attrs)
	}
	id, err := s.plans.Create(plan)
	require.NoError(t, err)
	plan.ID = id
	return plan
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Service plans
// ──────────────────────────────────────────────────────────────────────────────

// Creación mínima: 201, monthly_fee serializado como número y attributes null.
func TestPlanHandler_CreateMinimo(t *testing.T) {
	s := buildServer(t)
	resp := doJSON(t, s.app, http.MethodPost, "/service-plans",
		`{"serviceTypeId": 1, "name": "Fibra 300", "monthlyFee": 29.99}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, `"monthly_fee":29.99`, "la cuota viaja como número JSON, no como string")
	assert.Contains(t, body, `"attributes":null`)
	assert.Contains(t, body, `"currency":"USD"`)

	var out struct {
		Message string `json:"message"`
		Plan    struct {
			PlanID   int64 `json:"plan_id"`
			IsActive bool  `json:"is_active"`
		} `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.NotZero(t, out.Plan.PlanID)
	assert.True(t, out.Plan.IsActive)
}

func TestPlanHandler_CreateSinNombre_422(t *testing.T) {
	s := buildServer(t)
	resp := doJSON(t, s.app, http.MethodPost, "/service-plans", `{"serviceTypeId": 1, "monthlyFee": 9.99}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), `"errors"`)
	assert.Contains(t, string(raw), "is required")
}

func TestPlanHandler_GetInexistente_404(t *testing.T) {
	s := buildServer(t)
	resp := doJSON(t, s.app, http.MethodGet, "/service-plans/999", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro duplicado
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthHandler_RegistroDuplicado_409(t *testing.T) {
	s := buildServer(t)
	const body = `{"full_name": "Ana Cliente", "email": "ana@example.com", "password": "secreto123"}`

	resp := doJSON(t, s.app, http.MethodPost, "/auth/register", body)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, s.app, http.MethodPost, "/auth/register", body)
	defer resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Duplicate entry."}`, string(raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// Suscripciones end to end
// ──────────────────────────────────────────────────────────────────────────────

func TestSubscriptionHandler_CreateConPackageID(t *testing.T) {
	s := buildServer(t)
	plan := s.seedPlan(t, "Fibra 600", "49.99", `{"legacy_package_id": 42, "speed_mbps": 600}`)

	resp := doJSON(t, s.app, http.MethodPost, "/subscriptions",
		`{"customerId": 1, "packageId": 42, "startDate": "2024-03-01"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Fields packageId are deprecated",
		resp.Header.Get("X-Deprecation-Warning"),
		"un request con packageId debe anunciar la deprecación")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out struct {
		Subscription struct {
			PlanID          int64    `json:"plan_id"`
			PackageID       *int64   `json:"package_id"`
			LegacyPackageID *int64   `json:"legacy_package_id"`
			SpeedMbps       *float64 `json:"speed_mbps"`
			Status          string   `json:"status"`
		} `json:"subscription"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, plan.ID, out.Subscription.PlanID)
	require.NotNil(t, out.Subscription.LegacyPackageID)
	assert.Equal(t, int64(42), *out.Subscription.LegacyPackageID)
	require.NotNil(t, out.Subscription.SpeedMbps)
	assert.Equal(t, float64(600), *out.Subscription.SpeedMbps)
	assert.Equal(t, "pending", out.Subscription.Status)
}

func TestSubscriptionHandler_PackageIDIrresoluble_400(t *testing.T) {
	s := buildServer(t)
	resp := doJSON(t, s.app, http.MethodPost, "/subscriptions",
		`{"customerId": 1, "packageId": 999, "startDate": "2024-03-01"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, s.subs.rows, "no debe quedar fila persistida")
}

// Las lecturas de suscripción cargan campos legacy derivados: el header de
// deprecación debe aparecer aunque el request sea moderno.
func TestSubscriptionHandler_RespuestaLegacyDisparaHeader(t *testing.T) {
	s := buildServer(t)
	plan := s.seedPlan(t, "Fibra 600", "49.99", `{"legacy_package_id": 42}`)

	resp := doJSON(t, s.app, http.MethodPost, "/subscriptions",
		`{"customerId": 1, "planId": `+jsonInt(plan.ID)+`, "startDate": "2024-03-01"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Response contains legacy fields that will be removed in future versions",
		resp.Header.Get("X-Deprecation-Warning"))
}

func TestSubscriptionHandler_StatusInvalido_400(t *testing.T) {
	s := buildServer(t)
	plan := s.seedPlan(t, "Fibra 300", "29.99", "")
	resp := doJSON(t, s.app, http.MethodPost, "/subscriptions",
		`{"customerId": 1, "planId": `+jsonInt(plan.ID)+`, "startDate": "2024-03-01"}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, s.app, http.MethodPatch, "/subscriptions/1/status", `{"status": "paused"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw),
		"Invalid status. Must be one of: pending, active, suspended, terminated, cancelled")
}

func TestSubscriptionHandler_ListMineRequiereTokenDeCliente(t *testing.T) {
	s := buildServer(t)

	// Sin token
	resp := doJSON(t, s.app, http.MethodGet, "/subscriptions", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Token de staff
	staffTok, err := pkgjwt.Generate(testJWTSecret, 3, "admin@example.com", pkgjwt.UserTypeStaff, 2, testIssuer, testExpMin)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/subscriptions", nil)
	req.Header.Set("Authorization", "Bearer "+staffTok)
	resp, err = s.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "el listado propio es solo para clientes")

	// Token de cliente
	customerTok, err := pkgjwt.Generate(testJWTSecret, 1, "ana@example.com", pkgjwt.UserTypeCustomer, 0, testIssuer, testExpMin)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/subscriptions", nil)
	req.Header.Set("Authorization", "Bearer "+customerTok)
	resp, err = s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
