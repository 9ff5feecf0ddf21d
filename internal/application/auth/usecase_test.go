package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cmedia-api/internal/application/auth"
	"github.com/jhoicas/cmedia-api/internal/application/dto"
	"github.com/jhoicas/cmedia-api/internal/domain"
	"github.com/jhoicas/cmedia-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/cmedia-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	nextID int64
	rows   map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{nextID: 1, rows: map[string]*entity.Customer{}}
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) (int64, error) {
	if _, exists := f.rows[c.Email]; exists {
		return 0, domain.ErrDuplicate
	}
	id := f.nextID
	f.nextID++
	copied := *c
	copied.ID = id
	f.rows[c.Email] = &copied
	return id, nil
}

func (f *fakeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	for _, c := range f.rows {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) FindByEmail(email string) (*entity.Customer, error) {
	return f.rows[email], nil
}

type fakeStaffRepo struct {
	rows map[string]*entity.Staff
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{rows: map[string]*entity.Staff{}}
}

func (f *fakeStaffRepo) Create(s *entity.Staff) (int64, error)     { return s.ID, nil }
func (f *fakeStaffRepo) GetByID(id int64) (*entity.Staff, error)   { return nil, nil }
func (f *fakeStaffRepo) FindByEmail(e string) (*entity.Staff, error) { return f.rows[e], nil }
func (f *fakeStaffRepo) List() ([]*entity.Staff, error)            { return nil, nil }
func (f *fakeStaffRepo) Update(s *entity.Staff) error              { return nil }
func (f *fakeStaffRepo) Delete(id int64) error                     { return nil }
func (f *fakeStaffRepo) ListRoles() ([]*entity.Role, error)        { return nil, nil }

const testSecret = "auth-test-secret"

func buildAuthUC() (*auth.AuthUseCase, *fakeCustomerRepo, *fakeStaffRepo) {
	customers := newFakeCustomerRepo()
	staff := newFakeStaffRepo()
	uc := auth.NewAuthUseCase(customers, staff, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "cmedia-test",
	})
	return uc, customers, staff
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterCustomer_HasheaPassword(t *testing.T) {
	uc, customers, _ := buildAuthUC()

	id, err := uc.RegisterCustomer(dto.RegisterRequest{
		FullName: "Ana Cliente",
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	stored := customers.rows["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestRegisterCustomer_EmailDuplicado(t *testing.T) {
	uc, _, _ := buildAuthUC()

	_, err := uc.RegisterCustomer(dto.RegisterRequest{FullName: "Ana", Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.RegisterCustomer(dto.RegisterRequest{FullName: "Otra Ana", Email: "ana@example.com", Password: "otro456"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

// ──────────────────────────────────────────────────────────────────────────────
// Login: customers primero, staff después
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ClienteValido(t *testing.T) {
	uc, customers, _ := buildAuthUC()
	customers.rows["ana@example.com"] = &entity.Customer{
		ID: 5, FullName: "Ana Cliente", Email: "ana@example.com",
		PasswordHash: hashOf(t, "secreto123"),
	}

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	assert.Equal(t, pkgjwt.UserTypeCustomer, out.User.UserType)
	require.NotNil(t, out.User.CustomerID)
	assert.Equal(t, int64(5), *out.User.CustomerID)
	assert.Nil(t, out.User.StaffID)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.UserID)
	assert.Equal(t, pkgjwt.UserTypeCustomer, claims.UserType)
}

// Un cliente con password incorrecto falla sin caer a la tabla staff, aunque
// exista un staff con el mismo email y ese password.
func TestLogin_ClientePrimeroSinFallback(t *testing.T) {
	uc, customers, staff := buildAuthUC()
	customers.rows["doble@example.com"] = &entity.Customer{
		ID: 1, Email: "doble@example.com", PasswordHash: hashOf(t, "clave-cliente"),
	}
	staff.rows["doble@example.com"] = &entity.Staff{
		ID: 2, Email: "doble@example.com", RoleID: 1, PasswordHash: hashOf(t, "clave-staff"),
	}

	_, err := uc.Login(dto.LoginRequest{Email: "doble@example.com", Password: "clave-staff"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized),
		"si el email existe como cliente, no debe probarse contra staff")

	out, err := uc.Login(dto.LoginRequest{Email: "doble@example.com", Password: "clave-cliente"})
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.UserTypeCustomer, out.User.UserType)
}

func TestLogin_StaffCuandoNoHayCliente(t *testing.T) {
	uc, _, staff := buildAuthUC()
	staff.rows["sop@example.com"] = &entity.Staff{
		ID: 9, FullName: "Soporte", Email: "sop@example.com", RoleID: 1,
		PasswordHash: hashOf(t, "clave-staff"),
	}

	out, err := uc.Login(dto.LoginRequest{Email: "sop@example.com", Password: "clave-staff"})
	require.NoError(t, err)

	assert.Equal(t, pkgjwt.UserTypeStaff, out.User.UserType)
	require.NotNil(t, out.User.StaffID)
	assert.Equal(t, int64(9), *out.User.StaffID)
	require.NotNil(t, out.User.RoleID)
	assert.Equal(t, int64(1), *out.User.RoleID)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.UserTypeStaff, claims.UserType)
	assert.Equal(t, int64(1), claims.RoleID)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc, _, _ := buildAuthUC()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "lo-que-sea"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

// ──────────────────────────────────────────────────────────────────────────────
// StaffLogin
// ──────────────────────────────────────────────────────────────────────────────

func TestStaffLogin_IgnoraClientes(t *testing.T) {
	uc, customers, _ := buildAuthUC()
	customers.rows["ana@example.com"] = &entity.Customer{
		ID: 1, Email: "ana@example.com", PasswordHash: hashOf(t, "secreto123"),
	}

	_, err := uc.StaffLogin(dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized),
		"staff login no debe aceptar credenciales de clientes")
}

func TestStaffLogin_Valido(t *testing.T) {
	uc, _, staff := buildAuthUC()
	staff.rows["admin@example.com"] = &entity.Staff{
		ID: 3, Email: "admin@example.com", RoleID: 2, PasswordHash: hashOf(t, "clave-admin"),
	}

	out, err := uc.StaffLogin(dto.LoginRequest{Email: "admin@example.com", Password: "clave-admin"})
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.UserTypeStaff, out.User.UserType)
}
