package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cmedia-api/internal/application/dto"
	"github.com/jhoicas/cmedia-api/internal/domain"
	"github.com/jhoicas/cmedia-api/internal/domain/entity"
	"github.com/jhoicas/cmedia-api/internal/domain/repository"
	"github.com/jhoicas/cmedia-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro y login. Clientes y staff viven en tablas separadas;
// el login consulta customers primero y staff después.
type AuthUseCase struct {
	customers repository.CustomerRepository
	staff     repository.StaffRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(customers repository.CustomerRepository, staff repository.StaffRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{customers: customers, staff: staff, jwtCfg: jwtCfg}
}

// RegisterCustomer crea un cliente: hashea el password con bcrypt y persiste.
// Email duplicado -> domain.ErrDuplicate (409).
func (uc *AuthUseCase) RegisterCustomer(in dto.RegisterRequest) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	customer := &entity.Customer{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		CompanyName:  in.CompanyName,
		Phone:        in.Phone,
		CreatedAt:    time.Now(),
	}
	return uc.customers.Create(customer)
}

// Login verifica credenciales contra customers y, si el email no existe ahí,
// contra staff. Un cliente con password incorrecto falla de inmediato: no se
// sigue buscando en staff.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	customer, err := uc.customers.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(in.Password)) != nil {
			return nil, domain.ErrUnauthorized
		}
		token, err := jwt.Generate(uc.jwtCfg.Secret, customer.ID, customer.Email,
			jwt.UserTypeCustomer, 0, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
		return &dto.LoginResponse{
			Message: "Login successful!",
			Token:   token,
			User:    toCustomerUser(customer),
		}, nil
	}

	staff, err := uc.staff.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if staff != nil {
		if bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(in.Password)) != nil {
			return nil, domain.ErrUnauthorized
		}
		token, err := jwt.Generate(uc.jwtCfg.Secret, staff.ID, staff.Email,
			jwt.UserTypeStaff, staff.RoleID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
		return &dto.LoginResponse{
			Message: "Login successful!",
			Token:   token,
			User:    toStaffUser(staff),
		}, nil
	}

	return nil, domain.ErrUnauthorized
}

// StaffLogin verifica credenciales únicamente contra la tabla staff.
func (uc *AuthUseCase) StaffLogin(in dto.LoginRequest) (*dto.LoginResponse, error) {
	staff, err := uc.staff.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, staff.ID, staff.Email,
		jwt.UserTypeStaff, staff.RoleID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: "Staff login successful!",
		Token:   token,
		User:    toStaffUser(staff),
	}, nil
}

func toCustomerUser(c *entity.Customer) dto.UserResponse {
	id := c.ID
	return dto.UserResponse{
		CustomerID:  &id,
		FullName:    c.FullName,
		Email:       c.Email,
		CompanyName: c.CompanyName,
		Phone:       c.Phone,
		UserType:    jwt.UserTypeCustomer,
	}
}

func toStaffUser(s *entity.Staff) dto.UserResponse {
	id := s.ID
	roleID := s.RoleID
	return dto.UserResponse{
		StaffID:  &id,
		FullName: s.FullName,
		Email:    s.Email,
		RoleID:   &roleID,
		UserType: jwt.UserTypeStaff,
	}
}
