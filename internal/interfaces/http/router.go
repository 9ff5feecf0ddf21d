package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cmedia-api/internal/application/auth"
	"github.com/jhoicas/cmedia-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	PlanUC         *usecase.ServicePlanUseCase
	SubscriptionUC *usecase.SubscriptionUseCase
	CustomerUC     *usecase.CustomerUseCase
	StaffUC        *usecase.StaffUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/staff/login", authHandler.StaffLogin)
	authGroup.Get("/profile", requireAuth, authHandler.Profile)

	// Gestión de staff (protegido ruta por ruta: /auth/staff/login queda público)
	staffHandler := NewStaffHandler(deps.StaffUC)
	staffGroup := authGroup.Group("/staff")
	staffGroup.Get("/", requireAuth, staffHandler.List)
	staffGroup.Get("/roles", requireAuth, staffHandler.ListRoles)
	staffGroup.Get("/:id", requireAuth, staffHandler.GetByID)
	staffGroup.Put("/:id", requireAuth, staffHandler.Update)
	staffGroup.Delete("/:id", requireAuth, staffHandler.Delete)

	// Customers
	customers := app.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)

	// Service plans. Las rutas fijas (/types, /types/slas) van antes de /:id.
	plans := app.Group("/service-plans")
	planHandler := NewServicePlanHandler(deps.PlanUC)
	plans.Get("/", planHandler.List)
	plans.Post("/", planHandler.Create)
	plans.Get("/types", planHandler.ListServiceTypes)
	plans.Get("/types/slas", planHandler.ListSLAs)
	plans.Get("/:id", planHandler.GetByID)
	plans.Put("/:id", planHandler.Update)
	plans.Delete("/:id", planHandler.Delete)

	// Subscriptions
	subs := app.Group("/subscriptions")
	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	subs.Get("/", requireAuth, subscriptionHandler.ListMine)
	subs.Post("/", subscriptionHandler.Create)
	subs.Get("/customer/:customerId", subscriptionHandler.ListByCustomer)
	subs.Get("/:id", subscriptionHandler.GetByID)
	subs.Patch("/:id/status", subscriptionHandler.UpdateStatus)
}
