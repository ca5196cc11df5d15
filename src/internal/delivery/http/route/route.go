package route

import (
	"github.com/gofiber/fiber/v2"

	"tolleasy-service/src/internal/delivery/http"
	"tolleasy-service/src/internal/delivery/http/middleware"
)

type RouteConfig struct {
	App                     *fiber.App
	AuthController          *http.AuthController
	UserController          *http.UserController
	VehicleController       *http.VehicleController
	PlazaController         *http.PlazaController
	PlanController          *http.PlanController
	TransactionController   *http.TransactionController
	AccountController       *http.AccountController
	PaymentMethodController *http.PaymentMethodController
	TrafficController       *http.TrafficController
	NotificationController  *http.NotificationController
	GeoController           *http.GeoController
	AuthMiddleware          fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupPublicRoute()
	c.SetupAuthRoute()
}

func (c *RouteConfig) SetupPublicRoute() {
	c.App.Post("/api/token", c.AuthController.Login)
	c.App.Post("/api/users", c.UserController.Register)

	c.App.Get("/api/toll-plazas", c.PlazaController.List)
	c.App.Get("/api/toll-plazas/:id", c.PlazaController.Get)
	c.App.Get("/api/toll-plazas/:id/status", c.PlazaController.GetStatus)

	c.App.Get("/api/plans", c.PlanController.List)
	c.App.Get("/api/plans/:id", c.PlanController.Get)
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Use(c.AuthMiddleware)

	c.App.Get("/api/users/me", c.UserController.GetProfile)
	c.App.Put("/api/users/me", c.UserController.UpdateProfile)

	c.App.Get("/api/vehicles", c.VehicleController.List)
	c.App.Post("/api/vehicles", c.VehicleController.Create)
	c.App.Get("/api/vehicles/:id", c.VehicleController.Get)
	c.App.Put("/api/vehicles/:id", c.VehicleController.Update)
	c.App.Delete("/api/vehicles/:id", c.VehicleController.Delete)

	c.App.Post("/api/plans/subscribe", c.PlanController.Subscribe)

	c.App.Get("/api/transactions", c.TransactionController.List)
	c.App.Post("/api/transactions", c.TransactionController.Create)
	c.App.Get("/api/transactions/:id", c.TransactionController.Get)

	c.App.Get("/api/payment-methods", c.PaymentMethodController.List)
	c.App.Post("/api/payment-methods", c.PaymentMethodController.Create)
	c.App.Put("/api/payment-methods/:id", c.PaymentMethodController.Update)
	c.App.Delete("/api/payment-methods/:id", c.PaymentMethodController.Delete)

	c.App.Get("/api/account-transactions", c.AccountController.List)
	c.App.Post("/api/account-transactions", c.AccountController.Create)

	c.App.Get("/api/notifications", c.NotificationController.List)
	c.App.Put("/api/notifications/mark-all-read", c.NotificationController.MarkAllRead)
	c.App.Put("/api/notifications/:id/read", c.NotificationController.MarkRead)

	c.App.Get("/api/geo/traffic", c.GeoController.TrafficDetails)
	c.App.Get("/api/geo/route", c.GeoController.Route)
	c.App.Get("/api/geo/nearby-plazas", c.GeoController.NearbyPlazas)

	c.SetupAdminRoute()
}

// Admin routes share the bearer check; role separation is handled upstream.
func (c *RouteConfig) SetupAdminRoute() {
	c.App.Post("/api/admin/toll-plazas", c.PlazaController.Create)
	c.App.Put("/api/admin/toll-plazas/:id", c.PlazaController.Update)
	c.App.Delete("/api/admin/toll-plazas/:id", c.PlazaController.Delete)

	c.App.Post("/api/admin/plans", c.PlanController.Create)
	c.App.Put("/api/admin/plans/:id", c.PlanController.Update)

	c.App.Post("/api/admin/traffic-data", c.TrafficController.Ingest)
	c.App.Get("/api/admin/toll-plazas/:id/traffic-data", c.TrafficController.ListByPlaza)

	c.App.Put("/api/admin/transactions/:id/status", c.TransactionController.UpdateStatus)
}
