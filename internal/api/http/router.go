package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/mess-service/internal/api/http/handlers"
	"github.com/spec-kit/mess-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Students          *handlers.StudentsHandler
	Orders            *handlers.OrdersHandler
	Preorders         *handlers.PreordersHandler
	Subscriptions     *handlers.SubscriptionsHandler
	Menu              *handlers.MenuHandler
	Images            *handlers.ImagesHandler
	SessionMiddleware *auth.SessionMiddleware
	AdminAuth         fiber.Handler
	ImageDir          string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/register", cfg.Students.Register)
	app.Post("/login", cfg.Students.Login)
	app.Post("/logout", cfg.Students.Logout)

	app.Post("/order", cfg.Orders.Place)
	app.Get("/orders", cfg.Orders.List)
	app.Post("/preorder", cfg.Preorders.Submit)
	app.Get("/student/preorders", cfg.Preorders.StudentList)

	app.Post("/upload-image", cfg.Images.Upload)
	app.Static("/img", cfg.ImageDir)

	session := app.Group("", cfg.SessionMiddleware.Handle)
	session.Get("/menu", cfg.Menu.Get)
	session.Post("/subscribe", cfg.Subscriptions.Subscribe)
	session.Post("/cancel-subscription", cfg.Subscriptions.Cancel)
	session.Get("/current-subscription", cfg.Subscriptions.Current)
	session.Get("/subscription-status", cfg.Subscriptions.Status)

	app.Get("/students", cfg.AdminAuth, cfg.Students.AdminList)

	admin := app.Group("/admin", cfg.AdminAuth)
	admin.Get("/menu", cfg.Menu.AdminGet)
	admin.Post("/menu", cfg.Menu.AdminUpdate)
	admin.Get("/orders", cfg.Orders.AdminList)
	admin.Get("/preorders", cfg.Preorders.AdminList)
	admin.Post("/preorders/approve", cfg.Preorders.Decide)
}
