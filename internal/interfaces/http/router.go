package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	appanalytics "github.com/tu-usuario/retail-pos/internal/application/analytics"
	"github.com/tu-usuario/retail-pos/internal/application/auth"
	appcheckout "github.com/tu-usuario/retail-pos/internal/application/checkout"
	"github.com/tu-usuario/retail-pos/internal/application/usecase"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CheckoutUC  *appcheckout.CheckoutUseCase
	AnalyticsUC *appanalytics.AnalyticsUseCase
	SalesUC     *usecase.SalesUseCase
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	MethodUC    *usecase.PaymentMethodUseCase
	InventoryUC *usecase.InventoryUseCase
	LabelsUC    *usecase.LabelsUseCase
	Sessions    *session.Store
}

// Router registra las rutas de la aplicación, agrupadas por rol.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth (público) y redirección raíz por rol
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions)
	app.Get("/", authHandler.Home)
	authGroup := app.Group("/auth")
	authGroup.Get("/login", authHandler.LoginForm)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/logout", authHandler.Logout)

	// Panel de administración
	admin := app.Group("/admin", RequireRole(deps.Sessions, entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.AnalyticsUC, deps.SalesUC, deps.ProductUC, deps.UserUC, deps.MethodUC)
	admin.Get("/", adminHandler.Dashboard)
	admin.Get("/analytics", adminHandler.Analytics)
	admin.Get("/sales", adminHandler.Sales)
	admin.Get("/payments", adminHandler.Payments)
	admin.Post("/payments", adminHandler.CreatePayment)
	admin.Post("/payments/toggle/:id", adminHandler.TogglePayment)
	admin.Get("/products", adminHandler.Products)
	admin.Post("/products", adminHandler.CreateProduct)
	admin.Post("/products/delete/:id", adminHandler.DeleteProduct)
	admin.Get("/users", adminHandler.Users)
	admin.Post("/users", adminHandler.CreateUser)
	admin.Post("/users/delete/:id", adminHandler.DeleteUser)

	// Punto de venta
	pos := app.Group("/pos", RequireRole(deps.Sessions, entity.RoleEmployee))
	posHandler := NewPOSHandler(deps.CheckoutUC, deps.ProductUC, deps.MethodUC)
	pos.Get("/", posHandler.Checkout)
	pos.Post("/checkout", posHandler.ProcessSale)
	pos.Get("/ticket/:id", posHandler.Ticket)

	// Almacén
	warehouse := app.Group("/warehouse", RequireRole(deps.Sessions, entity.RoleWarehouse))
	warehouseHandler := NewWarehouseHandler(deps.InventoryUC, deps.ProductUC, deps.LabelsUC)
	warehouse.Get("/", warehouseHandler.Dashboard)
	warehouse.Get("/inventory", warehouseHandler.Inventory)
	warehouse.Post("/restock", warehouseHandler.Restock)
	warehouse.Post("/products", warehouseHandler.CreateProduct)
	warehouse.Get("/labels", warehouseHandler.Labels)
	warehouse.Get("/labels.pdf", warehouseHandler.LabelsPDF)
}
