package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/retail-pos/internal/application/analytics"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/application/usecase"
	"github.com/tu-usuario/retail-pos/internal/domain"
)

// AdminHandler maneja las pantallas del panel de administración.
type AdminHandler struct {
	analyticsUC *appanalytics.AnalyticsUseCase
	salesUC     *usecase.SalesUseCase
	productUC   *usecase.ProductUseCase
	userUC      *usecase.UserUseCase
	methodUC    *usecase.PaymentMethodUseCase
}

// NewAdminHandler construye el handler del panel.
func NewAdminHandler(
	analyticsUC *appanalytics.AnalyticsUseCase,
	salesUC *usecase.SalesUseCase,
	productUC *usecase.ProductUseCase,
	userUC *usecase.UserUseCase,
	methodUC *usecase.PaymentMethodUseCase,
) *AdminHandler {
	return &AdminHandler{
		analyticsUC: analyticsUC,
		salesUC:     salesUC,
		productUC:   productUC,
		userUC:      userUC,
		methodUC:    methodUC,
	}
}

// Dashboard resumen del día: conteos, ingreso de hoy y ventas recientes.
// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.analyticsUC.DashboardStats(c.Context())
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Render("admin/dashboard", fiber.Map{
		"Title": "Panel",
		"User":  GetIdentity(c),
		"Stats": stats,
	})
}

// Analytics buckets temporales y rankings de productos.
// GET /admin/analytics
func (h *AdminHandler) Analytics(c *fiber.Ctx) error {
	report, err := h.analyticsUC.Report(c.Context())
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Render("admin/analytics", fiber.Map{
		"Title":  "Analítica",
		"User":   GetIdentity(c),
		"Report": report,
	})
}

// Sales historial de ventas con vendedor y conteo de líneas.
// GET /admin/sales
func (h *AdminHandler) Sales(c *fiber.Ctx) error {
	sales, err := h.salesUC.History(c.Context())
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Render("admin/sales", fiber.Map{
		"Title": "Ventas",
		"User":  GetIdentity(c),
		"Sales": sales,
	})
}

// Payments listado de métodos de pago.
// GET /admin/payments
func (h *AdminHandler) Payments(c *fiber.Ctx) error {
	methods, err := h.methodUC.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Render("admin/payments", fiber.Map{
		"Title":   "Métodos de pago",
		"User":    GetIdentity(c),
		"Methods": methods,
	})
}

// CreatePayment alta de método de pago desde el formulario.
// POST /admin/payments
func (h *AdminHandler) CreatePayment(c *fiber.Ctx) error {
	var in dto.CreatePaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}
	if _, err := h.methodUC.Create(in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fiber.ErrBadRequest
		}
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/admin/payments", fiber.StatusFound)
}

// TogglePayment activa o desactiva un método.
// POST /admin/payments/toggle/:id
func (h *AdminHandler) TogglePayment(c *fiber.Ctx) error {
	if err := h.methodUC.Toggle(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/admin/payments", fiber.StatusFound)
}

// Products catálogo completo para administración.
// GET /admin/products
func (h *AdminHandler) Products(c *fiber.Ctx) error {
	products, err := h.productUC.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Render("admin/products", fiber.Map{
		"Title":    "Productos",
		"User":     GetIdentity(c),
		"Products": products,
	})
}

// CreateProduct alta de producto desde el panel.
// POST /admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}
	if _, err := h.productUC.Create(in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fiber.ErrBadRequest
		}
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/admin/products", fiber.StatusFound)
}

// DeleteProduct baja de producto.
// POST /admin/products/delete/:id
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.productUC.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/admin/products", fiber.StatusFound)
}

// Users listado de usuarios.
// GET /admin/users
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	users, err := h.userUC.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Render("admin/users", fiber.Map{
		"Title": "Usuarios",
		"User":  GetIdentity(c),
		"Users": users,
	})
}

// CreateUser alta de usuario con rol.
// POST /admin/users
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}
	if _, err := h.userUC.Create(in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return fiber.ErrBadRequest
		case errors.Is(err, domain.ErrUsernameTaken):
			return fiber.NewError(fiber.StatusConflict, "el usuario ya existe")
		default:
			return fiber.ErrInternalServerError
		}
	}
	return c.Redirect("/admin/users", fiber.StatusFound)
}

// DeleteUser baja de usuario.
// POST /admin/users/delete/:id
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.userUC.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/admin/users", fiber.StatusFound)
}
