package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	appcheckout "github.com/tu-usuario/retail-pos/internal/application/checkout"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/application/usecase"
	"github.com/tu-usuario/retail-pos/internal/domain"
)

// POSHandler maneja la pantalla de venta y el registro de ventas.
type POSHandler struct {
	checkoutUC *appcheckout.CheckoutUseCase
	productUC  *usecase.ProductUseCase
	methodUC   *usecase.PaymentMethodUseCase
}

// NewPOSHandler construye el handler del punto de venta.
func NewPOSHandler(checkoutUC *appcheckout.CheckoutUseCase, productUC *usecase.ProductUseCase, methodUC *usecase.PaymentMethodUseCase) *POSHandler {
	return &POSHandler{checkoutUC: checkoutUC, productUC: productUC, methodUC: methodUC}
}

// Checkout muestra la pantalla de venta: catálogo con stock y métodos activos.
// GET /pos
func (h *POSHandler) Checkout(c *fiber.Ctx) error {
	products, err := h.productUC.ListInStock()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	methods, err := h.methodUC.ListActive()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Render("pos/checkout", fiber.Map{
		"Title":    "Punto de venta",
		"User":     GetIdentity(c),
		"Products": products,
		"Methods":  methods,
	})
}

// ProcessSale registra la venta del carrito.
// POST /pos/checkout, cuerpo JSON {cart, payments}.
//
// 400 con {error} para fallas de validación (monto, carrito vacío, método
// inactivo), 409 cuando el stock no alcanza, 500 genérico para el resto.
func (h *POSHandler) ProcessSale(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.checkoutUC.ProcessSale(c.Context(), GetIdentity(c), in)
	if err != nil {
		var verr *appcheckout.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: verr.Msg})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "no se pudo registrar la venta"})
		}
	}
	return c.JSON(out)
}

// Ticket muestra el comprobante imprimible de una venta.
// GET /pos/ticket/:id
func (h *POSHandler) Ticket(c *fiber.Ctx) error {
	ticket, err := h.checkoutUC.GetTicket(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).Render("error", fiber.Map{
				"Title":   "Ticket",
				"Message": "la venta no existe",
				"User":    GetIdentity(c),
			})
		}
		return fiber.ErrInternalServerError
	}
	return c.Render("pos/ticket", fiber.Map{
		"Title":  "Ticket",
		"User":   GetIdentity(c),
		"Ticket": ticket,
	})
}
