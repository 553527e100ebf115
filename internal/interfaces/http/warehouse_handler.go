package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/application/usecase"
	"github.com/tu-usuario/retail-pos/internal/domain"
)

// WarehouseHandler maneja las pantallas del módulo de almacén.
type WarehouseHandler struct {
	inventoryUC *usecase.InventoryUseCase
	productUC   *usecase.ProductUseCase
	labelsUC    *usecase.LabelsUseCase
}

// NewWarehouseHandler construye el handler de almacén.
func NewWarehouseHandler(inventoryUC *usecase.InventoryUseCase, productUC *usecase.ProductUseCase, labelsUC *usecase.LabelsUseCase) *WarehouseHandler {
	return &WarehouseHandler{inventoryUC: inventoryUC, productUC: productUC, labelsUC: labelsUC}
}

// Dashboard alertas de stock bajo, más críticas primero.
// GET /warehouse
func (h *WarehouseHandler) Dashboard(c *fiber.Ctx) error {
	alerts, err := h.inventoryUC.LowStockAlerts()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Render("warehouse/dashboard", fiber.Map{
		"Title":  "Almacén",
		"User":   GetIdentity(c),
		"Alerts": alerts,
	})
}

// Inventory catálogo completo con stock y umbrales.
// GET /warehouse/inventory
func (h *WarehouseHandler) Inventory(c *fiber.Ctx) error {
	products, err := h.productUC.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Render("warehouse/inventory", fiber.Map{
		"Title":    "Inventario",
		"User":     GetIdentity(c),
		"Products": products,
	})
}

// Restock suma unidades al stock de un producto.
// POST /warehouse/restock
func (h *WarehouseHandler) Restock(c *fiber.Ctx) error {
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}
	if err := h.inventoryUC.Restock(GetIdentity(c), in.ProductID, in.Quantity); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fiber.ErrBadRequest
		}
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/warehouse/inventory", fiber.StatusFound)
}

// CreateProduct alta de producto desde el almacén.
// POST /warehouse/products
func (h *WarehouseHandler) CreateProduct(c *fiber.Ctx) error {
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
	return c.Redirect("/warehouse/inventory", fiber.StatusFound)
}

// Labels vista previa de las etiquetas de precio.
// GET /warehouse/labels
func (h *WarehouseHandler) Labels(c *fiber.Ctx) error {
	products, err := h.productUC.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Render("warehouse/labels", fiber.Map{
		"Title":    "Etiquetas",
		"User":     GetIdentity(c),
		"Products": products,
	})
}

// LabelsPDF descarga la hoja de etiquetas con código de barras por producto.
// GET /warehouse/labels.pdf
func (h *WarehouseHandler) LabelsPDF(c *fiber.Ctx) error {
	sheet, err := h.labelsUC.SheetForAll(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "no hay productos para etiquetar")
		}
		return fiber.ErrInternalServerError
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="etiquetas.pdf"`)
	return c.Send(sheet)
}
