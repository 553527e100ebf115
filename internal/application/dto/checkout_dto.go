package dto

import "github.com/shopspring/decimal"

// CartLineRequest línea del carrito tal como la envía la vista POS.
// El precio viaja desde el cliente y se captura tal cual (price_at_sale).
type CartLineRequest struct {
	ProductID string          `json:"id"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// PaymentEntryRequest asignación de pago: monto base cubierto por un método.
type PaymentEntryRequest struct {
	MethodID string          `json:"methodId"`
	Amount   decimal.Decimal `json:"amount"`
}

// CheckoutRequest cuerpo JSON de POST /pos/checkout.
type CheckoutRequest struct {
	Cart     []CartLineRequest     `json:"cart"`
	Payments []PaymentEntryRequest `json:"payments"`
}

// CheckoutResponse respuesta de una venta registrada.
type CheckoutResponse struct {
	Success bool   `json:"success"`
	SaleID  string `json:"saleId"`
}

// TicketItem línea del ticket impreso.
type TicketItem struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// TicketPayment pago del ticket con el método y su recargo.
type TicketPayment struct {
	MethodName       string          `json:"method_name"`
	SurchargePercent decimal.Decimal `json:"surcharge_percent"`
	Amount           decimal.Decimal `json:"amount"`
	SurchargeAmount  decimal.Decimal `json:"surcharge_amount"`
}

// TicketResponse venta completa para la vista de ticket.
type TicketResponse struct {
	SaleID         string          `json:"sale_id"`
	Seller         string          `json:"seller"`
	CreatedAt      string          `json:"created_at"`
	Items          []TicketItem    `json:"items"`
	Payments       []TicketPayment `json:"payments"`
	TotalBase      decimal.Decimal `json:"total_base"`
	TotalSurcharge decimal.Decimal `json:"total_surcharge"`
	Total          decimal.Decimal `json:"total"`
}
