package dto

import (
	"time"

	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
)

// OrderLineRequest línea de la orden tal como la envía el cliente: el producto
// se referencia por nombre; precio/moneda/proveedor se resuelven del catálogo.
type OrderLineRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ContactRequest bloque de contacto enviado por el cliente (transporter).
// El bloque customer del body se descarta: siempre se inyecta del caller autenticado.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// BillingAddressRequest dirección de facturación del pago.
type BillingAddressRequest struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Address string `json:"address"`
	ZipCode string `json:"zipCode,omitempty"`
}

// PaymentRequest detalle de pago (se almacena, no se procesa).
type PaymentRequest struct {
	PaymentMethod  string                `json:"paymentMethod"` // credit | paypal
	CardNumber     string                `json:"cardNumber,omitempty"`
	ExpirationDate string                `json:"expirationDate,omitempty"`
	CVV            string                `json:"cvv,omitempty"`
	BillingAddress BillingAddressRequest `json:"billingAddress"`
	TotalAmount    float64               `json:"totalAmount"`
	Currency       string                `json:"currency"`
}

// CreateOrderRequest entrada para crear una orden.
type CreateOrderRequest struct {
	Products    []OrderLineRequest `json:"products"`
	Customer    *ContactRequest    `json:"customer,omitempty"` // ignorado: se sobreescribe con el caller
	Transporter ContactRequest     `json:"transporter"`
	Payment     PaymentRequest     `json:"payment"`
}

// OrderResponse proyección pública de una orden.
type OrderResponse struct {
	ID          string             `json:"_id"`
	Products    []entity.OrderLine `json:"products"`
	Customer    entity.Contact     `json:"customer"`
	Transporter entity.Contact     `json:"transporter"`
	Payment     entity.Payment     `json:"payment"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ToOrderResponse proyecta la entidad al DTO público.
func ToOrderResponse(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	return &OrderResponse{
		ID:          o.ID,
		Products:    o.Products,
		Customer:    o.Customer,
		Transporter: o.Transporter,
		Payment:     o.Payment,
		CreatedAt:   o.CreatedAt,
	}
}

// ToOrderResponses proyecta una lista de entidades.
func ToOrderResponses(list []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *ToOrderResponse(o))
	}
	return out
}
