package entity

import "time"

// PaymentMethod métodos de pago aceptados.
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit"
	PaymentPayPal     PaymentMethod = "paypal"
)

// ValidPaymentMethod indica si s es un método de pago conocido.
func ValidPaymentMethod(s string) bool {
	switch PaymentMethod(s) {
	case PaymentCreditCard, PaymentPayPal:
		return true
	}
	return false
}

// MaxOrderProducts tope de líneas por orden (el mínimo es 1).
const MaxOrderProducts = 15

// OrderLine snapshot de un producto al momento de la orden: nombre, precio,
// moneda y proveedor copiados del catálogo en ese instante. Ediciones
// posteriores del producto no alteran órdenes históricas.
type OrderLine struct {
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	Price       float64  `bson:"price" json:"price"`
	Currency    Currency `bson:"currency" json:"currency"`
	Quantity    int      `bson:"quantity" json:"quantity"`
	Supplier    Supplier `bson:"supplier" json:"supplier"`
}

// Contact bloque de identidad embebido en la orden (customer y transporter
// comparten la misma forma).
type Contact struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone" json:"phone"`
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
	Country string `bson:"country" json:"country"`
}

// BillingAddress dirección de facturación del pago.
type BillingAddress struct {
	Country string `bson:"country" json:"country"`
	City    string `bson:"city" json:"city"`
	Address string `bson:"address" json:"address"`
	ZipCode string `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
}

// Payment detalle de pago. Los campos se almacenan pero nunca se procesan
// contra una pasarela.
type Payment struct {
	PaymentMethod  PaymentMethod  `bson:"paymentMethod" json:"paymentMethod"`
	CardNumber     string         `bson:"cardNumber,omitempty" json:"cardNumber,omitempty"`
	ExpirationDate string         `bson:"expirationDate,omitempty" json:"expirationDate,omitempty"`
	CVV            string         `bson:"cvv,omitempty" json:"cvv,omitempty"`
	BillingAddress BillingAddress `bson:"billingAddress" json:"billingAddress"`
	TotalAmount    float64        `bson:"totalAmount" json:"totalAmount"`
	Currency       Currency       `bson:"currency" json:"currency"`
}

// Order registro de transacción. Todos los bloques son snapshots propios de la
// orden: no hay referencias mutables compartidas con el catálogo ni con usuarios.
type Order struct {
	ID          string    `bson:"_id,omitempty"`
	Products    []OrderLine `bson:"products"`
	Customer    Contact   `bson:"customer"`
	Transporter Contact   `bson:"transporter"`
	Payment     Payment   `bson:"payment"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}
