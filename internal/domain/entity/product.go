package entity

import "time"

// Currency monedas aceptadas para precios y pagos.
type Currency string

const (
	CurrencyCOP Currency = "cop"
	CurrencyUSD Currency = "usd"
	CurrencyEUR Currency = "eur"
)

// ValidCurrency indica si s es una moneda conocida.
func ValidCurrency(s string) bool {
	switch Currency(s) {
	case CurrencyCOP, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

// Supplier snapshot del proveedor embebido en Product y en las líneas de una orden.
// Se captura del usuario autenticado al crear el producto; no es una referencia viva.
type Supplier struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

// Product entrada del catálogo. El nombre es único (índice único en la colección)
// y el stock nunca baja de cero: el decremento se hace con update condicional.
type Product struct {
	ID          string    `bson:"_id,omitempty"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Price       float64   `bson:"price"`
	Currency    Currency  `bson:"currency"`
	Stock       int       `bson:"stock"`
	Supplier    Supplier  `bson:"supplier"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}
