package dto

import "time"

// Envelope envoltorio uniforme de toda respuesta HTTP de la API.
type Envelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Isotime time.Time   `json:"isotime"`
	Data    interface{} `json:"data,omitempty"`
}
