package http

// Payload par código/mensaje del catálogo estático de respuestas.
type Payload struct {
	Code    string
	Message string
}

// Catálogo de respuestas. Los mensajes son fijos: la capa de dominio nunca
// filtra detalle interno hacia el cliente.
var (
	RespOK                = Payload{Code: "SUCCESS", Message: "The request has completed successfully"}
	RespCreated           = Payload{Code: "CREATED", Message: "The request has completed successfully"}
	RespUnauthorized      = Payload{Code: "UNAUTHORIZED", Message: "Token is invalid"}
	RespForbidden         = Payload{Code: "FORBIDDEN", Message: "User has invalid role"}
	RespUserTaken         = Payload{Code: "USER_TAKEN", Message: "User already exists"}
	RespUserNotExists     = Payload{Code: "USER_NOT_EXISTS", Message: "User not exists"}
	RespInvalidPassword   = Payload{Code: "INVALID_PASSWORD", Message: "Invalid password"}
	RespProductExists     = Payload{Code: "PRODUCT_EXISTS", Message: "Product already exists"}
	RespProductNotExists  = Payload{Code: "PRODUCT_NOT_EXISTS", Message: "Product not exists"}
	RespOrderNotExists    = Payload{Code: "ORDER_NOT_EXISTS", Message: "Order not exists"}
	RespTooManyProducts   = Payload{Code: "TOO_MANY_PRODUCTS", Message: "Order has too many products"}
	RespMissingProducts   = Payload{Code: "MISSING_PRODUCTS", Message: "Order has missing products"}
	RespInsufficientStock = Payload{Code: "INSUFFICIENT_STOCK", Message: "Product stock is insufficient"}
	RespValidation        = Payload{Code: "VALIDATION_ERROR", Message: "Request body is invalid"}
	RespInternalError     = Payload{Code: "INTERNAL_SERVER_ERROR", Message: "¡Ups! An error has occurred"}
)
