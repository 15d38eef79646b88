package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/spacelogix/spacelogix-api/internal/interfaces/http"

	"github.com/spacelogix/spacelogix-api/internal/application/auth"
	"github.com/spacelogix/spacelogix-api/internal/application/usecase"
	"github.com/spacelogix/spacelogix-api/internal/infrastructure/memory"
	"github.com/spacelogix/spacelogix-api/pkg/logger"
)

const apiSecret = "secreto-handlers"

// envelope proyección del envoltorio de respuesta para los asserts.
type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testEnv struct {
	app      *fiber.App
	products *memory.ProductRepository
	revoker  *fakeRevoker
}

// newTestEnv arma la API completa sobre repositorios en memoria.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := logger.New(logger.Config{Level: "error"})
	users := memory.NewUserRepository()
	products := memory.NewProductRepository()
	orders := memory.NewOrderRepository()
	revoker := newFakeRevoker()

	jwtCfg := auth.JWTConfig{Secret: apiSecret, ExpSeconds: 3600, Issuer: "spacelogix-test"}
	app := fiber.New()
	httpapi.Router(app, httpapi.RouterDeps{
		AuthUC:    auth.NewAuthUseCase(users, revoker, jwtCfg, log),
		UserUC:    usecase.NewUserUseCase(users),
		ProductUC: usecase.NewProductUseCase(products),
		OrderUC:   usecase.NewOrderUseCase(orders, products, log),
		UserRepo:  users,
		Revoker:   revoker,
		JWTSecret: apiSecret,
		Log:       log,
	})
	return &testEnv{app: app, products: products, revoker: revoker}
}

// request ejecuta una petición JSON contra la app y decodifica el envoltorio.
func (e *testEnv) request(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	return res.StatusCode, env
}

// signup registra un usuario y devuelve su token.
func (e *testEnv) signup(t *testing.T, name, email, role string) string {
	t.Helper()
	status, env := e.request(t, nethttp.MethodPost, "/api/v1/auth/signup", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": "Segura#123",
		"role":     role,
		"phone":    "3001234567",
		"address":  "calle 1 # 2-3",
		"city":     "bogotá",
		"country":  "colombia",
	})
	require.Equal(t, nethttp.StatusCreated, status)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

// createProduct crea un producto como el supplier del token dado.
func (e *testEnv) createProduct(t *testing.T, token, name string, price float64, stock int) {
	t.Helper()
	status, _ := e.request(t, nethttp.MethodPost, "/api/v1/products", token, fiber.Map{
		"name":        name,
		"description": "descripción",
		"price":       price,
		"currency":    "cop",
		"stock":       stock,
	})
	require.Equal(t, nethttp.StatusCreated, status)
}

func orderBody(lines ...fiber.Map) fiber.Map {
	return fiber.Map{
		"products": lines,
		"transporter": fiber.Map{
			"name": "trans", "email": "trans@b.com", "phone": "311",
			"address": "cra 9", "city": "cali", "country": "colombia",
		},
		"payment": fiber.Map{
			"paymentMethod": "credit",
			"totalAmount":   100,
			"currency":      "cop",
			"billingAddress": fiber.Map{
				"country": "colombia", "city": "bogotá", "address": "calle 1",
			},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_Retorna201YLuego409PorEmailDuplicado(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "ana", "ana@b.com", "customer")

	status, body := env.request(t, nethttp.MethodPost, "/api/v1/auth/signup", "", fiber.Map{
		"name": "ana bis", "email": "ANA@b.com", "password": "Segura#123", "role": "customer",
	})
	assert.Equal(t, nethttp.StatusConflict, status)
	assert.Equal(t, "USER_TAKEN", body.Code)
	assert.Equal(t, "User already exists", body.Message)
}

func TestSignup_PasswordDebil_Retorna422(t *testing.T) {
	env := newTestEnv(t)

	for _, pwd := range []string{"Cor#1a", "sinmayuscula#123", "SINMINUSCULA#123", "SinEspecial123", "SinDigito#abc"} {
		status, body := env.request(t, nethttp.MethodPost, "/api/v1/auth/signup", "", fiber.Map{
			"name": "ana", "email": "ana@b.com", "password": pwd, "role": "customer",
		})
		assert.Equal(t, nethttp.StatusUnprocessableEntity, status, "password %q debe rechazarse", pwd)
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
	}
}

func TestSignup_RolInvalido_Retorna422(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, nethttp.MethodPost, "/api/v1/auth/signup", "", fiber.Map{
		"name": "ana", "email": "ana@b.com", "password": "Segura#123", "role": "admin",
	})
	assert.Equal(t, nethttp.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}

func TestSignin_EmailInexistente_Retorna404(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, nethttp.MethodPost, "/api/v1/auth/signin", "", fiber.Map{
		"email": "nadie@b.com", "password": "Segura#123", "role": "customer",
	})
	assert.Equal(t, nethttp.StatusNotFound, status)
	assert.Equal(t, "USER_NOT_EXISTS", body.Code)
}

func TestSignin_PasswordIncorrecto_Retorna401(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "ana", "ana@b.com", "customer")

	status, body := env.request(t, nethttp.MethodPost, "/api/v1/auth/signin", "", fiber.Map{
		"email": "ana@b.com", "password": "Distinta#123", "role": "customer",
	})
	assert.Equal(t, nethttp.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_PASSWORD", body.Code)
}

func TestSignin_CredencialesCorrectas_Retorna200ConToken(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "ana", "ana@b.com", "customer")

	status, body := env.request(t, nethttp.MethodPost, "/api/v1/auth/signin", "", fiber.Map{
		"email": "ana@b.com", "password": "Segura#123", "role": "customer",
	})
	require.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, "SUCCESS", body.Code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.NotEmpty(t, data.Token)
}

func TestSignout_RevocaElToken(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "ana", "ana@b.com", "customer")

	status, _ := env.request(t, nethttp.MethodGet, "/api/v1/auth/signout", token, nil)
	require.Equal(t, nethttp.StatusOK, status)

	status, body := env.request(t, nethttp.MethodGet, "/api/v1/users/me", token, nil)
	assert.Equal(t, nethttp.StatusUnauthorized, status, "el token revocado deja de servir")
	assert.Equal(t, "UNAUTHORIZED", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────────────────────────────────────

func TestUsersMe_SinToken_Retorna401(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, nethttp.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body.Code)
}

func TestUsersMe_NuncaExponeElHash(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "ana", "ana@b.com", "customer")

	status, body := env.request(t, nethttp.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, nethttp.StatusOK, status)
	assert.NotContains(t, string(body.Data), "hashedPassword")
	assert.NotContains(t, string(body.Data), "$2a$", "ningún hash bcrypt debe filtrarse")
}

func TestUsersPatch_ActualizaSoloLosCamposEnviados(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "ana", "ana@b.com", "customer")

	status, body := env.request(t, nethttp.MethodPatch, "/api/v1/users/", token, fiber.Map{
		"phone": "3200000000",
	})
	require.Equal(t, nethttp.StatusOK, status)

	var data struct {
		User struct {
			Name  string `json:"name"`
			Phone string `json:"phone"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, "3200000000", data.User.Phone)
	assert.Equal(t, "ana", data.User.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearProducto_Customer_Retorna403(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "ana", "ana@b.com", "customer")

	status, body := env.request(t, nethttp.MethodPost, "/api/v1/products", token, fiber.Map{
		"name": "café", "price": 10, "currency": "cop", "stock": 5,
	})
	assert.Equal(t, nethttp.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body.Code)
}

func TestCrearProducto_NombreDuplicado_Retorna409(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "proveedor", "sup@b.com", "supplier")
	env.createProduct(t, token, "café", 10, 5)

	status, body := env.request(t, nethttp.MethodPost, "/api/v1/products", token, fiber.Map{
		"name": "  Café  ", "price": 12, "currency": "cop", "stock": 3,
	})
	assert.Equal(t, nethttp.StatusConflict, status)
	assert.Equal(t, "PRODUCT_EXISTS", body.Code)
}

func TestListarProductos_CustomerVeElCatalogoCompleto(t *testing.T) {
	env := newTestEnv(t)
	supToken := env.signup(t, "proveedor", "sup@b.com", "supplier")
	env.createProduct(t, supToken, "café", 10, 5)
	env.createProduct(t, supToken, "panela", 8, 7)

	customerToken := env.signup(t, "ana", "ana@b.com", "customer")
	status, body := env.request(t, nethttp.MethodGet, "/api/v1/products", customerToken, nil)
	require.Equal(t, nethttp.StatusOK, status)

	var data struct {
		Products []json.RawMessage `json:"products"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Len(t, data.Products, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orders
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearOrden_DieciseisLineas_Retorna422(t *testing.T) {
	env := newTestEnv(t)
	supToken := env.signup(t, "proveedor", "sup@b.com", "supplier")

	lines := make([]fiber.Map, 16)
	for i := range lines {
		name := fmt.Sprintf("producto-%d", i)
		env.createProduct(t, supToken, name, 10, 5)
		lines[i] = fiber.Map{"name": name, "quantity": 1}
	}

	customerToken := env.signup(t, "ana", "ana@b.com", "customer")
	status, body := env.request(t, nethttp.MethodPost, "/api/v1/orders", customerToken, orderBody(lines...))
	assert.Equal(t, nethttp.StatusUnprocessableEntity, status)
	assert.Equal(t, "TOO_MANY_PRODUCTS", body.Code)
}

func TestCrearOrden_ProductoInexistente_Retorna404SinTocarStock(t *testing.T) {
	env := newTestEnv(t)
	supToken := env.signup(t, "proveedor", "sup@b.com", "supplier")
	env.createProduct(t, supToken, "café", 10, 5)

	customerToken := env.signup(t, "ana", "ana@b.com", "customer")
	status, body := env.request(t, nethttp.MethodPost, "/api/v1/orders", customerToken, orderBody(
		fiber.Map{"name": "café", "quantity": 2},
		fiber.Map{"name": "fantasma", "quantity": 1},
	))
	assert.Equal(t, nethttp.StatusNotFound, status)
	assert.Equal(t, "MISSING_PRODUCTS", body.Code)

	cafe, err := env.products.GetByName("café")
	require.NoError(t, err)
	assert.Equal(t, 5, cafe.Stock)
}

func TestCrearOrden_Exitosa_Retorna201YDescuentaStock(t *testing.T) {
	env := newTestEnv(t)
	supToken := env.signup(t, "proveedor", "sup@b.com", "supplier")
	env.createProduct(t, supToken, "café", 10, 9)

	customerToken := env.signup(t, "ana", "ana@b.com", "customer")
	status, body := env.request(t, nethttp.MethodPost, "/api/v1/orders", customerToken, orderBody(
		fiber.Map{"name": "café", "quantity": 4},
	))
	require.Equal(t, nethttp.StatusCreated, status)
	assert.Equal(t, "CREATED", body.Code)

	var data struct {
		OrderID string `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.NotEmpty(t, data.OrderID)

	cafe, err := env.products.GetByName("café")
	require.NoError(t, err)
	assert.Equal(t, 5, cafe.Stock)
}

func TestCrearOrden_StockInsuficiente_Retorna422(t *testing.T) {
	env := newTestEnv(t)
	supToken := env.signup(t, "proveedor", "sup@b.com", "supplier")
	env.createProduct(t, supToken, "café", 10, 1)

	customerToken := env.signup(t, "ana", "ana@b.com", "customer")
	status, body := env.request(t, nethttp.MethodPost, "/api/v1/orders", customerToken, orderBody(
		fiber.Map{"name": "café", "quantity": 3},
	))
	assert.Equal(t, nethttp.StatusUnprocessableEntity, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
}

func TestCrearOrden_Supplier_Retorna403(t *testing.T) {
	env := newTestEnv(t)
	supToken := env.signup(t, "proveedor", "sup@b.com", "supplier")
	env.createProduct(t, supToken, "café", 10, 5)

	status, body := env.request(t, nethttp.MethodPost, "/api/v1/orders", supToken, orderBody(
		fiber.Map{"name": "café", "quantity": 1},
	))
	assert.Equal(t, nethttp.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body.Code)
}

func TestEliminarOrden_AjenaEInexistente_RespondenIgual(t *testing.T) {
	env := newTestEnv(t)
	supToken := env.signup(t, "proveedor", "sup@b.com", "supplier")
	env.createProduct(t, supToken, "café", 10, 5)

	duena := env.signup(t, "ana", "ana@b.com", "customer")
	status, body := env.request(t, nethttp.MethodPost, "/api/v1/orders", duena, orderBody(
		fiber.Map{"name": "café", "quantity": 1},
	))
	require.Equal(t, nethttp.StatusCreated, status)

	var data struct {
		OrderID string `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))

	otra := env.signup(t, "otra", "otra@b.com", "customer")

	statusAjena, bodyAjena := env.request(t, nethttp.MethodDelete, "/api/v1/orders/"+data.OrderID, otra, nil)
	statusInexistente, bodyInexistente := env.request(t, nethttp.MethodDelete, "/api/v1/orders/no-existe", otra, nil)

	assert.Equal(t, nethttp.StatusNotFound, statusAjena)
	assert.Equal(t, statusInexistente, statusAjena)
	assert.Equal(t, bodyInexistente.Code, bodyAjena.Code, "orden ajena e inexistente responden igual")
	assert.Equal(t, "ORDER_NOT_EXISTS", bodyAjena.Code)
}
