package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/spacelogix/spacelogix-api/internal/application/dto"
	"github.com/spacelogix/spacelogix-api/internal/domain"
	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
	"github.com/spacelogix/spacelogix-api/internal/domain/repository"
	"github.com/spacelogix/spacelogix-api/pkg/logger"
)

// OrderUseCase flujo de creación y consulta de órdenes. La creación sigue la
// secuencia rol → cardinalidad → snapshot del customer → resolución de
// productos → decremento condicional de stock → persistencia. Ningún escrito se
// emite antes de validar que todos los productos existen.
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, productRepo: productRepo, log: log}
}

// decrement registra un decremento ya aplicado, para poder compensarlo.
type decrement struct {
	productID string
	qty       int
}

// Create crea una orden para el caller autenticado y devuelve su id.
//
// El bloque customer del request se descarta siempre: se sobreescribe con el
// perfil del caller para impedir suplantación. Las líneas se resuelven por
// nombre contra el catálogo de forma concurrente (son lecturas independientes);
// si falta cualquiera, la operación termina sin ningún escrito. El stock se
// descuenta con updates condicionales (stock >= qty); si uno falla, o si la
// persistencia final falla, los decrementos ya aplicados se compensan con
// incrementos equivalentes.
func (uc *OrderUseCase) Create(caller *entity.User, in dto.CreateOrderRequest) (*entity.Order, error) {
	if caller.Role != entity.RoleCustomer {
		return nil, domain.ErrForbidden
	}
	if len(in.Products) < 1 || len(in.Products) > entity.MaxOrderProducts {
		return nil, domain.ErrTooManyProducts
	}

	// Resolución concurrente: una lectura por línea, resultado en su posición.
	resolved := make([]*entity.Product, len(in.Products))
	var g errgroup.Group
	for i, line := range in.Products {
		g.Go(func() error {
			product, err := uc.productRepo.GetByName(normalizeName(line.Name))
			if err != nil {
				return err
			}
			resolved[i] = product
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, product := range resolved {
		if product == nil {
			return nil, domain.ErrMissingProducts
		}
	}

	// Decremento condicional por producto. El mínimo por línea es 1.
	applied := make([]decrement, 0, len(resolved))
	for i, product := range resolved {
		qty := in.Products[i].Quantity
		if qty < 1 {
			qty = 1
		}
		ok, err := uc.productRepo.DecrementStock(product.ID, qty)
		if err == nil && !ok {
			err = domain.ErrInsufficientStock
		}
		if err != nil {
			uc.compensate(applied)
			return nil, err
		}
		applied = append(applied, decrement{productID: product.ID, qty: qty})
	}

	now := time.Now()
	order := &entity.Order{
		ID:       uuid.New().String(),
		Products: buildLines(in.Products, resolved),
		Customer: entity.Contact{
			Name:    caller.Name,
			Email:   caller.Email,
			Phone:   caller.Phone,
			Address: caller.Address,
			City:    caller.City,
			Country: caller.Country,
		},
		Transporter: entity.Contact{
			Name:    in.Transporter.Name,
			Email:   in.Transporter.Email,
			Phone:   in.Transporter.Phone,
			Address: in.Transporter.Address,
			City:    in.Transporter.City,
			Country: in.Transporter.Country,
		},
		Payment: entity.Payment{
			PaymentMethod:  entity.PaymentMethod(in.Payment.PaymentMethod),
			CardNumber:     in.Payment.CardNumber,
			ExpirationDate: in.Payment.ExpirationDate,
			CVV:            in.Payment.CVV,
			BillingAddress: entity.BillingAddress{
				Country: in.Payment.BillingAddress.Country,
				City:    in.Payment.BillingAddress.City,
				Address: in.Payment.BillingAddress.Address,
				ZipCode: in.Payment.BillingAddress.ZipCode,
			},
			TotalAmount: in.Payment.TotalAmount,
			Currency:    entity.Currency(in.Payment.Currency),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.orderRepo.Create(order); err != nil {
		uc.compensate(applied)
		return nil, err
	}
	uc.log.Debug().Str("orderId", order.ID).Str("customer", caller.Email).Int("lines", len(order.Products)).Msg("orden creada")
	return order, nil
}

// buildLines arma los snapshots de línea: nombre/descripción/precio/moneda y
// proveedor copiados del producto resuelto en este instante, cantidad del request.
func buildLines(lines []dto.OrderLineRequest, resolved []*entity.Product) []entity.OrderLine {
	out := make([]entity.OrderLine, 0, len(resolved))
	for i, product := range resolved {
		qty := lines[i].Quantity
		if qty < 1 {
			qty = 1
		}
		out = append(out, entity.OrderLine{
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			Currency:    product.Currency,
			Quantity:    qty,
			Supplier:    product.Supplier,
		})
	}
	return out
}

// compensate repone los decrementos ya aplicados. Mejor esfuerzo: un fallo aquí
// solo se registra, la operación original ya está reportando su propio error.
func (uc *OrderUseCase) compensate(applied []decrement) {
	for _, d := range applied {
		if err := uc.productRepo.IncrementStock(d.productID, d.qty); err != nil {
			uc.log.Error().Err(err).Str("productId", d.productID).Int("qty", d.qty).Msg("compensación de stock fallida")
		}
	}
}

// ListByRole lista órdenes según el rol del caller: customer filtra por
// customer.email, transporter por transporter.email; cualquier otro rol es Forbidden.
func (uc *OrderUseCase) ListByRole(role entity.Role, email string) ([]*entity.Order, error) {
	switch role {
	case entity.RoleCustomer:
		return uc.orderRepo.ListByCustomerEmail(email)
	case entity.RoleTransporter:
		return uc.orderRepo.ListByTransporterEmail(email)
	case entity.RoleSupplier:
		return nil, domain.ErrForbidden
	default:
		return nil, domain.ErrForbidden
	}
}

// GetByID obtiene una orden; ErrOrderNotExists si no existe.
func (uc *OrderUseCase) GetByID(id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotExists
	}
	return order, nil
}

// Remove elimina una orden del customer autenticado y la devuelve. Una orden
// ajena responde igual que una inexistente.
func (uc *OrderUseCase) Remove(id, customerEmail string) (*entity.Order, error) {
	order, err := uc.orderRepo.Delete(id, customerEmail)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotExists
	}
	return order, nil
}
