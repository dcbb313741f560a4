package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marvinbvivass/admin-sub001/internal/application/dto"
	"github.com/marvinbvivass/admin-sub001/internal/domain"
	"github.com/marvinbvivass/admin-sub001/internal/domain/entity"
	"github.com/marvinbvivass/admin-sub001/internal/domain/repository"
)

// ShortageError detalla un rechazo por stock insuficiente: qué producto, qué
// se pidió y qué había disponible. Envuelve domain.ErrInsufficientStock para
// que el caller pueda seguir usando errors.Is.
type ShortageError struct {
	ProductID string
	Name      string
	Requested int64
	Available int64
}

func (e *ShortageError) Error() string {
	return fmt.Sprintf("stock insuficiente de %q (%s): solicitado %d, disponible %d",
		e.Name, e.ProductID, e.Requested, e.Available)
}

func (e *ShortageError) Unwrap() error { return domain.ErrInsufficientStock }

// CommitSaleUseCase construye y confirma una venta contra el stock de un
// vehículo: pasada de validación (solo lecturas), construcción de líneas con
// el precio vigente, persistencia con snapshot de tasas y aplicación de los
// decrementos. La persistencia y los decrementos corren dentro del TxRunner,
// así que en PostgreSQL un decremento fallido revierte la venta completa.
type CommitSaleUseCase struct {
	txRunner    TxRunner
	clientRepo  repository.ClientRepository
	vehicleRepo repository.VehicleRepository
	stockRepo   repository.StockRepository
	saleRepo    repository.SaleRepository
	rateRepo    repository.RateRepository
}

// NewCommitSaleUseCase construye el caso de uso.
func NewCommitSaleUseCase(
	txRunner TxRunner,
	clientRepo repository.ClientRepository,
	vehicleRepo repository.VehicleRepository,
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
	rateRepo repository.RateRepository,
) *CommitSaleUseCase {
	return &CommitSaleUseCase{
		txRunner:    txRunner,
		clientRepo:  clientRepo,
		vehicleRepo: vehicleRepo,
		stockRepo:   stockRepo,
		saleRepo:    saleRepo,
		rateRepo:    rateRepo,
	}
}

// CommitSale valida las líneas solicitadas contra el stock disponible y, si
// todas alcanzan, persiste la venta y descuenta el stock. operatorID viene de
// la sesión del caller (nunca de estado ambiente). Errores de validación se
// rechazan antes de cualquier mutación.
func (uc *CommitSaleUseCase) CommitSale(ctx context.Context, operatorID string, in dto.CommitSaleRequest) (*dto.SaleResponse, error) {
	if operatorID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.ClientID == "" {
		return nil, domain.ErrMissingClient
	}
	if in.VehicleID == "" {
		return nil, domain.ErrMissingVehicle
	}
	// Cantidades negativas son entrada inválida; las de cero se ignoran
	// (la UI puede mandar el catálogo completo con ceros).
	requested := make([]dto.CommitSaleLineRequest, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.Quantity < 0 || l.ProductID == "" {
			return nil, domain.ErrInvalidInput
		}
		if l.Quantity > 0 {
			requested = append(requested, l)
		}
	}
	if len(requested) == 0 {
		return nil, domain.ErrEmptySale
	}

	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	vehicle, err := uc.vehicleRepo.GetByID(in.VehicleID)
	if err != nil {
		return nil, err
	}

	// Pasada de validación: solo lecturas, ninguna mutación. Si algún
	// producto no alcanza, la venta completa se rechaza nombrando el
	// producto y las cantidades.
	entries := make(map[string]*entity.StockEntry, len(requested))
	for _, l := range requested {
		entry, err := uc.stockRepo.Get(in.VehicleID, l.ProductID)
		if err != nil {
			return nil, err
		}
		if l.Quantity > entry.Quantity {
			return nil, &ShortageError{
				ProductID: l.ProductID,
				Name:      entry.Name,
				Requested: l.Quantity,
				Available: entry.Quantity,
			}
		}
		entries[l.ProductID] = entry
	}

	// Pasada de construcción: precio unitario vigente capturado una sola vez.
	now := time.Now()
	lines := make([]entity.SaleLine, 0, len(requested))
	for _, l := range requested {
		entry := entries[l.ProductID]
		qty := decimal.NewFromInt(l.Quantity)
		lines = append(lines, entity.SaleLine{
			ProductID:    l.ProductID,
			Name:         entry.Name,
			Presentation: entry.Presentation,
			Category:     entry.Category,
			Segment:      entry.Segment,
			UnitPrice:    entry.Price,
			Quantity:     l.Quantity,
			Subtotal:     entry.Price.Mul(qty),
		})
	}

	rates, err := uc.rateRepo.Get()
	if err != nil {
		return nil, err
	}

	sale := &entity.Sale{
		ID:         uuid.New().String(),
		Date:       now,
		OperatorID: operatorID,
		Client:     client.Ref(),
		Vehicle:    vehicle.Ref(),
		Lines:      lines,
		Rates:      rates,
		CreatedAt:  now,
	}
	sale.Total = sale.ComputeTotal()

	// Persistencia y aplicación: la venta y sus decrementos dentro de la
	// misma transacción. Decrement revalida en escritura, así que una venta
	// concurrente que consumió stock entre la validación y la aplicación
	// produce ErrInsufficientStock y revierte todo, nunca stock negativo.
	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return fmt.Errorf("guardar venta: %w", err)
		}
		for _, l := range sale.Lines {
			if err := stockRepo.Decrement(in.VehicleID, l.ProductID, l.Quantity); err != nil {
				if errors.Is(err, domain.ErrInsufficientStock) {
					available := int64(0)
					if entry, gerr := stockRepo.Get(in.VehicleID, l.ProductID); gerr == nil {
						available = entry.Quantity
					}
					return &ShortageError{
						ProductID: l.ProductID,
						Name:      l.Name,
						Requested: l.Quantity,
						Available: available,
					}
				}
				return fmt.Errorf("descontar stock de %s: %w", l.ProductID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(sale), nil
}

// GetSale obtiene una venta por ID. Solo el operador que la registró puede verla.
func (uc *CommitSaleUseCase) GetSale(ctx context.Context, operatorID, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale.OperatorID != operatorID {
		return nil, domain.ErrForbidden
	}
	return uc.toResponse(sale), nil
}

// GetSaleEntity obtiene la entidad completa (para serializar el reporte).
func (uc *CommitSaleUseCase) GetSaleEntity(ctx context.Context, operatorID, id string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale.OperatorID != operatorID {
		return nil, domain.ErrForbidden
	}
	return sale, nil
}

// ListOpenSales devuelve las ventas aún no consolidadas del operador para un
// día (lo que la UI muestra antes del cierre).
func (uc *CommitSaleUseCase) ListOpenSales(ctx context.Context, operatorID string, day time.Time) ([]*dto.SaleResponse, error) {
	from, to := DayWindow(day)
	sales, err := uc.saleRepo.ListByOperatorAndRange(operatorID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, uc.toResponse(s))
	}
	return out, nil
}

// DayWindow devuelve los límites [00:00:00.000, 23:59:59.999] del día local.
func DayWindow(day time.Time) (time.Time, time.Time) {
	y, m, d := day.Date()
	loc := day.Location()
	from := time.Date(y, m, d, 0, 0, 0, 0, loc)
	to := time.Date(y, m, d, 23, 59, 59, 999_000_000, loc)
	return from, to
}

func (uc *CommitSaleUseCase) toResponse(sale *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:         sale.ID,
		Date:       sale.Date.Format(time.RFC3339),
		OperatorID: sale.OperatorID,
		ClientID:   sale.Client.ID,
		ClientName: sale.Client.Name,
		VehicleID:  sale.Vehicle.ID,
		Status:     dto.SaleStatusCommitted,
		Lines:      make([]dto.SaleLineResult, 0, len(sale.Lines)),
		Total:      sale.Total,
		RateBs:     sale.Rates.RateBs,
		RateCop:    sale.Rates.RateCop,
	}
	for _, l := range sale.Lines {
		resp.Lines = append(resp.Lines, dto.SaleLineResult{
			ProductID:    l.ProductID,
			Name:         l.Name,
			Presentation: l.Presentation,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			Subtotal:     l.Subtotal,
			Applied:      true,
		})
	}
	return resp
}
