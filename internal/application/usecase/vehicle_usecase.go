package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/marvinbvivass/admin-sub001/internal/application/dto"
	"github.com/marvinbvivass/admin-sub001/internal/domain"
	"github.com/marvinbvivass/admin-sub001/internal/domain/entity"
	"github.com/marvinbvivass/admin-sub001/internal/domain/repository"
)

// VehicleUseCase casos de uso del directorio de vehículos y su carga de stock.
type VehicleUseCase struct {
	repo        repository.VehicleRepository
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(
	repo repository.VehicleRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, stockRepo: stockRepo, productRepo: productRepo}
}

// Create registra un vehículo nuevo.
func (uc *VehicleUseCase) Create(in dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if in.Plate == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	vehicle := &entity.Vehicle{
		ID:        uuid.New().String(),
		Make:      in.Make,
		Model:     in.Model,
		Plate:     in.Plate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(vehicle); err != nil {
		return nil, err
	}
	return toVehicleResponse(vehicle), nil
}

// GetByID obtiene un vehículo por ID.
func (uc *VehicleUseCase) GetByID(id string) (*dto.VehicleResponse, error) {
	vehicle, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toVehicleResponse(vehicle), nil
}

// List lista los vehículos.
func (uc *VehicleUseCase) List() ([]dto.VehicleResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVehicleResponse(v))
	}
	return items, nil
}

// LoadStock carga productos del catálogo en el vehículo (carga de camión).
// Copia nombre, presentación y precio del catálogo a la entrada de stock;
// si el producto ya está cargado, la cantidad se suma a la existente.
func (uc *VehicleUseCase) LoadStock(vehicleID string, in dto.LoadStockRequest) error {
	if len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	if _, err := uc.repo.GetByID(vehicleID); err != nil {
		return err
	}
	now := time.Now()
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return err
		}
		entry := &entity.StockEntry{
			VehicleID:    vehicleID,
			ProductID:    product.ID,
			Name:         product.Name,
			Presentation: product.Presentation,
			Category:     product.Category,
			Segment:      product.Segment,
			Price:        product.Price,
			Quantity:     item.Quantity,
			UpdatedAt:    now,
		}
		if err := uc.stockRepo.Upsert(entry); err != nil {
			return err
		}
	}
	return nil
}

// GetStock devuelve el stock actual del vehículo.
func (uc *VehicleUseCase) GetStock(vehicleID string) ([]dto.StockEntryResponse, error) {
	if _, err := uc.repo.GetByID(vehicleID); err != nil {
		return nil, err
	}
	entries, err := uc.stockRepo.ListByVehicle(vehicleID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.StockEntryResponse{
			ProductID:    e.ProductID,
			Name:         e.Name,
			Presentation: e.Presentation,
			Category:     e.Category,
			Segment:      e.Segment,
			Price:        e.Price,
			Quantity:     e.Quantity,
		})
	}
	return items, nil
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	if v == nil {
		return nil
	}
	return &dto.VehicleResponse{
		ID:    v.ID,
		Make:  v.Make,
		Model: v.Model,
		Plate: v.Plate,
	}
}
