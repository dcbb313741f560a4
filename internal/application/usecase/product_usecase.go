package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marvinbvivass/admin-sub001/internal/application/dto"
	"github.com/marvinbvivass/admin-sub001/internal/domain"
	"github.com/marvinbvivass/admin-sub001/internal/domain/entity"
	"github.com/marvinbvivass/admin-sub001/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo. El catálogo solo alimenta la
// carga de vehículos y los filtros; las ventas capturan su propio precio.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create registra un producto nuevo en el catálogo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Presentation: in.Presentation,
		Category:     in.Category,
		Segment:      in.Segment,
		Price:        in.Price,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos, opcionalmente filtrados por rubro.
func (uc *ProductUseCase) List(category string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(category)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update actualiza un producto del catálogo. No afecta precios ya capturados
// en ventas ni en stock cargado.
func (uc *ProductUseCase) Update(id string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Presentation != "" {
		product.Presentation = in.Presentation
	}
	if in.Category != "" {
		product.Category = in.Category
	}
	if in.Segment != "" {
		product.Segment = in.Segment
	}
	if in.Price.GreaterThan(decimal.Zero) {
		product.Price = in.Price
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Presentation: p.Presentation,
		Category:     p.Category,
		Segment:      p.Segment,
		Price:        p.Price,
	}
}
