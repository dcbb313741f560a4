package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/marvinbvivass/admin-sub001/internal/application/dto"
	"github.com/marvinbvivass/admin-sub001/internal/domain"
	"github.com/marvinbvivass/admin-sub001/internal/domain/entity"
	"github.com/marvinbvivass/admin-sub001/internal/domain/repository"
)

// RateUseCase configuración de tasas de cambio (multiplicadores de Bs y COP
// frente a la moneda base).
type RateUseCase struct {
	repo repository.RateRepository
}

// NewRateUseCase construye el caso de uso.
func NewRateUseCase(repo repository.RateRepository) *RateUseCase {
	return &RateUseCase{repo: repo}
}

// Get devuelve las tasas vigentes.
func (uc *RateUseCase) Get() (*dto.RatesResponse, error) {
	rates, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	return &dto.RatesResponse{RateBs: rates.RateBs, RateCop: rates.RateCop}, nil
}

// Update guarda tasas nuevas. Las ventas ya confirmadas conservan su snapshot.
func (uc *RateUseCase) Update(in dto.RatesRequest) (*dto.RatesResponse, error) {
	if in.RateBs.LessThanOrEqual(decimal.Zero) || in.RateCop.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	rates := entity.RateSnapshot{RateBs: in.RateBs, RateCop: in.RateCop}
	if err := uc.repo.Put(rates); err != nil {
		return nil, err
	}
	return &dto.RatesResponse{RateBs: rates.RateBs, RateCop: rates.RateCop}, nil
}
