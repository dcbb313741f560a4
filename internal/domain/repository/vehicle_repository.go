package repository

import "github.com/marvinbvivass/admin-sub001/internal/domain/entity"

// VehicleRepository define el puerto del directorio de vehículos.
type VehicleRepository interface {
	GetByID(id string) (*entity.Vehicle, error)
	List() ([]*entity.Vehicle, error)
	Create(vehicle *entity.Vehicle) error
}
