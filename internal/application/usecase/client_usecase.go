package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/marvinbvivass/admin-sub001/internal/application/dto"
	"github.com/marvinbvivass/admin-sub001/internal/domain"
	"github.com/marvinbvivass/admin-sub001/internal/domain/entity"
	"github.com/marvinbvivass/admin-sub001/internal/domain/repository"
)

// ClientUseCase casos de uso del directorio de clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create registra un cliente nuevo.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Zone:      in.Zone,
		Sector:    in.Sector,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes, opcionalmente filtrados por zona.
func (uc *ClientUseCase) List(zone string) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(zone)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return items, nil
}

// Update actualiza los datos de un cliente.
func (uc *ClientUseCase) Update(id string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		client.Name = in.Name
	}
	if in.TaxID != "" {
		client.TaxID = in.TaxID
	}
	if in.Zone != "" {
		client.Zone = in.Zone
	}
	if in.Sector != "" {
		client.Sector = in.Sector
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:     c.ID,
		Name:   c.Name,
		TaxID:  c.TaxID,
		Zone:   c.Zone,
		Sector: c.Sector,
	}
}
