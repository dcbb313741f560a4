package repository

import "github.com/marvinbvivass/admin-sub001/internal/domain/entity"

// ClientRepository define el puerto del directorio de clientes.
type ClientRepository interface {
	GetByID(id string) (*entity.Client, error)
	// List devuelve los clientes; zone vacío lista todos.
	List(zone string) ([]*entity.Client, error)
	Create(client *entity.Client) error
	Update(client *entity.Client) error
}
