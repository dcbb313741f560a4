package repository

import "github.com/marvinbvivass/admin-sub001/internal/domain/entity"

// ProductRepository define el puerto del catálogo de productos.
// El núcleo de ventas/cierre nunca muta el catálogo; Create y Update
// existen solo para administración.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	// List devuelve los productos; category vacío lista todos.
	List(category string) ([]*entity.Product, error)
	Create(product *entity.Product) error
	Update(product *entity.Product) error
}
