// Package gateway define los puertos hacia el colaborador REST remoto.
// Las implementaciones concretas viven en infrastructure/restapi; para tests
// se inyectan dobles.
package gateway

import (
	"context"

	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
)

// ProductGateway es el puerto de productos y de la sobrescritura masiva de
// inventario. Las lecturas fallan con *domain.FetchError y las mutaciones con
// *domain.PersistError.
type ProductGateway interface {
	// List pide los productos restringidos al scope dado.
	List(ctx context.Context, scope entity.Scope) ([]entity.Product, error)
	// Create da de alta un producto y devuelve el registro con ID asignado.
	Create(ctx context.Context, p entity.Product) (*entity.Product, error)
	// Update persiste el registro completo del producto.
	Update(ctx context.Context, p entity.Product) (*entity.Product, error)
	// Delete elimina el producto y sus lotes (cascada en el servidor).
	Delete(ctx context.Context, id int64) error
	// ApplyInventory sobrescribe en una sola llamada la existencia agregada
	// de todos los productos listados y devuelve los registros actualizados.
	ApplyInventory(ctx context.Context, items []entity.InventoryItem) ([]entity.Product, error)
}
