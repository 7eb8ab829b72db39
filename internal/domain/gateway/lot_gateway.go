package gateway

import (
	"context"

	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
)

// LotGateway es el puerto de lotes. Tras cada mutación el servidor realinea
// la existencia agregada del producto con la suma de sus lotes.
type LotGateway interface {
	// ListByProduct pide los lotes de un producto, filtrados por scope si no es all.
	ListByProduct(ctx context.Context, productID int64, scope entity.Scope) ([]entity.Lot, error)
	// Create da de alta un lote del producto indicado.
	Create(ctx context.Context, productID int64, l entity.Lot) (*entity.Lot, error)
	// Update persiste el registro completo del lote.
	Update(ctx context.Context, l entity.Lot) (*entity.Lot, error)
	// Delete elimina el lote.
	Delete(ctx context.Context, lotID int64) error
	// SearchByCode busca lotes por código en todos los productos,
	// opcionalmente restringido a un scope.
	SearchByCode(ctx context.Context, code string, scope entity.Scope) ([]entity.LotSearchResult, error)
}
