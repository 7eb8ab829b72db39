package gateway

import (
	"context"

	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
)

// CloseoutGateway es el puerto de cierres de caja.
type CloseoutGateway interface {
	// Create registra un cierre y devuelve el registro con los totales
	// calculados por el servidor.
	Create(ctx context.Context, draft entity.CloseoutDraft) (*entity.Closeout, error)
	// List devuelve los cierres entre dos fechas ISO (vacías = sin límite).
	List(ctx context.Context, startISO, endISO string) ([]entity.Closeout, error)
	// Get devuelve un cierre por ID.
	Get(ctx context.Context, id int64) (*entity.Closeout, error)
}
