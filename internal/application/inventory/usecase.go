// Package inventory implementa la reconciliación de inventario: la
// sobrescritura masiva de existencias a partir de un borrador editado a mano.
package inventory

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/ludwigkubler/WOLF-APP/internal/domain"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/gateway"
)

// RoleSource entrega el rol de la sesión activa para el guardado de cliente.
type RoleSource interface {
	Role() string
}

// Draft es el borrador editable: producto → cantidad como texto, tal como la
// teclea el operador.
type Draft map[int64]string

// Reconciler es el caso de uso de la sobrescritura masiva.
type Reconciler struct {
	gw     gateway.ProductGateway
	roles  RoleSource
	reload func(ctx context.Context) error // recarga del catálogo tras confirmar
}

// New construye el reconciliador. reload puede ser nil en tests.
func New(gw gateway.ProductGateway, roles RoleSource, reload func(ctx context.Context) error) *Reconciler {
	return &Reconciler{gw: gw, roles: roles, reload: reload}
}

// StageDraft inicializa el borrador con la existencia actual de cada producto.
func (r *Reconciler) StageDraft(products []entity.Product) Draft {
	draft := make(Draft, len(products))
	for _, p := range products {
		draft[p.ID] = strconv.FormatFloat(p.Quantity, 'f', -1, 64)
	}
	return draft
}

// Commit convierte el borrador completo y lo envía en una sola llamada de
// sobrescritura. Las celdas que no parsean o quedan negativas se fuerzan a
// cero en silencio: una celda mala no bloquea el guardado masivo (lenidad
// intencional, no un error suprimido). En éxito recarga el catálogo; si la
// escritura falla el borrador queda intacto para reintentar.
func (r *Reconciler) Commit(ctx context.Context, draft Draft) ([]entity.Product, error) {
	if r.roles.Role() != entity.RoleManager {
		return nil, &domain.PermissionError{Required: entity.RoleManager}
	}

	items := make([]entity.InventoryItem, 0, len(draft))
	for id, raw := range draft {
		items = append(items, entity.InventoryItem{ID: id, Quantity: CoerceQuantity(raw)})
	}
	// orden determinista para que la petición no dependa del recorrido del mapa
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	updated, err := r.gw.ApplyInventory(ctx, items)
	if err != nil {
		return nil, err
	}
	if r.reload != nil {
		if err := r.reload(ctx); err != nil {
			return updated, err
		}
	}
	return updated, nil
}

// CoerceQuantity convierte el texto de una celda a cantidad: valores no
// parseables, NaN, infinitos o negativos valen cero.
func CoerceQuantity(raw string) float64 {
	q, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(q) || math.IsInf(q, 0) || q < 0 {
		return 0
	}
	return q
}
