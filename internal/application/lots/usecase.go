// Package lots mantiene los lotes cargados por producto bajo el scope activo
// y deriva caducidad más próxima y costo promedio ponderado. No hay caché
// global: cada vista pide su propia carga.
package lots

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ludwigkubler/WOLF-APP/internal/domain"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/gateway"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/lot"
)

// RoleSource entrega el rol de la sesión activa para el guardado de cliente.
type RoleSource interface {
	Role() string
}

// Ledger es el caso de uso de lotes: carga perezosa por producto, agregados
// derivados y mutaciones con recarga completa posterior.
type Ledger struct {
	gw    gateway.LotGateway
	roles RoleSource

	mu        sync.Mutex
	byProduct map[int64][]entity.Lot
	known     map[int64]bool   // producto consultado, aunque la carga fallara
	gen       map[int64]uint64 // descarta respuestas de cargas superadas, por producto
}

// New construye el ledger.
func New(gw gateway.LotGateway, roles RoleSource) *Ledger {
	return &Ledger{
		gw:        gw,
		roles:     roles,
		byProduct: map[int64][]entity.Lot{},
		known:     map[int64]bool{},
		gen:       map[int64]uint64{},
	}
}

// LoadForProduct pide los lotes de un producto filtrados por scope y
// sustituye los cargados. Si la petición falla, la caducidad más próxima del
// producto queda registrada como desconocida (no se conserva el valor viejo).
// Tiene el mismo guardado por generación que el catálogo: una respuesta que
// llega tras otra carga del mismo producto se descarta.
func (l *Ledger) LoadForProduct(ctx context.Context, productID int64, scope entity.Scope) error {
	l.mu.Lock()
	l.gen[productID]++
	gen := l.gen[productID]
	l.mu.Unlock()

	list, err := l.gw.ListByProduct(ctx, productID, scope)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen[productID] {
		return nil
	}
	l.known[productID] = true
	if err != nil {
		// explícitamente desconocido, no obsoleto
		l.byProduct[productID] = nil
		return err
	}
	l.byProduct[productID] = list
	return nil
}

// Forget descarta todo lo cargado (al cambiar de scope o recargar la lista).
func (l *Ledger) Forget() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.byProduct = map[int64][]entity.Lot{}
	l.known = map[int64]bool{}
}

// Lots devuelve una copia de los lotes cargados del producto.
func (l *Ledger) Lots(productID int64) []entity.Lot {
	l.mu.Lock()
	defer l.mu.Unlock()
	held := l.byProduct[productID]
	out := make([]entity.Lot, len(held))
	copy(out, held)
	return out
}

// NearestExpiry devuelve la caducidad mínima no vacía y su código de lote;
// ok=false si ningún lote tiene fecha o el producto no está cargado.
func (l *Ledger) NearestExpiry(productID int64) (dateISO, lotCode string, ok bool) {
	return lot.NearestExpiry(l.Lots(productID))
}

// WeightedAverageCost devuelve el costo promedio ponderado en céntimos;
// ok=false si no está definido.
func (l *Ledger) WeightedAverageCost(productID int64) (decimal.Decimal, bool) {
	return lot.WeightedAverageCost(l.Lots(productID))
}

// NearestByProduct devuelve el mapa producto→caducidad mínima para los
// productos consultados (vacía si no hay fecha), listo para el filtro y la
// ordenación del catálogo.
func (l *Ledger) NearestByProduct() map[int64]string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[int64]string, len(l.known))
	for id := range l.known {
		date, _, ok := lot.NearestExpiry(l.byProduct[id])
		if !ok {
			out[id] = ""
			continue
		}
		out[id] = date
	}
	return out
}

// AddLot crea un lote (solo manager; código obligatorio) y recarga los lotes
// del producto. La cantidad puede ser cero o positiva.
func (l *Ledger) AddLot(ctx context.Context, productID int64, draft entity.Lot, scope entity.Scope) (*entity.Lot, error) {
	if err := l.requireManager(); err != nil {
		return nil, err
	}
	if err := validateLot(draft); err != nil {
		return nil, err
	}
	created, err := l.gw.Create(ctx, productID, draft)
	if err != nil {
		return nil, err
	}
	if err := l.LoadForProduct(ctx, productID, scope); err != nil {
		return created, err
	}
	return created, nil
}

// UpdateLot persiste el registro completo del lote (solo manager) y recarga.
func (l *Ledger) UpdateLot(ctx context.Context, lt entity.Lot, scope entity.Scope) (*entity.Lot, error) {
	if err := l.requireManager(); err != nil {
		return nil, err
	}
	if err := validateLot(lt); err != nil {
		return nil, err
	}
	updated, err := l.gw.Update(ctx, lt)
	if err != nil {
		return nil, err
	}
	if err := l.LoadForProduct(ctx, lt.ProductID, scope); err != nil {
		return updated, err
	}
	return updated, nil
}

// DeleteLot elimina un lote (solo manager; la confirmación del operador es
// asunto de la vista) y recarga los lotes del producto.
func (l *Ledger) DeleteLot(ctx context.Context, lotID, productID int64, scope entity.Scope) error {
	if err := l.requireManager(); err != nil {
		return err
	}
	if err := l.gw.Delete(ctx, lotID); err != nil {
		return err
	}
	return l.LoadForProduct(ctx, productID, scope)
}

// SearchByCode busca lotes por código entre todos los productos,
// independiente de la lista cargada.
func (l *Ledger) SearchByCode(ctx context.Context, code string, scope entity.Scope) ([]entity.LotSearchResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, &domain.ValidationError{Field: "lot_code", Reason: "no puede estar vacío"}
	}
	return l.gw.SearchByCode(ctx, code, scope)
}

func validateLot(lt entity.Lot) error {
	if strings.TrimSpace(lt.LotCode) == "" {
		return &domain.ValidationError{Field: "lot_code", Reason: "no puede estar vacío"}
	}
	if lt.Quantity < 0 {
		return &domain.ValidationError{Field: "quantity", Reason: "no puede ser negativa"}
	}
	return nil
}

func (l *Ledger) requireManager() error {
	if l.roles.Role() != entity.RoleManager {
		return &domain.PermissionError{Required: entity.RoleManager}
	}
	return nil
}
