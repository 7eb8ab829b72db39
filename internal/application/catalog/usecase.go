// Package catalog mantiene el conjunto de productos cargado para un scope de
// almacén y deriva las vistas filtradas y ordenadas sin mutar el conjunto.
package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ludwigkubler/WOLF-APP/internal/domain"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/expiry"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/gateway"
)

// RoleSource entrega el rol de la sesión activa para el guardado de cliente.
type RoleSource interface {
	Role() string
}

// SortKey es la columna de ordenación de la lista.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortBySupplier SortKey = "supplier"
	SortByExpiry   SortKey = "expiry"
	SortByQuantity SortKey = "quantity"
)

// SortDir es el sentido de ordenación. Solo invierte la comparación:
// los valores vacíos van siempre al final, suba o baje la columna.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// Catalog es el caso de uso de la lista de almacén. El conjunto cargado es
// propiedad exclusiva del catálogo; las vistas derivadas trabajan sobre
// copias.
type Catalog struct {
	gw    gateway.ProductGateway
	roles RoleSource
	coll  *collate.Collator

	mu       sync.Mutex
	products []entity.Product
	scope    entity.Scope
	gen      uint64 // descarta respuestas de cargas ya superadas
}

// New construye el catálogo. La etiqueta de locale gobierna la ordenación de
// cadenas (comparación laxa: sin distinguir mayúsculas ni acentos).
func New(gw gateway.ProductGateway, roles RoleSource, locale string) *Catalog {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Italian
	}
	return &Catalog{
		gw:    gw,
		roles: roles,
		coll:  collate.New(tag, collate.Loose),
		scope: entity.ScopeAll,
	}
}

// Load pide los productos del scope y sustituye el conjunto. Si la petición
// falla, el conjunto anterior queda intacto y el error sube para que la vista
// muestre el aviso sin vaciar datos. Cada carga lleva un número de generación
// monótono: una respuesta que llega después de haberse lanzado otra carga se
// descarta en lugar de pisar el estado más nuevo.
func (c *Catalog) Load(ctx context.Context, scope entity.Scope) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	list, err := c.gw.List(ctx, scope)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// respuesta obsoleta: hay una carga más reciente en curso o aplicada
		return nil
	}
	if err != nil {
		return err
	}
	c.products = list
	c.scope = scope
	return nil
}

// Reload repite la carga con el scope vigente.
func (c *Catalog) Reload(ctx context.Context) error {
	c.mu.Lock()
	scope := c.scope
	c.mu.Unlock()
	return c.Load(ctx, scope)
}

// Products devuelve una copia del conjunto cargado.
func (c *Catalog) Products() []entity.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entity.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Scope devuelve el scope de la última carga aplicada.
func (c *Catalog) Scope() entity.Scope {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scope
}

// Visible devuelve la subsecuencia de productos que pasa los tres filtros a
// la vez: proveedor exacto (vacío = todos), término de búsqueda contenido en
// nombre o proveedor sin distinguir mayúsculas (vacío = todos), y filtro de
// caducidad sobre la caducidad más próxima por producto (clave ausente o
// vacía = sin fecha).
func (c *Catalog) Visible(search, supplierFilter string, f expiry.Filter, nearestByProduct map[int64]string, today time.Time) []entity.Product {
	term := strings.ToLower(strings.TrimSpace(search))

	var out []entity.Product
	for _, p := range c.Products() {
		if supplierFilter != "" && p.Supplier != supplierFilter {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Supplier), term) {
			continue
		}
		if !expiry.Matches(f, expiry.DaysUntil(nearestByProduct[p.ID], today)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sorted ordena de forma estable por la columna pedida. Cadenas con el
// collator del locale; los valores vacíos (sin proveedor, sin caducidad)
// van siempre al final, sea cual sea la dirección.
func (c *Catalog) Sorted(items []entity.Product, key SortKey, dir SortDir, nearestByProduct map[int64]string) []entity.Product {
	out := make([]entity.Product, len(items))
	copy(out, items)

	desc := dir == SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch key {
		case SortBySupplier:
			return c.lessStringNullLast(a.Supplier, b.Supplier, desc)
		case SortByExpiry:
			return c.lessStringNullLast(nearestByProduct[a.ID], nearestByProduct[b.ID], desc)
		case SortByQuantity:
			if a.Quantity == b.Quantity {
				return false
			}
			if desc {
				return a.Quantity > b.Quantity
			}
			return a.Quantity < b.Quantity
		default: // SortByName
			return c.lessStringNullLast(a.Name, b.Name, desc)
		}
	})
	return out
}

// lessStringNullLast compara con el collator dejando los vacíos al final;
// desc solo invierte la comparación entre valores presentes.
func (c *Catalog) lessStringNullLast(a, b string, desc bool) bool {
	if a == b {
		return false
	}
	if a == "" {
		return false
	}
	if b == "" {
		return true
	}
	cmp := c.coll.CompareString(a, b)
	if desc {
		return cmp > 0
	}
	return cmp < 0
}

// DistinctSuppliers devuelve los proveedores presentes en el conjunto,
// sin vacíos, sin duplicados y ordenados.
func (c *Catalog) DistinctSuppliers() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range c.Products() {
		if p.Supplier == "" || seen[p.Supplier] {
			continue
		}
		seen[p.Supplier] = true
		out = append(out, p.Supplier)
	}
	sort.Slice(out, func(i, j int) bool { return c.coll.CompareString(out[i], out[j]) < 0 })
	return out
}

// CreateProduct da de alta un producto (solo manager) y recarga la lista.
func (c *Catalog) CreateProduct(ctx context.Context, p entity.Product) (*entity.Product, error) {
	if err := c.requireManager(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "no puede estar vacío"}
	}
	created, err := c.gw.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	// recarga completa en lugar de parchear el estado local: evita divergencia
	// con el servidor a costa de una vuelta extra
	if err := c.Reload(ctx); err != nil {
		return created, err
	}
	return created, nil
}

// UpdateProduct persiste el registro completo (solo manager) y recarga.
func (c *Catalog) UpdateProduct(ctx context.Context, p entity.Product) (*entity.Product, error) {
	if err := c.requireManager(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "no puede estar vacío"}
	}
	updated, err := c.gw.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := c.Reload(ctx); err != nil {
		return updated, err
	}
	return updated, nil
}

// DeleteProduct elimina el producto (solo manager) y recarga.
func (c *Catalog) DeleteProduct(ctx context.Context, id int64) error {
	if err := c.requireManager(); err != nil {
		return err
	}
	if err := c.gw.Delete(ctx, id); err != nil {
		return err
	}
	return c.Reload(ctx)
}

func (c *Catalog) requireManager() error {
	if c.roles.Role() != entity.RoleManager {
		return &domain.PermissionError{Required: entity.RoleManager}
	}
	return nil
}
