package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ludwigkubler/WOLF-APP/internal/application/catalog"
	"github.com/ludwigkubler/WOLF-APP/internal/domain"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/expiry"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/pricing"
)

// listFlags son los filtros comunes de la lista de almacén.
type listFlags struct {
	scope    string
	search   string
	supplier string
	expiry   string
	sortKey  string
	sortDir  string
}

func bindListFlags(fs *flag.FlagSet) *listFlags {
	f := &listFlags{}
	fs.StringVar(&f.scope, "scope", "all", "almacén: all, banco o cantina")
	fs.StringVar(&f.search, "search", "", "término de búsqueda en nombre o proveedor")
	fs.StringVar(&f.supplier, "supplier", "", "filtro exacto de proveedor")
	fs.StringVar(&f.expiry, "expiry", "all", "filtro de caducidad: all, expired, 7 o 30")
	fs.StringVar(&f.sortKey, "sort", "name", "ordenación: name, supplier, expiry o quantity")
	fs.StringVar(&f.sortDir, "dir", "asc", "sentido: asc o desc")
	return f
}

// loadVisible carga catálogo + lotes y devuelve la vista filtrada y ordenada
// junto con el mapa de caducidades mínimas por producto.
func loadVisible(ctx context.Context, deps Deps, f *listFlags) ([]entity.Product, map[int64]string, error) {
	scope := entity.Scope(f.scope)
	if err := deps.Catalog.Load(ctx, scope); err != nil {
		return nil, nil, err
	}

	// precarga perezosa de lotes, una petición por producto; un fallo deja la
	// caducidad de ese producto como desconocida sin tumbar la lista
	deps.Ledger.Forget()
	for _, p := range deps.Catalog.Products() {
		_ = deps.Ledger.LoadForProduct(ctx, p.ID, scope)
	}
	nearest := deps.Ledger.NearestByProduct()

	today := time.Now()
	visible := deps.Catalog.Visible(f.search, f.supplier, expiry.Filter(f.expiry), nearest, today)
	visible = deps.Catalog.Sorted(visible, catalog.SortKey(f.sortKey), catalog.SortDir(f.sortDir), nearest)
	return visible, nearest, nil
}

func cmdProducts(ctx context.Context, deps Deps, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	f := bindListFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	visible, nearest, err := loadVisible(ctx, deps, f)
	if err != nil {
		return err
	}
	printProducts(visible, nearest, time.Now())
	return nil
}

// productFlags cubre el formulario completo de alta/edición.
type productFlags struct {
	name     string
	sku      string
	priceEUR string
	unit     string
	qty      float64
	minQty   float64
	active   bool
	supplier string
	expiry   string
	vat      int
	discount float64
}

func bindProductFlags(fs *flag.FlagSet) *productFlags {
	f := &productFlags{}
	fs.StringVar(&f.name, "name", "", "nombre del producto")
	fs.StringVar(&f.sku, "sku", "", "SKU opcional")
	fs.StringVar(&f.priceEUR, "price", "0", "precio neto en euros por unidad")
	fs.StringVar(&f.unit, "unit", "pz", "unidad de medida")
	fs.Float64Var(&f.qty, "qty", 0, "existencia inicial")
	fs.Float64Var(&f.minQty, "min-qty", 0, "existencia mínima")
	fs.BoolVar(&f.active, "active", true, "producto activo")
	fs.StringVar(&f.supplier, "supplier", "", "proveedor")
	fs.StringVar(&f.expiry, "expiry", "", "caducidad a nivel producto (legado), ISO YYYY-MM-DD")
	fs.IntVar(&f.vat, "vat", 22, "porcentaje de IVA")
	fs.Float64Var(&f.discount, "discount", 0, "porcentaje de descuento")
	return f
}

func (f *productFlags) toEntity(id int64) (entity.Product, error) {
	priceEUR, err := decimal.NewFromString(strings.TrimSpace(f.priceEUR))
	if err != nil {
		return entity.Product{}, &domain.ValidationError{Field: "price", Reason: "no es un importe válido"}
	}
	return entity.Product{
		ID:              id,
		Name:            f.name,
		SKU:             f.sku,
		PriceCents:      pricing.EURToCents(priceEUR),
		Unit:            f.unit,
		Quantity:        f.qty,
		MinQuantity:     f.minQty,
		IsActive:        f.active,
		Supplier:        f.supplier,
		ExpiryDate:      f.expiry,
		VATRate:         f.vat,
		DiscountPercent: f.discount,
	}, nil
}

func cmdProductAdd(ctx context.Context, deps Deps, args []string) error {
	fs := flag.NewFlagSet("product-add", flag.ContinueOnError)
	f := bindProductFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	p, err := f.toEntity(0)
	if err != nil {
		return err
	}
	created, err := deps.Catalog.CreateProduct(ctx, p)
	if err != nil {
		return err
	}
	fmt.Printf("producto creado: #%d %s\n", created.ID, created.Name)
	return nil
}

func cmdProductEdit(ctx context.Context, deps Deps, args []string) error {
	fs := flag.NewFlagSet("product-edit", flag.ContinueOnError)
	id := fs.Int64("id", 0, "ID del producto")
	f := bindProductFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return &domain.ValidationError{Field: "id", Reason: "obligatorio"}
	}
	p, err := f.toEntity(*id)
	if err != nil {
		return err
	}
	updated, err := deps.Catalog.UpdateProduct(ctx, p)
	if err != nil {
		return err
	}
	fmt.Printf("producto actualizado: #%d %s\n", updated.ID, updated.Name)
	return nil
}

func cmdProductDelete(ctx context.Context, deps Deps, args []string) error {
	fs := flag.NewFlagSet("product-del", flag.ContinueOnError)
	id := fs.Int64("id", 0, "ID del producto")
	yes := fs.Bool("yes", false, "confirmar la eliminación")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return &domain.ValidationError{Field: "id", Reason: "obligatorio"}
	}
	if !*yes {
		return &domain.ValidationError{Field: "yes", Reason: "añade -yes para confirmar la eliminación"}
	}
	if err := deps.Catalog.DeleteProduct(ctx, *id); err != nil {
		return err
	}
	fmt.Printf("producto #%d eliminado\n", *id)
	return nil
}

func cmdInventory(ctx context.Context, deps Deps, args []string) error {
	fs := flag.NewFlagSet("inventory", flag.ContinueOnError)
	scope := fs.String("scope", "all", "almacén: all, banco o cantina")
	set := fs.String("set", "", "celdas editadas, formato id=cantidad separadas por coma")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := deps.Catalog.Load(ctx, entity.Scope(*scope)); err != nil {
		return err
	}
	draft := deps.Inventory.StageDraft(deps.Catalog.Products())

	// sobre el borrador sembrado se aplican las celdas tecleadas tal cual;
	// la coerción de valores malos la hace Commit, no la vista
	for _, cell := range strings.Split(*set, ",") {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		id, raw, found := strings.Cut(cell, "=")
		if !found {
			return &domain.ValidationError{Field: "set", Reason: "formato esperado id=cantidad"}
		}
		pid, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
		if err != nil {
			return &domain.ValidationError{Field: "set", Reason: "id no numérico: " + id}
		}
		if _, ok := draft[pid]; !ok {
			return &domain.ValidationError{Field: "set", Reason: "producto fuera de la lista cargada: " + id}
		}
		draft[pid] = strings.TrimSpace(raw)
	}

	updated, err := deps.Inventory.Commit(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Printf("inventario guardado: %d productos sobrescritos\n", len(updated))
	return nil
}

func cmdExport(ctx context.Context, deps Deps, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	f := bindListFlags(fs)
	out := fs.String("out", "magazzino.pdf", "ruta del PDF de salida")
	if err := fs.Parse(args); err != nil {
		return err
	}

	visible, nearest, err := loadVisible(ctx, deps, f)
	if err != nil {
		return err
	}
	doc, err := deps.PDF.Generate(visible, nearest, entity.Scope(f.scope), time.Now())
	if err != nil {
		return err
	}
	if err := writeFile(*out, doc); err != nil {
		return err
	}
	fmt.Printf("exportados %d productos a %s\n", len(visible), *out)
	return nil
}
