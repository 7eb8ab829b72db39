package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ludwigkubler/WOLF-APP/internal/domain"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/pricing"
)

func cmdLots(ctx context.Context, deps Deps, args []string) error {
	fs := flag.NewFlagSet("lots", flag.ContinueOnError)
	scope := fs.String("scope", "all", "almacén: all, banco o cantina")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return &domain.ValidationError{Field: "id-producto", Reason: "obligatorio"}
	}
	productID, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return &domain.ValidationError{Field: "id-producto", Reason: "no numérico"}
	}

	if err := deps.Ledger.LoadForProduct(ctx, productID, entity.Scope(*scope)); err != nil {
		return err
	}
	lotList := deps.Ledger.Lots(productID)
	printLots(lotList)

	if date, code, ok := deps.Ledger.NearestExpiry(productID); ok {
		fmt.Printf("caducidad mínima: %s (lote %s)\n", date, code)
	} else {
		fmt.Println("caducidad mínima: —")
	}
	if avg, ok := deps.Ledger.WeightedAverageCost(productID); ok {
		fmt.Printf("costo promedio ponderado: %s €\n", avg.Div(decimal.NewFromInt(100)).StringFixed(2))
	} else {
		fmt.Println("costo promedio ponderado: sin costos registrados")
	}
	return nil
}

// lotFlags cubre el formulario de alta/edición de lote.
type lotFlags struct {
	code        string
	supplier    string
	expiry      string
	qty         float64
	costEUR     string
	location    string
	status      string
	blockReason string
}

func bindLotFlags(fs *flag.FlagSet) *lotFlags {
	f := &lotFlags{}
	fs.StringVar(&f.code, "code", "", "código del lote")
	fs.StringVar(&f.supplier, "supplier", "", "proveedor del lote")
	fs.StringVar(&f.expiry, "expiry", "", "caducidad ISO YYYY-MM-DD, vacío = sin caducidad")
	fs.Float64Var(&f.qty, "qty", 0, "cantidad del lote")
	fs.StringVar(&f.costEUR, "cost", "", "costo unitario en euros, vacío = sin costo")
	fs.StringVar(&f.location, "location", "generale", "ubicación: generale, banco o cantina")
	fs.StringVar(&f.status, "status", "ok", "estado: ok, blocked o discarded")
	fs.StringVar(&f.blockReason, "reason", "", "motivo de bloqueo, solo con -status blocked")
	return f
}

func (f *lotFlags) toEntity(id, productID int64) (entity.Lot, error) {
	var cost *int64
	if f.costEUR != "" {
		eur, err := decimal.NewFromString(strings.TrimSpace(f.costEUR))
		if err != nil {
			return entity.Lot{}, &domain.ValidationError{Field: "cost", Reason: "no es un importe válido"}
		}
		cents := pricing.EURToCents(eur)
		cost = &cents
	}
	return entity.Lot{
		ID:          id,
		ProductID:   productID,
		LotCode:     f.code,
		Supplier:    f.supplier,
		ExpiryDate:  f.expiry,
		Quantity:    f.qty,
		CostCents:   cost,
		Location:    entity.Location(f.location),
		Status:      entity.LotStatus(f.status),
		BlockReason: f.blockReason,
	}, nil
}

func cmdLotAdd(ctx context.Context, deps Deps, args []string) error {
	fs := flag.NewFlagSet("lot-add", flag.ContinueOnError)
	productID := fs.Int64("product", 0, "ID del producto")
	scope := fs.String("scope", "all", "almacén: all, banco o cantina")
	f := bindLotFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *productID <= 0 {
		return &domain.ValidationError{Field: "product", Reason: "obligatorio"}
	}
	lt, err := f.toEntity(0, *productID)
	if err != nil {
		return err
	}
	created, err := deps.Ledger.AddLot(ctx, *productID, lt, entity.Scope(*scope))
	if err != nil {
		return err
	}
	fmt.Printf("lote creado: #%d %s\n", created.ID, created.LotCode)
	return nil
}

func cmdLotEdit(ctx context.Context, deps Deps, args []string) error {
	fs := flag.NewFlagSet("lot-edit", flag.ContinueOnError)
	id := fs.Int64("id", 0, "ID del lote")
	productID := fs.Int64("product", 0, "ID del producto al que pertenece")
	scope := fs.String("scope", "all", "almacén: all, banco o cantina")
	f := bindLotFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 || *productID <= 0 {
		return &domain.ValidationError{Field: "id", Reason: "-id y -product son obligatorios"}
	}
	lt, err := f.toEntity(*id, *productID)
	if err != nil {
		return err
	}
	updated, err := deps.Ledger.UpdateLot(ctx, lt, entity.Scope(*scope))
	if err != nil {
		return err
	}
	fmt.Printf("lote actualizado: #%d %s\n", updated.ID, updated.LotCode)
	return nil
}

func cmdLotDelete(ctx context.Context, deps Deps, args []string) error {
	fs := flag.NewFlagSet("lot-del", flag.ContinueOnError)
	id := fs.Int64("id", 0, "ID del lote")
	productID := fs.Int64("product", 0, "ID del producto al que pertenece")
	scope := fs.String("scope", "all", "almacén: all, banco o cantina")
	yes := fs.Bool("yes", false, "confirmar la eliminación")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 || *productID <= 0 {
		return &domain.ValidationError{Field: "id", Reason: "-id y -product son obligatorios"}
	}
	if !*yes {
		return &domain.ValidationError{Field: "yes", Reason: "añade -yes para confirmar la eliminación"}
	}
	if err := deps.Ledger.DeleteLot(ctx, *id, *productID, entity.Scope(*scope)); err != nil {
		return err
	}
	fmt.Printf("lote #%d eliminado\n", *id)
	return nil
}

func cmdLotFind(ctx context.Context, deps Deps, args []string) error {
	fs := flag.NewFlagSet("lot-find", flag.ContinueOnError)
	scope := fs.String("scope", "all", "almacén: all, banco o cantina")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return &domain.ValidationError{Field: "código", Reason: "obligatorio"}
	}

	results, err := deps.Ledger.SearchByCode(ctx, fs.Arg(0), entity.Scope(*scope))
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("sin coincidencias")
		return nil
	}
	printLotSearch(results)
	return nil
}
