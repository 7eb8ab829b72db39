// Package exportpdf genera el informe PDF de la lista de almacén: la vista
// filtrada y ordenada con caducidad más próxima, precio final y existencias.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Lista de magazzino + almacén + fecha de emisión    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Proveedor | Caducidad | Q.tà | Precio    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: nº de productos visibles                              │
//	└─────────────────────────────────────────────────────────────┘
package exportpdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/expiry"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/pricing"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 41, Blue: 59}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Generator produce el PDF de la lista de almacén usando Maroto v2.
type Generator struct{}

// NewGenerator construye el generador.
func NewGenerator() *Generator { return &Generator{} }

// Generate genera el PDF con los productos ya filtrados y ordenados por la
// vista y devuelve sus bytes. nearestByProduct lleva la caducidad más próxima
// por producto (vacía = sin fecha).
func (g *Generator) Generate(products []entity.Product, nearestByProduct map[int64]string, scope entity.Scope, today time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista magazzino", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(scope, today))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p, nearestByProduct[p.ID], today))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("exportpdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y almacén + fecha de emisión (der).
func headerRow(scope entity.Scope, today time.Time) core.Row {
	scopeLabel := "Tutti i magazzini"
	if p := scope.Param(); p != "" {
		scopeLabel = "Magazzino: " + p
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Lista magazzino", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(scopeLabel, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Emesso: "+today.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right}
	return row.New(7).Add(
		col.New(4).Add(text.New("Prodotto", header)),
		col.New(3).Add(text.New("Fornitore", header)),
		col.New(2).Add(text.New("Scadenza min.", header)),
		col.New(1).Add(text.New("Q.tà", headerRight)),
		col.New(2).Add(text.New("Prezzo finale", headerRight)),
	)
}

func productRow(p entity.Product, nearestISO string, today time.Time) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	cellRight := props.Text{Size: 8, Top: 1, Align: align.Right}

	price := pricing.FormatEUR(pricing.FinalPriceCents(p.PriceCents, p.VATRate, p.DiscountPercent))
	return row.New(6).Add(
		col.New(4).Add(text.New(p.Name, cell)),
		col.New(3).Add(text.New(orDash(p.Supplier), cell)),
		col.New(2).Add(text.New(expiryLabel(nearestISO, today), cell)),
		col.New(1).Add(text.New(fmt.Sprintf("%g", p.Quantity), cellRight)),
		col.New(2).Add(text.New(price+" €", cellRight)),
	)
}

func footerRow(count int) core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Prodotti visibili: %d", count), props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		),
	)
}

// expiryLabel combina fecha y cubo de urgencia, como la insignia de la vista.
func expiryLabel(nearestISO string, today time.Time) string {
	days := expiry.DaysUntil(nearestISO, today)
	switch expiry.Classify(days) {
	case expiry.BucketNone:
		return "—"
	case expiry.BucketExpired:
		return nearestISO + " (scaduto)"
	case expiry.BucketToday:
		return nearestISO + " (oggi)"
	default:
		return fmt.Sprintf("%s (%dg)", nearestISO, days)
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
