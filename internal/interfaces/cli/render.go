package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/ludwigkubler/WOLF-APP/internal/domain/cash"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/expiry"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/pricing"
)

func printProducts(products []entity.Product, nearestByProduct map[int64]string, today time.Time) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tPROVEEDOR\tCANT.\tMÍN.\tCADUCIDAD\tPRECIO FINAL\tACTIVO")
	for _, p := range products {
		final := pricing.FinalPriceCents(p.PriceCents, p.VATRate, p.DiscountPercent)
		active := "sí"
		if !p.IsActive {
			active = "no"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s €\t%s\n",
			p.ID, p.Name, dash(p.Supplier),
			formatQty(p.Quantity), formatQty(p.MinQuantity),
			expiryLabel(nearestByProduct[p.ID], today),
			pricing.FormatEUR(final), active)
	}
	w.Flush()
	fmt.Printf("%d productos\n", len(products))
}

func printLots(lotList []entity.Lot) {
	if len(lotList) == 0 {
		fmt.Println("sin lotes registrados")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCÓDIGO\tPROVEEDOR\tCADUCIDAD\tCANT.\tCOSTO\tUBICACIÓN\tESTADO")
	for _, lt := range lotList {
		cost := "—"
		if lt.CostCents != nil {
			cost = pricing.FormatEUR(pricing.CentsToEUR(*lt.CostCents)) + " €"
		}
		status := string(lt.Status)
		if lt.Status == entity.LotStatusBlocked && lt.BlockReason != "" {
			status += " (" + lt.BlockReason + ")"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			lt.ID, lt.LotCode, dash(lt.Supplier), dash(lt.ExpiryDate),
			formatQty(lt.Quantity), cost, lt.Location, status)
	}
	w.Flush()
}

func printLotSearch(results []entity.LotSearchResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCÓDIGO\tPRODUCTO\tCADUCIDAD\tCANT.\tUBICACIÓN\tESTADO")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.LotCode, r.ProductName, dash(r.ExpiryDate),
			formatQty(r.Quantity), r.Location, r.Status)
	}
	w.Flush()
}

func printCloseouts(list []entity.Closeout) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFECHA\tEFECTIVO\tDATÁFONO\tSATISPAY\tREGISTRADO POR")
	for _, co := range list {
		fmt.Fprintf(w, "%d\t%s\t%.2f €\t%.2f €\t%.2f €\t%s\n",
			co.ID, co.Date, co.CashTotalEUR, co.PosEUR, co.SatispayEUR, dash(co.CreatedBy))
	}
	w.Flush()
}

func printCloseoutDetail(co *entity.Closeout) {
	fmt.Printf("cierre #%d — %s\n", co.ID, co.Date)
	fmt.Printf("efectivo: %.2f €  datáfono: %.2f €  satispay: %.2f €\n",
		co.CashTotalEUR, co.PosEUR, co.SatispayEUR)
	for _, cents := range cash.Denominations {
		k := cash.Key(cents)
		if n := co.Cash[k]; n > 0 {
			fmt.Printf("  %s € × %d\n", k, n)
		}
	}
	if len(co.BottlesFinished) > 0 {
		fmt.Printf("botellas terminadas: %v\n", co.BottlesFinished)
	}
	if len(co.KegsFinished) > 0 {
		fmt.Printf("barriles terminados: %v\n", co.KegsFinished)
	}
	if co.Notes != "" {
		fmt.Printf("notas: %s\n", co.Notes)
	}
	if co.CreatedBy != "" {
		fmt.Printf("registrado por: %s\n", co.CreatedBy)
	}
}

// expiryLabel pinta la caducidad mínima de un producto con su clasificación.
func expiryLabel(dateISO string, today time.Time) string {
	if dateISO == "" {
		return "—"
	}
	switch expiry.Classify(expiry.DaysUntil(dateISO, today)) {
	case expiry.BucketExpired:
		return dateISO + " ¡caducado!"
	case expiry.BucketToday:
		return dateISO + " (hoy)"
	case expiry.BucketWithin7:
		return dateISO + " (<7d)"
	case expiry.BucketWithin30:
		return dateISO + " (<30d)"
	default:
		return dateISO
	}
}

func formatQty(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d", int64(q))
	}
	return fmt.Sprintf("%.2f", q)
}

func dash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
