package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ludwigkubler/WOLF-APP/internal/domain"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/cash"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/pricing"
)

// parseCash interpreta el conteo tecleado, formato "0.50=10,2=4": clave de
// denominación = nº de piezas. Las claves deben ser denominaciones conocidas.
func parseCash(raw string) (map[string]int, error) {
	counts := make(map[string]int)
	for _, cell := range strings.Split(raw, ",") {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		key, val, found := strings.Cut(cell, "=")
		if !found {
			return nil, &domain.ValidationError{Field: "cash", Reason: "formato esperado denominación=piezas"}
		}
		key = strings.TrimSpace(key)
		if !knownDenomination(key) {
			return nil, &domain.ValidationError{Field: "cash", Reason: "denominación desconocida: " + key}
		}
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil || n < 0 {
			return nil, &domain.ValidationError{Field: "cash", Reason: "nº de piezas inválido: " + val}
		}
		counts[key] = n
	}
	return counts, nil
}

func knownDenomination(key string) bool {
	for _, cents := range cash.Denominations {
		if cash.Key(cents) == key {
			return true
		}
	}
	return false
}

// parseEURCents convierte un importe en euros tecleado a céntimos.
func parseEURCents(raw, field string) (int64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	eur, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, &domain.ValidationError{Field: field, Reason: "no es un importe válido"}
	}
	return pricing.EURToCents(eur), nil
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func cmdCloseoutAdd(ctx context.Context, deps Deps, args []string) error {
	fs := flag.NewFlagSet("closeout-add", flag.ContinueOnError)
	date := fs.String("date", time.Now().Format("2006-01-02"), "fecha del cierre, ISO YYYY-MM-DD")
	cashRaw := fs.String("cash", "", "conteo de efectivo, formato 0.50=10,2=4")
	pos := fs.String("pos", "", "total datáfono en euros")
	satispay := fs.String("satispay", "", "total Satispay en euros")
	bottles := fs.String("bottles", "", "botellas terminadas, separadas por coma")
	kegs := fs.String("kegs", "", "barriles terminados, separados por coma")
	notes := fs.String("notes", "", "notas libres")
	if err := fs.Parse(args); err != nil {
		return err
	}

	counts, err := parseCash(*cashRaw)
	if err != nil {
		return err
	}
	posCents, err := parseEURCents(*pos, "pos")
	if err != nil {
		return err
	}
	satispayCents, err := parseEURCents(*satispay, "satispay")
	if err != nil {
		return err
	}

	fmt.Printf("efectivo contado: %s €\n", deps.Closeouts.PreviewTotalEUR(counts).StringFixed(2))

	created, err := deps.Closeouts.Create(ctx, entity.CloseoutDraft{
		Date:                *date,
		Cash:                counts,
		PosAmountCents:      posCents,
		SatispayAmountCents: satispayCents,
		BottlesFinished:     splitList(*bottles),
		KegsFinished:        splitList(*kegs),
		Notes:               *notes,
	})
	if err != nil {
		return err
	}
	fmt.Printf("cierre registrado: #%d %s\n", created.ID, created.Date)
	return nil
}

func cmdCloseoutList(ctx context.Context, deps Deps, args []string) error {
	fs := flag.NewFlagSet("closeouts", flag.ContinueOnError)
	start := fs.String("start", "", "fecha inicial ISO, vacío = sin límite")
	end := fs.String("end", "", "fecha final ISO, vacío = sin límite")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := deps.Closeouts.List(ctx, *start, *end)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("sin cierres en el rango")
		return nil
	}
	printCloseouts(list)
	return nil
}

func cmdCloseoutGet(ctx context.Context, deps Deps, args []string) error {
	if len(args) != 1 {
		return &domain.ValidationError{Field: "id", Reason: "obligatorio"}
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return &domain.ValidationError{Field: "id", Reason: "no numérico"}
	}

	co, err := deps.Closeouts.Get(ctx, id)
	if err != nil {
		return err
	}
	printCloseoutDetail(co)
	return nil
}
