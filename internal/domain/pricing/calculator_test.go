package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ludwigkubler/WOLF-APP/internal/domain/pricing"
)

func TestFinalPriceCents_SoloIVA(t *testing.T) {
	// 100.00 € netos + 22% IVA = 122.00 €
	got := pricing.FinalPriceCents(10000, 22, 0)
	assert.Equal(t, "122.00", pricing.FormatEUR(got))
}

func TestFinalPriceCents_IVAYDescuento(t *testing.T) {
	// 100.00 € netos + 22% IVA − 10% de descuento = 109.80 €
	got := pricing.FinalPriceCents(10000, 22, 10)
	assert.Equal(t, "109.80", pricing.FormatEUR(got))
}

func TestFinalPriceCents_NetoCero(t *testing.T) {
	got := pricing.FinalPriceCents(0, 22, 50)
	assert.Equal(t, "0.00", pricing.FormatEUR(got))
}

func TestFinalPrice_SinRedondeoIntermedio(t *testing.T) {
	// 0.99 € + 22% = 1.2078 €: el valor exacto se conserva y solo se
	// redondea al formatear
	got := pricing.FinalPrice(decimal.RequireFromString("0.99"), decimal.NewFromInt(22), decimal.Zero)
	assert.True(t, got.Equal(decimal.RequireFromString("1.2078")),
		"el cálculo no debe redondear, obtuvo %s", got)
	assert.Equal(t, "1.21", pricing.FormatEUR(got))
}

func TestFinalPrice_ValoresNegativosSePropagan(t *testing.T) {
	// un descuento negativo actúa como recargo; no se valida aquí
	got := pricing.FinalPriceCents(10000, 0, -10)
	assert.Equal(t, "110.00", pricing.FormatEUR(got))
}

func TestEURToCents_RedondeoAlCentimo(t *testing.T) {
	assert.Equal(t, int64(1050), pricing.EURToCents(decimal.RequireFromString("10.50")))
	assert.Equal(t, int64(1000), pricing.EURToCents(decimal.RequireFromString("9.999")))
	assert.Equal(t, int64(123), pricing.EURToCents(decimal.RequireFromString("1.234")))
}

func TestCentsToEUR_Exacto(t *testing.T) {
	assert.Equal(t, "12.30", pricing.FormatEUR(pricing.CentsToEUR(1230)))
	assert.Equal(t, "0.01", pricing.FormatEUR(pricing.CentsToEUR(1)))
}
