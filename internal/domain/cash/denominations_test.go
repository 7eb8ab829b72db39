package cash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ludwigkubler/WOLF-APP/internal/domain/cash"
)

func TestKey_FormatoPorDenominacion(t *testing.T) {
	assert.Equal(t, "0.01", cash.Key(1))
	assert.Equal(t, "0.50", cash.Key(50))
	assert.Equal(t, "1", cash.Key(100))
	assert.Equal(t, "2", cash.Key(200))
	assert.Equal(t, "50", cash.Key(5000))
}

func TestTotalCents_SumaConteo(t *testing.T) {
	counts := map[string]int{
		"0.50": 10, // 500
		"2":    4,  // 800
		"20":   1,  // 2000
	}
	assert.Equal(t, int64(3300), cash.TotalCents(counts))
}

func TestTotalCents_IgnoraClavesExtranasYNegativos(t *testing.T) {
	counts := map[string]int{
		"1":    5,
		"0.03": 99, // no existe la moneda de tres céntimos
		"2":    -7, // un conteo negativo no resta
	}
	assert.Equal(t, int64(500), cash.TotalCents(counts))
}

func TestNormalize_CompletaYLimpia(t *testing.T) {
	out := cash.Normalize(map[string]int{"1": 3, "0.03": 9, "2": -1})

	assert.Len(t, out, len(cash.Denominations),
		"todas las denominaciones deben estar presentes")
	assert.Equal(t, 3, out["1"])
	assert.Equal(t, 0, out["2"], "los negativos se normalizan a cero")
	assert.NotContains(t, out, "0.03")
	assert.Equal(t, 0, out["0.01"], "las faltantes quedan a cero")
}
