// Package cash suma el conteo de efectivo del cierre de caja por
// denominación (servicio de dominio, funciones puras).
package cash

import "github.com/shopspring/decimal"

// Denominations son las denominaciones de euro aceptadas en el conteo,
// en céntimos y de menor a mayor. Las claves del mapa del colaborador son
// "0.01".."0.50" para moneda fraccionaria y "1".."50" para el resto.
var Denominations = []int64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000}

// Key devuelve la clave con la que viaja una denominación en céntimos:
// dos decimales por debajo del euro, entero a partir del euro.
func Key(cents int64) string {
	d := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
	if cents < 100 {
		return d.StringFixed(2)
	}
	return d.String()
}

// TotalCents suma el conteo completo en céntimos. Solo cuentan las claves de
// denominaciones conocidas; conteos negativos o claves extrañas se ignoran.
func TotalCents(counts map[string]int) int64 {
	var total int64
	for _, cents := range Denominations {
		n := counts[Key(cents)]
		if n <= 0 {
			continue
		}
		total += cents * int64(n)
	}
	return total
}

// Normalize devuelve el conteo con todas las denominaciones presentes
// (faltantes a cero) y sin claves desconocidas, como hace el colaborador al
// responder.
func Normalize(counts map[string]int) map[string]int {
	out := make(map[string]int, len(Denominations))
	for _, cents := range Denominations {
		k := Key(cents)
		n := counts[k]
		if n < 0 {
			n = 0
		}
		out[k] = n
	}
	return out
}
