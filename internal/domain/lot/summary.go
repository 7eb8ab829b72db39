// Package lot deriva los valores agregados de la colección de lotes de un
// producto: caducidad más próxima y costo promedio ponderado (servicio de
// dominio, funciones puras).
package lot

import (
	"github.com/shopspring/decimal"

	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
)

// NearestExpiry devuelve la fecha de caducidad mínima entre los lotes con
// fecha no vacía y el código del lote asociado; ok=false si ningún lote tiene
// fecha. El formato ISO hace que la comparación lexicográfica sea la
// cronológica. Empate en fecha: gana el código de lote lexicográficamente
// menor, para que el resultado sea determinista sea cual sea el orden en que
// llegaron los lotes.
//
// El estado del lote se ignora a propósito: un lote bloqueado o descartado
// con la caducidad más próxima sigue ganando la casilla (comportamiento
// vigente, candidato a cambio de producto).
func NearestExpiry(lots []entity.Lot) (dateISO, lotCode string, ok bool) {
	for _, l := range lots {
		if l.ExpiryDate == "" {
			continue
		}
		if !ok || l.ExpiryDate < dateISO || (l.ExpiryDate == dateISO && l.LotCode < lotCode) {
			dateISO, lotCode, ok = l.ExpiryDate, l.LotCode, true
		}
	}
	return dateISO, lotCode, ok
}

// WeightedAverageCost calcula Σ(costo×cantidad)/Σ(cantidad) sobre los lotes
// con costo registrado; los lotes sin costo no entran ni en el numerador ni
// en el denominador. ok=false si ningún lote tiene costo o la suma de
// cantidades de los lotes con costo es cero. El resultado está en céntimos.
func WeightedAverageCost(lots []entity.Lot) (costCents decimal.Decimal, ok bool) {
	num := decimal.Zero
	den := decimal.Zero
	for _, l := range lots {
		if l.CostCents == nil {
			continue
		}
		qty := decimal.NewFromFloat(l.Quantity)
		num = num.Add(decimal.NewFromInt(*l.CostCents).Mul(qty))
		den = den.Add(qty)
	}
	if den.IsZero() {
		return decimal.Zero, false
	}
	return num.Div(den), true
}

// TotalQuantity suma las cantidades de todos los lotes. Es el valor con el
// que el servidor realinea la existencia agregada tras crear, editar o
// borrar un lote.
func TotalQuantity(lots []entity.Lot) float64 {
	var total float64
	for _, l := range lots {
		total += l.Quantity
	}
	return total
}
