// Package pricing calcula el precio final de venta de un producto
// (servicio de dominio, funciones puras sobre decimal).
package pricing

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// FinalPrice aplica IVA y descuento al precio neto:
//
//	bruto = neto × (1 + iva/100)
//	final = bruto × (1 − descuento/100)
//
// No se redondea aquí; el redondeo a dos decimales se hace solo al formatear
// para mostrar. IVA o descuento negativos no se validan: se propagan
// aritméticamente.
func FinalPrice(net, vatPercent, discountPercent decimal.Decimal) decimal.Decimal {
	gross := net.Mul(decimal.NewFromInt(1).Add(vatPercent.Div(oneHundred)))
	return gross.Mul(decimal.NewFromInt(1).Sub(discountPercent.Div(oneHundred)))
}

// FinalPriceCents es la conveniencia sobre los campos del producto: neto en
// céntimos, IVA entero y descuento en porcentaje real. Devuelve euros.
func FinalPriceCents(netCents int64, vatRate int, discountPercent float64) decimal.Decimal {
	net := decimal.NewFromInt(netCents).Div(oneHundred)
	return FinalPrice(net, decimal.NewFromInt(int64(vatRate)), decimal.NewFromFloat(discountPercent))
}

// FormatEUR formatea un importe para mostrar, con dos decimales.
func FormatEUR(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// CentsToEUR convierte céntimos a euros exactos.
func CentsToEUR(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(oneHundred)
}

// EURToCents convierte un importe en euros a céntimos, redondeando al céntimo
// más cercano (mismo comportamiento que el formulario de edición).
func EURToCents(eur decimal.Decimal) int64 {
	return eur.Mul(oneHundred).Round(0).IntPart()
}
