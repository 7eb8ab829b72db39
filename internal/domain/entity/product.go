package entity

// Product representa un producto del almacén tal como lo expone el
// colaborador REST. Los precios se manejan en céntimos (unidades menores)
// para evitar flotantes en dinero; Quantity es la existencia agregada.
//
// Invariante blando: Quantity refleja la última sobrescritura de inventario
// o la suma de los lotes en el momento de crearlos. El sistema NO fuerza
// que coincida con la suma de lotes; la reconciliación es manual.
type Product struct {
	ID              int64
	Name            string
	SKU             string
	PriceCents      int64
	Unit            string  // etiqueta de unidad de medida ("pz", "lt", ...)
	Quantity        float64 // existencia agregada, no negativa
	MinQuantity     float64
	IsActive        bool
	Supplier        string // vacío = sin proveedor
	ExpiryDate      string // ISO YYYY-MM-DD; campo legado a nivel producto, superado por los lotes
	VATRate         int    // porcentaje de IVA, no negativo
	DiscountPercent float64
}

// InventoryItem es una entrada de la sobrescritura masiva de inventario:
// la nueva existencia agregada de un producto.
type InventoryItem struct {
	ID       int64
	Quantity float64
}
