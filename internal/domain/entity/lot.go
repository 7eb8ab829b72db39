package entity

// Location es el almacén físico donde vive un lote o al que se restringe
// una consulta. Los valores en el cable son los del colaborador.
type Location string

const (
	LocationGeneral Location = "generale" // depósito general
	LocationCounter Location = "banco"    // mostrador / barra
	LocationCellar  Location = "cantina"  // bodega
)

// Scope es el filtro de almacén de las consultas de productos y lotes.
// ScopeAll no añade parámetro a la petición.
type Scope string

const (
	ScopeAll     Scope = "all"
	ScopeCounter Scope = Scope(LocationCounter)
	ScopeCellar  Scope = Scope(LocationCellar)
)

// Param devuelve el valor del parámetro location, o vacío si el scope es all.
func (s Scope) Param() string {
	if s == ScopeAll || s == "" {
		return ""
	}
	return string(s)
}

// LotStatus es el estado logístico de un lote.
type LotStatus string

const (
	LotStatusOK        LotStatus = "ok"        // utilizable
	LotStatusBlocked   LotStatus = "blocked"   // bloqueado
	LotStatusDiscarded LotStatus = "discarded" // descartado
)

// Lot representa una partida (batch) de un producto con su propia caducidad,
// cantidad, costo y ubicación, distinta de la existencia agregada del producto.
// LotCode lo introduce el operador; único por producto por convención, no
// forzado. BlockReason se exige por convención cuando Status != ok.
type Lot struct {
	ID          int64
	ProductID   int64
	LotCode     string
	Supplier    string // vacío = hereda/sin proveedor
	ExpiryDate  string // ISO YYYY-MM-DD; vacío = sin caducidad
	Quantity    float64
	CostCents   *int64 // nil = sin costo registrado
	Location    Location
	Status      LotStatus
	BlockReason string
}

// LotSearchResult es un lote encontrado por la búsqueda global por código,
// enriquecido con el nombre del producto al que pertenece.
type LotSearchResult struct {
	Lot
	ProductName string
}
