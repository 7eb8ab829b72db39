package entity

// Closeout es el cierre de caja de fin de jornada: conteo de efectivo por
// denominación más los importes de datáfono y Satispay. Los totales en euros
// los calcula y devuelve el colaborador; el conteo local sirve de verificación.
type Closeout struct {
	ID              int64
	Date            string         // ISO YYYY-MM-DD
	Cash            map[string]int // clave de denominación -> nº de piezas
	CashTotalEUR    float64
	PosEUR          float64
	SatispayEUR     float64
	BottlesFinished []string
	KegsFinished    []string
	Notes           string
	CreatedBy       string
}

// CloseoutDraft son los datos que introduce el operador para crear un cierre.
type CloseoutDraft struct {
	Date                string
	Cash                map[string]int
	PosAmountCents      int64
	SatispayAmountCents int64
	BottlesFinished     []string
	KegsFinished        []string
	Notes               string
}
