// Package expiry clasifica fechas de caducidad en cubos discretos de urgencia.
// Se usa tanto para las insignias de la vista como para el filtro de caducidad
// de la lista de almacén; las dos semánticas son distintas a propósito (el
// filtro incluye el día 0, la insignia lo distingue).
package expiry

import (
	"math"
	"time"
)

// NoExpiry es el valor centinela para "sin fecha": una caducidad nula o no
// parseable se trata como infinitamente lejana.
const NoExpiry = math.MaxInt32

const isoDate = "2006-01-02"

// DaysUntil devuelve los días de calendario entre hoy y la fecha objetivo,
// ignorando la hora del día (negativo si ya pasó). Una fecha vacía o no
// parseable devuelve NoExpiry.
func DaysUntil(dateISO string, today time.Time) int {
	if dateISO == "" {
		return NoExpiry
	}
	target, err := time.Parse(isoDate, dateISO)
	if err != nil {
		return NoExpiry
	}
	// Ambas fechas a medianoche UTC: la diferencia queda en múltiplos exactos
	// de 24 h sin sorpresas de horario de verano.
	t0 := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(target.Sub(t0).Hours() / 24)
}

// Bucket es el cubo de urgencia de una caducidad.
type Bucket string

const (
	BucketNone     Bucket = "none"     // sin fecha
	BucketExpired  Bucket = "expired"  // ya caducado
	BucketToday    Bucket = "today"    // caduca hoy
	BucketWithin7  Bucket = "within7"  // 1..7 días
	BucketWithin30 Bucket = "within30" // 8..30 días
	BucketBeyond30 Bucket = "beyond30" // más de 30 días
)

// Classify es total sobre enteros ∪ {NoExpiry}: cada valor cae exactamente
// en un cubo.
func Classify(days int) Bucket {
	switch {
	case days == NoExpiry:
		return BucketNone
	case days < 0:
		return BucketExpired
	case days == 0:
		return BucketToday
	case days <= 7:
		return BucketWithin7
	case days <= 30:
		return BucketWithin30
	default:
		return BucketBeyond30
	}
}

// Filter es el filtro de caducidad de la lista de almacén. A diferencia de
// los cubos de la insignia, "entre 7/30 días" incluye el día 0.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterExpired  Filter = "expired"
	FilterWithin7  Filter = "7"
	FilterWithin30 Filter = "30"
)

// Matches indica si un producto con la caducidad dada pasa el filtro.
func Matches(f Filter, days int) bool {
	switch f {
	case FilterAll, "":
		return true
	case FilterExpired:
		return days != NoExpiry && days < 0
	case FilterWithin7:
		return days >= 0 && days <= 7
	case FilterWithin30:
		return days >= 0 && days <= 30
	default:
		return false
	}
}
