package expiry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ludwigkubler/WOLF-APP/internal/domain/expiry"
)

var hoy = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func TestDaysUntil_FechaDeHoy(t *testing.T) {
	assert.Equal(t, 0, expiry.DaysUntil("2025-06-15", hoy),
		"la fecha de hoy debe dar cero días, independiente de la hora")
}

func TestDaysUntil_PasadoYFuturo(t *testing.T) {
	assert.Equal(t, -5, expiry.DaysUntil("2025-06-10", hoy))
	assert.Equal(t, 7, expiry.DaysUntil("2025-06-22", hoy))
	assert.Equal(t, 30, expiry.DaysUntil("2025-07-15", hoy))
}

func TestDaysUntil_SinFechaOIlegible(t *testing.T) {
	assert.Equal(t, expiry.NoExpiry, expiry.DaysUntil("", hoy),
		"sin fecha debe tratarse como 'no caduca'")
	assert.Equal(t, expiry.NoExpiry, expiry.DaysUntil("15/06/2025", hoy),
		"una fecha ilegible debe tratarse como 'no caduca', nunca como caducada")
	assert.Equal(t, expiry.NoExpiry, expiry.DaysUntil("garbage", hoy))
}

func TestClassify_Particion(t *testing.T) {
	casos := []struct {
		days int
		want expiry.Bucket
	}{
		{expiry.NoExpiry, expiry.BucketNone},
		{-1, expiry.BucketExpired},
		{-400, expiry.BucketExpired},
		{0, expiry.BucketToday},
		{1, expiry.BucketWithin7},
		{7, expiry.BucketWithin7},
		{8, expiry.BucketWithin30},
		{30, expiry.BucketWithin30},
		{31, expiry.BucketBeyond30},
		{9999, expiry.BucketBeyond30},
	}
	for _, c := range casos {
		assert.Equal(t, c.want, expiry.Classify(c.days), "days=%d", c.days)
	}
}

func TestMatches_FiltroIncluyeElDiaCero(t *testing.T) {
	// un producto que caduca hoy todavía no está caducado, pero sí está
	// "por caducar" en ambos horizontes
	assert.False(t, expiry.Matches(expiry.FilterExpired, 0))
	assert.True(t, expiry.Matches(expiry.FilterWithin7, 0))
	assert.True(t, expiry.Matches(expiry.FilterWithin30, 0))
}

func TestMatches_Horizontes(t *testing.T) {
	assert.True(t, expiry.Matches(expiry.FilterExpired, -1))
	assert.False(t, expiry.Matches(expiry.FilterExpired, 1))

	assert.True(t, expiry.Matches(expiry.FilterWithin7, 7))
	assert.False(t, expiry.Matches(expiry.FilterWithin7, 8))
	assert.False(t, expiry.Matches(expiry.FilterWithin7, -1),
		"lo caducado no cuenta como 'por caducar'")

	assert.True(t, expiry.Matches(expiry.FilterWithin30, 30))
	assert.False(t, expiry.Matches(expiry.FilterWithin30, 31))

	assert.True(t, expiry.Matches(expiry.FilterAll, expiry.NoExpiry))
	assert.False(t, expiry.Matches(expiry.FilterWithin30, expiry.NoExpiry),
		"sin caducidad no entra en ningún horizonte")
}
