package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludwigkubler/WOLF-APP/internal/domain"
)

func TestLotFlags_CostoEnEurosACentimos(t *testing.T) {
	f := &lotFlags{code: "L-1", costEUR: "2.505"}

	lt, err := f.toEntity(0, 4)
	require.NoError(t, err)
	require.NotNil(t, lt.CostCents)
	assert.Equal(t, int64(251), *lt.CostCents,
		"el costo se redondea al céntimo más cercano, sin deriva de float")
}

func TestLotFlags_SinCostoViajaNil(t *testing.T) {
	f := &lotFlags{code: "L-1"}

	lt, err := f.toEntity(0, 4)
	require.NoError(t, err)
	assert.Nil(t, lt.CostCents, "campo vacío significa 'sin costo', no cero")
}

func TestLotFlags_CostoIlegibleRechazado(t *testing.T) {
	f := &lotFlags{code: "L-1", costEUR: "dos euros"}

	_, err := f.toEntity(0, 4)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "cost", ve.Field)
}
