package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludwigkubler/WOLF-APP/internal/application/inventory"
	"github.com/ludwigkubler/WOLF-APP/internal/domain"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
)

type fakeInventoryGateway struct {
	applied []entity.InventoryItem
	err     error
}

func (f *fakeInventoryGateway) List(_ context.Context, _ entity.Scope) ([]entity.Product, error) {
	return nil, nil
}
func (f *fakeInventoryGateway) Create(_ context.Context, p entity.Product) (*entity.Product, error) {
	return &p, nil
}
func (f *fakeInventoryGateway) Update(_ context.Context, p entity.Product) (*entity.Product, error) {
	return &p, nil
}
func (f *fakeInventoryGateway) Delete(_ context.Context, _ int64) error { return nil }

func (f *fakeInventoryGateway) ApplyInventory(_ context.Context, items []entity.InventoryItem) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.applied = items
	out := make([]entity.Product, len(items))
	for i, it := range items {
		out[i] = entity.Product{ID: it.ID, Quantity: it.Quantity}
	}
	return out, nil
}

type fixedRole string

func (r fixedRole) Role() string { return string(r) }

func TestCoerceQuantity(t *testing.T) {
	casos := []struct {
		raw  string
		want float64
	}{
		{"12.5", 12.5},
		{" 7 ", 7},
		{"0", 0},
		{"-5", 0},
		{"abc", 0},
		{"", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"1e3", 1000},
	}
	for _, c := range casos {
		assert.Equal(t, c.want, inventory.CoerceQuantity(c.raw), "celda %q", c.raw)
	}
}

func TestStageDraft_SiembraConLaExistenciaActual(t *testing.T) {
	r := inventory.New(&fakeInventoryGateway{}, fixedRole(entity.RoleManager), nil)

	draft := r.StageDraft([]entity.Product{
		{ID: 1, Quantity: 24},
		{ID: 2, Quantity: 2.5},
	})

	assert.Equal(t, inventory.Draft{1: "24", 2: "2.5"}, draft)
}

func TestCommit_RequiereManager(t *testing.T) {
	r := inventory.New(&fakeInventoryGateway{}, fixedRole(entity.RoleStaff), nil)

	_, err := r.Commit(context.Background(), inventory.Draft{1: "5"})

	var pe *domain.PermissionError
	require.ErrorAs(t, err, &pe)
}

func TestCommit_CoercionaYOrdenaPorID(t *testing.T) {
	gw := &fakeInventoryGateway{}
	r := inventory.New(gw, fixedRole(entity.RoleManager), nil)

	updated, err := r.Commit(context.Background(), inventory.Draft{
		3: "abc",
		1: "12.5",
		2: "-4",
	})
	require.NoError(t, err)
	require.Len(t, updated, 3)

	assert.Equal(t, []entity.InventoryItem{
		{ID: 1, Quantity: 12.5},
		{ID: 2, Quantity: 0},
		{ID: 3, Quantity: 0},
	}, gw.applied, "las celdas malas valen cero y la petición va ordenada por ID")
}

func TestCommit_ErrorDeEscrituraNoRecarga(t *testing.T) {
	recargas := 0
	gw := &fakeInventoryGateway{err: &domain.PersistError{Status: 502, Detail: "gateway caído"}}
	r := inventory.New(gw, fixedRole(entity.RoleManager), func(context.Context) error {
		recargas++
		return nil
	})

	_, err := r.Commit(context.Background(), inventory.Draft{1: "5"})

	var pe *domain.PersistError
	require.ErrorAs(t, err, &pe)
	assert.Zero(t, recargas, "sin escritura confirmada no hay recarga")
}

func TestCommit_ExitoRecargaElCatalogo(t *testing.T) {
	recargas := 0
	r := inventory.New(&fakeInventoryGateway{}, fixedRole(entity.RoleManager), func(context.Context) error {
		recargas++
		return nil
	})

	_, err := r.Commit(context.Background(), inventory.Draft{1: "5"})
	require.NoError(t, err)
	assert.Equal(t, 1, recargas)
}
