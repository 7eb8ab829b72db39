package closeout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludwigkubler/WOLF-APP/internal/application/closeout"
	"github.com/ludwigkubler/WOLF-APP/internal/domain"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
)

type fakeCloseoutGateway struct {
	created *entity.CloseoutDraft
}

func (f *fakeCloseoutGateway) Create(_ context.Context, draft entity.CloseoutDraft) (*entity.Closeout, error) {
	f.created = &draft
	return &entity.Closeout{ID: 1, Date: draft.Date, Cash: draft.Cash}, nil
}

func (f *fakeCloseoutGateway) List(_ context.Context, _, _ string) ([]entity.Closeout, error) {
	return nil, nil
}

func (f *fakeCloseoutGateway) Get(_ context.Context, id int64) (*entity.Closeout, error) {
	return &entity.Closeout{ID: id}, nil
}

type fixedRole string

func (r fixedRole) Role() string { return string(r) }

func TestPreviewTotalEUR(t *testing.T) {
	uc := closeout.New(&fakeCloseoutGateway{}, fixedRole(entity.RoleManager))

	total := uc.PreviewTotalEUR(map[string]int{"0.50": 10, "2": 4})

	assert.Equal(t, "13.00", total.StringFixed(2))
}

func TestCreate_RequiereManager(t *testing.T) {
	uc := closeout.New(&fakeCloseoutGateway{}, fixedRole(entity.RoleStaff))

	_, err := uc.Create(context.Background(), entity.CloseoutDraft{Date: "2025-06-15"})

	var pe *domain.PermissionError
	require.ErrorAs(t, err, &pe)
}

func TestCreate_NormalizaElConteo(t *testing.T) {
	gw := &fakeCloseoutGateway{}
	uc := closeout.New(gw, fixedRole(entity.RoleManager))

	_, err := uc.Create(context.Background(), entity.CloseoutDraft{
		Date: "2025-06-15",
		Cash: map[string]int{"1": 3, "0.03": 9},
	})
	require.NoError(t, err)

	require.NotNil(t, gw.created)
	assert.Equal(t, 3, gw.created.Cash["1"])
	assert.NotContains(t, gw.created.Cash, "0.03",
		"las claves desconocidas no viajan al servidor")
	assert.Contains(t, gw.created.Cash, "0.01", "las denominaciones faltantes viajan a cero")
}
