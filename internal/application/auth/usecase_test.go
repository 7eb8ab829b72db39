package auth_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludwigkubler/WOLF-APP/internal/application/auth"
	"github.com/ludwigkubler/WOLF-APP/internal/domain"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
	"github.com/ludwigkubler/WOLF-APP/pkg/session"
)

type fakeAuthGateway struct {
	token    string
	user     *entity.User
	loginErr error
	meErr    error
}

func (f *fakeAuthGateway) Login(_ context.Context, _, _ string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeAuthGateway) Me(_ context.Context) (*entity.User, error) {
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.user, nil
}

func newStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "token"))
}

func TestLogin_GuardaTokenYResuelveIdentidad(t *testing.T) {
	gw := &fakeAuthGateway{
		token: "tok-abc",
		user:  &entity.User{Username: "ludwig", Role: entity.RoleManager},
	}
	store := newStore(t)
	uc := auth.New(gw, store)

	user, err := uc.Login(context.Background(), "ludwig", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "ludwig", user.Username)
	assert.Equal(t, entity.RoleManager, uc.Role())

	saved, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", saved)
}

func TestLogin_CredencialesMalasNoGuardanNada(t *testing.T) {
	gw := &fakeAuthGateway{loginErr: &domain.PersistError{Status: 401, Detail: "credenziali non valide"}}
	store := newStore(t)
	uc := auth.New(gw, store)

	_, err := uc.Login(context.Background(), "ludwig", "mal")
	require.Error(t, err)

	saved, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, saved)
	assert.Empty(t, uc.Role())
}

func TestRestore_ReconstruyeDesdeLosClaims(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, &session.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "anna"},
		Role:             entity.RoleStaff,
	})
	token, err := raw.SignedString([]byte("clave-del-servidor"))
	require.NoError(t, err)

	store := newStore(t)
	require.NoError(t, store.Save(token))
	uc := auth.New(&fakeAuthGateway{}, store)

	user := uc.Restore()
	require.NotNil(t, user, "con token guardado la identidad se reconstruye sin red")
	assert.Equal(t, "anna", user.Username)
	assert.Equal(t, entity.RoleStaff, uc.Role())
}

func TestRestore_SinTokenNoHayIdentidad(t *testing.T) {
	uc := auth.New(&fakeAuthGateway{}, newStore(t))

	assert.Nil(t, uc.Restore())
	assert.Empty(t, uc.Role())
	assert.Nil(t, uc.Current())
}

func TestLogout_DescartaTokenEIdentidad(t *testing.T) {
	gw := &fakeAuthGateway{token: "tok", user: &entity.User{Username: "x", Role: entity.RoleManager}}
	store := newStore(t)
	uc := auth.New(gw, store)
	_, err := uc.Login(context.Background(), "x", "y")
	require.NoError(t, err)

	require.NoError(t, uc.Logout())

	assert.Nil(t, uc.Current())
	saved, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, saved)
}
