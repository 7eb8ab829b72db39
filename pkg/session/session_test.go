package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludwigkubler/WOLF-APP/pkg/session"
)

func TestStore_SinSesionDevuelveVacio(t *testing.T) {
	s := session.NewStore(filepath.Join(t.TempDir(), "wolf", "token"))

	token, err := s.Token()
	require.NoError(t, err, "sin archivo no es un error, es 'sin sesión'")
	assert.Empty(t, token)
}

func TestStore_GuardaYRecupera(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wolf", "token")
	s := session.NewStore(path)

	require.NoError(t, s.Save("tok-abc"))

	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token, "el salto de línea final no forma parte del token")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(),
		"el token es un secreto: solo el dueño puede leerlo")
}

func TestStore_ClearIdempotente(t *testing.T) {
	s := session.NewStore(filepath.Join(t.TempDir(), "token"))

	require.NoError(t, s.Save("tok"))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear(), "borrar una sesión ya borrada no es un error")

	token, err := s.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestParseClaims_DecodificaSinVerificar(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, &session.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "ludwig"},
		Role:             "manager",
	})
	token, err := raw.SignedString([]byte("una-clave-que-el-cliente-no-conoce"))
	require.NoError(t, err)

	claims, err := session.ParseClaims(token)
	require.NoError(t, err, "los claims se leen sin conocer la clave de firma")
	assert.Equal(t, "ludwig", claims.Username())
	assert.Equal(t, "manager", claims.Role)
}

func TestParseClaims_TokenIlegible(t *testing.T) {
	_, err := session.ParseClaims("no-es-un-jwt")
	assert.Error(t, err)
}
