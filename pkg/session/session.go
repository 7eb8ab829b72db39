// Package session persiste el token portador en disco y expone sus claims
// para mostrar la sesión activa sin red. La verificación de la firma es del
// servidor: aquí el token solo se decodifica, nunca se valida.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims son los claims que emite el colaborador en el login: sub lleva el
// username y role el rol de la cuenta.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Store guarda el token portador en un archivo con permisos 0600.
// Implementa el proveedor de credenciales que el cliente REST recibe
// inyectado en su construcción.
type Store struct {
	path string
}

// NewStore construye el store sobre la ruta dada.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Token devuelve el token guardado, o vacío si no hay sesión.
func (s *Store) Token() (string, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session: leer token: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// Save persiste el token, creando el directorio si hace falta.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: crear directorio: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("session: guardar token: %w", err)
	}
	return nil
}

// Clear borra el token guardado. No es error que no exista.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ParseClaims decodifica los claims del token SIN verificar la firma.
// Sirve solo para mostrar usuario y rol de la sesión guardada; cualquier
// decisión real la toma el servidor al recibir el token.
func ParseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return nil, fmt.Errorf("session: token ilegible: %w", err)
	}
	return claims, nil
}

// Username devuelve el sub del claim.
func (c *Claims) Username() string {
	return c.Subject
}
