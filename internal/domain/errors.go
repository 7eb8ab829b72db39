package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUnauthorized = errors.New("no autenticado")
)

// FetchError indica que una lectura contra el colaborador REST falló
// (error de red o respuesta no-2xx en un GET). Detail lleva el mensaje del
// servidor cuando existe; Status es 0 si la petición ni siquiera llegó.
type FetchError struct {
	Status int
	Detail string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("lectura fallida (%d): %s", e.Status, e.Detail)
	}
	if e.Err != nil {
		return "lectura fallida: " + e.Err.Error()
	}
	return fmt.Sprintf("lectura fallida (%d)", e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// PersistError indica que una escritura contra el colaborador REST falló
// (error de red o respuesta no-2xx en una mutación). La vista conserva el
// borrador para que el operador pueda reintentar.
type PersistError struct {
	Status int
	Detail string
	Err    error
}

func (e *PersistError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("escritura fallida (%d): %s", e.Status, e.Detail)
	}
	if e.Err != nil {
		return "escritura fallida: " + e.Err.Error()
	}
	return fmt.Sprintf("escritura fallida (%d)", e.Status)
}

func (e *PersistError) Unwrap() error { return e.Err }

// ValidationError es una precondición de cliente incumplida antes de una
// escritura (p. ej. código de lote vacío). Se resuelve localmente: bloquea
// la acción sin contactar al servidor.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %s %s", e.Field, e.Reason)
}

// PermissionError es el guardado de rol en cliente: la operación requiere el
// rol elevado. Solo cortesía de UX; la autorización real es del servidor.
type PermissionError struct {
	Required string
}

func (e *PermissionError) Error() string {
	return "operación reservada al rol " + e.Required
}
