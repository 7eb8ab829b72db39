// Package auth gestiona la sesión frente al colaborador de autenticación:
// login, identidad actual y logout. El colaborador es externo; aquí solo se
// guarda el token y se consulta /auth/me.
package auth

import (
	"context"
	"sync"

	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/gateway"
	"github.com/ludwigkubler/WOLF-APP/pkg/session"
)

// UseCase es el caso de uso de sesión. Implementa el RoleSource que consumen
// catálogo, lotes e inventario.
type UseCase struct {
	gw    gateway.AuthGateway
	store *session.Store

	mu      sync.Mutex
	current *entity.User
}

// New construye el caso de uso.
func New(gw gateway.AuthGateway, store *session.Store) *UseCase {
	return &UseCase{gw: gw, store: store}
}

// Login intercambia credenciales por un token, lo persiste y resuelve la
// identidad con /auth/me.
func (uc *UseCase) Login(ctx context.Context, username, password string) (*entity.User, error) {
	token, err := uc.gw.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if err := uc.store.Save(token); err != nil {
		return nil, err
	}
	return uc.Me(ctx)
}

// Me consulta la identidad de la sesión al servidor y la cachea para el
// guardado de rol.
func (uc *UseCase) Me(ctx context.Context) (*entity.User, error) {
	user, err := uc.gw.Me(ctx)
	if err != nil {
		return nil, err
	}
	uc.mu.Lock()
	uc.current = user
	uc.mu.Unlock()
	return user, nil
}

// Restore reconstruye la identidad desde los claims del token guardado, sin
// red. Útil para mostrar usuario y rol antes de la primera petición; el
// servidor sigue siendo quien decide si el token vale.
func (uc *UseCase) Restore() *entity.User {
	token, err := uc.store.Token()
	if err != nil || token == "" {
		return nil
	}
	claims, err := session.ParseClaims(token)
	if err != nil {
		return nil
	}
	user := &entity.User{Username: claims.Username(), Role: claims.Role}
	uc.mu.Lock()
	uc.current = user
	uc.mu.Unlock()
	return user
}

// Logout descarta el token guardado y la identidad cacheada.
func (uc *UseCase) Logout() error {
	uc.mu.Lock()
	uc.current = nil
	uc.mu.Unlock()
	return uc.store.Clear()
}

// Current devuelve la identidad cacheada, o nil si no hay sesión resuelta.
func (uc *UseCase) Current() *entity.User {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.current
}

// Role implementa RoleSource: rol de la sesión activa, vacío si no hay.
func (uc *UseCase) Role() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return ""
	}
	return uc.current.Role
}
