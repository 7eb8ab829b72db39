package restapi

import (
	"context"
	"net/http"

	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/gateway"
)

// AuthGateway implementa gateway.AuthGateway sobre /auth.
type AuthGateway struct {
	c *Client
}

// NewAuthGateway construye el gateway.
func NewAuthGateway(c *Client) *AuthGateway {
	return &AuthGateway{c: c}
}

var _ gateway.AuthGateway = (*AuthGateway)(nil)

// Login implementa POST /auth/login. El token devuelto es opaco para el
// cliente: se guarda tal cual y se adjunta a cada petición posterior.
func (g *AuthGateway) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	req := loginRequest{Username: username, Password: password}
	if err := g.c.send(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Me implementa GET /auth/me.
func (g *AuthGateway) Me(ctx context.Context) (*entity.User, error) {
	var payload mePayload
	if err := g.c.get(ctx, "/auth/me", nil, &payload); err != nil {
		return nil, err
	}
	return &entity.User{Username: payload.Username, Role: payload.Role}, nil
}
