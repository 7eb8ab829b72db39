package gateway

import (
	"context"

	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
)

// AuthGateway es el puerto de autenticación. La sesión es un colaborador
// externo: este cliente solo guarda el token portador que el servidor emite.
type AuthGateway interface {
	// Login intercambia credenciales por un token portador.
	Login(ctx context.Context, username, password string) (token string, err error)
	// Me devuelve la identidad y el rol de la sesión del token actual.
	Me(ctx context.Context) (*entity.User, error)
}
