package cli

import (
	"context"
	"fmt"

	"github.com/ludwigkubler/WOLF-APP/internal/domain"
)

func cmdLogin(ctx context.Context, deps Deps, args []string) error {
	if len(args) != 2 {
		return &domain.ValidationError{Field: "login", Reason: "uso: wolf login <usuario> <contraseña>"}
	}
	user, err := deps.Auth.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("sesión iniciada: %s (%s)\n", user.Username, user.Role)
	return nil
}

func cmdMe(ctx context.Context, deps Deps) error {
	user, err := deps.Auth.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", user.Username, user.Role)
	return nil
}

func cmdLogout(deps Deps) error {
	if err := deps.Auth.Logout(); err != nil {
		return err
	}
	fmt.Println("sesión cerrada")
	return nil
}
