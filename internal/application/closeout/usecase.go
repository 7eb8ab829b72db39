// Package closeout implementa el cierre de caja de fin de jornada.
package closeout

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ludwigkubler/WOLF-APP/internal/domain"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/cash"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/gateway"
)

// RoleSource entrega el rol de la sesión activa para el guardado de cliente.
type RoleSource interface {
	Role() string
}

// UseCase es el caso de uso de cierres.
type UseCase struct {
	gw    gateway.CloseoutGateway
	roles RoleSource
}

// New construye el caso de uso.
func New(gw gateway.CloseoutGateway, roles RoleSource) *UseCase {
	return &UseCase{gw: gw, roles: roles}
}

// PreviewTotalEUR calcula en local el total del conteo de efectivo, para que
// el operador verifique antes de enviar. El total autoritativo lo devuelve el
// servidor al crear.
func (uc *UseCase) PreviewTotalEUR(counts map[string]int) decimal.Decimal {
	return decimal.NewFromInt(cash.TotalCents(counts)).Div(decimal.NewFromInt(100))
}

// Create registra el cierre (solo manager). Normaliza el conteo a las
// denominaciones conocidas antes de enviarlo.
func (uc *UseCase) Create(ctx context.Context, draft entity.CloseoutDraft) (*entity.Closeout, error) {
	if uc.roles.Role() != entity.RoleManager {
		return nil, &domain.PermissionError{Required: entity.RoleManager}
	}
	draft.Cash = cash.Normalize(draft.Cash)
	return uc.gw.Create(ctx, draft)
}

// List devuelve los cierres entre dos fechas ISO (vacías = sin límite).
func (uc *UseCase) List(ctx context.Context, startISO, endISO string) ([]entity.Closeout, error) {
	return uc.gw.List(ctx, startISO, endISO)
}

// Get devuelve un cierre por ID.
func (uc *UseCase) Get(ctx context.Context, id int64) (*entity.Closeout, error) {
	return uc.gw.Get(ctx, id)
}
