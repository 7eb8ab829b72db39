package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/gateway"
)

// LotGateway implementa gateway.LotGateway sobre /lots.
type LotGateway struct {
	c *Client
}

// NewLotGateway construye el gateway.
func NewLotGateway(c *Client) *LotGateway {
	return &LotGateway{c: c}
}

var _ gateway.LotGateway = (*LotGateway)(nil)

// ListByProduct implementa GET /lots/product/{id}?location={scope}.
func (g *LotGateway) ListByProduct(ctx context.Context, productID int64, scope entity.Scope) ([]entity.Lot, error) {
	query := url.Values{}
	if p := scope.Param(); p != "" {
		query.Set("location", p)
	}
	var payload []lotPayload
	path := fmt.Sprintf("/lots/product/%d", productID)
	if err := g.c.get(ctx, path, query, &payload); err != nil {
		return nil, err
	}
	out := make([]entity.Lot, 0, len(payload))
	for _, l := range payload {
		out = append(out, l.toEntity())
	}
	return out, nil
}

// Create implementa POST /lots/product/{id}.
func (g *LotGateway) Create(ctx context.Context, productID int64, l entity.Lot) (*entity.Lot, error) {
	var payload lotPayload
	path := fmt.Sprintf("/lots/product/%d", productID)
	if err := g.c.send(ctx, http.MethodPost, path, lotToPayload(l), &payload); err != nil {
		return nil, err
	}
	created := payload.toEntity()
	return &created, nil
}

// Update implementa PUT /lots/{id} con el registro completo.
func (g *LotGateway) Update(ctx context.Context, l entity.Lot) (*entity.Lot, error) {
	var payload lotPayload
	path := fmt.Sprintf("/lots/%d", l.ID)
	if err := g.c.send(ctx, http.MethodPut, path, lotToPayload(l), &payload); err != nil {
		return nil, err
	}
	updated := payload.toEntity()
	return &updated, nil
}

// Delete implementa DELETE /lots/{id}.
func (g *LotGateway) Delete(ctx context.Context, lotID int64) error {
	return g.c.send(ctx, http.MethodDelete, fmt.Sprintf("/lots/%d", lotID), nil, nil)
}

// SearchByCode implementa GET /lots/search/by-code?lot_code={code}&location={scope}.
func (g *LotGateway) SearchByCode(ctx context.Context, code string, scope entity.Scope) ([]entity.LotSearchResult, error) {
	query := url.Values{}
	query.Set("lot_code", code)
	if p := scope.Param(); p != "" {
		query.Set("location", p)
	}
	var payload []lotSearchPayload
	if err := g.c.get(ctx, "/lots/search/by-code", query, &payload); err != nil {
		return nil, err
	}
	out := make([]entity.LotSearchResult, 0, len(payload))
	for _, l := range payload {
		out = append(out, entity.LotSearchResult{Lot: l.toEntity(), ProductName: l.ProductName})
	}
	return out, nil
}
