package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/gateway"
)

// ProductGateway implementa gateway.ProductGateway sobre /products.
type ProductGateway struct {
	c *Client
}

// NewProductGateway construye el gateway.
func NewProductGateway(c *Client) *ProductGateway {
	return &ProductGateway{c: c}
}

var _ gateway.ProductGateway = (*ProductGateway)(nil)

// List implementa GET /products?location={scope}.
func (g *ProductGateway) List(ctx context.Context, scope entity.Scope) ([]entity.Product, error) {
	query := url.Values{}
	if p := scope.Param(); p != "" {
		query.Set("location", p)
	}
	var payload []productPayload
	if err := g.c.get(ctx, "/products", query, &payload); err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(payload))
	for _, p := range payload {
		out = append(out, p.toEntity())
	}
	return out, nil
}

// Create implementa POST /products.
func (g *ProductGateway) Create(ctx context.Context, p entity.Product) (*entity.Product, error) {
	var payload productPayload
	if err := g.c.send(ctx, http.MethodPost, "/products", productToPayload(p), &payload); err != nil {
		return nil, err
	}
	created := payload.toEntity()
	return &created, nil
}

// Update implementa PUT /products/{id} con el registro completo.
func (g *ProductGateway) Update(ctx context.Context, p entity.Product) (*entity.Product, error) {
	var payload productPayload
	path := fmt.Sprintf("/products/%d", p.ID)
	if err := g.c.send(ctx, http.MethodPut, path, productToPayload(p), &payload); err != nil {
		return nil, err
	}
	updated := payload.toEntity()
	return &updated, nil
}

// Delete implementa DELETE /products/{id}.
func (g *ProductGateway) Delete(ctx context.Context, id int64) error {
	return g.c.send(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// ApplyInventory implementa POST /products/inventory: una sola llamada con la
// lista completa {id, quantity}; el servidor devuelve los productos ya
// sobrescritos.
func (g *ProductGateway) ApplyInventory(ctx context.Context, items []entity.InventoryItem) ([]entity.Product, error) {
	req := inventoryBulkRequest{Items: make([]inventoryItemPayload, 0, len(items))}
	for _, it := range items {
		req.Items = append(req.Items, inventoryItemPayload{ID: it.ID, Quantity: it.Quantity})
	}
	var payload []productPayload
	if err := g.c.send(ctx, http.MethodPost, "/products/inventory", req, &payload); err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(payload))
	for _, p := range payload {
		out = append(out, p.toEntity())
	}
	return out, nil
}
