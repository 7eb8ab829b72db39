package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/gateway"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/pricing"
)

// CloseoutGateway implementa gateway.CloseoutGateway sobre /closeouts.
type CloseoutGateway struct {
	c *Client
}

// NewCloseoutGateway construye el gateway.
func NewCloseoutGateway(c *Client) *CloseoutGateway {
	return &CloseoutGateway{c: c}
}

var _ gateway.CloseoutGateway = (*CloseoutGateway)(nil)

// Create implementa POST /closeouts.
func (g *CloseoutGateway) Create(ctx context.Context, draft entity.CloseoutDraft) (*entity.Closeout, error) {
	req := closeoutCreateRequest{
		Date:            draft.Date,
		Cash:            draft.Cash,
		PosEUR:          pricing.CentsToEUR(draft.PosAmountCents).InexactFloat64(),
		SatispayEUR:     pricing.CentsToEUR(draft.SatispayAmountCents).InexactFloat64(),
		BottlesFinished: draft.BottlesFinished,
		KegsFinished:    draft.KegsFinished,
		Notes:           optional(draft.Notes),
	}
	if req.Cash == nil {
		req.Cash = map[string]int{}
	}
	var payload closeoutPayload
	if err := g.c.send(ctx, http.MethodPost, "/closeouts", req, &payload); err != nil {
		return nil, err
	}
	created := payload.toEntity()
	return &created, nil
}

// List implementa GET /closeouts?start=&end=.
func (g *CloseoutGateway) List(ctx context.Context, startISO, endISO string) ([]entity.Closeout, error) {
	query := url.Values{}
	if startISO != "" {
		query.Set("start", startISO)
	}
	if endISO != "" {
		query.Set("end", endISO)
	}
	var payload []closeoutPayload
	if err := g.c.get(ctx, "/closeouts", query, &payload); err != nil {
		return nil, err
	}
	out := make([]entity.Closeout, 0, len(payload))
	for _, c := range payload {
		out = append(out, c.toEntity())
	}
	return out, nil
}

// Get implementa GET /closeouts/{id}.
func (g *CloseoutGateway) Get(ctx context.Context, id int64) (*entity.Closeout, error) {
	var payload closeoutPayload
	if err := g.c.get(ctx, fmt.Sprintf("/closeouts/%d", id), nil, &payload); err != nil {
		return nil, err
	}
	out := payload.toEntity()
	return &out, nil
}
