package restapi

import "github.com/ludwigkubler/WOLF-APP/internal/domain/entity"

// Tipos de cable del colaborador. Los nombres de campo JSON son los del
// servidor; el mapeo a entidades del dominio vive aquí y en ningún otro sitio.

type productPayload struct {
	ID              int64   `json:"id,omitempty"`
	Name            string  `json:"name"`
	SKU             *string `json:"sku"`
	PriceCents      int64   `json:"price_cents"`
	Unit            string  `json:"unit"`
	Quantity        float64 `json:"quantity"`
	MinQuantity     float64 `json:"min_quantity"`
	IsActive        bool    `json:"is_active"`
	Supplier        *string `json:"supplier"`
	ExpiryDate      *string `json:"expiry_date"`
	VATRate         int     `json:"vat_rate"`
	DiscountPercent float64 `json:"discount_percent"`
}

func (p productPayload) toEntity() entity.Product {
	return entity.Product{
		ID:              p.ID,
		Name:            p.Name,
		SKU:             deref(p.SKU),
		PriceCents:      p.PriceCents,
		Unit:            p.Unit,
		Quantity:        p.Quantity,
		MinQuantity:     p.MinQuantity,
		IsActive:        p.IsActive,
		Supplier:        deref(p.Supplier),
		ExpiryDate:      deref(p.ExpiryDate),
		VATRate:         p.VATRate,
		DiscountPercent: p.DiscountPercent,
	}
}

func productToPayload(p entity.Product) productPayload {
	return productPayload{
		Name:            p.Name,
		SKU:             optional(p.SKU),
		PriceCents:      p.PriceCents,
		Unit:            p.Unit,
		Quantity:        p.Quantity,
		MinQuantity:     p.MinQuantity,
		IsActive:        p.IsActive,
		Supplier:        optional(p.Supplier),
		ExpiryDate:      optional(p.ExpiryDate),
		VATRate:         p.VATRate,
		DiscountPercent: p.DiscountPercent,
	}
}

type lotPayload struct {
	ID          int64   `json:"id,omitempty"`
	ProductID   int64   `json:"product_id,omitempty"`
	LotCode     string  `json:"lot_code"`
	Supplier    *string `json:"supplier"`
	ExpiryDate  *string `json:"expiry_date"`
	Quantity    float64 `json:"quantity"`
	CostCents   *int64  `json:"cost_cents"`
	Location    string  `json:"location"`
	Status      string  `json:"status"`
	BlockReason *string `json:"block_reason"`
}

func (l lotPayload) toEntity() entity.Lot {
	return entity.Lot{
		ID:          l.ID,
		ProductID:   l.ProductID,
		LotCode:     l.LotCode,
		Supplier:    deref(l.Supplier),
		ExpiryDate:  deref(l.ExpiryDate),
		Quantity:    l.Quantity,
		CostCents:   l.CostCents,
		Location:    entity.Location(l.Location),
		Status:      entity.LotStatus(l.Status),
		BlockReason: deref(l.BlockReason),
	}
}

func lotToPayload(l entity.Lot) lotPayload {
	return lotPayload{
		LotCode:     l.LotCode,
		Supplier:    optional(l.Supplier),
		ExpiryDate:  optional(l.ExpiryDate),
		Quantity:    l.Quantity,
		CostCents:   l.CostCents,
		Location:    string(l.Location),
		Status:      string(l.Status),
		BlockReason: optional(l.BlockReason),
	}
}

type lotSearchPayload struct {
	lotPayload
	ProductName string `json:"product_name"`
}

type inventoryItemPayload struct {
	ID       int64   `json:"id"`
	Quantity float64 `json:"quantity"`
}

type inventoryBulkRequest struct {
	Items []inventoryItemPayload `json:"items"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type mePayload struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// closeoutCreateRequest lleva los importes de datáfono y Satispay en euros
// como float, no en céntimos: así los declara el colaborador.
type closeoutCreateRequest struct {
	Date            string         `json:"date,omitempty"`
	Cash            map[string]int `json:"cash"`
	PosEUR          float64        `json:"pos_eur"`
	SatispayEUR     float64        `json:"satispay_eur"`
	BottlesFinished []string       `json:"bottles_finished"`
	KegsFinished    []string       `json:"kegs_finished"`
	Notes           *string        `json:"notes"`
}

type closeoutPayload struct {
	ID              int64          `json:"id"`
	Date            string         `json:"date"`
	Cash            map[string]int `json:"cash"`
	CashTotalEUR    float64        `json:"cash_total_eur"`
	PosEUR          float64        `json:"pos_eur"`
	SatispayEUR     float64        `json:"satispay_eur"`
	BottlesFinished []string       `json:"bottles_finished"`
	KegsFinished    []string       `json:"kegs_finished"`
	Notes           *string        `json:"notes"`
	CreatedBy       *string        `json:"created_by"`
}

func (c closeoutPayload) toEntity() entity.Closeout {
	return entity.Closeout{
		ID:              c.ID,
		Date:            c.Date,
		Cash:            c.Cash,
		CashTotalEUR:    c.CashTotalEUR,
		PosEUR:          c.PosEUR,
		SatispayEUR:     c.SatispayEUR,
		BottlesFinished: c.BottlesFinished,
		KegsFinished:    c.KegsFinished,
		Notes:           deref(c.Notes),
		CreatedBy:       deref(c.CreatedBy),
	}
}

// deref y optional traducen entre "cadena vacía" del dominio y null del cable.

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
