package restapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludwigkubler/WOLF-APP/internal/domain"
	"github.com/ludwigkubler/WOLF-APP/internal/domain/entity"
	"github.com/ludwigkubler/WOLF-APP/internal/infrastructure/restapi"
)

// staticToken es el doble del proveedor de credenciales.
type staticToken string

func (s staticToken) Token() (string, error) { return string(s), nil }

func newClient(t *testing.T, handler http.HandlerFunc, token string) *restapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return restapi.NewClient(srv.URL, 5*time.Second, staticToken(token), zerolog.Nop())
}

func TestList_CabecerasYParametroDeScope(t *testing.T) {
	var gotAuth, gotRequestID, gotLocation string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotLocation = r.URL.Query().Get("location")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}, "tok-123")

	_, err := restapi.NewProductGateway(c).List(context.Background(), entity.ScopeCounter)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID, "cada petición lleva su id de correlación")
	assert.Equal(t, "banco", gotLocation)
}

func TestList_ScopeAllSinParametro(t *testing.T) {
	var hasLocation bool
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		hasLocation = r.URL.Query().Has("location")
		w.Write([]byte(`[]`))
	}, "")

	_, err := restapi.NewProductGateway(c).List(context.Background(), entity.ScopeAll)
	require.NoError(t, err)
	assert.False(t, hasLocation, "el scope all no añade parámetro")
}

func TestList_MapeaNulosACadenaVacia(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":3,"name":"Vino","sku":null,"price_cents":1250,"unit":"bt",
			"quantity":12,"min_quantity":2,"is_active":true,"supplier":null,
			"expiry_date":null,"vat_rate":22,"discount_percent":0}]`))
	}, "tok")

	products, err := restapi.NewProductGateway(c).List(context.Background(), entity.ScopeAll)
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, int64(3), p.ID)
	assert.Empty(t, p.SKU)
	assert.Empty(t, p.Supplier)
	assert.Empty(t, p.ExpiryDate, "expiry_date null viaja como cadena vacía")
	assert.Equal(t, int64(1250), p.PriceCents)
}

func TestList_ErrorConDetail(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"credenziali non valide"}`))
	}, "")

	_, err := restapi.NewProductGateway(c).List(context.Background(), entity.ScopeAll)

	var fe *domain.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusUnauthorized, fe.Status)
	assert.Equal(t, "credenziali non valide", fe.Detail)
}

func TestApplyInventory_CuerpoBulk(t *testing.T) {
	var got struct {
		Items []struct {
			ID       int64   `json:"id"`
			Quantity float64 `json:"quantity"`
		} `json:"items"`
	}
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products/inventory", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`[]`))
	}, "tok")

	_, err := restapi.NewProductGateway(c).ApplyInventory(context.Background(), []entity.InventoryItem{
		{ID: 1, Quantity: 12.5},
		{ID: 2, Quantity: 0},
	})
	require.NoError(t, err)

	require.Len(t, got.Items, 2)
	assert.Equal(t, int64(1), got.Items[0].ID)
	assert.Equal(t, 12.5, got.Items[0].Quantity)
	assert.Equal(t, float64(0), got.Items[1].Quantity,
		"las cantidades a cero también viajan: es una sobrescritura completa")
}

func TestApplyInventory_ErrorDePersistencia(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"ruolo insufficiente"}`))
	}, "tok")

	_, err := restapi.NewProductGateway(c).ApplyInventory(context.Background(), nil)

	var pe *domain.PersistError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusForbidden, pe.Status)
	assert.Equal(t, "ruolo insufficiente", pe.Detail)
}

func TestLotSearch_ParametrosYNombreDeProducto(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lots/search/by-code", r.URL.Path)
		assert.Equal(t, "L-77", r.URL.Query().Get("lot_code"))
		assert.Equal(t, "cantina", r.URL.Query().Get("location"))
		w.Write([]byte(`[{"id":9,"product_id":4,"lot_code":"L-77","supplier":null,
			"expiry_date":"2025-09-01","quantity":6,"cost_cents":250,
			"location":"cantina","status":"ok","block_reason":null,
			"product_name":"Vino Rosso"}]`))
	}, "tok")

	res, err := restapi.NewLotGateway(c).SearchByCode(context.Background(), "L-77", entity.ScopeCellar)
	require.NoError(t, err)
	require.Len(t, res, 1)

	assert.Equal(t, "Vino Rosso", res[0].ProductName)
	assert.Equal(t, "L-77", res[0].LotCode)
	require.NotNil(t, res[0].CostCents)
	assert.Equal(t, int64(250), *res[0].CostCents)
}

func TestLotCreate_RutaPorProducto(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/lots/product/4", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "L-1", body["lot_code"])
		assert.Nil(t, body["cost_cents"], "sin costo viaja null, no cero")
		w.Write([]byte(`{"id":11,"product_id":4,"lot_code":"L-1","supplier":null,
			"expiry_date":null,"quantity":3,"cost_cents":null,
			"location":"generale","status":"ok","block_reason":null}`))
	}, "tok")

	created, err := restapi.NewLotGateway(c).Create(context.Background(), 4,
		entity.Lot{LotCode: "L-1", Quantity: 3, Location: entity.LocationGeneral, Status: entity.LotStatusOK})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Nil(t, created.CostCents)
}

func TestCloseoutCreate_CuerpoEnEuros(t *testing.T) {
	var got map[string]any
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/closeouts", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"id":5,"date":"2025-06-15","cash":{"0.50":10},
			"cash_total_eur":5.0,"pos_eur":86.4,"satispay_eur":12.5,
			"bottles_finished":[],"kegs_finished":[],"notes":null,
			"created_by":"ludwig"}`))
	}, "tok")

	created, err := restapi.NewCloseoutGateway(c).Create(context.Background(), entity.CloseoutDraft{
		Date:                "2025-06-15",
		Cash:                map[string]int{"0.50": 10},
		PosAmountCents:      8640,
		SatispayAmountCents: 1250,
		Notes:               "turno tranquilo",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)

	// los nombres y unidades son los del colaborador: el conteo viaja bajo
	// "cash" y los importes en euros como float, no en céntimos
	cash, ok := got["cash"].(map[string]any)
	require.True(t, ok, "el conteo debe viajar bajo la clave 'cash'")
	assert.Equal(t, float64(10), cash["0.50"])
	assert.Equal(t, 86.4, got["pos_eur"])
	assert.Equal(t, 12.5, got["satispay_eur"])
	assert.Equal(t, "turno tranquilo", got["notes"])
	assert.NotContains(t, got, "cash_counts")
	assert.NotContains(t, got, "pos_amount_cents")
	assert.NotContains(t, got, "satispay_amount_cents")
}

func TestLogin_CuerpoYToken(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ludwig", body["username"])
		assert.Equal(t, "secreto", body["password"])
		w.Write([]byte(`{"access_token":"tok-abc","token_type":"bearer"}`))
	}, "")

	token, err := restapi.NewAuthGateway(c).Login(context.Background(), "ludwig", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestMe_MapeaUsuario(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/me", r.URL.Path)
		w.Write([]byte(`{"username":"ludwig","role":"manager"}`))
	}, "tok")

	user, err := restapi.NewAuthGateway(c).Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ludwig", user.Username)
	assert.True(t, user.IsManager())
}
