package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/tu-usuario/retail-ledger/internal/application/analytics"
	"github.com/tu-usuario/retail-ledger/internal/application/inventory"
	"github.com/tu-usuario/retail-ledger/internal/application/usecase"
	"github.com/tu-usuario/retail-ledger/internal/domain/aggregation"
	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
	"github.com/tu-usuario/retail-ledger/internal/infrastructure/memory"
	apphttp "github.com/tu-usuario/retail-ledger/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// testApp arma una aplicación Fiber completa sobre el store en memoria y
// devuelve el store para poblarlo directo en los tests.
func testApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.New()
	eventRepo := memory.NewEventRepository(store)
	txRepo := memory.NewTransactionRepository(store)
	customerRepo := memory.NewCustomerRepository(store)
	productRepo := memory.NewProductRepository(store)

	cfg := aggregation.BucketConfig{Location: time.UTC, Locale: language.English}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		DashboardUC:   analytics.NewDashboardUseCase(txRepo, customerRepo, productRepo, cfg),
		InventoryUC:   inventory.NewUseCase(eventRepo, productRepo),
		TransactionUC: usecase.NewTransactionUseCase(txRepo, false),
		CustomerUC:    usecase.NewCustomerUseCase(customerRepo),
		ProductUC:     usecase.NewProductUseCase(productRepo),
	})
	return app, store
}

func seedProduct(t *testing.T, store *memory.Store, id string) {
	t.Helper()
	require.NoError(t, memory.NewProductRepository(store).Create(context.Background(), &entity.Product{
		ID: id, Name: "Camisa", CreatedAt: time.Now(),
	}))
}

func seedSale(t *testing.T, store *memory.Store, id, customerID string, at time.Time, amount string) {
	t.Helper()
	require.NoError(t, memory.NewTransactionRepository(store).Create(context.Background(), &entity.Transaction{
		ID: id, Kind: entity.KindSale, CounterpartyID: customerID, OccurredAt: at, Amount: amount,
	}))
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, payload
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStats_SinActividadDevuelveCerosValidos(t *testing.T) {
	app, _ := testApp(t)

	resp, payload := doJSON(t, app, http.MethodGet, "/api/dashboard/stats", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.Unmarshal(payload, &body))
	assert.EqualValues(t, 0, body["customer_count"])
	assert.EqualValues(t, 0, body["product_count"])
	assert.Empty(t, body["recent_sales"])
}

func TestGetSalesByMonth_EscenarioReferencia(t *testing.T) {
	app, store := testApp(t)
	seedSale(t, store, "t-1", "c-1", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "100")
	seedSale(t, store, "t-2", "c-1", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), "50")
	seedSale(t, store, "t-3", "c-1", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "30")

	resp, payload := doJSON(t, app, http.MethodGet, "/api/dashboard/sales-by-month", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Totals map[string]string `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(payload, &body))
	assert.Equal(t, "150", body.Totals["Jan 2024"])
	assert.Equal(t, "30", body.Totals["Feb 2024"])
}

func TestGetRecentSales_MaximoCinco(t *testing.T) {
	app, store := testApp(t)
	for day := 1; day <= 7; day++ {
		seedSale(t, store, string(rune('a'+day)), "c-1",
			time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC), "10")
	}

	resp, payload := doJSON(t, app, http.MethodGet, "/api/dashboard/recent-sales", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(payload, &body))
	assert.Len(t, body, 5)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario y stock
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateEvent_TipoDesconocidoDevuelve400(t *testing.T) {
	app, store := testApp(t)
	seedProduct(t, store, "p-1")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/inventory/", map[string]any{
		"product_id":  "p-1",
		"change_type": "Adjusted",
		"quantity":    5,
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"un change_type desconocido se rechaza en la frontera, nunca se ignora")
}

func TestCreateEvent_CantidadNegativaDevuelve400(t *testing.T) {
	app, store := testApp(t)
	seedProduct(t, store, "p-1")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/inventory/", map[string]any{
		"product_id":  "p-1",
		"change_type": "Added",
		"quantity":    -5,
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStock_FlujoCompleto(t *testing.T) {
	app, store := testApp(t)
	seedProduct(t, store, "p-1")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/inventory/", map[string]any{
		"product_id":  "p-1",
		"change_type": "added",
		"quantity":    5,
		"date":        "2024-05-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/inventory/", map[string]any{
		"product_id":  "p-1",
		"change_type": "Removed",
		"quantity":    8,
		"date":        "2024-05-02T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, payload := doJSON(t, app, http.MethodGet, "/api/products/p-1/stock", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stock struct {
		ProductID    string `json:"product_id"`
		Quantity     int64  `json:"quantity"`
		Inconsistent bool   `json:"inconsistent"`
	}
	require.NoError(t, json.Unmarshal(payload, &stock))
	assert.Equal(t, "p-1", stock.ProductID)
	assert.Equal(t, int64(-3), stock.Quantity, "el stock negativo se expone, no se recorta")
	assert.True(t, stock.Inconsistent)
}

func TestStock_ProductoInexistenteDevuelve404(t *testing.T) {
	app, _ := testApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/products/p-x/stock", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_Valida(t *testing.T) {
	app, _ := testApp(t)

	resp, payload := doJSON(t, app, http.MethodPost, "/api/sales/", map[string]any{
		"counterparty_id": "c-1",
		"date":            "2024-01-15T00:00:00Z",
		"amount":          "100.50",
	})

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.Unmarshal(payload, &body))
	assert.Equal(t, "sale", body["kind"])
	assert.Equal(t, "100.50", body["amount"])
}

func TestCreatePurchase_SinContraparteDevuelve400(t *testing.T) {
	app, _ := testApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/purchases/", map[string]any{
		"amount": "10",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
