package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weblarek/internal/application/catalog"
	app "weblarek/internal/application/order"
	"weblarek/internal/config"
	"weblarek/internal/domain/order"
	"weblarek/internal/infrastructure/http/api"
	"weblarek/internal/infrastructure/http/larek"
	"weblarek/internal/infrastructure/persistence/memory"
	"weblarek/internal/interfaces/http/handler"
	"weblarek/pkg/logger"
)

const (
	hexLollipop = "c101ab44-ed99-4a54-990d-47aa2bb4e7d9"
	extraHour   = "854cef69-976d-4c2a-a18c-2aa45046c390"
	momTimer    = "b06cde61-912f-4663-9751-09956c0eed67"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T, imagesDir string) (*gin.Engine, *memory.OrderRepository) {
	t.Helper()
	products, err := memory.LoadProductRepository("")
	require.NoError(t, err)
	orders := memory.NewOrderRepository()

	engine := gin.New()
	RegisterRoutes(engine,
		Paths{API: "/api/weblarek", CDN: "/content/weblarek", ImagesDir: imagesDir},
		handler.NewProductHandler(catalog.NewService(products)),
		handler.NewOrderHandler(app.NewService(products, orders, nil, logger.NewNop())),
	)
	return engine, orders
}

func do(engine http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func validOrderBody() map[string]any {
	return map[string]any{
		"payment": "card",
		"address": "Москва, ул. Ленина, 1",
		"email":   "buyer@example.com",
		"phone":   "+7 (926) 123-45-67",
		"total":   2200,
		"items":   []string{extraHour, hexLollipop},
	}
}

func TestRoutes_ListProducts(t *testing.T) {
	engine, _ := newEngine(t, "")

	w := do(engine, http.MethodGet, "/api/weblarek/product", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Total int              `json:"total"`
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 10, body.Total)
	assert.Len(t, body.Items, 10)
}

func TestRoutes_GetProduct(t *testing.T) {
	engine, _ := newEngine(t, "")

	w := do(engine, http.MethodGet, "/api/weblarek/product/"+momTimer, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"price":null`)

	w = do(engine, http.MethodGet, "/api/weblarek/product/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"NotFound"}`, w.Body.String())
}

func TestRoutes_CreateOrder(t *testing.T) {
	engine, orders := newEngine(t, "")

	w := do(engine, http.MethodPost, "/api/weblarek/order", validOrderBody())

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result struct {
		ID    string          `json:"id"`
		Total json.RawMessage `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "2200", string(result.Total))
	assert.Equal(t, 1, orders.Len())

	w = do(engine, http.MethodGet, "/api/weblarek/order/"+result.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"phone":"+79261234567"`)

	w = do(engine, http.MethodGet, "/api/weblarek/order/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_CreateOrder_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(body map[string]any)
	}{
		{"wrong total", func(b map[string]any) { b["total"] = 1 }},
		{"unknown item", func(b map[string]any) { b["items"] = []string{"nope"} }},
		{"priceless item", func(b map[string]any) { b["items"] = []string{momTimer}; b["total"] = 0 }},
		{"no items", func(b map[string]any) { b["items"] = []string{}; b["total"] = 0 }},
		{"bad payment", func(b map[string]any) { b["payment"] = "barter" }},
		{"bad email", func(b map[string]any) { b["email"] = "nope" }},
		{"bad phone", func(b map[string]any) { b["phone"] = "12345" }},
		{"short address", func(b map[string]any) { b["address"] = "Moscow" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, orders := newEngine(t, "")
			body := validOrderBody()
			tt.mutate(body)

			w := do(engine, http.MethodPost, "/api/weblarek/order", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
			assert.Equal(t, 0, orders.Len())
		})
	}
}

func TestRoutes_CreateOrder_BadJSON(t *testing.T) {
	engine, _ := newEngine(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/weblarek/order", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutes_StaticAndNoRoute(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Shell.svg"), []byte("<svg/>"), 0o600))
	engine, _ := newEngine(t, dir)

	w := do(engine, http.MethodGet, "/content/weblarek/Shell.svg", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<svg/>", w.Body.String())

	w = do(engine, http.MethodGet, "/elsewhere", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_WithLarekClient(t *testing.T) {
	engine, _ := newEngine(t, "")
	server := httptest.NewServer(engine)
	defer server.Close()

	client := larek.NewClient(config.LarekConfig{
		Origin:  server.URL,
		APIPath: "/api/weblarek",
		CDNPath: "/content/weblarek",
		Timeout: time.Second,
	}, logger.NewNop())
	ctx := context.Background()

	items, err := client.FetchProductList(ctx)
	require.NoError(t, err)
	require.Len(t, items, 10)
	assert.Equal(t, server.URL+"/content/weblarek/5_Dots.svg", items[0].Image)

	o := order.New()
	o.Payment = order.PaymentCash
	o.Address = "Москва, ул. Ленина, 1"
	o.Email = "buyer@example.com"
	o.Phone = "+79261234567"
	o.Items = []string{extraHour}
	o.Total = decimal.NewFromInt(750)

	result, err := client.SubmitOrder(ctx, o)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(750).Equal(result.Total))

	o.Total = decimal.NewFromInt(1)
	_, err = client.SubmitOrder(ctx, o)
	var statusErr *api.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Contains(t, statusErr.Message, "order total does not match items")
}
