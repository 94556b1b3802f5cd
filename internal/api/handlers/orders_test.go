package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/darazdesk/ledgerapi/internal/api"
	"github.com/darazdesk/ledgerapi/internal/config"
	"github.com/darazdesk/ledgerapi/internal/repository"
	"github.com/darazdesk/ledgerapi/internal/repository/memory"
)

func newTestRouter() (*gin.Engine, *repository.Repositories) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Environment: "test"}
	repos := memory.NewRepositories()
	return api.NewRouter(cfg, repos, zap.NewNop()), repos
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const createBody = `{
	"dateTime": "2024-05-01 10:00",
	"orderId": "DRZ-1001",
	"grossSale": "1000",
	"netSales": "800",
	"payment": "cod",
	"products": [{"name": "Charger", "purchasingPrice": "100", "unitsSold": "5", "list": "electronics"}]
}`

func createOrder(t *testing.T, router *gin.Engine) map[string]interface{} {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/orders", createBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateOrderDerivesFields(t *testing.T) {
	router, _ := newTestRouter()

	resp := createOrder(t, router)
	assert.NotEmpty(t, resp["id"])
	assert.Equal(t, "200", resp["darazCommission"])
	assert.Equal(t, "300", resp["profit"])
	assert.Equal(t, "", resp["loss"])
}

func TestCreateOrderWithoutProductsIs400(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/orders", `{"orderId": "DRZ-1", "products": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOrders(t *testing.T) {
	router, _ := newTestRouter()
	createOrder(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/orders", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count  int `json:"count"`
		Orders []struct {
			OrderID string `json:"orderId"`
		} `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "DRZ-1001", resp.Orders[0].OrderID)
}

func TestUpdateOrder(t *testing.T) {
	router, _ := newTestRouter()
	created := createOrder(t, router)
	id := created["id"].(string)

	body := `{
		"orderId": "DRZ-1001",
		"netSales": "300",
		"products": [{"name": "Charger", "purchasingPrice": "100", "unitsSold": "5"}]
	}`
	w := doJSON(t, router, http.MethodPut, "/api/v1/orders/"+id, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp["id"], "update never changes the id")
	assert.Equal(t, "200", resp["loss"])
	assert.Equal(t, "", resp["profit"])
}

func TestUpdateUnknownOrderIs404(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodPut, "/api/v1/orders/64f000000000000000000000", createBody)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteOrderConfirmationGate(t *testing.T) {
	router, _ := newTestRouter()
	created := createOrder(t, router)
	id := created["id"].(string)

	// Without confirm=true the delete is refused and the list is unchanged.
	w := doJSON(t, router, http.MethodDelete, "/api/v1/orders/"+id, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/orders", "")
	assert.Contains(t, w.Body.String(), id)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/orders/"+id+"?confirm=true", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/orders/"+id+"?confirm=true", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportEmptyIs400(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/orders/export", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "nothing to export")
}

func TestExportReturnsWorkbookAttachment(t *testing.T) {
	router, _ := newTestRouter()
	createOrder(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/orders/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "orders.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Charger(5)", rows[1][8])
}

func TestOrderSummary(t *testing.T) {
	router, _ := newTestRouter()
	createOrder(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/orders/summary", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp["orders"])
	assert.Equal(t, "1000", resp["grossSale"])
	assert.Equal(t, "300", resp["profit"])
	assert.Equal(t, "300", resp["netPosition"])
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
