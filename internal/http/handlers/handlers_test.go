package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/data/repos/customer"
	"github.com/yungbote/crm-backend/internal/data/repos/order"
	"github.com/yungbote/crm-backend/internal/data/repos/product"
	"github.com/yungbote/crm-backend/internal/data/repos/testutil"
	"github.com/yungbote/crm-backend/internal/http/handlers"
	"github.com/yungbote/crm-backend/internal/server"
	"github.com/yungbote/crm-backend/internal/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	log := testutil.Logger(t)

	customerRepo := customer.NewCustomerRepo(db, log)
	productRepo := product.NewProductRepo(db, log)
	orderRepo := order.NewOrderRepo(db, log)

	customerService := services.NewCustomerService(db, log, customerRepo)
	productService := services.NewProductService(db, log, productRepo)
	orderService := services.NewOrderService(db, log, customerRepo, productRepo, orderRepo)
	reportService := services.NewReportService(db, log, customerRepo, orderRepo)

	return server.NewRouter(server.RouterConfig{
		Log:             log,
		CustomerHandler: handlers.NewCustomerHandler(customerService),
		ProductHandler:  handlers.NewProductHandler(productService),
		OrderHandler:    handlers.NewOrderHandler(orderService),
		ReportHandler:   handlers.NewReportHandler(reportService),
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response body %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestHealthcheck(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/healthcheck", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
}

func TestCreateCustomerEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"name":  "Alice Johnson",
		"email": "alice@example.com",
		"phone": "+1234567890",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	body := decodeBody(t, rec)
	created, ok := body["customer"].(map[string]any)
	if !ok {
		t.Fatalf("missing customer in response: %v", body)
	}
	if created["email"] != "alice@example.com" {
		t.Fatalf("unexpected email: %v", created["email"])
	}
	if created["id"] == "" || created["id"] == nil {
		t.Fatalf("expected assigned id, got %v", created["id"])
	}
}

func TestCreateCustomerValidationMapsTo400(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"name":  "Bad Email",
		"email": "not-an-email",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusBadRequest)
	}
	body := decodeBody(t, rec)
	errObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("missing error envelope: %v", body)
	}
	reasons, ok := errObj["reasons"].([]any)
	if !ok || len(reasons) == 0 {
		t.Fatalf("expected validation reasons, got %v", errObj["reasons"])
	}
}

func TestCreateCustomerDuplicateMapsTo409(t *testing.T) {
	r := newTestRouter(t)

	in := gin.H{"name": "Alice", "email": "dup@example.com"}
	if rec := doJSON(t, r, http.MethodPost, "/api/customers", in); rec.Code != http.StatusCreated {
		t.Fatalf("first create failed: %d %s", rec.Code, rec.Body.String())
	}
	rec := doJSON(t, r, http.MethodPost, "/api/customers", in)
	if rec.Code != http.StatusConflict {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusConflict, rec.Body.String())
	}
}

func TestBulkCreateCustomersEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/customers/bulk", gin.H{
		"customers": []gin.H{
			{"name": "A", "email": "a@example.com"},
			{"name": "B", "email": "bad-email"},
			{"name": "C", "email": "c@example.com"},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusOK, rec.Body.String())
	}
	body := decodeBody(t, rec)
	created, _ := body["created"].([]any)
	errs, _ := body["errors"].([]any)
	if len(created) != 2 || len(errs) != 1 {
		t.Fatalf("unexpected result: created=%d errors=%d body=%s", len(created), len(errs), rec.Body.String())
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	r := newTestRouter(t)

	custRec := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"name":  "Buyer",
		"email": "buyer@example.com",
	})
	if custRec.Code != http.StatusCreated {
		t.Fatalf("customer create failed: %d", custRec.Code)
	}
	custID := decodeBody(t, custRec)["customer"].(map[string]any)["id"].(string)

	prodRec := doJSON(t, r, http.MethodPost, "/api/products", gin.H{
		"name":  "Widget",
		"price": "19.99",
		"stock": 5,
	})
	if prodRec.Code != http.StatusCreated {
		t.Fatalf("product create failed: %d %s", prodRec.Code, prodRec.Body.String())
	}
	prodID := decodeBody(t, prodRec)["product"].(map[string]any)["id"].(string)

	rec := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"customer_id": custID,
		"product_ids": []string{prodID},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	created := decodeBody(t, rec)["order"].(map[string]any)
	if got := created["total_amount"]; got != "19.99" {
		t.Fatalf("unexpected total_amount: %v", got)
	}
}

func TestCreateOrderMissingProductMapsTo404(t *testing.T) {
	r := newTestRouter(t)

	custRec := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"name":  "Buyer",
		"email": "buyer2@example.com",
	})
	if custRec.Code != http.StatusCreated {
		t.Fatalf("customer create failed: %d", custRec.Code)
	}
	custID := decodeBody(t, custRec)["customer"].(map[string]any)["id"].(string)

	rec := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"customer_id": custID,
		"product_ids": []string{"4dbf4e21-57f0-47b9-9b09-7d63f4c4a09f"},
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusNotFound, rec.Body.String())
	}
}

func TestListCustomersWithFilter(t *testing.T) {
	r := newTestRouter(t)

	for _, in := range []gin.H{
		{"name": "Alice Johnson", "email": "alice2@example.com"},
		{"name": "Bob Smith", "email": "bob2@example.com"},
	} {
		if rec := doJSON(t, r, http.MethodPost, "/api/customers", in); rec.Code != http.StatusCreated {
			t.Fatalf("seed create failed: %d", rec.Code)
		}
	}

	rec := doJSON(t, r, http.MethodGet, "/api/customers?name=alice", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	listed, _ := decodeBody(t, rec)["customers"].([]any)
	if len(listed) != 1 {
		t.Fatalf("unexpected match count: got=%d want=1 body=%s", len(listed), rec.Body.String())
	}
}

func TestSummaryEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/reports/summary", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	body := decodeBody(t, rec)
	if body["total_customers"] != float64(0) || body["total_orders"] != float64(0) {
		t.Fatalf("unexpected empty summary: %v", body)
	}
}
