package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"siddeshlogistics/handlers"
	"siddeshlogistics/middleware"
	"siddeshlogistics/repository"
	"siddeshlogistics/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct{}

func (stubRenderer) RenderPDF(ctx context.Context, html []byte) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

type response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newServer(t *testing.T, secret string) *httptest.Server {
	t.Helper()
	store := repository.NewMemoryStore()
	bills := services.NewBillService(store, store, store, "SL")

	handler := SetupRoutes(http.NewServeMux(), Handlers{
		User:    &handlers.UserHandler{Users: services.NewUserService(store), JWTSecret: secret, TokenTTL: time.Hour},
		Bill:    &handlers.BillHandler{Bills: bills},
		Initial: &handlers.InitialHandler{Repo: store},
		PDF:     &handlers.PDFHandler{Invoices: services.NewInvoiceService(bills, store, stubRenderer{}, "SIDDESH_LOGISTICS")},
	}, middleware.WithOwner(secret, "default"))

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body interface{}) (*http.Response, response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var out response
	if res.Header.Get("Content-Type") == "application/json" {
		require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	}
	return res, out
}

type billJSON struct {
	ID            string `json:"id"`
	BillNumber    string `json:"bill_number"`
	TotalAmount   string `json:"total_amount"`
	TotalPaid     string `json:"total_paid"`
	BalanceAmount string `json:"balance_amount"`
	Status        string `json:"status"`
}

var draftBody = map[string]interface{}{
	"date":             "2025-08-25",
	"customer_name":    "ABC Industries Pvt Ltd",
	"customer_address": "123 Industrial Area, Gurgaon",
	"advance_amount":   "500",
	"shipments": []map[string]interface{}{
		{"container_no": "TCLU1", "from": "Mumbai Port", "to": "Delhi ICD", "total_fair": "1000"},
		{"container_no": "TCLU2", "from": "Mumbai Port", "to": "Pune", "total_fair": "2000"},
	},
}

func TestBillLifecycle(t *testing.T) {
	srv := newServer(t, "")

	res, body := call(t, srv, http.MethodPost, "/bills", "", draftBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, body.Message)
	var bill billJSON
	require.NoError(t, json.Unmarshal(body.Data, &bill))
	assert.Equal(t, "3000", bill.TotalAmount)
	assert.Equal(t, "2500", bill.BalanceAmount)
	assert.Equal(t, "pending", bill.Status)

	res, body = call(t, srv, http.MethodGet, "/bills/"+bill.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var detail struct {
		Shipments []json.RawMessage `json:"shipments"`
		Payments  []json.RawMessage `json:"payments"`
		Draft     struct {
			Shipments []json.RawMessage `json:"shipments"`
		} `json:"draft"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &detail))
	assert.Len(t, detail.Shipments, 2)
	assert.Len(t, detail.Payments, 1)
	assert.Len(t, detail.Draft.Shipments, 2)

	res, body = call(t, srv, http.MethodPost, "/bills/"+bill.ID+"/payments", "", map[string]string{"amount": "2500"})
	require.Equal(t, http.StatusOK, res.StatusCode, body.Message)
	require.NoError(t, json.Unmarshal(body.Data, &bill))
	assert.Equal(t, "3000", bill.TotalPaid)
	assert.Equal(t, "0", bill.BalanceAmount)
	assert.Equal(t, "paid", bill.Status)

	res, body = call(t, srv, http.MethodGet, "/bills?status=paid", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list []billJSON
	require.NoError(t, json.Unmarshal(body.Data, &list))
	assert.Len(t, list, 1)

	res, _ = call(t, srv, http.MethodDelete, "/bills/"+bill.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, body = call(t, srv, http.MethodGet, "/bills/"+bill.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.False(t, body.Success)
}

func TestBillErrors(t *testing.T) {
	srv := newServer(t, "")
	_, body := call(t, srv, http.MethodPost, "/bills", "", draftBody)
	var bill billJSON
	require.NoError(t, json.Unmarshal(body.Data, &bill))

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
	}{
		{"zero payment", http.MethodPost, "/bills/" + bill.ID + "/payments", map[string]string{"amount": "0"}, http.StatusUnprocessableEntity},
		{"non-numeric payment", http.MethodPost, "/bills/" + bill.ID + "/payments", map[string]string{"amount": "abc"}, http.StatusUnprocessableEntity},
		{"payment without amount", http.MethodPost, "/bills/" + bill.ID + "/payments", map[string]string{}, http.StatusUnprocessableEntity},
		{"sub-paisa payment", http.MethodPost, "/bills/" + bill.ID + "/payments", map[string]interface{}{"amount": 0.004}, http.StatusUnprocessableEntity},
		{"payment on unknown bill", http.MethodPost, "/bills/nope/payments", map[string]string{"amount": "10"}, http.StatusNotFound},
		{"bad status", http.MethodPut, "/bills/" + bill.ID + "/status", map[string]string{"status": "void"}, http.StatusUnprocessableEntity},
		{"bad list filter", http.MethodGet, "/bills?status=void", nil, http.StatusUnprocessableEntity},
		{"malformed body", http.MethodPost, "/bills", "not a draft", http.StatusBadRequest},
		{"wrong method", http.MethodPatch, "/bills", nil, http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _ := call(t, srv, tt.method, tt.path, "", tt.body)
			assert.Equal(t, tt.status, res.StatusCode)
		})
	}
}

func TestPreviewTotals(t *testing.T) {
	srv := newServer(t, "")
	res, body := call(t, srv, http.MethodPost, "/bills/totals", "", map[string]interface{}{
		"advance_amount": "500",
		"shipments": []map[string]string{
			{"total_fair": "1000"}, {"total_fair": "abc"}, {"total_fair": "2000.50"},
		},
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var draft struct {
		TotalAmount   string `json:"total_amount"`
		BalanceAmount string `json:"balance_amount"`
		Shipments     []struct {
			SrNo int `json:"sr_no"`
		} `json:"shipments"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &draft))
	assert.Equal(t, "3000.5", draft.TotalAmount)
	assert.Equal(t, "2500.5", draft.BalanceAmount)
	require.Len(t, draft.Shipments, 3)
	assert.Equal(t, 3, draft.Shipments[2].SrNo)
}

func TestBillPDF(t *testing.T) {
	srv := newServer(t, "")
	_, body := call(t, srv, http.MethodPost, "/bills", "", draftBody)
	var bill billJSON
	require.NoError(t, json.Unmarshal(body.Data, &bill))

	res, _ := call(t, srv, http.MethodGet, "/bills/"+bill.ID+"/pdf", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/pdf", res.Header.Get("Content-Type"))
	assert.Contains(t, res.Header.Get("Content-Disposition"), "SIDDESH_LOGISTICS_BILL_SL_")

	res, _ = call(t, srv, http.MethodGet, "/bills/missing/pdf", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestInitialSetup(t *testing.T) {
	srv := newServer(t, "")

	res, _ := call(t, srv, http.MethodGet, "/initial", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = call(t, srv, http.MethodPost, "/initial", "", map[string]interface{}{"company_name": "Siddesh Logistics"})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	res, _ = call(t, srv, http.MethodPost, "/initial", "", map[string]interface{}{"company_name": "Siddesh Logistics Pvt Ltd"})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := call(t, srv, http.MethodGet, "/initial", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var initial struct {
		CompanyName string `json:"company_name"`
		OwnerID     string `json:"owner_id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &initial))
	assert.Equal(t, "Siddesh Logistics Pvt Ltd", initial.CompanyName)
	assert.Equal(t, "default", initial.OwnerID)
}

func TestAuthScopesBillsToOwner(t *testing.T) {
	srv := newServer(t, "secret")

	res, _ := call(t, srv, http.MethodGet, "/bills", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	tokens := map[string]string{}
	for _, email := range []string{"a@example.com", "b@example.com"} {
		res, body := call(t, srv, http.MethodPost, "/signup", "", map[string]string{"name": "Owner", "email": email, "password": "pw"})
		require.Equal(t, http.StatusCreated, res.StatusCode, body.Message)

		res, body = call(t, srv, http.MethodPost, "/login", "", map[string]string{"email": email, "password": "pw"})
		require.Equal(t, http.StatusOK, res.StatusCode, body.Message)
		var login struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(body.Data, &login))
		require.NotEmpty(t, login.Token)
		tokens[email] = login.Token
	}

	res, body := call(t, srv, http.MethodPost, "/bills", tokens["a@example.com"], draftBody)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	var bill billJSON
	require.NoError(t, json.Unmarshal(body.Data, &bill))

	res, _ = call(t, srv, http.MethodGet, "/bills/"+bill.ID, tokens["b@example.com"], nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = call(t, srv, http.MethodPost, "/login", "", map[string]string{"email": "a@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	srv := newServer(t, "secret")
	res, _ := call(t, srv, http.MethodOptions, "/bills", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}
