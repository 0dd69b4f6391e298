package invoices

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/sarmini1/biztime/internal/companies"
)

func newTestRouter(repo *memoryRepo) http.Handler {
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), NewService(repo))
	r := chi.NewRouter()
	r.Route("/invoices", handler.MountRoutes)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestListInvoicesOrderedByCompCode(t *testing.T) {
	repo := newMemoryRepo()
	seedInvoice(repo, Invoice{ID: 1, CompCode: "ibm", Amt: 400})
	seedInvoice(repo, Invoice{ID: 2, CompCode: "apple", Amt: 100})
	router := newTestRouter(repo)

	rr := doJSON(t, router, http.MethodGet, "/invoices", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Invoices []ListItem `json:"invoices"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, []ListItem{
		{ID: 2, CompCode: "apple"},
		{ID: 1, CompCode: "ibm"},
	}, body.Invoices)
}

func TestGetInvoiceNestsCompanyAndDropsCompCode(t *testing.T) {
	repo := newMemoryRepo()
	seedCompany(repo, companies.Company{Code: "apple", Name: "Apple Computers", Description: "Software"})
	seedInvoice(repo, Invoice{ID: 1, CompCode: "apple", Amt: 100, AddDate: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)})
	router := newTestRouter(repo)

	rr := doJSON(t, router, http.MethodGet, "/invoices/1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Invoice map[string]any `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.NotContains(t, body.Invoice, "comp_code")
	require.Equal(t, float64(1), body.Invoice["id"])
	require.Equal(t, float64(100), body.Invoice["amt"])
	require.Equal(t, false, body.Invoice["paid"])
	require.Nil(t, body.Invoice["paid_date"])

	company, ok := body.Invoice["company"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "apple", company["code"])
	require.Equal(t, "Apple Computers", company["name"])
	require.Equal(t, "Software", company["description"])
}

func TestGetInvoiceWithIDInBodyReturns400(t *testing.T) {
	repo := newMemoryRepo()
	seedCompany(repo, companies.Company{Code: "apple", Name: "Apple Computers", Description: "Software"})
	seedInvoice(repo, Invoice{ID: 1, CompCode: "apple", Amt: 100})
	router := newTestRouter(repo)

	rr := doJSON(t, router, http.MethodGet, "/invoices/1", `{"id":1}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetInvoiceUnknownIDReturns404(t *testing.T) {
	router := newTestRouter(newMemoryRepo())

	rr := doJSON(t, router, http.MethodGet, "/invoices/99", "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.NotContains(t, body, "invoice")
}

func TestGetInvoiceNonNumericIDReturns400(t *testing.T) {
	router := newTestRouter(newMemoryRepo())

	rr := doJSON(t, router, http.MethodGet, "/invoices/abc", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateInvoiceReturns201WithGeneratedFields(t *testing.T) {
	repo := newMemoryRepo()
	seedCompany(repo, companies.Company{Code: "apple", Name: "Apple Computers", Description: "Software"})
	router := newTestRouter(repo)

	rr := doJSON(t, router, http.MethodPost, "/invoices", `{"comp_code":"apple","amt":100}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var body struct {
		Invoice Invoice `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.NotZero(t, body.Invoice.ID)
	require.Equal(t, "apple", body.Invoice.CompCode)
	require.Equal(t, float64(100), body.Invoice.Amt)
	require.False(t, body.Invoice.Paid)
	require.Nil(t, body.Invoice.PaidDate)
	require.Equal(t, 1, repo.count())
}

func TestCreateInvoiceUnknownCompanyReturns400(t *testing.T) {
	router := newTestRouter(newMemoryRepo())

	rr := doJSON(t, router, http.MethodPost, "/invoices", `{"comp_code":"ghost","amt":100}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateInvoiceReturnsFullRow(t *testing.T) {
	repo := newMemoryRepo()
	seedInvoice(repo, Invoice{ID: 1, CompCode: "apple", Amt: 100})
	router := newTestRouter(repo)

	rr := doJSON(t, router, http.MethodPut, "/invoices/1", `{"amt":250}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Invoice Invoice `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, int64(1), body.Invoice.ID)
	require.Equal(t, "apple", body.Invoice.CompCode)
	require.Equal(t, float64(250), body.Invoice.Amt)
}

func TestUpdateInvoiceWithIDInBodyReturns400(t *testing.T) {
	repo := newMemoryRepo()
	seedInvoice(repo, Invoice{ID: 1, CompCode: "apple", Amt: 100})
	router := newTestRouter(repo)

	rr := doJSON(t, router, http.MethodPut, "/invoices/1", `{"id":2,"amt":250}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodPut, "/invoices/99", `{"id":2,"amt":250}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateInvoiceUnknownIDReturns404(t *testing.T) {
	router := newTestRouter(newMemoryRepo())

	rr := doJSON(t, router, http.MethodPut, "/invoices/99", `{"amt":250}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteInvoiceReturnsStatusDeleted(t *testing.T) {
	repo := newMemoryRepo()
	seedInvoice(repo, Invoice{ID: 1, CompCode: "apple", Amt: 100})
	router := newTestRouter(repo)

	rr := doJSON(t, router, http.MethodDelete, "/invoices/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"status":"deleted"}`, rr.Body.String())
	require.Equal(t, 0, repo.count())

	rr = doJSON(t, router, http.MethodDelete, "/invoices/1", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
}
