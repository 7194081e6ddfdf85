package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/N123p/bestbuy2/internal/domain/product"
	"github.com/N123p/bestbuy2/internal/domain/promotion"
	"github.com/N123p/bestbuy2/internal/domain/store"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// newTestServer builds a handler over a small catalog and returns both.
func newTestServer(t *testing.T, policy store.Policy) (*httptest.Server, *store.Store) {
	t.Helper()

	macbook, err := product.New("MacBook Air M2", d("1450"), 100)
	require.NoError(t, err)
	earbuds, err := product.New("Bose QuietComfort Earbuds", d("250"), 500)
	require.NoError(t, err)
	earbuds.SetPromotion(promotion.ThirdOneFree("Third One Free"))
	license, err := product.NewNonStocked("Windows License", d("125"))
	require.NoError(t, err)
	shipping, err := product.NewLimited("Shipping", d("10"), 250, 1)
	require.NoError(t, err)
	soldOut, err := product.New("Discontinued", d("5"), 0)
	require.NoError(t, err)

	st := store.New([]*product.Product{macbook, earbuds, license, shipping, soldOut}, policy)

	mux := http.NewServeMux()
	NewHandler(st).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, st
}

func decodeBody(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func postOrder(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/orders", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestListProducts(t *testing.T) {
	srv, _ := newTestServer(t, store.PolicyCommitPerLine)

	resp, err := http.Get(srv.URL + "/api/products")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []map[string]any
	decodeBody(t, resp, &products)
	// Sold-out product is filtered out.
	require.Len(t, products, 4)

	assert.Equal(t, "MacBook Air M2", products[0]["name"])
	assert.Equal(t, float64(1450), products[0]["price"])
	assert.Equal(t, float64(100), products[0]["quantity"])
	assert.Nil(t, products[0]["promotion"])

	assert.Equal(t, "Third One Free", products[1]["promotion"])
	assert.Equal(t, "Unlimited", products[2]["quantity"])
	assert.Equal(t, float64(1), products[3]["max_per_order"])
}

func TestTotalStock(t *testing.T) {
	srv, _ := newTestServer(t, store.PolicyCommitPerLine)

	resp, err := http.Get(srv.URL + "/api/stock")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int
	decodeBody(t, resp, &body)
	// 100 + 500 + 250; the license is non-stocked, sold-out contributes 0.
	assert.Equal(t, 850, body["total_quantity"])
}

func TestPlaceOrder(t *testing.T) {
	srv, st := newTestServer(t, store.PolicyCommitPerLine)

	resp := postOrder(t, srv, `{"items":[
		{"product":"MacBook Air M2","quantity":2},
		{"product":"Bose QuietComfort Earbuds","quantity":3}
	]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		ID    string  `json:"id"`
		Total float64 `json:"total"`
		Items []struct {
			Product  string `json:"product"`
			Quantity int    `json:"quantity"`
		} `json:"items"`
	}
	decodeBody(t, resp, &body)

	assert.NotEmpty(t, body.ID)
	assert.Equal(t, float64(3400), body.Total)
	require.Len(t, body.Items, 2)
	assert.Equal(t, "MacBook Air M2", body.Items[0].Product)

	// Stock committed.
	p, err := st.FindByName("MacBook Air M2")
	require.NoError(t, err)
	assert.Equal(t, 98, p.Quantity())
}

func TestPlaceOrder_EmptyItems(t *testing.T) {
	srv, _ := newTestServer(t, store.PolicyCommitPerLine)

	resp := postOrder(t, srv, `{"items":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestPlaceOrder_MalformedBody(t *testing.T) {
	srv, _ := newTestServer(t, store.PolicyCommitPerLine)

	resp := postOrder(t, srv, `{"items":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestPlaceOrder_UnknownProduct(t *testing.T) {
	srv, _ := newTestServer(t, store.PolicyCommitPerLine)

	resp := postOrder(t, srv, `{"items":[{"product":"Nope","quantity":1}]}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, float64(422), body["code"])
	assert.Contains(t, body["message"], "Nope")
}

func TestPlaceOrder_ZeroQuantity(t *testing.T) {
	srv, _ := newTestServer(t, store.PolicyCommitPerLine)

	resp := postOrder(t, srv, `{"items":[{"product":"MacBook Air M2","quantity":0}]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestPlaceOrder_PurchaseLimit(t *testing.T) {
	srv, st := newTestServer(t, store.PolicyCommitPerLine)

	resp := postOrder(t, srv, `{"items":[{"product":"Shipping","quantity":5}]}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Contains(t, body["message"], "per order")

	p, err := st.FindByName("Shipping")
	require.NoError(t, err)
	assert.Equal(t, 250, p.Quantity())
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	srv, _ := newTestServer(t, store.PolicyCommitPerLine)

	resp := postOrder(t, srv, `{"items":[{"product":"MacBook Air M2","quantity":101}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}

func TestPlaceOrder_AtomicPolicyRollsBackNothing(t *testing.T) {
	srv, st := newTestServer(t, store.PolicyAllOrNothing)

	resp := postOrder(t, srv, `{"items":[
		{"product":"MacBook Air M2","quantity":2},
		{"product":"Discontinued","quantity":1}
	]}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	p, err := st.FindByName("MacBook Air M2")
	require.NoError(t, err)
	assert.Equal(t, 100, p.Quantity(), "no stock mutated")
}
