// Package handler exposes the store engine over HTTP with JSON bodies.
package handler

import (
	"net/http"

	"github.com/go-faster/jx"

	"github.com/N123p/bestbuy2/internal/domain/store"
)

// Handler serves the catalog and order endpoints, delegating all business
// logic to the store.
type Handler struct {
	store *store.Store
}

// NewHandler constructs a Handler over the given store.
func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// Register attaches all routes to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/products", h.ListProducts)
	mux.HandleFunc("GET /api/stock", h.TotalStock)
	mux.HandleFunc("POST /api/orders", h.PlaceOrder)
}

// writeJSON writes the encoder's buffer with the given status code.
func writeJSON(w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// writeError writes a {"code","message"} error body.
func writeError(w http.ResponseWriter, status int, message string) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("code")
	e.Int(status)
	e.FieldStart("message")
	e.Str(message)
	e.ObjEnd()
	writeJSON(w, status, &e)
}
