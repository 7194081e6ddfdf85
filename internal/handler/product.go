package handler

import (
	"net/http"

	"github.com/go-faster/jx"

	"github.com/N123p/bestbuy2/internal/domain/product"
)

// ListProducts returns every active product in catalog order.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.store.ActiveProducts()

	var e jx.Encoder
	e.ArrStart()
	for _, p := range products {
		encodeProduct(&e, p)
	}
	e.ArrEnd()
	writeJSON(w, http.StatusOK, &e)
}

// TotalStock returns the summed stock-tracked quantity across the catalog.
func (h *Handler) TotalStock(w http.ResponseWriter, r *http.Request) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("total_quantity")
	e.Int(h.store.TotalQuantity())
	e.ObjEnd()
	writeJSON(w, http.StatusOK, &e)
}

// encodeProduct writes one product object. Non-stocked products report the
// string "Unlimited" instead of a numeric quantity.
func encodeProduct(e *jx.Encoder, p *product.Product) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(p.Name())
	e.FieldStart("price")
	e.Float64(p.Price().InexactFloat64())
	e.FieldStart("quantity")
	if p.Kind() == product.KindNonStocked {
		e.Str("Unlimited")
	} else {
		e.Int(p.Quantity())
	}
	if p.Kind() == product.KindLimited {
		e.FieldStart("max_per_order")
		e.Int(p.Maximum())
	}
	e.FieldStart("promotion")
	if promo := p.Promotion(); promo != nil {
		e.Str(promo.Name)
	} else {
		e.Null()
	}
	e.FieldStart("display")
	e.Str(p.Show())
	e.ObjEnd()
}
