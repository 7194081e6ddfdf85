package handler

import (
	"io"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/N123p/bestbuy2/internal/domain/product"
	"github.com/N123p/bestbuy2/internal/domain/store"
)

// orderItem is one decoded line of an order request.
type orderItem struct {
	Product  string
	Quantity int
}

// PlaceOrder decodes the order request, resolves product names against the
// catalog, places the order, and writes the total or a mapped error.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body")
		return
	}

	items, err := decodeOrderRequest(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed order request")
		return
	}
	if len(items) == 0 {
		writeError(w, http.StatusBadRequest, "items required")
		return
	}

	lines := make([]store.Line, len(items))
	for i, item := range items {
		p, err := h.store.FindByName(item.Product)
		if err != nil {
			h.writeOrderError(w, r, err)
			return
		}
		lines[i] = store.Line{Product: p, Quantity: item.Quantity}
	}

	total, err := h.store.Order(lines)
	if err != nil {
		h.writeOrderError(w, r, err)
		return
	}

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("id")
	e.Str(uuid.New().String())
	e.FieldStart("total")
	e.Float64(total.InexactFloat64())
	e.FieldStart("items")
	e.ArrStart()
	for _, item := range items {
		e.ObjStart()
		e.FieldStart("product")
		e.Str(item.Product)
		e.FieldStart("quantity")
		e.Int(item.Quantity)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
	writeJSON(w, http.StatusCreated, &e)
}

// writeOrderError maps domain errors to HTTP status codes: malformed input
// is 400, every order-validation failure is 422, anything else is 500.
func (h *Handler) writeOrderError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *product.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	var (
		notFoundErr *store.ProductNotFoundError
		inactiveErr *product.InactiveError
		stockErr    *product.InsufficientStockError
		limitErr    *product.PurchaseLimitError
	)
	switch {
	case errors.As(err, &notFoundErr),
		errors.As(err, &inactiveErr),
		errors.As(err, &stockErr),
		errors.As(err, &limitErr):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	zctx.From(r.Context()).Error("place order", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

// decodeOrderRequest parses {"items":[{"product":string,"quantity":int}]}.
// Unknown fields are skipped.
func decodeOrderRequest(body []byte) ([]orderItem, error) {
	var items []orderItem
	d := jx.DecodeBytes(body)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "items" {
			return d.Skip()
		}
		return d.Arr(func(d *jx.Decoder) error {
			var item orderItem
			if err := d.Obj(func(d *jx.Decoder, key string) error {
				switch key {
				case "product":
					v, err := d.Str()
					if err != nil {
						return err
					}
					item.Product = v
					return nil
				case "quantity":
					v, err := d.Int()
					if err != nil {
						return err
					}
					item.Quantity = v
					return nil
				default:
					return d.Skip()
				}
			}); err != nil {
				return err
			}
			items = append(items, item)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode order request")
	}
	return items, nil
}
