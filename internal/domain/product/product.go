// Package product models a catalog entry with a stock lifecycle and a
// priced buy operation.
//
// Product variants are expressed as a Kind tag plus capability checks
// (stock tracking, per-order maximum) rather than separate types, so Buy and
// Show are each a single algorithm branching on explicit flags.
package product

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/N123p/bestbuy2/internal/domain/promotion"
)

// Kind tags the product variant.
type Kind int

const (
	// KindStandard has finite stock and no per-order cap.
	KindStandard Kind = iota
	// KindNonStocked has no stock concept; buying never decrements anything
	// and the product is always active.
	KindNonStocked
	// KindLimited has finite stock plus a maximum quantity per order line.
	KindLimited
)

// Product is a single catalog entry. Name and price are immutable after
// construction; quantity changes only through Buy and SetQuantity.
type Product struct {
	name     string
	price    decimal.Decimal
	quantity int
	maximum  int // per-order cap, KindLimited only
	kind     Kind
	promo    *promotion.Promotion
}

// New creates a standard stock-tracked product.
func New(name string, price decimal.Decimal, quantity int) (*Product, error) {
	return newProduct(name, price, quantity, 0, KindStandard)
}

// NewNonStocked creates a product without a stock concept, such as a
// software license. It is always active and never runs out.
func NewNonStocked(name string, price decimal.Decimal) (*Product, error) {
	return newProduct(name, price, 0, 0, KindNonStocked)
}

// NewLimited creates a stock-tracked product that additionally caps how many
// units a single order line may request.
func NewLimited(name string, price decimal.Decimal, quantity, maximum int) (*Product, error) {
	if maximum <= 0 {
		return nil, &ValidationError{Field: "maximum", Reason: "must be positive"}
	}
	return newProduct(name, price, quantity, maximum, KindLimited)
}

func newProduct(name string, price decimal.Decimal, quantity, maximum int, kind Kind) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if price.IsNegative() {
		return nil, &ValidationError{Field: "price", Reason: "must be non-negative"}
	}
	if quantity < 0 {
		return nil, &ValidationError{Field: "quantity", Reason: "must be non-negative"}
	}
	return &Product{
		name:     name,
		price:    price,
		quantity: quantity,
		maximum:  maximum,
		kind:     kind,
	}, nil
}

// tracksStock reports whether the product has a finite stock counter.
func (p *Product) tracksStock() bool {
	return p.kind != KindNonStocked
}

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Price returns the immutable unit price.
func (p *Product) Price() decimal.Decimal { return p.price }

// Kind returns the product variant tag.
func (p *Product) Kind() Kind { return p.kind }

// Maximum returns the per-order cap for limited products, 0 otherwise.
func (p *Product) Maximum() int { return p.maximum }

// Quantity returns the current stock. For non-stocked products the value is
// meaningless; callers should check Kind first (Show prints "Unlimited").
func (p *Product) Quantity() int { return p.quantity }

// Promotion returns the attached promotion, or nil.
func (p *Product) Promotion() *promotion.Promotion { return p.promo }

// SetPromotion attaches a promotion. At most one promotion is held; passing
// a new one replaces the previous.
func (p *Product) SetPromotion(promo promotion.Promotion) {
	p.promo = &promo
}

// IsActive reports whether the product is currently purchasable.
// Non-stocked products are always active; stock-tracked products are active
// exactly when quantity > 0, so the invariant cannot drift.
func (p *Product) IsActive() bool {
	if !p.tracksStock() {
		return true
	}
	return p.quantity > 0
}

// SetQuantity replaces the stock counter, used for restocking. Setting 0
// deactivates a stock-tracked product. Not supported on non-stocked products.
func (p *Product) SetQuantity(quantity int) error {
	if !p.tracksStock() {
		return &UnsupportedError{Name: p.name, Op: "setting quantity"}
	}
	if quantity < 0 {
		return &ValidationError{Field: "quantity", Reason: "must be non-negative"}
	}
	p.quantity = quantity
	return nil
}

// CanBuy checks every Buy precondition without mutating anything.
// Check order: quantity validity, activity, per-order limit, stock.
// The per-order limit is evaluated before stock on purpose: exceeding the
// cap is reported even when stock could not satisfy the request either.
func (p *Product) CanBuy(quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	if !p.IsActive() {
		return &InactiveError{Name: p.name}
	}
	if p.kind == KindLimited && quantity > p.maximum {
		return &PurchaseLimitError{Name: p.name, Requested: quantity, Max: p.maximum}
	}
	if p.tracksStock() && quantity > p.quantity {
		return &InsufficientStockError{Name: p.name, Requested: quantity, Available: p.quantity}
	}
	return nil
}

// Buy purchases quantity units: it validates via CanBuy, prices the line
// through the attached promotion (or unit price times quantity), decrements
// stock for stock-tracked products, and returns the line total. A failed
// precondition leaves stock untouched.
func (p *Product) Buy(quantity int) (decimal.Decimal, error) {
	if err := p.CanBuy(quantity); err != nil {
		return decimal.Zero, err
	}

	total := p.price.Mul(decimal.NewFromInt(int64(quantity)))
	if p.promo != nil {
		promoted, err := p.promo.Apply(p.price, quantity)
		if err != nil {
			return decimal.Zero, errors.Wrap(err, "apply promotion")
		}
		total = promoted
	}

	if p.tracksStock() {
		p.quantity -= quantity
	}
	return total, nil
}

// Show returns a one-line display string for the product.
func (p *Product) Show() string {
	promoText := "Promotion: None"
	if p.promo != nil {
		promoText = fmt.Sprintf("Promotion: %s!", p.promo.Name)
	}

	switch p.kind {
	case KindNonStocked:
		return fmt.Sprintf("%s, Price: $%s, Quantity: Unlimited, %s", p.name, p.price, promoText)
	case KindLimited:
		return fmt.Sprintf("%s, Price: $%s, Limited to %d per order!, %s", p.name, p.price, p.maximum, promoText)
	default:
		return fmt.Sprintf("%s, Price: $%s, Quantity: %d, %s", p.name, p.price, p.quantity, promoText)
	}
}
