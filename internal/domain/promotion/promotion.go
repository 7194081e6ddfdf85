// Package promotion implements the store's pricing strategies.
//
// A Promotion is a pure function of (unit price, quantity): it never reads
// stock or order context, so any promotion can be attached to any product
// without the product knowing the discount mechanics.
package promotion

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Type enumerates the supported promotion strategies.
type Type string

const (
	// TypePercent discounts every unit by a fixed percentage.
	TypePercent Type = "percent"
	// TypeSecondHalfPrice pairs consecutive units; the second of each pair
	// costs half price.
	TypeSecondHalfPrice Type = "second_half_price"
	// TypeThirdOneFree makes every third unit free.
	TypeThirdOneFree Type = "third_one_free"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// Promotion is an immutable pricing strategy with a display name.
// The zero value is not usable; construct via PercentDiscount,
// SecondHalfPrice or ThirdOneFree.
type Promotion struct {
	Name    string
	Type    Type
	Percent decimal.Decimal
}

// PercentDiscount returns a promotion that takes percent off every unit.
func PercentDiscount(name string, percent decimal.Decimal) Promotion {
	return Promotion{Name: name, Type: TypePercent, Percent: percent}
}

// SecondHalfPrice returns a promotion where every second unit is half price.
func SecondHalfPrice(name string) Promotion {
	return Promotion{Name: name, Type: TypeSecondHalfPrice}
}

// ThirdOneFree returns a promotion where every third unit is free.
func ThirdOneFree(name string) Promotion {
	return Promotion{Name: name, Type: TypeThirdOneFree}
}

// Apply calculates the total price for quantity units at unitPrice under
// this promotion. It is pure: same inputs always produce the same output.
func (p Promotion) Apply(unitPrice decimal.Decimal, quantity int) (decimal.Decimal, error) {
	qty := decimal.NewFromInt(int64(quantity))

	switch p.Type {
	case TypePercent:
		discounted := unitPrice.Mul(hundred.Sub(p.Percent)).Div(hundred)
		return discounted.Mul(qty), nil
	case TypeSecondHalfPrice:
		// ceil(q/2) units full price, floor(q/2) units half price.
		fullCount := decimal.NewFromInt(int64(quantity/2 + quantity%2))
		halfCount := decimal.NewFromInt(int64(quantity / 2))
		full := unitPrice.Mul(fullCount)
		half := unitPrice.Mul(halfCount).Div(two)
		return full.Add(half), nil
	case TypeThirdOneFree:
		// Every group of 3 units, 2 are paid.
		paid := decimal.NewFromInt(int64((quantity/3)*2 + quantity%3))
		return unitPrice.Mul(paid), nil
	default:
		return decimal.Zero, errors.Errorf("unsupported promotion type: %q", p.Type)
	}
}
