// Package catalog builds the initial product list the store opens with.
package catalog

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/N123p/bestbuy2/internal/domain/product"
	"github.com/N123p/bestbuy2/internal/domain/promotion"
)

// Default returns the seed catalog: three stocked products, a non-stocked
// software license, and shipping modeled as an ordinary limited product
// (max 1 per order), with promotions attached.
func Default() ([]*product.Product, error) {
	macbook, err := product.New("MacBook Air M2", decimal.NewFromInt(1450), 100)
	if err != nil {
		return nil, errors.Wrap(err, "macbook")
	}
	earbuds, err := product.New("Bose QuietComfort Earbuds", decimal.NewFromInt(250), 500)
	if err != nil {
		return nil, errors.Wrap(err, "earbuds")
	}
	pixel, err := product.New("Google Pixel 7", decimal.NewFromInt(500), 250)
	if err != nil {
		return nil, errors.Wrap(err, "pixel")
	}
	license, err := product.NewNonStocked("Windows License", decimal.NewFromInt(125))
	if err != nil {
		return nil, errors.Wrap(err, "license")
	}
	shipping, err := product.NewLimited("Shipping", decimal.NewFromInt(10), 250, 1)
	if err != nil {
		return nil, errors.Wrap(err, "shipping")
	}

	macbook.SetPromotion(promotion.SecondHalfPrice("Second Half price"))
	earbuds.SetPromotion(promotion.ThirdOneFree("Third One Free"))
	license.SetPromotion(promotion.PercentDiscount("30% off", decimal.NewFromInt(30)))

	return []*product.Product{macbook, earbuds, pixel, license, shipping}, nil
}
