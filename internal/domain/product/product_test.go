package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/N123p/bestbuy2/internal/domain/promotion"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name      string
		prodName  string
		price     decimal.Decimal
		quantity  int
		wantField string
	}{
		{name: "empty name", prodName: "", price: d("10"), quantity: 1, wantField: "name"},
		{name: "blank name", prodName: "   ", price: d("10"), quantity: 1, wantField: "name"},
		{name: "negative price", prodName: "Widget", price: d("-1"), quantity: 1, wantField: "price"},
		{name: "negative quantity", prodName: "Widget", price: d("10"), quantity: -1, wantField: "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.prodName, tt.price, tt.quantity)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestNew_ActiveMatchesQuantity(t *testing.T) {
	stocked, err := New("Widget", d("10"), 5)
	require.NoError(t, err)
	assert.True(t, stocked.IsActive())

	empty, err := New("Widget", d("10"), 0)
	require.NoError(t, err)
	assert.False(t, empty.IsActive())

	free, err := New("Freebie", d("0"), 1)
	require.NoError(t, err)
	assert.True(t, free.IsActive())
}

func TestNewLimited_MaximumValidation(t *testing.T) {
	_, err := NewLimited("Shipping", d("10"), 250, 0)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "maximum", vErr.Field)
}

func TestNonStocked_AlwaysActive(t *testing.T) {
	p, err := NewNonStocked("Windows License", d("125"))
	require.NoError(t, err)
	assert.True(t, p.IsActive())
}

func TestBuy_Standard(t *testing.T) {
	p, err := New("Widget", d("100"), 10)
	require.NoError(t, err)

	total, err := p.Buy(4)
	require.NoError(t, err)
	assert.True(t, d("400").Equal(total))
	assert.Equal(t, 6, p.Quantity())
	assert.True(t, p.IsActive())
}

func TestBuy_ExactStockDeactivates(t *testing.T) {
	p, err := New("Widget", d("100"), 4)
	require.NoError(t, err)

	total, err := p.Buy(4)
	require.NoError(t, err)
	assert.True(t, d("400").Equal(total))
	assert.Equal(t, 0, p.Quantity())
	assert.False(t, p.IsActive())
}

func TestBuy_InsufficientStockLeavesStockUnchanged(t *testing.T) {
	p, err := New("Widget", d("100"), 3)
	require.NoError(t, err)

	_, err = p.Buy(4)

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 4, stockErr.Requested)
	assert.Equal(t, 3, stockErr.Available)
	assert.Equal(t, 3, p.Quantity())
}

func TestBuy_NonPositiveQuantity(t *testing.T) {
	p, err := New("Widget", d("100"), 3)
	require.NoError(t, err)

	for _, quantity := range []int{0, -1} {
		_, err = p.Buy(quantity)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, 3, p.Quantity())
	}
}

func TestBuy_Inactive(t *testing.T) {
	p, err := New("Widget", d("100"), 0)
	require.NoError(t, err)

	_, err = p.Buy(1)

	var inactiveErr *InactiveError
	require.ErrorAs(t, err, &inactiveErr)
	assert.Equal(t, "Widget", inactiveErr.Name)
}

func TestBuy_LimitedCapBeforeStock(t *testing.T) {
	// Stock could satisfy the request; the per-order cap must fail first.
	p, err := NewLimited("Shipping", d("10"), 250, 1)
	require.NoError(t, err)

	_, err = p.Buy(5)

	var limitErr *PurchaseLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 1, limitErr.Max)
	assert.Equal(t, 5, limitErr.Requested)
	assert.Equal(t, 250, p.Quantity())
}

func TestBuy_LimitedAtCap(t *testing.T) {
	p, err := NewLimited("Shipping", d("10"), 250, 1)
	require.NoError(t, err)

	total, err := p.Buy(1)
	require.NoError(t, err)
	assert.True(t, d("10").Equal(total))
	assert.Equal(t, 249, p.Quantity())
}

func TestBuy_LimitedCapExceedsStock(t *testing.T) {
	// Cap allows 5 but only 3 in stock: the stock check fires after the cap.
	p, err := NewLimited("Widget", d("10"), 3, 5)
	require.NoError(t, err)

	_, err = p.Buy(4)

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
}

func TestBuy_NonStockedNeverDecrements(t *testing.T) {
	p, err := NewNonStocked("Windows License", d("125"))
	require.NoError(t, err)

	total, err := p.Buy(1000)
	require.NoError(t, err)
	assert.True(t, d("125000").Equal(total))
	assert.True(t, p.IsActive())

	total, err = p.Buy(1)
	require.NoError(t, err)
	assert.True(t, d("125").Equal(total))
}

func TestBuy_WithPromotion(t *testing.T) {
	p, err := New("Bose QuietComfort Earbuds", d("250"), 500)
	require.NoError(t, err)
	p.SetPromotion(promotion.SecondHalfPrice("Second Half price"))

	total, err := p.Buy(5)
	require.NoError(t, err)
	assert.True(t, d("1000").Equal(total))
	assert.Equal(t, 495, p.Quantity())
}

func TestBuy_PromotionOnNonStocked(t *testing.T) {
	p, err := NewNonStocked("Windows License", d("125"))
	require.NoError(t, err)
	p.SetPromotion(promotion.PercentDiscount("30% off", d("30")))

	total, err := p.Buy(4)
	require.NoError(t, err)
	assert.True(t, d("350").Equal(total))
}

func TestCanBuy_MutatesNothing(t *testing.T) {
	p, err := New("Widget", d("100"), 10)
	require.NoError(t, err)

	require.NoError(t, p.CanBuy(10))
	assert.Equal(t, 10, p.Quantity())
	assert.True(t, p.IsActive())
}

func TestSetQuantity(t *testing.T) {
	p, err := New("Widget", d("100"), 10)
	require.NoError(t, err)

	require.NoError(t, p.SetQuantity(0))
	assert.False(t, p.IsActive())

	require.NoError(t, p.SetQuantity(25))
	assert.Equal(t, 25, p.Quantity())
	assert.True(t, p.IsActive())

	err = p.SetQuantity(-1)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestSetQuantity_NonStockedUnsupported(t *testing.T) {
	p, err := NewNonStocked("Windows License", d("125"))
	require.NoError(t, err)

	err = p.SetQuantity(10)

	var unsupportedErr *UnsupportedError
	require.ErrorAs(t, err, &unsupportedErr)
	assert.Equal(t, "Windows License", unsupportedErr.Name)
}

func TestShow(t *testing.T) {
	standard, err := New("Google Pixel 7", d("500"), 250)
	require.NoError(t, err)
	assert.Equal(t, "Google Pixel 7, Price: $500, Quantity: 250, Promotion: None", standard.Show())

	nonStocked, err := NewNonStocked("Windows License", d("125"))
	require.NoError(t, err)
	nonStocked.SetPromotion(promotion.PercentDiscount("30% off", d("30")))
	assert.Equal(t, "Windows License, Price: $125, Quantity: Unlimited, Promotion: 30% off!", nonStocked.Show())

	limited, err := NewLimited("Shipping", d("10"), 250, 1)
	require.NoError(t, err)
	assert.Equal(t, "Shipping, Price: $10, Limited to 1 per order!, Promotion: None", limited.Show())
}
