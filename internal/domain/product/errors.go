package product

import "fmt"

// ValidationError indicates malformed construction input or a non-positive
// purchase quantity. It is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InactiveError indicates a purchase attempt on a deactivated product.
type InactiveError struct {
	Name string
}

func (e *InactiveError) Error() string {
	return fmt.Sprintf("product %q is inactive and cannot be purchased", e.Name)
}

// InsufficientStockError indicates the requested quantity exceeds stock.
type InsufficientStockError struct {
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %q: requested %d, available %d",
		e.Name, e.Requested, e.Available)
}

// PurchaseLimitError indicates the requested quantity exceeds a limited
// product's per-order maximum.
type PurchaseLimitError struct {
	Name      string
	Requested int
	Max       int
}

func (e *PurchaseLimitError) Error() string {
	return fmt.Sprintf("only %d of %q can be purchased per order, requested %d",
		e.Max, e.Name, e.Requested)
}

// UnsupportedError indicates an operation that the product's kind does not
// support, such as setting a quantity on a non-stocked product.
type UnsupportedError struct {
	Name string
	Op   string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s is not supported for product %q", e.Op, e.Name)
}
