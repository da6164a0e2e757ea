package order

import "strings"

// Order is the canonical order record produced by normalization.
//
// Orders are created once per run from raw input, mutated only by the
// normalization and deduplication stages, and frozen afterwards. Missing or
// malformed source fields degrade to blank strings or zero weight rather
// than failing construction; downstream stages treat blanks explicitly.
type Order struct {
	id          string
	city        string
	paymentType string
	productType string
	weight      float64
	deadline    string
	address     string
}

// New creates a canonical Order. All string fields are stored as given;
// trimming and aliasing are the normalizer's responsibility.
func New(id, city, paymentType, productType string, weight float64, deadline, address string) Order {
	return Order{
		id:          id,
		city:        city,
		paymentType: paymentType,
		productType: productType,
		weight:      weight,
		deadline:    deadline,
		address:     address,
	}
}

// ID returns the order identifier. It may be blank when the source record
// carried none; such orders are still planned and reported.
func (o Order) ID() string {
	return o.id
}

// City returns the canonical zone name for the delivery city.
func (o Order) City() string {
	return o.city
}

// PaymentType returns the payment type with its original casing preserved.
func (o Order) PaymentType() string {
	return o.paymentType
}

// ProductType returns the product type with its original casing preserved.
func (o Order) ProductType() string {
	return o.productType
}

// Weight returns the order weight; zero when the source was absent or
// unparseable.
func (o Order) Weight() float64 {
	return o.weight
}

// Deadline returns the delivery deadline in "YYYY-MM-DD HH:MM" form, or a
// blank string when the order has none.
func (o Order) Deadline() string {
	return o.deadline
}

// Address returns the free-text delivery address, possibly blank.
func (o Order) Address() string {
	return o.address
}

// IsCOD reports whether the payment type equals "cod" case-insensitively.
func (o Order) IsCOD() bool {
	return strings.EqualFold(o.paymentType, "cod")
}

// HasDeadline reports whether the order carries a deadline string.
// The string is not guaranteed to parse; lateness evaluation checks that.
func (o Order) HasDeadline() bool {
	return o.deadline != ""
}
