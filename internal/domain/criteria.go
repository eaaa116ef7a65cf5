package domain

// ValueRange is an inclusive bound on contract value
type ValueRange struct {
	Min int64 `json:"min" validate:"gte=0"`
	Max int64 `json:"max" validate:"gte=0,gtefield=Min"`
}

// Contains reports whether v lies within the range, both ends inclusive
func (r ValueRange) Contains(v int64) bool {
	return v >= r.Min && v <= r.Max
}

// Within reports whether r lies entirely inside outer
func (r ValueRange) Within(outer ValueRange) bool {
	return r.Min >= outer.Min && r.Max <= outer.Max
}

// FilterCriteria is the set of user-chosen constraints applied to the record set.
// A nil AccountManager means no account manager constraint. Empty product or
// payment method sets match nothing.
type FilterCriteria struct {
	AccountManager *string            `json:"accountManager"`
	Products       Set[Product]       `json:"products"`
	PaymentMethods Set[PaymentMethod] `json:"paymentMethods"`
	ValueRange     ValueRange         `json:"valueRange"`
}

// FilterOptions describes the selectable domain of every filter, derived from the loaded dataset
type FilterOptions struct {
	AccountManagers []string        `json:"accountManagers"` // sorted
	Products        []Product       `json:"products"`        // first-seen order
	PaymentMethods  []PaymentMethod `json:"paymentMethods"`  // first-seen order
	ValueBounds     ValueRange      `json:"valueBounds"`
	RecordCount     int             `json:"recordCount"`
}

// DefaultCriteria returns the criteria that lets every record through:
// no account manager constraint, every product and payment method, the full value range
func (o FilterOptions) DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Products:       NewSet(o.Products...),
		PaymentMethods: NewSet(o.PaymentMethods...),
		ValueRange:     o.ValueBounds,
	}
}
