package pipeline

import (
	"errors"
	"fmt"

	"github.com/AMESmith/customer-dashboard/internal/domain"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidCriteria is returned when filter criteria are rejected
var ErrInvalidCriteria = errors.New("invalid filter criteria")

var validate = validator.New()

// CriteriaError describes a rejected criteria field.
// Tag follows validator tag naming so callers can render it the same way.
type CriteriaError struct {
	Field  string
	Tag    string
	Reason string
}

func (e *CriteriaError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidCriteria, e.Field, e.Reason)
}

// Unwrap lets callers match ErrInvalidCriteria with errors.Is
func (e *CriteriaError) Unwrap() error {
	return ErrInvalidCriteria
}

// NewCriteria builds criteria and rejects an inverted or negative value range.
// An empty accountManager means no account manager constraint.
func NewCriteria(accountManager string, products []domain.Product, paymentMethods []domain.PaymentMethod, valueRange domain.ValueRange) (domain.FilterCriteria, error) {
	c := domain.FilterCriteria{
		Products:       domain.NewSet(products...),
		PaymentMethods: domain.NewSet(paymentMethods...),
		ValueRange:     valueRange,
	}
	if accountManager != "" {
		c.AccountManager = &accountManager
	}
	if err := validateRange(valueRange); err != nil {
		return domain.FilterCriteria{}, err
	}
	return c, nil
}

// ValidateCriteria checks criteria against the dataset's observed value bounds.
// The range must be ordered and lie within bounds; every product and payment
// method must be a known value; a set account manager must not be empty.
func ValidateCriteria(c domain.FilterCriteria, bounds domain.ValueRange) error {
	if err := validateRange(c.ValueRange); err != nil {
		return err
	}
	if !c.ValueRange.Within(bounds) {
		return &CriteriaError{
			Field: "valueRange",
			Tag:   "within",
			Reason: fmt.Sprintf("[%d, %d] is outside the observed range [%d, %d]",
				c.ValueRange.Min, c.ValueRange.Max, bounds.Min, bounds.Max),
		}
	}
	if c.AccountManager != nil && *c.AccountManager == "" {
		return &CriteriaError{Field: "accountManager", Tag: "required", Reason: "must not be empty when set"}
	}
	for p := range c.Products {
		if !p.IsValid() {
			return &CriteriaError{Field: "products", Tag: "enum", Reason: fmt.Sprintf("unknown product %q", p)}
		}
	}
	for m := range c.PaymentMethods {
		if !m.IsValid() {
			return &CriteriaError{Field: "paymentMethods", Tag: "enum", Reason: fmt.Sprintf("unknown payment method %q", m)}
		}
	}
	return nil
}

// validateRange wraps validator errors so both errors.Is(err, ErrInvalidCriteria)
// and errors.As(err, &validator.ValidationErrors{}) hold
func validateRange(r domain.ValueRange) error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCriteria, err)
	}
	return nil
}
