// Package source provides the engagement record feeds the dashboard is built on.
// Every feed is validated at this boundary so malformed records never reach
// the filter and aggregation pipeline.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/AMESmith/customer-dashboard/internal/domain"
)

// ErrMalformedRecord is returned when a record is missing a field or holds an out-of-domain value
var ErrMalformedRecord = errors.New("malformed engagement record")

// RecordSource produces the dataset the dashboard is computed from
type RecordSource interface {
	Records(ctx context.Context) ([]domain.EngagementRecord, error)
}

// RecordError describes the first problem found in a record
type RecordError struct {
	Index    int
	Customer string
	Field    string
	Reason   string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: record %d (customer %q): %s %s", ErrMalformedRecord, e.Index, e.Customer, e.Field, e.Reason)
}

// Unwrap lets callers match ErrMalformedRecord with errors.Is
func (e *RecordError) Unwrap() error {
	return ErrMalformedRecord
}

// Load reads the records of src and validates them
func Load(ctx context.Context, src RecordSource) ([]domain.EngagementRecord, error) {
	records, err := src.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

// Validate checks every record and the uniqueness of customer identifiers
func Validate(records []domain.EngagementRecord) error {
	seen := make(map[string]int, len(records))
	for i, r := range records {
		if err := ValidateRecord(r); err != nil {
			var recErr *RecordError
			if errors.As(err, &recErr) {
				recErr.Index = i
			}
			return err
		}
		if first, dup := seen[r.Customer]; dup {
			return &RecordError{
				Index:    i,
				Customer: r.Customer,
				Field:    "customer",
				Reason:   fmt.Sprintf("duplicates record %d", first),
			}
		}
		seen[r.Customer] = i
	}
	return nil
}

// ValidateRecord checks a single record. The returned RecordError has Index -1.
func ValidateRecord(r domain.EngagementRecord) error {
	fail := func(field, reason string) error {
		return &RecordError{Index: -1, Customer: r.Customer, Field: field, Reason: reason}
	}

	switch {
	case r.Customer == "":
		return fail("customer", "is required")
	case r.AccountManager == "":
		return fail("accountManager", "is required")
	case r.ContractDate.IsZero():
		return fail("contractDate", "is required")
	case r.BusiestInteractionDate.IsZero():
		return fail("busiestInteractionDate", "is required")
	case r.BusiestInteractionDate.Before(r.ContractDate):
		return fail("busiestInteractionDate", "is before contractDate")
	case r.TurnaroundDays < 1:
		return fail("turnaroundDays", fmt.Sprintf("must be at least 1, got %d", r.TurnaroundDays))
	case r.ContractValue <= 0:
		return fail("contractValue", fmt.Sprintf("must be positive, got %d", r.ContractValue))
	case !r.Product.IsValid():
		return fail("product", fmt.Sprintf("unknown value %q", r.Product))
	case !r.PaymentMethod.IsValid():
		return fail("paymentMethod", fmt.Sprintf("unknown value %q", r.PaymentMethod))
	case !r.PipelineStage.IsValid():
		return fail("pipelineStage", fmt.Sprintf("unknown value %q", r.PipelineStage))
	}
	return nil
}
