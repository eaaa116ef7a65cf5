// Package pipeline turns engagement records and filter criteria into the
// dashboard's derived view. Every function here is pure: inputs are never
// mutated and the same input always yields the same output.
package pipeline

import (
	"github.com/AMESmith/customer-dashboard/internal/domain"
)

// Filter returns the records matching every criteria clause, in input order.
// The result is a new slice; records is left untouched.
func Filter(records []domain.EngagementRecord, criteria domain.FilterCriteria) []domain.EngagementRecord {
	filtered := make([]domain.EngagementRecord, 0, len(records))
	for _, r := range records {
		if Matches(r, criteria) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Matches reports whether a single record passes the criteria
func Matches(r domain.EngagementRecord, criteria domain.FilterCriteria) bool {
	if criteria.AccountManager != nil && *criteria.AccountManager != r.AccountManager {
		return false
	}
	if !criteria.Products.Contains(r.Product) {
		return false
	}
	if !criteria.PaymentMethods.Contains(r.PaymentMethod) {
		return false
	}
	return criteria.ValueRange.Contains(r.ContractValue)
}
