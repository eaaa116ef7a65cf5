package pipeline

import (
	"sort"

	"github.com/AMESmith/customer-dashboard/internal/domain"
)

// DeriveOptions computes the selectable domain of every filter from the dataset:
// account managers sorted by name, products and payment methods in first-seen
// order, and the observed contract value bounds
func DeriveOptions(records []domain.EngagementRecord) domain.FilterOptions {
	opts := domain.FilterOptions{
		AccountManagers: []string{},
		Products:        []domain.Product{},
		PaymentMethods:  []domain.PaymentMethod{},
		RecordCount:     len(records),
	}

	managers := make(map[string]struct{})
	products := make(map[domain.Product]struct{})
	payments := make(map[domain.PaymentMethod]struct{})

	for i, r := range records {
		if _, ok := managers[r.AccountManager]; !ok {
			managers[r.AccountManager] = struct{}{}
			opts.AccountManagers = append(opts.AccountManagers, r.AccountManager)
		}
		if _, ok := products[r.Product]; !ok {
			products[r.Product] = struct{}{}
			opts.Products = append(opts.Products, r.Product)
		}
		if _, ok := payments[r.PaymentMethod]; !ok {
			payments[r.PaymentMethod] = struct{}{}
			opts.PaymentMethods = append(opts.PaymentMethods, r.PaymentMethod)
		}

		if i == 0 || r.ContractValue < opts.ValueBounds.Min {
			opts.ValueBounds.Min = r.ContractValue
		}
		if i == 0 || r.ContractValue > opts.ValueBounds.Max {
			opts.ValueBounds.Max = r.ContractValue
		}
	}

	sort.Strings(opts.AccountManagers)
	return opts
}
