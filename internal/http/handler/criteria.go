package handler

import (
	"net/url"
	"strconv"

	"github.com/AMESmith/customer-dashboard/internal/domain"
)

// Query parameter names accepted by the dashboard endpoints
const (
	paramAccountManager = "accountManager"
	paramProduct        = "product"
	paramPaymentMethod  = "paymentMethod"
	paramMinValue       = "minValue"
	paramMaxValue       = "maxValue"
	paramStageOrder     = "stageOrder"
)

// filterRequestFromQuery reads a FilterRequest from query parameters.
// A list parameter that is absent selects every option; one that is present
// with only empty values selects none (e.g. ?product=).
// Unparseable numbers are returned as field errors keyed by parameter name.
// stageOrder is left to the endpoints that render a pipeline table.
func filterRequestFromQuery(q url.Values) (domain.FilterRequest, map[string]string) {
	var req domain.FilterRequest
	errs := make(map[string]string)

	if am := q.Get(paramAccountManager); am != "" {
		req.AccountManager = &am
	}

	if values, ok := q[paramProduct]; ok {
		req.Products = make([]domain.Product, 0, len(values))
		for _, v := range values {
			if v != "" {
				req.Products = append(req.Products, domain.Product(v))
			}
		}
	}

	if values, ok := q[paramPaymentMethod]; ok {
		req.PaymentMethods = make([]domain.PaymentMethod, 0, len(values))
		for _, v := range values {
			if v != "" {
				req.PaymentMethods = append(req.PaymentMethods, domain.PaymentMethod(v))
			}
		}
	}

	if raw := q.Get(paramMinValue); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			req.MinValue = &v
		} else {
			errs[paramMinValue] = "Must be a whole number"
		}
	}
	if raw := q.Get(paramMaxValue); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			req.MaxValue = &v
		} else {
			errs[paramMaxValue] = "Must be a whole number"
		}
	}

	if len(errs) > 0 {
		return req, errs
	}
	return req, nil
}

// criteriaFromRequest overlays a request on the all-pass criteria of the dataset
func criteriaFromRequest(req domain.FilterRequest, defaults domain.FilterCriteria) domain.FilterCriteria {
	criteria := defaults

	if req.AccountManager != nil && *req.AccountManager != "" && *req.AccountManager != domain.AllAccountManagers {
		am := *req.AccountManager
		criteria.AccountManager = &am
	}
	if req.Products != nil {
		criteria.Products = domain.NewSet(req.Products...)
	}
	if req.PaymentMethods != nil {
		criteria.PaymentMethods = domain.NewSet(req.PaymentMethods...)
	}
	if req.MinValue != nil {
		criteria.ValueRange.Min = *req.MinValue
	}
	if req.MaxValue != nil {
		criteria.ValueRange.Max = *req.MaxValue
	}
	return criteria
}
