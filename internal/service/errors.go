package service

import (
	"errors"

	"github.com/AMESmith/customer-dashboard/internal/pipeline"
)

// Common service errors
var (
	// ErrInvalidInput is returned when a request parameter is not supported
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCriteria is returned when filter criteria fail validation
	ErrInvalidCriteria = pipeline.ErrInvalidCriteria
)
