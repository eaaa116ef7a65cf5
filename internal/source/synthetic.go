package source

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/AMESmith/customer-dashboard/internal/domain"
)

// Synthetic feed parameters
const (
	DefaultSeed     int64 = 42
	DefaultCount          = 30
	DefaultSpanDays       = 250

	MinTurnaroundDays    = 1
	MaxTurnaroundDays    = 15
	MaxBusiestOffsetDays = 5
	MinContractValue     = 1000
	MaxContractValue     = 20000
)

// DefaultStartDate is the earliest contract date the synthetic feed produces
var DefaultStartDate = domain.NewDate(2024, time.January, 1)

// Generate returns count synthetic records. The output depends only on seed and count.
func Generate(seed int64, count int) []domain.EngagementRecord {
	return generate(rand.New(rand.NewSource(seed)), count, DefaultStartDate, DefaultSpanDays)
}

// SyntheticSource is a stand-in for a real engagement feed
type SyntheticSource struct {
	Seed      int64
	Count     int
	StartDate domain.Date
	SpanDays  int
}

// NewSyntheticSource creates a synthetic source with the default date window
func NewSyntheticSource(seed int64, count int) *SyntheticSource {
	return &SyntheticSource{
		Seed:      seed,
		Count:     count,
		StartDate: DefaultStartDate,
		SpanDays:  DefaultSpanDays,
	}
}

// Records implements RecordSource
func (s *SyntheticSource) Records(ctx context.Context) ([]domain.EngagementRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Count < 0 {
		return nil, fmt.Errorf("record count must not be negative, got %d", s.Count)
	}
	if s.SpanDays < 0 {
		return nil, fmt.Errorf("date span must not be negative, got %d", s.SpanDays)
	}

	start := s.StartDate
	if start.IsZero() {
		start = DefaultStartDate
	}
	return generate(rand.New(rand.NewSource(s.Seed)), s.Count, start, s.SpanDays), nil
}

// generate draws every field independently except the busiest interaction date,
// which is offset from the contract date so it never precedes it
func generate(rng *rand.Rand, count int, start domain.Date, spanDays int) []domain.EngagementRecord {
	records := make([]domain.EngagementRecord, 0, count)
	for i := 1; i <= count; i++ {
		contractDate := start.AddDays(between(rng, 0, spanDays))
		records = append(records, domain.EngagementRecord{
			AccountManager:         pick(rng, domain.AccountManagers),
			Customer:               fmt.Sprintf("Customer %d", i),
			ContractDate:           contractDate,
			TurnaroundDays:         between(rng, MinTurnaroundDays, MaxTurnaroundDays),
			BusiestInteractionDate: contractDate.AddDays(between(rng, 0, MaxBusiestOffsetDays)),
			Product:                pick(rng, domain.Products),
			PaymentMethod:          pick(rng, domain.PaymentMethods),
			ContractValue:          int64(between(rng, MinContractValue, MaxContractValue)),
			PipelineStage:          pick(rng, domain.PipelineStages),
		})
	}
	return records
}

// between returns a uniform integer in [lo, hi]
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.Intn(len(values))]
}
