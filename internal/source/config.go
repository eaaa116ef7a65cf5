package source

import (
	"fmt"

	"github.com/AMESmith/customer-dashboard/internal/config"
	"github.com/AMESmith/customer-dashboard/internal/domain"
)

// FromConfig builds the record source selected by cfg.Source
func FromConfig(cfg *config.DatasetConfig) (RecordSource, error) {
	switch cfg.Source {
	case config.SourceSynthetic, "":
		src := NewSyntheticSource(cfg.Seed, cfg.Count)
		// a zero span puts every contract on the start date
		src.SpanDays = cfg.SpanDays
		if cfg.StartDate != "" {
			start, err := domain.ParseDate(cfg.StartDate)
			if err != nil {
				return nil, fmt.Errorf("invalid dataset.startDate: %w", err)
			}
			src.StartDate = start
		}
		return src, nil
	case config.SourceFixture:
		if cfg.FixturePath == "" {
			return nil, fmt.Errorf("fixture source requires a path")
		}
		return NewFixtureSource(cfg.FixturePath), nil
	default:
		return nil, fmt.Errorf("unsupported record source %q", cfg.Source)
	}
}
