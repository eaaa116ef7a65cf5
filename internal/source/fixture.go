package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/AMESmith/customer-dashboard/internal/domain"
	"gopkg.in/yaml.v3"
)

// FixtureSource loads a fixed record set from a YAML file, used to substitute
// the synthetic feed in tests and demos
type FixtureSource struct {
	Path string
}

// NewFixtureSource creates a fixture source reading from path
func NewFixtureSource(path string) *FixtureSource {
	return &FixtureSource{Path: path}
}

// Records implements RecordSource
func (s *FixtureSource) Records(ctx context.Context) ([]domain.EngagementRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer f.Close()

	records, err := DecodeFixture(f)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", s.Path, err)
	}
	return records, nil
}

type fixtureFile struct {
	Records []fixtureRecord `yaml:"records"`
}

type fixtureRecord struct {
	AccountManager         string `yaml:"accountManager"`
	Customer               string `yaml:"customer"`
	ContractDate           string `yaml:"contractDate"`
	TurnaroundDays         int    `yaml:"turnaroundDays"`
	BusiestInteractionDate string `yaml:"busiestInteractionDate"`
	Product                string `yaml:"product"`
	PaymentMethod          string `yaml:"paymentMethod"`
	ContractValue          int64  `yaml:"contractValue"`
	PipelineStage          string `yaml:"pipelineStage"`
}

// DecodeFixture parses a YAML document with a top-level "records" list.
// Unknown keys are rejected. Field domains are checked later by Validate.
func DecodeFixture(r io.Reader) ([]domain.EngagementRecord, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file fixtureFile
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}

	records := make([]domain.EngagementRecord, 0, len(file.Records))
	for i, fr := range file.Records {
		contractDate, err := parseOptionalDate(fr.ContractDate)
		if err != nil {
			return nil, &RecordError{Index: i, Customer: fr.Customer, Field: "contractDate", Reason: err.Error()}
		}
		busiest, err := parseOptionalDate(fr.BusiestInteractionDate)
		if err != nil {
			return nil, &RecordError{Index: i, Customer: fr.Customer, Field: "busiestInteractionDate", Reason: err.Error()}
		}

		records = append(records, domain.EngagementRecord{
			AccountManager:         fr.AccountManager,
			Customer:               fr.Customer,
			ContractDate:           contractDate,
			TurnaroundDays:         fr.TurnaroundDays,
			BusiestInteractionDate: busiest,
			Product:                domain.Product(fr.Product),
			PaymentMethod:          domain.PaymentMethod(fr.PaymentMethod),
			ContractValue:          fr.ContractValue,
			PipelineStage:          domain.PipelineStage(fr.PipelineStage),
		})
	}
	return records, nil
}

// parseOptionalDate leaves missing dates zero so validation reports them as missing
func parseOptionalDate(s string) (domain.Date, error) {
	if s == "" {
		return domain.Date{}, nil
	}
	return domain.ParseDate(s)
}
