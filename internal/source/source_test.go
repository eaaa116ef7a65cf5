package source_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/AMESmith/customer-dashboard/internal/config"
	"github.com/AMESmith/customer-dashboard/internal/domain"
	"github.com/AMESmith/customer-dashboard/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() domain.EngagementRecord {
	return domain.EngagementRecord{
		AccountManager:         "Alex Morgan",
		Customer:               "Customer 1",
		ContractDate:           domain.NewDate(2024, time.February, 10),
		TurnaroundDays:         4,
		BusiestInteractionDate: domain.NewDate(2024, time.February, 12),
		Product:                domain.ProductA,
		PaymentMethod:          domain.PaymentMethodInvoice,
		ContractValue:          1500,
		PipelineStage:          domain.StageDemoScheduled,
	}
}

// =============================================================================
// Synthetic Source Tests
// =============================================================================

func TestGenerate_IsDeterministic(t *testing.T) {
	first := source.Generate(42, 30)
	second := source.Generate(42, 30)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, source.Generate(7, 30))
}

func TestGenerate_RecordsStayInDomain(t *testing.T) {
	records := source.Generate(source.DefaultSeed, 500)
	require.Len(t, records, 500)

	last := source.DefaultStartDate.AddDays(source.DefaultSpanDays)
	for i, r := range records {
		assert.NoError(t, source.ValidateRecord(r), "record %d", i)
		assert.Contains(t, domain.AccountManagers, r.AccountManager)
		assert.False(t, r.ContractDate.Before(source.DefaultStartDate))
		assert.False(t, r.ContractDate.After(last))
		assert.GreaterOrEqual(t, r.TurnaroundDays, source.MinTurnaroundDays)
		assert.LessOrEqual(t, r.TurnaroundDays, source.MaxTurnaroundDays)
		assert.False(t, r.BusiestInteractionDate.Before(r.ContractDate))
		assert.False(t, r.BusiestInteractionDate.After(r.ContractDate.AddDays(source.MaxBusiestOffsetDays)))
		assert.GreaterOrEqual(t, r.ContractValue, int64(source.MinContractValue))
		assert.LessOrEqual(t, r.ContractValue, int64(source.MaxContractValue))
	}
	assert.NoError(t, source.Validate(records))
}

func TestGenerate_CustomersAreNumberedFromOne(t *testing.T) {
	records := source.Generate(1, 3)

	assert.Equal(t, "Customer 1", records[0].Customer)
	assert.Equal(t, "Customer 3", records[2].Customer)
}

func TestGenerate_ZeroCount(t *testing.T) {
	assert.Empty(t, source.Generate(42, 0))
}

func TestSyntheticSource_Records(t *testing.T) {
	src := source.NewSyntheticSource(42, 30)

	records, err := src.Records(context.Background())
	require.NoError(t, err)
	assert.Equal(t, source.Generate(42, 30), records)
}

func TestSyntheticSource_RejectsNegativeCount(t *testing.T) {
	_, err := source.NewSyntheticSource(42, -1).Records(context.Background())
	assert.Error(t, err)
}

func TestSyntheticSource_HonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.NewSyntheticSource(42, 30).Records(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// =============================================================================
// Validation Tests
// =============================================================================

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *domain.EngagementRecord)
		field  string
	}{
		{"missing customer", func(r *domain.EngagementRecord) { r.Customer = "" }, "customer"},
		{"missing account manager", func(r *domain.EngagementRecord) { r.AccountManager = "" }, "accountManager"},
		{"missing contract date", func(r *domain.EngagementRecord) { r.ContractDate = domain.Date{} }, "contractDate"},
		{"busiest before contract", func(r *domain.EngagementRecord) {
			r.BusiestInteractionDate = r.ContractDate.AddDays(-1)
		}, "busiestInteractionDate"},
		{"zero turnaround", func(r *domain.EngagementRecord) { r.TurnaroundDays = 0 }, "turnaroundDays"},
		{"zero value", func(r *domain.EngagementRecord) { r.ContractValue = 0 }, "contractValue"},
		{"unknown product", func(r *domain.EngagementRecord) { r.Product = "Product Z" }, "product"},
		{"unknown payment method", func(r *domain.EngagementRecord) { r.PaymentMethod = "Cash" }, "paymentMethod"},
		{"unknown stage", func(r *domain.EngagementRecord) { r.PipelineStage = "Lead" }, "pipelineStage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(&r)

			err := source.ValidateRecord(r)
			require.Error(t, err)
			assert.ErrorIs(t, err, source.ErrMalformedRecord)

			var recErr *source.RecordError
			require.True(t, errors.As(err, &recErr))
			assert.Equal(t, tt.field, recErr.Field)
		})
	}
}

func TestValidateRecord_BusiestOnContractDateIsValid(t *testing.T) {
	r := validRecord()
	r.BusiestInteractionDate = r.ContractDate

	assert.NoError(t, source.ValidateRecord(r))
}

func TestValidate_ReportsIndex(t *testing.T) {
	bad := validRecord()
	bad.Customer = "Customer 2"
	bad.TurnaroundDays = -3

	err := source.Validate([]domain.EngagementRecord{validRecord(), bad})

	var recErr *source.RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, 1, recErr.Index)
	assert.Equal(t, "Customer 2", recErr.Customer)
}

func TestValidate_RejectsDuplicateCustomers(t *testing.T) {
	err := source.Validate([]domain.EngagementRecord{validRecord(), validRecord()})

	require.ErrorIs(t, err, source.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "duplicates record 0")
}

type stubSource struct {
	records []domain.EngagementRecord
	err     error
}

func (s stubSource) Records(context.Context) ([]domain.EngagementRecord, error) {
	return s.records, s.err
}

func TestLoad_ValidatesAtBoundary(t *testing.T) {
	bad := validRecord()
	bad.Product = "Gadget"

	_, err := source.Load(context.Background(), stubSource{records: []domain.EngagementRecord{bad}})
	assert.ErrorIs(t, err, source.ErrMalformedRecord)
}

func TestLoad_PropagatesSourceError(t *testing.T) {
	boom := errors.New("feed offline")

	_, err := source.Load(context.Background(), stubSource{err: boom})
	assert.ErrorIs(t, err, boom)
}

// =============================================================================
// Fixture Source Tests
// =============================================================================

func TestFixtureSource_Records(t *testing.T) {
	records, err := source.Load(context.Background(), source.NewFixtureSource("testdata/records.yaml"))
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "Alex Morgan", first.AccountManager)
	assert.Equal(t, domain.NewDate(2024, time.March, 4), first.ContractDate)
	assert.Equal(t, domain.NewDate(2024, time.March, 6), first.BusiestInteractionDate)
	assert.Equal(t, domain.ProductA, first.Product)
	assert.Equal(t, int64(100), first.ContractValue)
	assert.Equal(t, domain.StageNegotiation, first.PipelineStage)
}

func TestFixtureSource_MissingFile(t *testing.T) {
	_, err := source.NewFixtureSource("testdata/nope.yaml").Records(context.Background())
	assert.Error(t, err)
}

func TestDecodeFixture_BadDate(t *testing.T) {
	doc := `
records:
  - customer: Customer 9
    contractDate: "March 4th"
`
	_, err := source.DecodeFixture(strings.NewReader(doc))

	var recErr *source.RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, "contractDate", recErr.Field)
}

func TestDecodeFixture_UnknownField(t *testing.T) {
	doc := `
records:
  - customer: Customer 9
    region: North
`
	_, err := source.DecodeFixture(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestDecodeFixture_MissingFieldsFailValidation(t *testing.T) {
	doc := `
records:
  - customer: Customer 9
    accountManager: Casey Lee
`
	records, err := source.DecodeFixture(strings.NewReader(doc))
	require.NoError(t, err)

	assert.ErrorIs(t, source.Validate(records), source.ErrMalformedRecord)
}

func TestDecodeFixture_EmptyDocument(t *testing.T) {
	records, err := source.DecodeFixture(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

// =============================================================================
// Source Selection Tests
// =============================================================================

func TestFromConfig(t *testing.T) {
	t.Run("synthetic with custom window", func(t *testing.T) {
		src, err := source.FromConfig(&config.DatasetConfig{
			Source:    config.SourceSynthetic,
			Seed:      3,
			Count:     10,
			StartDate: "2025-06-01",
			SpanDays:  30,
		})
		require.NoError(t, err)

		records, err := source.Load(context.Background(), src)
		require.NoError(t, err)
		require.Len(t, records, 10)
		for _, r := range records {
			assert.False(t, r.ContractDate.Before(domain.NewDate(2025, time.June, 1)))
			assert.False(t, r.ContractDate.After(domain.NewDate(2025, time.July, 1)))
		}
	})

	t.Run("zero span keeps every date on the start date", func(t *testing.T) {
		src, err := source.FromConfig(&config.DatasetConfig{
			Source:    config.SourceSynthetic,
			Seed:      5,
			Count:     8,
			StartDate: "2025-06-01",
			SpanDays:  0,
		})
		require.NoError(t, err)

		records, err := source.Load(context.Background(), src)
		require.NoError(t, err)
		require.Len(t, records, 8)
		for _, r := range records {
			assert.Equal(t, "2025-06-01", r.ContractDate.String())
		}
	})

	t.Run("fixture", func(t *testing.T) {
		src, err := source.FromConfig(&config.DatasetConfig{Source: config.SourceFixture, FixturePath: "testdata/records.yaml"})
		require.NoError(t, err)

		records, err := source.Load(context.Background(), src)
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := source.FromConfig(&config.DatasetConfig{Source: config.SourceSynthetic, StartDate: "01/06/2025"})
		assert.Error(t, err)

		_, err = source.FromConfig(&config.DatasetConfig{Source: config.SourceFixture})
		assert.Error(t, err)

		_, err = source.FromConfig(&config.DatasetConfig{Source: "kafka"})
		assert.Error(t, err)
	})
}
