package pipeline_test

import (
	"errors"
	"testing"
	"time"

	"github.com/AMESmith/customer-dashboard/internal/domain"
	"github.com/AMESmith/customer-dashboard/internal/pipeline"
	"github.com/AMESmith/customer-dashboard/internal/source"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	day1 = domain.NewDate(2024, time.March, 4)
	day2 = domain.NewDate(2024, time.March, 5)
)

func record(customer string, product domain.Product, value int64, turnaround int, date domain.Date) domain.EngagementRecord {
	return domain.EngagementRecord{
		AccountManager:         "Alex Morgan",
		Customer:               customer,
		ContractDate:           date,
		TurnaroundDays:         turnaround,
		BusiestInteractionDate: date,
		Product:                product,
		PaymentMethod:          domain.PaymentMethodCreditCard,
		ContractValue:          value,
		PipelineStage:          domain.StageInitialContact,
	}
}

func sampleRecords() []domain.EngagementRecord {
	return []domain.EngagementRecord{
		record("Customer 1", domain.ProductA, 100, 5, day1),
		record("Customer 2", domain.ProductA, 200, 7, day1),
		record("Customer 3", domain.ProductB, 50, 3, day2),
	}
}

func allPass(records []domain.EngagementRecord) domain.FilterCriteria {
	return pipeline.DeriveOptions(records).DefaultCriteria()
}

func fullDomain() domain.FilterCriteria {
	return domain.FilterCriteria{
		Products:       domain.NewSet(domain.Products...),
		PaymentMethods: domain.NewSet(domain.PaymentMethods...),
		ValueRange:     domain.ValueRange{Min: 0, Max: source.MaxContractValue},
	}
}

func strPtr(s string) *string { return &s }

// =============================================================================
// Filter Tests
// =============================================================================

func TestFilter_EveryResultSatisfiesEveryClause(t *testing.T) {
	records := source.Generate(42, 300)
	criteria := domain.FilterCriteria{
		AccountManager: strPtr("Casey Lee"),
		Products:       domain.NewSet(domain.ProductA, domain.ProductC),
		PaymentMethods: domain.NewSet(domain.PaymentMethodInvoice, domain.PaymentMethodPayPal, domain.PaymentMethodCreditCard),
		ValueRange:     domain.ValueRange{Min: 5000, Max: 15000},
	}

	filtered := pipeline.Filter(records, criteria)
	require.NotEmpty(t, filtered)

	for _, r := range filtered {
		assert.Equal(t, "Casey Lee", r.AccountManager)
		assert.True(t, criteria.Products.Contains(r.Product))
		assert.True(t, criteria.PaymentMethods.Contains(r.PaymentMethod))
		assert.True(t, r.ContractValue >= 5000 && r.ContractValue <= 15000)
	}

	var expected int
	for _, r := range records {
		if pipeline.Matches(r, criteria) {
			expected++
		}
	}
	assert.Len(t, filtered, expected)
}

func TestFilter_IsIdempotent(t *testing.T) {
	records := source.Generate(7, 200)
	criteria := domain.FilterCriteria{
		Products:       domain.NewSet(domain.ProductB, domain.ProductD),
		PaymentMethods: domain.NewSet(domain.PaymentMethods...),
		ValueRange:     domain.ValueRange{Min: 2000, Max: 9000},
	}

	once := pipeline.Filter(records, criteria)
	assert.Equal(t, once, pipeline.Filter(once, criteria))
}

func TestFilter_FullDomainIsIdentity(t *testing.T) {
	records := source.Generate(42, 100)

	assert.Equal(t, records, pipeline.Filter(records, fullDomain()))
	assert.Equal(t, records, pipeline.Filter(records, allPass(records)))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := append([]domain.EngagementRecord(nil), records...)

	_ = pipeline.Filter(records, domain.FilterCriteria{
		Products:       domain.NewSet(domain.ProductB),
		PaymentMethods: domain.NewSet(domain.PaymentMethods...),
		ValueRange:     domain.ValueRange{Min: 0, Max: 1000},
	})

	assert.Equal(t, before, records)
}

func TestFilter_EmptyProductSetMatchesNothing(t *testing.T) {
	criteria := fullDomain()
	criteria.Products = domain.NewSet[domain.Product]()

	assert.Empty(t, pipeline.Filter(source.Generate(42, 500), criteria))
}

func TestFilter_NilPaymentSetMatchesNothing(t *testing.T) {
	criteria := fullDomain()
	criteria.PaymentMethods = nil

	assert.Empty(t, pipeline.Filter(source.Generate(42, 500), criteria))
}

func TestFilter_EmptyInput(t *testing.T) {
	result := pipeline.Filter(nil, fullDomain())

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFilter_SingleValueRange(t *testing.T) {
	criteria := fullDomain()
	criteria.ValueRange = domain.ValueRange{Min: 100, Max: 100}

	filtered := pipeline.Filter(sampleRecords(), criteria)

	require.Len(t, filtered, 1)
	assert.Equal(t, domain.ProductA, filtered[0].Product)
	assert.Equal(t, int64(100), filtered[0].ContractValue)
}

func TestFilter_AccountManagerIsExactMatch(t *testing.T) {
	criteria := fullDomain()
	criteria.AccountManager = strPtr("alex morgan")

	assert.Empty(t, pipeline.Filter(sampleRecords(), criteria))

	criteria.AccountManager = strPtr("Alex Morgan")
	assert.Len(t, pipeline.Filter(sampleRecords(), criteria), 3)
}

func TestFilter_PreservesOrder(t *testing.T) {
	criteria := fullDomain()
	criteria.Products = domain.NewSet(domain.ProductA)

	filtered := pipeline.Filter(sampleRecords(), criteria)

	require.Len(t, filtered, 2)
	assert.Equal(t, "Customer 1", filtered[0].Customer)
	assert.Equal(t, "Customer 2", filtered[1].Customer)
}

// =============================================================================
// Aggregate Tests
// =============================================================================

func TestAggregate_Example(t *testing.T) {
	records := sampleRecords()
	view := pipeline.Aggregate(pipeline.Filter(records, allPass(records)), domain.StageOrderLexicographic)

	assert.Equal(t, 3, view.TotalCount)
	assert.Equal(t, int64(350), view.TotalValue)
	require.NotNil(t, view.AverageTurnaround)
	assert.InDelta(t, 5.0, *view.AverageTurnaround, 1e-9)

	assert.Equal(t, []domain.ProductValue{
		{Product: domain.ProductA, TotalValue: 300},
		{Product: domain.ProductB, TotalValue: 50},
	}, view.ValueByProduct)

	assert.Equal(t, []domain.DateVolume{
		{Date: day1, Count: 2},
		{Date: day2, Count: 1},
	}, view.VolumeByDate)

	assert.Equal(t, []domain.DateTurnaround{
		{Date: day1, AverageTurnaround: 6},
		{Date: day2, AverageTurnaround: 3},
	}, view.TurnaroundByDate)
}

func TestAggregate_Empty(t *testing.T) {
	view := pipeline.Aggregate(nil, domain.StageOrderLexicographic)

	assert.Equal(t, 0, view.TotalCount)
	assert.Equal(t, int64(0), view.TotalValue)
	assert.Nil(t, view.AverageTurnaround)
	assert.NotNil(t, view.TurnaroundByDate)
	assert.Empty(t, view.TurnaroundByDate)
	assert.Empty(t, view.VolumeByDate)
	assert.Empty(t, view.ValueByProduct)
	assert.Empty(t, view.PipelineView)
}

func TestAggregate_SeriesSumToTotals(t *testing.T) {
	records := source.Generate(99, 400)
	criteria := fullDomain()
	criteria.Products = domain.NewSet(domain.ProductA, domain.ProductB, domain.ProductD)
	view := pipeline.Aggregate(pipeline.Filter(records, criteria), domain.StageOrderFunnel)
	require.NotZero(t, view.TotalCount)

	var productSum int64
	for _, pv := range view.ValueByProduct {
		productSum += pv.TotalValue
	}
	assert.Equal(t, view.TotalValue, productSum)

	var volumeSum int
	for _, dv := range view.VolumeByDate {
		volumeSum += dv.Count
	}
	assert.Equal(t, view.TotalCount, volumeSum)
	assert.Len(t, view.PipelineView, view.TotalCount)
}

func TestAggregate_DatesAscending(t *testing.T) {
	view := pipeline.Aggregate(source.Generate(5, 200), domain.StageOrderLexicographic)

	for i := 1; i < len(view.VolumeByDate); i++ {
		assert.True(t, view.VolumeByDate[i-1].Date.Before(view.VolumeByDate[i].Date))
		assert.True(t, view.TurnaroundByDate[i-1].Date.Before(view.TurnaroundByDate[i].Date))
	}
}

func TestAggregate_IsDeterministic(t *testing.T) {
	records := source.Generate(11, 150)

	assert.Equal(t,
		pipeline.Aggregate(records, domain.StageOrderFunnel),
		pipeline.Aggregate(records, domain.StageOrderFunnel),
	)
}

func TestAggregate_UnknownOrderFallsBackToLexicographic(t *testing.T) {
	view := pipeline.Aggregate(sampleRecords(), domain.StageOrder("random"))
	assert.Equal(t, domain.StageOrderLexicographic, view.StageOrder)
}

// =============================================================================
// Pipeline View Tests
// =============================================================================

func stagedRecords() []domain.EngagementRecord {
	stages := []domain.PipelineStage{
		domain.StageNegotiation,
		domain.StageClosedWon,
		domain.StageInitialContact,
		domain.StageClosedLost,
		domain.StageDemoScheduled,
		domain.StageClosedWon,
	}
	records := make([]domain.EngagementRecord, len(stages))
	for i, s := range stages {
		records[i] = record(string(rune('A'+i)), domain.ProductC, int64(1000+i), 2, day1)
		records[i].PipelineStage = s
	}
	return records
}

func stagesOf(rows []domain.PipelineRow) []domain.PipelineStage {
	stages := make([]domain.PipelineStage, len(rows))
	for i, r := range rows {
		stages[i] = r.PipelineStage
	}
	return stages
}

func TestPipelineView_LexicographicOrder(t *testing.T) {
	rows := pipeline.PipelineView(stagedRecords(), domain.StageOrderLexicographic)

	assert.Equal(t, []domain.PipelineStage{
		domain.StageClosedLost,
		domain.StageClosedWon,
		domain.StageClosedWon,
		domain.StageDemoScheduled,
		domain.StageInitialContact,
		domain.StageNegotiation,
	}, stagesOf(rows))

	// stable within a stage
	assert.Equal(t, "B", rows[1].Customer)
	assert.Equal(t, "F", rows[2].Customer)
}

func TestPipelineView_FunnelOrder(t *testing.T) {
	rows := pipeline.PipelineView(stagedRecords(), domain.StageOrderFunnel)

	assert.Equal(t, []domain.PipelineStage{
		domain.StageInitialContact,
		domain.StageDemoScheduled,
		domain.StageNegotiation,
		domain.StageClosedWon,
		domain.StageClosedWon,
		domain.StageClosedLost,
	}, stagesOf(rows))
}

func TestPipelineView_ProjectsReducedFields(t *testing.T) {
	r := sampleRecords()[0]
	rows := pipeline.PipelineView([]domain.EngagementRecord{r}, domain.StageOrderLexicographic)

	assert.Equal(t, domain.PipelineRow{
		Customer:       r.Customer,
		AccountManager: r.AccountManager,
		Product:        r.Product,
		PipelineStage:  r.PipelineStage,
		ContractValue:  r.ContractValue,
	}, rows[0])
}

// =============================================================================
// Options Tests
// =============================================================================

func TestDeriveOptions(t *testing.T) {
	records := sampleRecords()
	records[2].AccountManager = "Casey Lee"
	records[2].PaymentMethod = domain.PaymentMethodPayPal

	opts := pipeline.DeriveOptions(records)

	assert.Equal(t, []string{"Alex Morgan", "Casey Lee"}, opts.AccountManagers)
	assert.Equal(t, []domain.Product{domain.ProductA, domain.ProductB}, opts.Products)
	assert.Equal(t, []domain.PaymentMethod{domain.PaymentMethodCreditCard, domain.PaymentMethodPayPal}, opts.PaymentMethods)
	assert.Equal(t, domain.ValueRange{Min: 50, Max: 200}, opts.ValueBounds)
	assert.Equal(t, 3, opts.RecordCount)
}

func TestDeriveOptions_Empty(t *testing.T) {
	opts := pipeline.DeriveOptions(nil)

	assert.Empty(t, opts.AccountManagers)
	assert.Equal(t, domain.ValueRange{}, opts.ValueBounds)
}

// =============================================================================
// Criteria Validation Tests
// =============================================================================

func TestNewCriteria(t *testing.T) {
	c, err := pipeline.NewCriteria("Jamie Parker",
		[]domain.Product{domain.ProductD},
		[]domain.PaymentMethod{domain.PaymentMethodInvoice},
		domain.ValueRange{Min: 10, Max: 20})
	require.NoError(t, err)

	require.NotNil(t, c.AccountManager)
	assert.Equal(t, "Jamie Parker", *c.AccountManager)
	assert.True(t, c.Products.Contains(domain.ProductD))

	c, err = pipeline.NewCriteria("", nil, nil, domain.ValueRange{Min: 10, Max: 10})
	require.NoError(t, err)
	assert.Nil(t, c.AccountManager)
	assert.Equal(t, 0, c.Products.Len())
}

func TestNewCriteria_RejectsInvertedRange(t *testing.T) {
	_, err := pipeline.NewCriteria("", nil, nil, domain.ValueRange{Min: 200, Max: 100})

	require.ErrorIs(t, err, pipeline.ErrInvalidCriteria)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Max", verrs[0].Field())
	assert.Equal(t, "gtefield", verrs[0].Tag())
}

func TestValidateCriteria(t *testing.T) {
	bounds := domain.ValueRange{Min: 1000, Max: 20000}
	valid := func() domain.FilterCriteria {
		return domain.FilterCriteria{
			Products:       domain.NewSet(domain.ProductA),
			PaymentMethods: domain.NewSet(domain.PaymentMethodPayPal),
			ValueRange:     bounds,
		}
	}

	tests := []struct {
		name   string
		mutate func(c *domain.FilterCriteria)
		field  string
	}{
		{"below observed range", func(c *domain.FilterCriteria) { c.ValueRange.Min = 999 }, "valueRange"},
		{"above observed range", func(c *domain.FilterCriteria) { c.ValueRange.Max = 20001 }, "valueRange"},
		{"empty account manager", func(c *domain.FilterCriteria) { c.AccountManager = strPtr("") }, "accountManager"},
		{"unknown product", func(c *domain.FilterCriteria) { c.Products = domain.NewSet[domain.Product]("Product Q") }, "products"},
		{"unknown payment method", func(c *domain.FilterCriteria) {
			c.PaymentMethods = domain.NewSet[domain.PaymentMethod]("Barter")
		}, "paymentMethods"},
	}

	require.NoError(t, pipeline.ValidateCriteria(valid(), bounds))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)

			err := pipeline.ValidateCriteria(c, bounds)
			require.ErrorIs(t, err, pipeline.ErrInvalidCriteria)

			var critErr *pipeline.CriteriaError
			require.True(t, errors.As(err, &critErr))
			assert.Equal(t, tt.field, critErr.Field)
		})
	}
}

func TestValidateCriteria_InvertedRange(t *testing.T) {
	err := pipeline.ValidateCriteria(domain.FilterCriteria{
		ValueRange: domain.ValueRange{Min: 5000, Max: 4000},
	}, domain.ValueRange{Min: 1000, Max: 20000})

	assert.ErrorIs(t, err, pipeline.ErrInvalidCriteria)
}

func TestValidateCriteria_EmptySetsAreAllowed(t *testing.T) {
	bounds := domain.ValueRange{Min: 1, Max: 2}
	err := pipeline.ValidateCriteria(domain.FilterCriteria{ValueRange: bounds}, bounds)

	assert.NoError(t, err)
}
