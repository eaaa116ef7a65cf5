package pipeline

import (
	"sort"

	"github.com/AMESmith/customer-dashboard/internal/domain"
)

// Aggregate computes the derived view of a record set.
// An empty set yields zero totals, a nil average and empty series.
// An unsupported order falls back to lexicographic.
func Aggregate(records []domain.EngagementRecord, order domain.StageOrder) domain.DerivedView {
	if !order.IsValid() {
		order = domain.StageOrderLexicographic
	}

	type dateTotals struct {
		turnaround int
		count      int
	}
	byDate := make(map[domain.Date]*dateTotals)
	byProduct := make(map[domain.Product]int64)

	var turnaroundSum int
	var totalValue int64
	for _, r := range records {
		turnaroundSum += r.TurnaroundDays
		totalValue += r.ContractValue

		totals, ok := byDate[r.ContractDate]
		if !ok {
			totals = &dateTotals{}
			byDate[r.ContractDate] = totals
		}
		totals.turnaround += r.TurnaroundDays
		totals.count++

		byProduct[r.Product] += r.ContractValue
	}

	view := domain.DerivedView{
		TotalCount:       len(records),
		TotalValue:       totalValue,
		TurnaroundByDate: make([]domain.DateTurnaround, 0, len(byDate)),
		VolumeByDate:     make([]domain.DateVolume, 0, len(byDate)),
		ValueByProduct:   make([]domain.ProductValue, 0, len(byProduct)),
		PipelineView:     PipelineView(records, order),
		StageOrder:       order,
	}
	if len(records) > 0 {
		avg := float64(turnaroundSum) / float64(len(records))
		view.AverageTurnaround = &avg
	}

	dates := make([]domain.Date, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	for _, d := range dates {
		totals := byDate[d]
		view.TurnaroundByDate = append(view.TurnaroundByDate, domain.DateTurnaround{
			Date:              d,
			AverageTurnaround: float64(totals.turnaround) / float64(totals.count),
		})
		view.VolumeByDate = append(view.VolumeByDate, domain.DateVolume{Date: d, Count: totals.count})
	}

	products := make([]domain.Product, 0, len(byProduct))
	for p := range byProduct {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i] < products[j] })
	for _, p := range products {
		view.ValueByProduct = append(view.ValueByProduct, domain.ProductValue{Product: p, TotalValue: byProduct[p]})
	}

	return view
}

// PipelineView projects records onto pipeline rows sorted by stage.
// The sort is stable, so records sharing a stage keep their input order.
func PipelineView(records []domain.EngagementRecord, order domain.StageOrder) []domain.PipelineRow {
	rows := make([]domain.PipelineRow, len(records))
	for i, r := range records {
		rows[i] = domain.PipelineRow{
			Customer:       r.Customer,
			AccountManager: r.AccountManager,
			Product:        r.Product,
			PipelineStage:  r.PipelineStage,
			ContractValue:  r.ContractValue,
		}
	}

	less := func(a, b domain.PipelineStage) bool { return a < b }
	if order == domain.StageOrderFunnel {
		less = func(a, b domain.PipelineStage) bool { return a.FunnelRank() < b.FunnelRank() }
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return less(rows[i].PipelineStage, rows[j].PipelineStage)
	})
	return rows
}
