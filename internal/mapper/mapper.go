package mapper

import (
	"fmt"

	"github.com/AMESmith/customer-dashboard/internal/domain"
	"github.com/dustin/go-humanize"
)

// NotAvailable is displayed for metrics that are undefined on an empty selection
const NotAvailable = "n/a"

// ToDashboardViewDTO converts a derived view to its API representation
func ToDashboardViewDTO(view *domain.DerivedView, criteria domain.FilterCriteria) domain.DashboardViewDTO {
	return domain.DashboardViewDTO{
		Criteria: criteria,
		KPIs:     ToKPIDisplay(view),
		View:     *view,
	}
}

// ToKPIDisplay formats the headline metrics of a view
func ToKPIDisplay(view *domain.DerivedView) domain.KPIDisplay {
	return domain.KPIDisplay{
		TotalContracts:    humanize.Comma(int64(view.TotalCount)),
		AverageTurnaround: FormatAverage(view.AverageTurnaround),
		TotalValue:        FormatCurrency(view.TotalValue),
	}
}

// ToRecordsDTO wraps filtered raw records
func ToRecordsDTO(records []domain.EngagementRecord, criteria domain.FilterCriteria) domain.RecordsDTO {
	if records == nil {
		records = []domain.EngagementRecord{}
	}
	return domain.RecordsDTO{
		Criteria: criteria,
		Records:  records,
		Total:    len(records),
	}
}

// FormatCurrency renders a whole currency amount with thousands separators, e.g. $12,345
func FormatCurrency(amount int64) string {
	if amount < 0 {
		return "-$" + humanize.Comma(-amount)
	}
	return "$" + humanize.Comma(amount)
}

// FormatAverage renders an average with two decimals, or NotAvailable when undefined
func FormatAverage(avg *float64) string {
	if avg == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f", *avg)
}
