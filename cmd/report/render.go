package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/AMESmith/customer-dashboard/internal/domain"
	"github.com/AMESmith/customer-dashboard/internal/mapper"
	"github.com/dustin/go-humanize"
)

// renderText writes the KPIs followed by one table per chart
func renderText(out io.Writer, dto domain.DashboardViewDTO) error {
	view := dto.View
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(writer, "FILTER\t%s\n", describeCriteria(dto.Criteria))
	fmt.Fprintf(writer, "TOTAL CONTRACTS\t%s\n", dto.KPIs.TotalContracts)
	fmt.Fprintf(writer, "AVG TURNAROUND (DAYS)\t%s\n", dto.KPIs.AverageTurnaround)
	fmt.Fprintf(writer, "TOTAL CONTRACT VALUE\t%s\n", dto.KPIs.TotalValue)

	if view.TotalCount == 0 {
		fmt.Fprintln(writer)
		fmt.Fprintln(writer, "No records match the current filter.")
		return writer.Flush()
	}

	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "DATE\tAVG TURNAROUND\tCONTRACTS")
	volumes := make(map[domain.Date]int, len(view.VolumeByDate))
	for _, v := range view.VolumeByDate {
		volumes[v.Date] = v.Count
	}
	for _, p := range view.TurnaroundByDate {
		fmt.Fprintf(writer, "%s\t%.2f\t%d\n", p.Date, p.AverageTurnaround, volumes[p.Date])
	}

	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "PRODUCT\tTOTAL VALUE")
	for _, p := range view.ValueByProduct {
		fmt.Fprintf(writer, "%s\t%s\n", p.Product, mapper.FormatCurrency(p.TotalValue))
	}

	fmt.Fprintln(writer)
	fmt.Fprintf(writer, "CUSTOMER\tACCOUNT MANAGER\tPRODUCT\tSTAGE (%s)\tVALUE\n", view.StageOrder)
	for _, row := range view.PipelineView {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			row.Customer, row.AccountManager, row.Product, row.PipelineStage, mapper.FormatCurrency(row.ContractValue))
	}

	return writer.Flush()
}

func describeCriteria(c domain.FilterCriteria) string {
	manager := domain.AllAccountManagers
	if c.AccountManager != nil {
		manager = *c.AccountManager
	}

	products := make([]string, 0, c.Products.Len())
	for _, p := range c.Products.Values() {
		products = append(products, string(p))
	}
	methods := make([]string, 0, c.PaymentMethods.Len())
	for _, m := range c.PaymentMethods.Values() {
		methods = append(methods, string(m))
	}

	return fmt.Sprintf("manager=%s products=[%s] payment=[%s] value=%s..%s",
		manager,
		strings.Join(products, ", "),
		strings.Join(methods, ", "),
		humanize.Comma(c.ValueRange.Min),
		humanize.Comma(c.ValueRange.Max),
	)
}
