package opsdata

// Renders the KPI summary as a one-page PDF, for the download button.

import(
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// {{{ OutputAsPDF

func OutputAsPDF(w io.Writer, days []DailyOps, kpis KPIs) error {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(180, 12, "FAA Flight Operations - KPI Summary")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 10)
	period := ""
	if len(days) > 0 {
		period = fmt.Sprintf("%s to %s (%d days)",
			days[0].Date.Format("2006-01-02"),
			days[len(days)-1].Date.Format("2006-01-02"),
			len(days))
	}
	pdf.Cell(180, 6, "Period: "+period)
	pdf.Ln(6)
	pdf.Cell(180, 6, "Generated: "+time.Now().UTC().Format("2006-01-02 15:04 UTC"))
	pdf.Ln(12)

	rows := [][2]string{
		{"Total Flights",      fmt.Sprintf("%d", kpis.TotalFlights)},
		{"On-Time Performance", fmt.Sprintf("%.1f%%  (%+.1f%% vs prior %d days)", kpis.OnTimePct, kpis.OnTimeTrend, kpis.WindowDays)},
		{"Avg Delay Time",     fmt.Sprintf("%.1f min  (%+.1f vs prior)", kpis.AvgDelayMinutes, kpis.DelayTrend)},
		{"Cancellation Rate",  fmt.Sprintf("%.2f%%  (%+.2f%% vs prior)", kpis.CancellationRate, kpis.CancellationTrend)},
		{"Delay Rate",         fmt.Sprintf("%.1f%%", kpis.DelayRate)},
		{"Total Delayed",      fmt.Sprintf("%d", kpis.TotalDelayed)},
		{"Total Cancelled",    fmt.Sprintf("%d", kpis.TotalCancelled)},
		{"Total Diverted",     fmt.Sprintf("%d", kpis.TotalDiverted)},
	}

	pdf.SetFillColor(0xf0, 0xf2, 0xf6)
	for i,row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(70, 8, row[0], "", 0, "L", i%2 == 0, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(110, 8, row[1], "", 0, "L", i%2 == 0, 0, "")
		pdf.Ln(8)
	}

	return pdf.Output(w)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
