package opsdata

// The six ops-dashboard figures. These are plain builders rather than a
// registry; the ops page always shows all of them, in order.

import(
	"fmt"

	"github.com/skypies/faadash/plotly"
)

// {{{ series helpers

func dates(days []DailyOps) plotly.Array {
	out := make(plotly.Array, 0, len(days))
	for _,d := range days { out = append(out, plotly.String(d.Date.Format("2006-01-02"))) }
	return out
}

func intSeries(days []DailyOps, f func(DailyOps) int) plotly.Array {
	out := make(plotly.Array, 0, len(days))
	for _,d := range days { out = append(out, plotly.Int(f(d))) }
	return out
}

func floatSeries(days []DailyOps, f func(DailyOps) float64) plotly.Array {
	out := make(plotly.Array, 0, len(days))
	for _,d := range days { out = append(out, plotly.Float(f(d))) }
	return out
}

func simpleLine(title, color string, x, y plotly.Array) *plotly.Figure {
	trace := plotly.LineTrace("", x, y)
	trace = trace.Set("line", plotly.Object{{"color", plotly.String(color)}})

	fig := plotly.NewFigure(title)
	fig.AddTrace(trace)
	fig.SetLayout("showlegend", plotly.Bool(false))
	return fig
}

// }}}

// {{{ OnTimeTrendFigure

// Line of daily on-time percentage, with a dashed target line.
func OnTimeTrendFigure(days []DailyOps, targetPct float64) *plotly.Figure {
	fig := simpleLine("On-Time Performance Trend", "#2ecc71",
		dates(days), floatSeries(days, DailyOps.OnTimePct))

	fig.SetLayout("shapes", plotly.Array{plotly.Object{
		{"type", plotly.String("line")},
		{"xref", plotly.String("paper")},
		{"x0", plotly.Int(0)}, {"x1", plotly.Int(1)},
		{"y0", plotly.Float(targetPct)}, {"y1", plotly.Float(targetPct)},
		{"line", plotly.Object{
			{"color", plotly.String("red")},
			{"dash", plotly.String("dash")},
		}},
	}})
	fig.SetLayout("annotations", plotly.Array{plotly.Object{
		{"xref", plotly.String("paper")},
		{"x", plotly.Int(1)},
		{"y", plotly.Float(targetPct)},
		{"text", plotly.String(fmt.Sprintf("Target: %.0f%%", targetPct))},
		{"showarrow", plotly.Bool(false)},
		{"yshift", plotly.Int(10)},
	}})
	return fig
}

// }}}
// {{{ AvgDelayFigure

func AvgDelayFigure(days []DailyOps) *plotly.Figure {
	return simpleLine("Average Delay Time Trend", "#e74c3c",
		dates(days), floatSeries(days, func(d DailyOps) float64 { return d.AvgDelayMinutes }))
}

// }}}
// {{{ DailyOperationsFigure

// Total / on-time / delayed / cancelled as four lines on one plot.
func DailyOperationsFigure(days []DailyOps) *plotly.Figure {
	x := dates(days)

	series := []struct{
		Name  string
		Color string
		F     func(DailyOps) int
	}{
		{"Total Flights", "#3498db", func(d DailyOps) int { return d.TotalFlights }},
		{"On-Time",       "#2ecc71", func(d DailyOps) int { return d.OnTimeFlights }},
		{"Delayed",       "#f39c12", func(d DailyOps) int { return d.DelayedFlights }},
		{"Cancelled",     "#e74c3c", func(d DailyOps) int { return d.CancelledFlights }},
	}

	fig := plotly.NewFigure("Daily Flight Operations")
	for _,s := range series {
		trace := plotly.LineTrace(s.Name, x, intSeries(days, s.F))
		trace = trace.Set("mode", plotly.String("lines"))
		trace = trace.Set("line", plotly.Object{
			{"color", plotly.String(s.Color)},
			{"width", plotly.Int(2)},
		})
		fig.AddTrace(trace)
	}

	fig.SetLayout("hovermode", plotly.String("x unified"))
	return fig
}

// }}}
// {{{ StatusPieFigure

// Flight status distribution for the most recent day.
func StatusPieFigure(days []DailyOps) *plotly.Figure {
	title := "Flight Status Distribution"
	labels := plotly.Strings([]string{"On-Time", "Delayed", "Cancelled", "Diverted"})
	values := plotly.Array{}

	if len(days) > 0 {
		latest := days[len(days)-1]
		title = fmt.Sprintf("Flight Status Distribution (%s)", latest.Date.Format("2006-01-02"))
		values = plotly.Ints([]int{
			latest.OnTimeFlights, latest.DelayedFlights,
			latest.CancelledFlights, latest.DivertedFlights,
		})
	}

	trace := plotly.PieTrace(labels, values)
	trace = trace.Set("marker", plotly.Object{
		{"colors", plotly.Strings([]string{"#2ecc71", "#f39c12", "#e74c3c", "#9b59b6"})},
	})

	fig := plotly.NewFigure(title)
	fig.AddTrace(trace)
	return fig
}

// }}}
// {{{ DelayTypesFigure

// Totals of the five delay causes over the period.
func DelayTypesFigure(days []DailyOps) *plotly.Figure {
	totals := delayTotals(days)

	x,y := plotly.Array{}, plotly.Array{}
	for _,t := range totals {
		x = append(x, plotly.String(t.Name))
		y = append(y, plotly.Int(t.N))
	}

	trace := plotly.Bar(x, y)
	trace = trace.Set("marker", plotly.Object{
		{"color", plotly.Strings([]string{"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3"})},
	})

	fig := plotly.NewFigure("Total Delays by Type")
	fig.AddTrace(trace)
	fig.SetLayout("showlegend", plotly.Bool(false))
	return fig
}

type delayTotal struct {
	Name string
	N    int
}

func delayTotals(days []DailyOps) []delayTotal {
	totals := []delayTotal{
		{"Weather", 0}, {"Carrier", 0}, {"NAS", 0}, {"Security", 0}, {"Late Aircraft", 0},
	}
	for _,d := range days {
		totals[0].N += d.WeatherDelays
		totals[1].N += d.CarrierDelays
		totals[2].N += d.NASDelays
		totals[3].N += d.SecurityDelays
		totals[4].N += d.LateAircraftDelays
	}
	return totals
}

// }}}
// {{{ DelayTrendFigure

// The five delay causes as a stacked area over time.
func DelayTrendFigure(days []DailyOps) *plotly.Figure {
	x := dates(days)

	series := []struct{
		Name string
		F    func(DailyOps) int
	}{
		{"Weather",       func(d DailyOps) int { return d.WeatherDelays }},
		{"Carrier",       func(d DailyOps) int { return d.CarrierDelays }},
		{"NAS",           func(d DailyOps) int { return d.NASDelays }},
		{"Security",      func(d DailyOps) int { return d.SecurityDelays }},
		{"Late Aircraft", func(d DailyOps) int { return d.LateAircraftDelays }},
	}

	fig := plotly.NewFigure("Delay Types Trend (Stacked)")
	for _,s := range series {
		trace := plotly.LineTrace(s.Name, x, intSeries(days, s.F))
		trace = trace.Set("mode", plotly.String("lines"))
		trace = trace.Set("stackgroup", plotly.String("one"))
		fig.AddTrace(trace)
	}

	fig.SetLayout("hovermode", plotly.String("x unified"))
	return fig
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
