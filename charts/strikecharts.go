package charts

// The ten wildlife-strike charts, one registered builder each. Sections
// mirror the analysis questions the dashboard is organized around.

import(
	"fmt"

	"github.com/skypies/faadash"
	"github.com/skypies/faadash/plotly"
)

func init() {
	HandleChart("pandemic",     PandemicComparison, "Wildlife Strikes: Before vs During Pandemic", "Q1: Pandemic Impact Analysis")
	HandleChart("monthly",      MonthlyTrends,      "Monthly Wildlife Strikes",                    "Q1: Pandemic Impact Analysis")
	HandleChart("airportmap",   AirportMap,         "Geographic Distribution of Wildlife Strikes", "Q2: Temporal & Spatial Patterns")
	HandleChart("topstates",    TopStates,          "Top States by Wildlife Strikes",              "Q2: Temporal & Spatial Patterns")
	HandleChart("timeofday",    TimeOfDay,          "Wildlife Strikes by Time of Day",             "Q2: Temporal & Spatial Patterns")
	HandleChart("topspecies",   TopSpecies,         "Top Species Involved in Wildlife Strikes",    "Q3: Species & Damage Analysis")
	HandleChart("damage",       DamageLevels,       "Distribution of Damage Levels",               "Q3: Species & Damage Analysis")
	HandleChart("topaircraft",  TopAircraft,        "Top Aircraft Types Involved",                 "Q4: Aircraft & Operator Analysis")
	HandleChart("topoperators", TopOperators,       "Top Operators by Wildlife Strikes",           "Q4: Aircraft & Operator Analysis")
	HandleChart("phase",        PhaseOfFlight,      "Wildlife Strikes by Phase of Flight",         "Q4: Aircraft & Operator Analysis")

	WideChart("airportmap")
	WideChart("phase")
}

// DefaultChartNames is the standard page layout, section by section.
func DefaultChartNames() []string {
	return []string{
		"pandemic", "monthly",
		"airportmap", "topstates", "timeofday",
		"topspecies", "damage",
		"topaircraft", "topoperators", "phase",
	}
}

var periodColors = map[faadash.Period]string{
	faadash.BeforePandemic: "#2ecc71",
	faadash.DuringPandemic: "#e74c3c",
}

var damageColors = map[string]string{
	"N": "#2ecc71", "M": "#f1c40f", "M?": "#e67e22", "S": "#e74c3c", "D": "#8e44ad",
}

// {{{ countArrays

func countArrays(counts []faadash.Count) (plotly.Array, plotly.Array) {
	labels,ns := plotly.Array{}, plotly.Array{}
	for _,c := range counts {
		labels = append(labels, plotly.String(c.Label))
		ns = append(ns, plotly.Int(c.N))
	}
	return labels, ns
}

// }}}
// {{{ topNHBar

// The "top N" charts all share this shape: horizontal bars, biggest at the
// top, colored by count.
func topNHBar(ds *faadash.Dataset, opt Options, field, title, colorscale string) (*plotly.Figure, error) {
	labels,ns := countArrays(ds.TopN(field, opt.TopN))

	trace := plotly.HBar(ns, labels)
	trace = trace.Set("marker", plotly.Object{
		{"color", ns},
		{"colorscale", plotly.String(colorscale)},
	})

	fig := plotly.NewFigure(title)
	fig.AddTrace(trace)
	fig.SetLayout("yaxis", plotly.Object{{"categoryorder", plotly.String("total ascending")}})
	return fig, nil
}

// }}}

// {{{ PandemicComparison

func PandemicComparison(ds *faadash.Dataset, opt Options) (*plotly.Figure, error) {
	counts := ds.ValueCounts("PANDEMIC")

	x,y,colors := plotly.Array{}, plotly.Array{}, plotly.Array{}
	for _,c := range counts {
		x = append(x, plotly.String(c.Label))
		y = append(y, plotly.Int(c.N))
		colors = append(colors, plotly.String(periodColors[faadash.Period(c.Label)]))
	}

	trace := plotly.Bar(x, y)
	trace = trace.Set("marker", plotly.Object{{"color", colors}})

	fig := plotly.NewFigure(fmt.Sprintf("Wildlife Strikes: Before vs During Pandemic %s", opt.PeriodLabel()))
	fig.AddTrace(trace)
	fig.SetLayout("showlegend", plotly.Bool(false))
	return fig, nil
}

// }}}
// {{{ MonthlyTrends

func MonthlyTrends(ds *faadash.Dataset, opt Options) (*plotly.Figure, error) {
	monthly := ds.MonthlyCounts()

	// One trace per pandemic period, plotly.express style
	fig := plotly.NewFigure(fmt.Sprintf("Monthly Wildlife Strikes %s", opt.PeriodLabel()))
	for _,period := range []faadash.Period{faadash.BeforePandemic, faadash.DuringPandemic} {
		x,y := plotly.Array{}, plotly.Array{}
		for _,mc := range monthly {
			if mc.Period != period { continue }
			x = append(x, plotly.String(mc.YearMonth))
			y = append(y, plotly.Int(mc.N))
		}
		if len(x) == 0 { continue }

		trace := plotly.LineTrace(string(period), x, y)
		trace = trace.Set("line", plotly.Object{{"color", plotly.String(periodColors[period])}})
		fig.AddTrace(trace)
	}

	fig.SetLayout("xaxis", plotly.Object{{"tickangle", plotly.Int(45)}})
	return fig, nil
}

// }}}
// {{{ TopStates, TopSpecies, TopOperators, TopAircraft

func TopStates(ds *faadash.Dataset, opt Options) (*plotly.Figure, error) {
	return topNHBar(ds, opt, "STATE",
		fmt.Sprintf("Top %d States by Wildlife Strikes", opt.TopN), "Blues")
}

func TopSpecies(ds *faadash.Dataset, opt Options) (*plotly.Figure, error) {
	return topNHBar(ds, opt, "SPECIES",
		fmt.Sprintf("Top %d Species Involved in Wildlife Strikes", opt.TopN), "Oranges")
}

func TopOperators(ds *faadash.Dataset, opt Options) (*plotly.Figure, error) {
	return topNHBar(ds, opt, "OPERATOR",
		fmt.Sprintf("Top %d Operators by Wildlife Strikes", opt.TopN), "Teal")
}

func TopAircraft(ds *faadash.Dataset, opt Options) (*plotly.Figure, error) {
	return topNHBar(ds, opt, "AIRCRAFT",
		fmt.Sprintf("Top %d Aircraft Types Involved in Wildlife Strikes", opt.TopN), "Reds")
}

// }}}
// {{{ DamageLevels

func DamageLevels(ds *faadash.Dataset, opt Options) (*plotly.Figure, error) {
	counts := ds.ValueCounts("DAMAGE_LEVEL")

	x,y,colors := plotly.Array{}, plotly.Array{}, plotly.Array{}
	for _,c := range counts {
		x = append(x, plotly.String(c.Label))
		y = append(y, plotly.Int(c.N))
		color,exists := damageColors[c.Label]
		if !exists { color = "#7f8c8d" }
		colors = append(colors, plotly.String(color))
	}

	trace := plotly.Bar(x, y)
	trace = trace.Set("marker", plotly.Object{{"color", colors}})

	fig := plotly.NewFigure("Distribution of Damage Levels (N=None, M=Minor, S=Substantial, D=Destroyed)")
	fig.AddTrace(trace)
	fig.SetLayout("showlegend", plotly.Bool(false))
	return fig, nil
}

// }}}
// {{{ TimeOfDay

func TimeOfDay(ds *faadash.Dataset, opt Options) (*plotly.Figure, error) {
	labels,ns := countArrays(ds.ValueCounts("TIME_OF_DAY"))

	fig := plotly.NewFigure("Wildlife Strikes by Time of Day")
	fig.AddTrace(plotly.PieTrace(labels, ns))
	return fig, nil
}

// }}}
// {{{ PhaseOfFlight

func PhaseOfFlight(ds *faadash.Dataset, opt Options) (*plotly.Figure, error) {
	counts := ds.ValueCounts("PHASE_OF_FLIGHT")
	if len(counts) > 8 { counts = counts[:8] }
	labels,ns := countArrays(counts)

	trace := plotly.Bar(labels, ns)
	trace = trace.Set("marker", plotly.Object{
		{"color", ns},
		{"colorscale", plotly.String("Reds")},
	})

	fig := plotly.NewFigure("Wildlife Strikes by Phase of Flight")
	fig.AddTrace(trace)
	fig.SetLayout("xaxis", plotly.Object{{"tickangle", plotly.Int(45)}})
	return fig, nil
}

// }}}
// {{{ AirportMap

func AirportMap(ds *faadash.Dataset, opt Options) (*plotly.Figure, error) {
	airports := ds.AirportCounts()

	maxN := 1
	for _,ac := range airports {
		if ac.N > maxN { maxN = ac.N }
	}

	lat,lon,text,sizes,ns := plotly.Array{}, plotly.Array{}, plotly.Array{}, plotly.Array{}, plotly.Array{}
	for _,ac := range airports {
		lat = append(lat, plotly.Float(ac.Pos.Lat))
		lon = append(lon, plotly.Float(ac.Pos.Long))
		text = append(text, plotly.String(fmt.Sprintf("%s, %s: %d strikes", ac.Airport, ac.State, ac.N)))
		sizes = append(sizes, plotly.Float(4.0 + 20.0*float64(ac.N)/float64(maxN)))
		ns = append(ns, plotly.Int(ac.N))
	}

	trace := plotly.Object{
		{"type", plotly.String("scattergeo")},
		{"lat", lat},
		{"lon", lon},
		{"text", text},
		{"hoverinfo", plotly.String("text")},
		{"marker", plotly.Object{
			{"size", sizes},
			{"color", ns},
			{"colorscale", plotly.String("YlOrRd")},
		}},
	}

	fig := plotly.NewFigure("Geographic Distribution of Wildlife Strikes")
	fig.AddTrace(trace)
	fig.SetLayout("geo", plotly.Object{
		{"scope", plotly.String("usa")},
		{"bgcolor", plotly.String("rgba(0,0,0,0)")},
		{"lakecolor", plotly.String("#1e3a5f")},
		{"landcolor", plotly.String("#2d4a6f")},
	})
	return fig, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
