package ui

import(
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/skypies/faadash/charts"
	"github.com/skypies/faadash/opsdata"
	"github.com/skypies/faadash/plotly"
)

type OpsDashboardParams struct {
	Title       string
	Period      string
	KPIs        opsdata.KPIs
	Sections    []SectionBlock
	GeneratedAt string
	Serve       bool   // when served live, the page gets download links
}

// {{{ BuildOpsSections

func BuildOpsSections(days []opsdata.DailyOps, opt charts.Options) ([]SectionBlock, error) {
	layout := []struct{
		Section string
		ID      string
		Fig     *plotly.Figure
	}{
		{"Flight Operations Trends",  "chart_ontime",    opsdata.OnTimeTrendFigure(days, opt.TargetOnTimePct)},
		{"Flight Operations Trends",  "chart_avgdelay",  opsdata.AvgDelayFigure(days)},
		{"Flight Operations Overview","chart_dailyops",  opsdata.DailyOperationsFigure(days)},
		{"Flight Operations Overview","chart_statuspie", opsdata.StatusPieFigure(days)},
		{"Delay Type Analysis",       "chart_types",     opsdata.DelayTypesFigure(days)},
		{"Delay Type Analysis",       "chart_trend",     opsdata.DelayTrendFigure(days)},
	}

	sections := []SectionBlock{}
	bySection := map[string]int{}

	for _,l := range layout {
		jsonStr,err := l.Fig.JSON()
		if err != nil { return nil, fmt.Errorf("figure %s: %v", l.ID, err) }

		block := ChartBlock{ID:l.ID, JSON:template.JS(jsonStr)}

		if i,exists := bySection[l.Section]; exists {
			sections[i].Charts = append(sections[i].Charts, block)
		} else {
			bySection[l.Section] = len(sections)
			sections = append(sections, SectionBlock{Title:l.Section, Charts:[]ChartBlock{block}})
		}
	}

	return sections, nil
}

// }}}
// {{{ WriteOpsDashboard

func WriteOpsDashboard(w io.Writer, days []opsdata.DailyOps, opt charts.Options, serve bool) error {
	sections,err := BuildOpsSections(days, opt)
	if err != nil { return err }

	period := ""
	if len(days) > 0 {
		period = fmt.Sprintf("%s to %s (%d days)",
			days[0].Date.Format("2006-01-02"),
			days[len(days)-1].Date.Format("2006-01-02"),
			len(days))
	}

	params := OpsDashboardParams{
		Title: "FAA Metrics Dashboard",
		Period: period,
		KPIs: opsdata.CalculateKPIs(days),
		Sections: sections,
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04 UTC"),
		Serve: serve,
	}

	return dashboardTemplates.ExecuteTemplate(w, "ops-dashboard.html", params)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
