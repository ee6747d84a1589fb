package ui

import(
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/skypies/faadash"
	"github.com/skypies/faadash/charts"
)

// {{{ ChartBlock{}, SectionBlock{}

// One rendered chart: a div placeholder plus its figure JSON, inlined into
// the page's script block.
type ChartBlock struct {
	ID    string
	Title string
	Wide  bool
	JSON  template.JS
}

type SectionBlock struct {
	Title  string
	Charts []ChartBlock
}

// }}}

type StrikeDashboardParams struct {
	Title       string
	Subtitle    string
	Summary     faadash.Summary
	Sections    []SectionBlock
	GeneratedAt string
}

// {{{ BuildSections

// BuildSections renders each named chart and groups them into page sections,
// in first-appearance order.
func BuildSections(ds *faadash.Dataset, opt charts.Options, names []string) ([]SectionBlock, error) {
	sections := []SectionBlock{}
	bySection := map[string]int{}

	for _,name := range names {
		entry,exists := charts.Lookup(name)
		if !exists {
			return nil, fmt.Errorf("chart '%s' not known", name)
		}

		fig,err := charts.BuildChart(name, ds, opt)
		if err != nil { return nil, fmt.Errorf("chart '%s': %v", name, err) }

		jsonStr,err := fig.JSON()
		if err != nil { return nil, fmt.Errorf("chart '%s': %v", name, err) }

		block := ChartBlock{
			ID: "chart_"+name,
			Title: entry.Title,
			Wide: entry.Wide,
			JSON: template.JS(jsonStr),
		}

		if i,exists := bySection[entry.Section]; exists {
			sections[i].Charts = append(sections[i].Charts, block)
		} else {
			bySection[entry.Section] = len(sections)
			sections = append(sections, SectionBlock{Title:entry.Section, Charts:[]ChartBlock{block}})
		}
	}

	return sections, nil
}

// }}}
// {{{ WriteStrikeDashboard

// WriteStrikeDashboard renders the whole wildlife-strike page as standalone
// HTML. If names is empty, the standard chart layout is used.
func WriteStrikeDashboard(w io.Writer, ds *faadash.Dataset, opt charts.Options, title string, names []string) error {
	if len(names) == 0 {
		names = charts.DefaultChartNames()
	}

	sections,err := BuildSections(ds, opt, names)
	if err != nil { return err }

	params := StrikeDashboardParams{
		Title: title,
		Subtitle: fmt.Sprintf("FAA Wildlife Strike Database | %d-%d", opt.YearFrom, opt.YearTo),
		Summary: ds.Summarize(),
		Sections: sections,
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04 UTC"),
	}

	return dashboardTemplates.ExecuteTemplate(w, "strike-dashboard.html", params)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
