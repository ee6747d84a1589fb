// Package charts holds the registry of dashboard charts, each a function
// from a strike dataset to a plotly figure.
package charts

import(
	"fmt"
	"sort"

	"github.com/skypies/faadash"
	"github.com/skypies/faadash/plotly"
)

type ChartFunc func(*faadash.Dataset, Options) (*plotly.Figure, error)

// A simple registry of all known charts.
type ChartEntry struct {
	ChartFunc
	Name, Title string
	Section     string // which page section the chart renders under
	Wide        bool   // full-width charts get a row to themselves
}

var chartRegistry = map[string]ChartEntry{}

func HandleChart(name string, f ChartFunc, title, section string) {
	chartRegistry[name] = ChartEntry{
		ChartFunc: f,
		Name: name,
		Title: title,
		Section: section,
	}
}

func WideChart(name string) {
	entry := chartRegistry[name]
	entry.Wide = true
	chartRegistry[name] = entry
}

func ListCharts() []ChartEntry {
	out := []ChartEntry{}

	keys := []string{}
	for k,_ := range chartRegistry { keys = append(keys, k) }
	sort.Strings(keys)

	for _,k := range keys {
		out = append(out, chartRegistry[k])
	}
	return out
}

func Lookup(name string) (ChartEntry, bool) {
	entry,exists := chartRegistry[name]
	return entry, exists
}

func BuildChart(name string, ds *faadash.Dataset, opt Options) (*plotly.Figure, error) {
	entry,exists := chartRegistry[name]
	if !exists {
		return nil, fmt.Errorf("chart '%s' not known", name)
	}
	return entry.ChartFunc(ds, opt)
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
