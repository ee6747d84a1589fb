package charts

// All charts share this same options struct. Some options apply to every
// chart, some are only meaningful to one or two. They can come from a yaml
// config file or from CGI args.

import(
	"fmt"
	"net/http"

	"github.com/skypies/util/widget"
)

type Options struct {
	YearFrom, YearTo int
	TopN             int     // how many bars in the "top N" charts

	TargetOnTimePct  float64 // ops dashboard target line
}

func DefaultOptions() Options {
	return Options{
		YearFrom: 2019,
		YearTo:   2020,
		TopN:     10,
		TargetOnTimePct: 80,
	}
}

// {{{ FormValueOptions

// FormValueOptions overlays CGI args onto the given defaults.
func FormValueOptions(r *http.Request, opt Options) Options {
	if v := widget.FormValueInt64(r, "yearfrom"); v > 0 { opt.YearFrom = int(v) }
	if v := widget.FormValueInt64(r, "yearto");   v > 0 { opt.YearTo = int(v) }
	if v := widget.FormValueInt64(r, "topn");     v > 0 { opt.TopN = int(v) }
	if v := widget.FormValueInt64(r, "target");   v > 0 { opt.TargetOnTimePct = float64(v) }

	return opt
}

// }}}
// {{{ o.PeriodLabel

// PeriodLabel is the "(2019-2020)" suffix the chart titles carry.
func (o Options)PeriodLabel() string {
	return fmt.Sprintf("(%d-%d)", o.YearFrom, o.YearTo)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
