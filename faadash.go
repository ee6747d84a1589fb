// Package faadash contains the domain types for the FAA dashboard
// generators: wildlife-strike records and their aggregations. No HTTP
// imports.
package faadash

import(
	"time"

	"github.com/skypies/geo"
)

// The strike dataset covers 2019-2020; 2019 is "Before" the pandemic,
// 2020 is "During".
type Period string
const(
	BeforePandemic Period = "Before"
	DuringPandemic Period = "During"

	PandemicCutoffYear = 2020
)

// StrikeRecord is one row of the cleaned FAA wildlife-strike database
// (wildlife.faa.gov), with just the fields the dashboard aggregates over.
type StrikeRecord struct {
	Date        time.Time // zero if the source row had no parseable date
	Year        int

	State       string
	Species     string
	Operator    string
	Aircraft    string
	Airport     string
	Phase       string // phase of flight (Approach, Take-off Run, ...)
	TimeOfDay   string
	DamageLevel string // N, M, M?, S, D

	AirportPos  geo.Latlong
	HasPos      bool
}

// {{{ r.Pandemic

func (r StrikeRecord)Pandemic() Period {
	if r.Year < PandemicCutoffYear { return BeforePandemic }
	return DuringPandemic
}

// }}}
// {{{ r.YearMonth

// YearMonth is the time-series bucket, e.g. "2019-07". Empty when the row's
// date didn't parse; monthly groupings skip those rows.
func (r StrikeRecord)YearMonth() string {
	if r.Date.IsZero() { return "" }
	return r.Date.Format("2006-01")
}

// }}}
// {{{ r.Field

// Field returns the value of a categorical column by its CSV header name,
// so aggregations can be driven by column name.
func (r StrikeRecord)Field(name string) string {
	switch name {
	case "STATE":           return r.State
	case "SPECIES":         return r.Species
	case "OPERATOR":        return r.Operator
	case "AIRCRAFT":        return r.Aircraft
	case "AIRPORT":         return r.Airport
	case "PHASE_OF_FLIGHT": return r.Phase
	case "TIME_OF_DAY":     return r.TimeOfDay
	case "DAMAGE_LEVEL":    return r.DamageLevel
	case "PANDEMIC":        return string(r.Pandemic())
	}
	return ""
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
