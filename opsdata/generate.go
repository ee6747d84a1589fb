// Package opsdata generates synthetic daily flight-operations data and
// computes the rolling KPIs the ops dashboard shows. The generator is
// deterministic for a given seed, so demo pages and tests are stable.
package opsdata

import(
	"math/rand"
	"time"

	"github.com/skypies/util/date"
)

const DefaultSeed = 42

// DailyOps is one day of (synthetic) national flight operations.
type DailyOps struct {
	Date                time.Time

	TotalFlights        int
	OnTimeFlights       int
	DelayedFlights      int
	CancelledFlights    int
	DivertedFlights     int

	AvgDelayMinutes     float64

	// The five FAA delay-cause buckets; they sum to DelayedFlights.
	WeatherDelays       int
	CarrierDelays       int
	NASDelays           int
	SecurityDelays      int
	LateAircraftDelays  int
}

// {{{ d.OnTimePct, d.DelayRate, d.CancellationRate

func (d DailyOps)OnTimePct() float64 {
	if d.TotalFlights == 0 { return 0 }
	return float64(d.OnTimeFlights) / float64(d.TotalFlights) * 100.0
}

func (d DailyOps)DelayRate() float64 {
	if d.TotalFlights == 0 { return 0 }
	return float64(d.DelayedFlights) / float64(d.TotalFlights) * 100.0
}

func (d DailyOps)CancellationRate() float64 {
	if d.TotalFlights == 0 { return 0 }
	return float64(d.CancelledFlights) / float64(d.TotalFlights) * 100.0
}

// }}}
// {{{ GenerateSampleData

// GenerateSampleData builds numDays of daily ops ending on (and including)
// the UTC day of end. Totals are internally consistent: on-time + delayed +
// cancelled + diverted == total, and the five delay causes sum to delayed.
func GenerateSampleData(numDays int, seed int64, end time.Time) []DailyOps {
	rnd := rand.New(rand.NewSource(seed))
	endDay := date.TruncateToUTCDay(end)

	days := make([]DailyOps, 0, numDays)
	for i:=0; i<numDays; i++ {
		d := DailyOps{
			Date:             endDay.AddDate(0, 0, i-numDays+1),
			TotalFlights:     40000 + rnd.Intn(10000),
			CancelledFlights:   100 + rnd.Intn(900),
			DivertedFlights:     50 + rnd.Intn(250),
			AvgDelayMinutes: 15.0 + rnd.Float64()*30.0,
		}

		remaining := d.TotalFlights - d.CancelledFlights - d.DivertedFlights
		d.DelayedFlights = 5000 + rnd.Intn(5000)
		if d.DelayedFlights > remaining-1000 {
			d.DelayedFlights = remaining - 1000
		}
		d.OnTimeFlights = remaining - d.DelayedFlights

		// Split the delays across the five causes with random proportions
		// (normalized exponentials == flat Dirichlet)
		weights := [5]float64{}
		sum := 0.0
		for j,_ := range weights {
			weights[j] = rnd.ExpFloat64()
			sum += weights[j]
		}
		d.WeatherDelays  = int(weights[0] / sum * float64(d.DelayedFlights))
		d.CarrierDelays  = int(weights[1] / sum * float64(d.DelayedFlights))
		d.NASDelays      = int(weights[2] / sum * float64(d.DelayedFlights))
		d.SecurityDelays = int(weights[3] / sum * float64(d.DelayedFlights))
		d.LateAircraftDelays = d.DelayedFlights -
			(d.WeatherDelays + d.CarrierDelays + d.NASDelays + d.SecurityDelays)

		days = append(days, d)
	}

	return days
}

// }}}
// {{{ Tail

// Tail returns the most recent n days (or everything, if fewer).
func Tail(days []DailyOps, n int) []DailyOps {
	if n >= len(days) { return days }
	return days[len(days)-n:]
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
