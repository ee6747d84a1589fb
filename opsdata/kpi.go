package opsdata

import(
	"fmt"

	"github.com/skypies/util/histogram"
)

// KPIs are the headline numbers for the most recent window, with trend
// deltas against the window before it.
type KPIs struct {
	TotalFlights      int
	TotalDelayed      int
	TotalCancelled    int
	TotalDiverted     int

	OnTimePct         float64
	AvgDelayMinutes   float64
	CancellationRate  float64
	DelayRate         float64

	// Deltas vs the previous window; positive means the metric went up.
	OnTimeTrend       float64
	DelayTrend        float64
	CancellationTrend float64

	WindowDays        int
}

// {{{ splitWindows

// The KPI windows: with 60+ days of data, compare the last 30 days against
// the 30 before. With less, compare the most recent half against the oldest
// half (always at least one day each).
func splitWindows(days []DailyOps) ([]DailyOps, []DailyOps) {
	if len(days) == 0 {
		return days, days
	}
	if len(days) < 60 {
		half := len(days) / 2
		if half < 1 { half = 1 }
		return days[len(days)-half:], days[:half]
	}
	return days[len(days)-30:], days[len(days)-60 : len(days)-30]
}

// }}}
// {{{ windowStats

type windowStats struct {
	totalFlights, totalDelayed, totalCancelled, totalDiverted int
	onTimePct, avgDelayMin, cancellationRate, delayRate float64
}

func statsFor(days []DailyOps) windowStats {
	ws := windowStats{}
	if len(days) == 0 { return ws }

	for _,d := range days {
		ws.totalFlights   += d.TotalFlights
		ws.totalDelayed   += d.DelayedFlights
		ws.totalCancelled += d.CancelledFlights
		ws.totalDiverted  += d.DivertedFlights

		ws.onTimePct        += d.OnTimePct()
		ws.avgDelayMin      += d.AvgDelayMinutes
		ws.cancellationRate += d.CancellationRate()
		ws.delayRate        += d.DelayRate()
	}

	n := float64(len(days))
	ws.onTimePct /= n
	ws.avgDelayMin /= n
	ws.cancellationRate /= n
	ws.delayRate /= n

	return ws
}

// }}}
// {{{ CalculateKPIs

func CalculateKPIs(days []DailyOps) KPIs {
	latest,previous := splitWindows(days)

	cur := statsFor(latest)
	prev := statsFor(previous)

	return KPIs{
		TotalFlights:   cur.totalFlights,
		TotalDelayed:   cur.totalDelayed,
		TotalCancelled: cur.totalCancelled,
		TotalDiverted:  cur.totalDiverted,

		OnTimePct:        cur.onTimePct,
		AvgDelayMinutes:  cur.avgDelayMin,
		CancellationRate: cur.cancellationRate,
		DelayRate:        cur.delayRate,

		OnTimeTrend:       cur.onTimePct - prev.onTimePct,
		DelayTrend:        cur.avgDelayMin - prev.avgDelayMin,
		CancellationTrend: cur.cancellationRate - prev.cancellationRate,

		WindowDays: len(latest),
	}
}

// }}}
// {{{ k.String

func (k KPIs)String() string {
	str := fmt.Sprintf("KPIs over last %d days:-\n", k.WindowDays)
	str += fmt.Sprintf("  %-22.22s: %d\n",       "Total flights",     k.TotalFlights)
	str += fmt.Sprintf("  %-22.22s: %.1f%% (%+.1f%%)\n", "On-time",  k.OnTimePct, k.OnTimeTrend)
	str += fmt.Sprintf("  %-22.22s: %.1f min (%+.1f)\n", "Avg delay", k.AvgDelayMinutes, k.DelayTrend)
	str += fmt.Sprintf("  %-22.22s: %.2f%% (%+.2f%%)\n", "Cancellation rate", k.CancellationRate, k.CancellationTrend)
	str += fmt.Sprintf("  %-22.22s: %d\n",       "Delayed flights",   k.TotalDelayed)
	str += fmt.Sprintf("  %-22.22s: %d\n",       "Cancelled flights", k.TotalCancelled)
	return str
}

// }}}
// {{{ DelayHistogram

// DelayHistogram buckets the per-day average delay (in minutes), for the
// stats output.
func DelayHistogram(days []DailyOps) histogram.Histogram {
	h := histogram.Histogram{ValMin:0, ValMax:60, NumBuckets:12}
	for _,d := range days {
		h.Add(histogram.ScalarVal(int(d.AvgDelayMinutes)))
	}
	return h
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
