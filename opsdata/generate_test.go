package opsdata

import(
	"testing"
	"time"
)

var testEnd = time.Date(2024, time.March, 15, 12, 30, 0, 0, time.UTC)

func TestGenerateSampleDataLengths(t *testing.T) {
	for _,n := range []int{1, 30, 60, 90, 180, 365} {
		days := GenerateSampleData(n, DefaultSeed, testEnd)
		if len(days) != n {
			t.Errorf("asked for %d days, got %d", n, len(days))
		}
	}
}

func TestGenerateSampleDataDates(t *testing.T) {
	days := GenerateSampleData(30, DefaultSeed, testEnd)

	last := days[len(days)-1].Date
	if last.Format("2006-01-02") != "2024-03-15" {
		t.Errorf("last day was %s, expected 2024-03-15", last)
	}
	if h,m,s := last.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("dates should be midnight UTC, got %s", last)
	}

	for i:=1; i<len(days); i++ {
		if gap := days[i].Date.Sub(days[i-1].Date); gap != 24*time.Hour {
			t.Errorf("day %d: gap was %s, expected 24h", i, gap)
		}
	}
}

func TestGenerateSampleDataConsistency(t *testing.T) {
	days := GenerateSampleData(90, DefaultSeed, testEnd)

	for i,d := range days {
		sum := d.OnTimeFlights + d.DelayedFlights + d.CancelledFlights + d.DivertedFlights
		if sum != d.TotalFlights {
			t.Errorf("day %d: statuses sum to %d, total is %d", i, sum, d.TotalFlights)
		}

		causes := d.WeatherDelays + d.CarrierDelays + d.NASDelays +
			d.SecurityDelays + d.LateAircraftDelays
		if causes != d.DelayedFlights {
			t.Errorf("day %d: delay causes sum to %d, delayed is %d", i, causes, d.DelayedFlights)
		}

		if d.OnTimeFlights <= 0 {
			t.Errorf("day %d: no on-time flights (%d)", i, d.OnTimeFlights)
		}
		if d.AvgDelayMinutes < 15.0 || d.AvgDelayMinutes > 45.0 {
			t.Errorf("day %d: avg delay %.2f outside [15,45]", i, d.AvgDelayMinutes)
		}
	}
}

func TestGenerateSampleDataRates(t *testing.T) {
	days := GenerateSampleData(60, DefaultSeed, testEnd)

	for i,d := range days {
		for _,v := range []float64{d.OnTimePct(), d.DelayRate(), d.CancellationRate()} {
			if v < 0.0 || v > 100.0 {
				t.Errorf("day %d: rate %.2f outside [0,100]", i, v)
			}
		}
	}
}

func TestGenerateSampleDataDeterminism(t *testing.T) {
	a := GenerateSampleData(30, DefaultSeed, testEnd)
	b := GenerateSampleData(30, DefaultSeed, testEnd)
	for i,_ := range a {
		if a[i] != b[i] {
			t.Errorf("day %d differs between identically seeded runs: %v vs %v", i, a[i], b[i])
		}
	}

	c := GenerateSampleData(30, DefaultSeed+1, testEnd)
	same := true
	for i,_ := range a {
		if a[i] != c[i] { same = false }
	}
	if same {
		t.Errorf("different seeds produced identical data")
	}
}

func TestZeroTotalRates(t *testing.T) {
	d := DailyOps{}
	if d.OnTimePct() != 0 || d.DelayRate() != 0 || d.CancellationRate() != 0 {
		t.Errorf("rates on an empty day should be zero")
	}
}

func TestTail(t *testing.T) {
	days := GenerateSampleData(90, DefaultSeed, testEnd)

	tail := Tail(days, 30)
	if len(tail) != 30 {
		t.Errorf("Tail(90 days, 30) returned %d days", len(tail))
	}
	if !tail[29].Date.Equal(days[89].Date) {
		t.Errorf("Tail should keep the most recent days")
	}

	if got := Tail(days, 200); len(got) != 90 {
		t.Errorf("Tail longer than input returned %d days, expected all 90", len(got))
	}
}
