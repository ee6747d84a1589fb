package charts

// go test -v github.com/skypies/faadash/charts

import(
	"strings"
	"testing"
	"time"

	"github.com/skypies/geo"

	"github.com/skypies/faadash"
)

func testDataset() *faadash.Dataset {
	ds := faadash.NewDataset()

	mk := func(year int, month time.Month, state, species, operator, aircraft, airport, phase, tod, damage string, lat, long float64) {
		ds.Records = append(ds.Records, faadash.StrikeRecord{
			Date: time.Date(year, month, 15, 0,0,0,0, time.UTC),
			Year: year,
			State: state, Species: species, Operator: operator, Aircraft: aircraft,
			Airport: airport, Phase: phase, TimeOfDay: tod, DamageLevel: damage,
			AirportPos: geo.Latlong{lat,long}, HasPos: true,
		})
	}

	mk(2019, 3, "KS", "GULL", "UNITED", "B737", "ICT", "Approach",     "Day",   "N", 37.6, -97.4)
	mk(2019, 7, "TX", "HAWK", "DELTA",  "A320", "DFW", "Take-off Run", "Day",   "M", 32.8, -96.8)
	mk(2020, 5, "TX", "GULL", "UNITED", "B737", "DFW", "Approach",     "Night", "N", 32.8, -96.8)
	mk(2020, 6, "CA", "DOVE", "ALASKA", "B739", "LAX", "Climb",        "Dusk",  "S", 33.9, -118.4)
	return ds
}

func TestBuildAllCharts(t *testing.T) {
	ds := testDataset()
	opt := DefaultOptions()

	for _,entry := range ListCharts() {
		fig,err := BuildChart(entry.Name, ds, opt)
		if err != nil {
			t.Errorf("%s: %v", entry.Name, err)
			continue
		}

		jsonStr,err := fig.JSON()
		if err != nil {
			t.Errorf("%s: JSON: %v", entry.Name, err)
			continue
		}
		if !strings.HasPrefix(jsonStr, `{"data":[`) {
			t.Errorf("%s: unexpected JSON shape: %.60s", entry.Name, jsonStr)
		}
		if !strings.Contains(jsonStr, `"layout"`) {
			t.Errorf("%s: no layout in JSON", entry.Name)
		}
	}
}

func TestBuildChartUnknown(t *testing.T) {
	if _,err := BuildChart("nosuchchart", testDataset(), DefaultOptions()); err == nil {
		t.Errorf("expected error for unknown chart")
	}
}

func TestPandemicComparison(t *testing.T) {
	fig,err := PandemicComparison(testDataset(), DefaultOptions())
	if err != nil { t.Fatal(err) }

	jsonStr,err := fig.JSON()
	if err != nil { t.Fatal(err) }

	for _,expected := range []string{`"Before"`, `"During"`, `"#2ecc71"`, `"#e74c3c"`} {
		if !strings.Contains(jsonStr, expected) {
			t.Errorf("expected %s in %s", expected, jsonStr)
		}
	}
}

func TestMonthlyTrendsTraces(t *testing.T) {
	fig,err := MonthlyTrends(testDataset(), DefaultOptions())
	if err != nil { t.Fatal(err) }

	if len(fig.Data) != 2 {
		t.Errorf("expected a trace per period, got %d", len(fig.Data))
	}
}

func TestTopNRespectsLimit(t *testing.T) {
	opt := DefaultOptions()
	opt.TopN = 1

	fig,err := TopSpecies(testDataset(), opt)
	if err != nil { t.Fatal(err) }

	jsonStr,err := fig.JSON()
	if err != nil { t.Fatal(err) }

	if !strings.Contains(jsonStr, `"GULL"`) {
		t.Errorf("expected top species GULL in %s", jsonStr)
	}
	if strings.Contains(jsonStr, `"HAWK"`) {
		t.Errorf("TopN=1 should have dropped HAWK: %s", jsonStr)
	}
}

func TestListChartsSorted(t *testing.T) {
	entries := ListCharts()
	if len(entries) != 10 {
		t.Fatalf("expected 10 registered charts, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Name > entries[i].Name {
			t.Errorf("registry listing not sorted: %s > %s", entries[i-1].Name, entries[i].Name)
		}
	}
}
