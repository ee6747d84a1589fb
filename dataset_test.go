package faadash

// go test -v github.com/skypies/faadash

import(
	"reflect"
	"strings"
	"testing"
	"time"
)

var testCSV = `YEAR,DATE,STATE,SPECIES,OPERATOR,AIRCRAFT,AIRPORT,PHASE_OF_FLIGHT,TIME_OF_DAY,DAMAGE_LEVEL,AIRPORT_LATITUDE,AIRPORT_LONGITUDE
2019,2019-03-10,KS,GULL,UNITED,B737,WICHITA,Approach,Day,N,37.6499,-97.4331
2019,2019-07-04,TX,HAWK,DELTA,A320,DALLAS,Take-off Run,Day,M,32.8471,-96.8518
2020,2020-05-01,TX,GULL,UNITED,B737,DALLAS,Approach,Night,N,32.8471,-96.8518
2020,2020-06-15,CA,DOVE,ALASKA,B739,LAX,Climb,Dusk,S,33.9416,-118.4085
2018,2018-01-01,NY,GULL,JETBLUE,A321,JFK,Approach,Day,N,40.6413,-73.7781
`

func loadTestDataset(t *testing.T) *Dataset {
	ds := NewDataset()
	if n,err := ds.ReadFrom("test.csv", strings.NewReader(testCSV)); err != nil {
		t.Fatal(err)
	} else if n != 5 {
		t.Fatalf("expected 5 rows, got %d", n)
	}
	return ds
}

func TestReadFrom(t *testing.T) {
	ds := loadTestDataset(t)

	r := ds.Records[0]
	if r.Year != 2019 || r.State != "KS" || r.Species != "GULL" {
		t.Errorf("bad first record: %+v", r)
	}
	if expected := time.Date(2019,3,10, 0,0,0,0, time.UTC); !r.Date.Equal(expected) {
		t.Errorf("expected date %s, got %s", expected, r.Date)
	}
	if !r.HasPos || r.AirportPos.Lat != 37.6499 {
		t.Errorf("bad position: %+v", r)
	}
	if r.Pandemic() != BeforePandemic {
		t.Errorf("2019 should be %s", BeforePandemic)
	}
	if ds.Records[2].Pandemic() != DuringPandemic {
		t.Errorf("2020 should be %s", DuringPandemic)
	}
}

func TestReadFromLog(t *testing.T) {
	raggedCSV := `YEAR,DATE,STATE
2019,2019-03-10,KS
2019,2019-07-04
2020,2020-05-01,TX
`

	ds := NewDataset()
	n,err := ds.ReadFrom("ragged.csv", strings.NewReader(raggedCSV))
	if err != nil { t.Fatal(err) }
	if n != 2 {
		t.Errorf("expected the ragged row skipped, got %d rows", n)
	}

	// The log is newline-terminated text, printable as-is.
	lines := strings.Split(strings.TrimSpace(ds.Log), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), ds.Log)
	}
	if !strings.Contains(lines[0], "ragged.csv:2") {
		t.Errorf("expected the skipped row logged with its line number, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "2 rows loaded") {
		t.Errorf("expected a load summary line, got %q", lines[1])
	}
	if !strings.HasSuffix(ds.Log, "\n") {
		t.Errorf("log should end with a newline: %q", ds.Log)
	}
}

func TestFilterYears(t *testing.T) {
	ds := loadTestDataset(t).FilterYears(2019, 2020)
	if len(ds.Records) != 4 {
		t.Errorf("expected 4 records after filter, got %d", len(ds.Records))
	}
	for _,r := range ds.Records {
		if r.Year < 2019 || r.Year > 2020 {
			t.Errorf("record outside filter: %+v", r)
		}
	}
}

func TestValueCounts(t *testing.T) {
	ds := loadTestDataset(t).FilterYears(2019, 2020)

	got := ds.ValueCounts("SPECIES")
	expected := []Count{ {"GULL",2}, {"DOVE",1}, {"HAWK",1} } // desc count, ties by label
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}

	if top := ds.TopN("SPECIES", 1); len(top) != 1 || top[0].Label != "GULL" {
		t.Errorf("TopN(1): got %v", top)
	}
}

func TestMonthlyCounts(t *testing.T) {
	ds := loadTestDataset(t).FilterYears(2019, 2020)

	got := ds.MonthlyCounts()
	expected := []MonthlyCount{
		{"2019-03", BeforePandemic, 1},
		{"2019-07", BeforePandemic, 1},
		{"2020-05", DuringPandemic, 1},
		{"2020-06", DuringPandemic, 1},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestAirportCounts(t *testing.T) {
	ds := loadTestDataset(t).FilterYears(2019, 2020)

	got := ds.AirportCounts()
	if len(got) != 3 {
		t.Fatalf("expected 3 airports, got %v", got)
	}
	if got[0].Airport != "DALLAS" || got[0].N != 2 {
		t.Errorf("expected DALLAS x2 first, got %+v", got[0])
	}
}

func TestSummarize(t *testing.T) {
	ds := loadTestDataset(t).FilterYears(2019, 2020)

	s := ds.Summarize()
	if s.TotalRecords != 4 || s.BeforeCount != 2 || s.DuringCount != 2 {
		t.Errorf("bad counts: %+v", s)
	}
	if s.PctChange != 0 {
		t.Errorf("expected 0%% change for 2v2, got %f", s.PctChange)
	}
	if s.UniqueSpecies != 3 || s.UniqueStates != 3 {
		t.Errorf("bad uniques: %+v", s)
	}
}

func TestBoundingBox(t *testing.T) {
	ds := loadTestDataset(t)
	bbox := ds.BoundingBox()
	if bbox == nil { t.Fatal("expected a bounding box") }
}

func TestRowDateFormats(t *testing.T) {
	tests := []struct{
		Raw      string
		Expected time.Time
	}{
		{"2019-03-10",          time.Date(2019,3,10, 0,0,0,0, time.UTC)},
		{"2019-03-10 14:30:00", time.Date(2019,3,10, 14,30,0,0, time.UTC)},
		{"3/10/2019",           time.Date(2019,3,10, 0,0,0,0, time.UTC)},
		{"not a date",          time.Time{}},
	}

	for _,test := range tests {
		row := Row{"DATE": test.Raw, "YEAR": "2019"}
		rec := row.ToStrikeRecord()
		if !rec.Date.Equal(test.Expected) {
			t.Errorf("'%s': expected %s, got %s", test.Raw, test.Expected, rec.Date)
		}
	}
}
