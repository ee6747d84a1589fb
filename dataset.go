package faadash

import(
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/skypies/geo"
)

// Dataset is an in-memory slice of strike records, plus a load log in case
// anything looked fishy on the way in.
type Dataset struct {
	Records []StrikeRecord
	Log     string
}

func NewDataset() *Dataset {
	return &Dataset{ Records: []StrikeRecord{} }
}

// {{{ ds.ReadFrom

// ReadFrom appends every parseable row from rdr. Rows whose field count
// doesn't match the header are skipped and logged, not fatal; a broken
// stream is.
func (ds *Dataset)ReadFrom(name string, rdr io.Reader) (int, error) {
	rowReader := NewRowReader(rdr)

	n := 0
	i := 1
	for {
		row,err := rowReader.Read()
		if err == io.EOF { break }
		if _,ragged := err.(*csv.ParseError); ragged || (err != nil && len(row) == 0) {
			// Ragged or mismatched row; log it and move on
			ds.Log += fmt.Sprintf("%s:%d: %v\n", name, i, err)
			i++
			continue
		}
		if err != nil { return n, err }

		ds.Records = append(ds.Records, row.ToStrikeRecord())
		n++
		i++
	}

	ds.Log += fmt.Sprintf("---- %s: %d rows loaded\n", name, n)
	return n, nil
}

// }}}
// {{{ ds.FilterYears

// FilterYears returns a new dataset restricted to [from,to] inclusive.
func (ds *Dataset)FilterYears(from, to int) *Dataset {
	out := NewDataset()
	out.Log = ds.Log
	for _,r := range ds.Records {
		if r.Year >= from && r.Year <= to {
			out.Records = append(out.Records, r)
		}
	}
	out.Log += fmt.Sprintf("---- filtered to %d-%d: %d rows\n", from, to, len(out.Records))
	return out
}

// }}}

type Count struct {
	Label string
	N     int
}

// {{{ ds.ValueCounts

// ValueCounts buckets records by a categorical field, descending by count
// (ties broken by label, so output is deterministic). Empty values are
// dropped, matching how the source data treats unknowns.
func (ds *Dataset)ValueCounts(field string) []Count {
	m := map[string]int{}
	for _,r := range ds.Records {
		if v := r.Field(field); v != "" { m[v]++ }
	}

	out := []Count{}
	for k,n := range m { out = append(out, Count{k,n}) }
	sort.Slice(out, func(i,j int) bool {
		if out[i].N != out[j].N { return out[i].N > out[j].N }
		return out[i].Label < out[j].Label
	})
	return out
}

// }}}
// {{{ ds.TopN

func (ds *Dataset)TopN(field string, n int) []Count {
	counts := ds.ValueCounts(field)
	if len(counts) > n { counts = counts[:n] }
	return counts
}

// }}}
// {{{ ds.UniqueCount

func (ds *Dataset)UniqueCount(field string) int {
	return len(ds.ValueCounts(field))
}

// }}}

type MonthlyCount struct {
	YearMonth string
	Period    Period
	N         int
}

// {{{ ds.MonthlyCounts

// MonthlyCounts groups by (year-month, pandemic period), sorted by month.
// Rows without a parseable date don't land in any bucket.
func (ds *Dataset)MonthlyCounts() []MonthlyCount {
	type key struct {
		ym string
		p  Period
	}
	m := map[key]int{}
	for _,r := range ds.Records {
		ym := r.YearMonth()
		if ym == "" { continue }
		m[key{ym, r.Pandemic()}]++
	}

	out := []MonthlyCount{}
	for k,n := range m { out = append(out, MonthlyCount{k.ym, k.p, n}) }
	sort.Slice(out, func(i,j int) bool {
		if out[i].YearMonth != out[j].YearMonth { return out[i].YearMonth < out[j].YearMonth }
		return out[i].Period < out[j].Period
	})
	return out
}

// }}}

type AirportCount struct {
	Airport string
	State   string
	Pos     geo.Latlong
	N       int
}

// {{{ ds.AirportCounts

// AirportCounts groups strikes by airport, for the scatter-geo map. Only
// rows with a position contribute.
func (ds *Dataset)AirportCounts() []AirportCount {
	byAirport := map[string]AirportCount{}
	for _,r := range ds.Records {
		if !r.HasPos { continue }
		ac := byAirport[r.Airport]
		ac.Airport = r.Airport
		ac.State = r.State
		ac.Pos = r.AirportPos
		ac.N++
		byAirport[r.Airport] = ac
	}

	out := []AirportCount{}
	for _,ac := range byAirport { out = append(out, ac) }
	sort.Slice(out, func(i,j int) bool {
		if out[i].N != out[j].N { return out[i].N > out[j].N }
		return out[i].Airport < out[j].Airport
	})
	return out
}

// }}}
// {{{ ds.BoundingBox

// BoundingBox returns the box enclosing every airport position, or nil if
// no row had one.
func (ds *Dataset)BoundingBox() *geo.LatlongBox {
	var bbox *geo.LatlongBox
	for _,r := range ds.Records {
		if !r.HasPos { continue }
		if bbox == nil {
			tmp := r.AirportPos.BoxTo(r.AirportPos)
			bbox = &tmp
			continue
		}
		bbox.Enclose(r.AirportPos)
	}
	return bbox
}

// }}}

type Summary struct {
	TotalRecords   int
	BeforeCount    int
	DuringCount    int
	PctChange      float64 // (during-before)/before * 100

	UniqueStates   int
	UniqueSpecies  int
	UniqueAircraft int
	UniqueAirports int
}

// {{{ ds.Summarize

func (ds *Dataset)Summarize() Summary {
	s := Summary{
		TotalRecords:   len(ds.Records),
		UniqueStates:   ds.UniqueCount("STATE"),
		UniqueSpecies:  ds.UniqueCount("SPECIES"),
		UniqueAircraft: ds.UniqueCount("AIRCRAFT"),
		UniqueAirports: ds.UniqueCount("AIRPORT"),
	}

	for _,r := range ds.Records {
		if r.Pandemic() == BeforePandemic {
			s.BeforeCount++
		} else {
			s.DuringCount++
		}
	}

	if s.BeforeCount > 0 {
		s.PctChange = float64(s.DuringCount-s.BeforeCount) / float64(s.BeforeCount) * 100.0
	}

	return s
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
