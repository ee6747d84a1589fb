package faadash

import(
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/skypies/geo"
)

// {{{ notes

/* The cleaned wildlife-strike data comes as CSV, sometimes gzip'ed. The
column set varies a little between exports, so we turn each row into a map
from header name to value and pick out what we need.

The columns we use:

  YEAR, DATE, STATE, SPECIES, OPERATOR, AIRCRAFT, AIRPORT,
  PHASE_OF_FLIGHT, TIME_OF_DAY, DAMAGE_LEVEL,
  AIRPORT_LATITUDE, AIRPORT_LONGITUDE

DATE formats seen in the wild: "2019-07-04", "7/4/2019", and datetimes with
a trailing " 00:00:00".

 */

// }}}

type RowReader struct {
	csvreader *csv.Reader
	headers  []string
}

func NewRowReader(ioreader io.Reader) *RowReader {
	rdr := RowReader{
		csvreader: csv.NewReader(ioreader),
	}
	rdr.csvreader.FieldsPerRecord = -1
	rdr.headers,_ = rdr.csvreader.Read() // Discard err, we'll get it when we try to get next row
	return &rdr
}

// {{{ rdr.Read()

func (r *RowReader)Read() (Row,error) {
	m := map[string]string{}

	vals,err := r.csvreader.Read()
	if err != nil {
		return m,err
	} else if len(r.headers) != len(vals) {
		return m, fmt.Errorf("header/val mismatch (%d/%d)", len(r.headers), len(vals))
	}

	for i,_ := range vals {
		m[r.headers[i]] = vals[i]
	}

	return m,nil
}

// }}}

type Row map[string]string

// {{{ row.ToStrikeRecord

var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/2006",
	"1/2/2006 15:04",
}

func (r Row)ToStrikeRecord() StrikeRecord {
	rec := StrikeRecord{
		State:       r["STATE"],
		Species:     r["SPECIES"],
		Operator:    r["OPERATOR"],
		Aircraft:    r["AIRCRAFT"],
		Airport:     r["AIRPORT"],
		Phase:       r["PHASE_OF_FLIGHT"],
		TimeOfDay:   r["TIME_OF_DAY"],
		DamageLevel: r["DAMAGE_LEVEL"],
	}

	rec.Year,_ = strconv.Atoi(r["YEAR"])

	for _,format := range dateFormats {
		if t,err := time.Parse(format, r["DATE"]); err == nil {
			rec.Date = t
			break
		}
	}
	if rec.Year == 0 && !rec.Date.IsZero() {
		rec.Year = rec.Date.Year()
	}

	if lat,err := strconv.ParseFloat(r["AIRPORT_LATITUDE"], 64); err == nil {
		if long,err := strconv.ParseFloat(r["AIRPORT_LONGITUDE"], 64); err == nil {
			rec.AirportPos = geo.Latlong{lat,long}
			rec.HasPos = true
		}
	}

	return rec
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
