package ui

// HTTP handlers for the live ops dashboard (the strike dashboard is always
// generated as a static file).

import(
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/skypies/util/widget"

	"github.com/skypies/faadash/charts"
	"github.com/skypies/faadash/opsdata"
)

type OpsServer struct {
	Days int
	Seed int64
	Opt  charts.Options
}

func (s OpsServer)RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/", s.OpsHandler)
	mux.HandleFunc("/ops", s.OpsHandler)
	mux.HandleFunc("/ops/csv", s.CSVHandler)
	mux.HandleFunc("/ops/pdf", s.PDFHandler)
}

// {{{ s.daysFor

// Regenerates the dataset per request; ?days= and ?seed= override the
// server's defaults, so a bookmarked URL always shows the same data.
func (s OpsServer)daysFor(r *http.Request) []opsdata.DailyOps {
	numDays,seed := s.Days, s.Seed
	if v := widget.FormValueInt64(r, "days"); v > 0 { numDays = int(v) }
	if v := widget.FormValueInt64(r, "seed"); v > 0 { seed = v }
	return opsdata.GenerateSampleData(numDays, seed, time.Now().UTC())
}

// }}}
// {{{ s.OpsHandler

func (s OpsServer)OpsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/ops" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	opt := charts.FormValueOptions(r, s.Opt)
	if err := WriteOpsDashboard(w, s.daysFor(r), opt, true); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// }}}
// {{{ s.CSVHandler

func (s OpsServer)CSVHandler(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("faa_metrics_%s_%s.csv",
		time.Now().UTC().Format("20060102"), uuid.New().String()[:8])

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := opsdata.OutputAsCSV(w, s.daysFor(r)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// }}}
// {{{ s.PDFHandler

func (s OpsServer)PDFHandler(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("faa_kpis_%s_%s.pdf",
		time.Now().UTC().Format("20060102"), uuid.New().String()[:8])

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	days := s.daysFor(r)
	if err := opsdata.OutputAsPDF(w, days, opsdata.CalculateKPIs(days)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
