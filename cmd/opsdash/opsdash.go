package main

// The flight-ops KPI dashboard, over synthetic daily data.
//
//  opsdash                              # writes FAA_Metrics.html
//  opsdash -days 180 -window 30         # generate 180 days, show the last 30
//  opsdash -cmd csv  -out metrics.csv
//  opsdash -cmd pdf  -out kpis.pdf
//  opsdash -cmd stats                   # KPI summary on stdout
//  opsdash -cmd serve -addr :8080       # live dashboard with downloads

import(
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/skypies/faadash/charts"
	"github.com/skypies/faadash/opsdata"
	"github.com/skypies/faadash/ui"
)

var(
	fCmd    string
	fDays   int
	fWindow int
	fSeed   int64
	fOut    string
	fTarget float64
	fAddr   string
)
func init() {
	flag.StringVar(&fCmd, "cmd", "html", "what to do: {html,csv,pdf,stats,serve}")
	flag.IntVar(&fDays, "days", 90, "how many days of data to generate")
	flag.IntVar(&fWindow, "window", 0, "only show the most recent N days (0: all)")
	flag.Int64Var(&fSeed, "seed", opsdata.DefaultSeed, "random seed for the generator")
	flag.StringVar(&fOut, "out", "", "output file ('' picks a default; '-' is stdout)")
	flag.Float64Var(&fTarget, "target", 80.0, "on-time performance target, as a percentage")
	flag.StringVar(&fAddr, "addr", ":8080", "listen address, for -cmd serve")
	flag.Parse()
}

// {{{ generate

func generate() []opsdata.DailyOps {
	days := opsdata.GenerateSampleData(fDays, fSeed, time.Now().UTC())
	if fWindow > 0 {
		days = opsdata.Tail(days, fWindow)
	}
	return days
}

func options() charts.Options {
	opt := charts.DefaultOptions()
	opt.TargetOnTimePct = fTarget
	return opt
}

// }}}
// {{{ outputFile

func outputFile(dflt string) *os.File {
	name := fOut
	if name == "" { name = dflt }
	if name == "-" { return os.Stdout }

	f,err := os.Create(name)
	if err != nil { log.Fatalf("create '%s': %v", name, err) }

	fmt.Printf("writing %s\n", name)
	return f
}

// }}}

// {{{ html, csv, pdf

func html() {
	f := outputFile("FAA_Metrics.html")
	defer f.Close()

	if err := ui.WriteOpsDashboard(f, generate(), options(), false); err != nil {
		log.Fatalf("render: %v", err)
	}
}

func csv() {
	f := outputFile("faa_metrics.csv")
	defer f.Close()

	if err := opsdata.OutputAsCSV(f, generate()); err != nil {
		log.Fatalf("csv: %v", err)
	}
}

func pdf() {
	f := outputFile("faa_kpis.pdf")
	defer f.Close()

	days := generate()
	if err := opsdata.OutputAsPDF(f, days, opsdata.CalculateKPIs(days)); err != nil {
		log.Fatalf("pdf: %v", err)
	}
}

// }}}
// {{{ stats

func stats() {
	days := generate()

	fmt.Printf("%d days of synthetic ops data (seed %d)\n\n", len(days), fSeed)
	fmt.Printf("%s\n", opsdata.CalculateKPIs(days))
	fmt.Printf("Avg delay histogram (minutes): %s\n", opsdata.DelayHistogram(days))
}

// }}}
// {{{ serve

func serve() {
	server := ui.OpsServer{Days:fDays, Seed:fSeed, Opt:options()}

	mux := http.NewServeMux()
	server.RegisterHandlers(mux)

	fmt.Printf("listening on %s\n", fAddr)
	log.Fatal(http.ListenAndServe(fAddr, mux))
}

// }}}

func main() {
	switch fCmd {
	case "html": html()
	case "csv": csv()
	case "pdf": pdf()
	case "stats": stats()
	case "serve": serve()
	default: log.Fatalf("command '%s' not known", fCmd)
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
