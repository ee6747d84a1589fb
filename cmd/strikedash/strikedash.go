package main

// Generates the static wildlife-strike dashboard from a FAA strike CSV.
//
//  strikedash -csv strikes.csv.gz -out FAA_Dashboard.html
//  strikedash -csv gs://mybucket/dumps/strikes_2019_2020.csv -out dash.html
//  strikedash -cmd ls -bucket mybucket -prefix dumps/
//  strikedash -cmd bq -csv strikes.csv -project myproj -dataset faa -table strikes
//  strikedash -cmd decode figure1.json figure2.json

import(
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/skypies/faadash"
	"github.com/skypies/faadash/charts"
	"github.com/skypies/faadash/plotly"
	"github.com/skypies/faadash/ui"
)

var(
	ctx = context.Background()

	fCmd      string
	fCSV      string
	fOut      string
	fConfig   string
	fTitle    string
	fYearFrom int
	fYearTo   int
	fTopN     int

	fBucket   string
	fPrefix   string

	fProject  string
	fDataset  string
	fTable    string
)
func init() {
	flag.StringVar(&fCmd, "cmd", "dashboard", "what to do: {dashboard,ls,bq,decode}")
	flag.StringVar(&fCSV, "csv", "", "strike CSV; a local path or gs://bucket/object (.gz ok)")
	flag.StringVar(&fOut, "out", "FAA_Dashboard.html", "output file for the dashboard")
	flag.StringVar(&fConfig, "config", "", "optional yaml settings file")
	flag.StringVar(&fTitle, "title", "FAA Wildlife Strike Analysis", "page title")
	flag.IntVar(&fYearFrom, "yearfrom", 0, "first year of data to keep (0: default)")
	flag.IntVar(&fYearTo, "yearto", 0, "last year of data to keep (0: default)")
	flag.IntVar(&fTopN, "topn", 0, "how many entries in the top-N charts (0: default)")

	flag.StringVar(&fBucket, "bucket", "", "GCS bucket, for -cmd ls")
	flag.StringVar(&fPrefix, "prefix", "", "GCS object prefix, for -cmd ls")

	flag.StringVar(&fProject, "project", "", "GCP project, for -cmd bq")
	flag.StringVar(&fDataset, "dataset", "faa", "BigQuery dataset, for -cmd bq")
	flag.StringVar(&fTable, "table", "strikes", "BigQuery table, for -cmd bq")

	flag.Parse()
}

// {{{ settings

// Settings come from defaults, then the yaml config, then flags; flags win.
func settings() (charts.Options, string, []string) {
	opt := charts.DefaultOptions()
	title := fTitle
	names := []string{}

	if fConfig != "" {
		cfg,err := charts.LoadConfig(fConfig)
		if err != nil { log.Fatalf("config: %v", err) }
		opt = cfg.ToOptions()
		if cfg.Title != "" { title = cfg.Title }
		names = cfg.Charts
	}

	if fYearFrom > 0 { opt.YearFrom = fYearFrom }
	if fYearTo > 0   { opt.YearTo = fYearTo }
	if fTopN > 0     { opt.TopN = fTopN }

	return opt, title, names
}

// }}}
// {{{ loadDataset

func loadDataset(opt charts.Options) *faadash.Dataset {
	if fCSV == "" {
		log.Fatal("need a -csv source")
	}

	rdr,err := faadash.OpenSource(ctx, fCSV)
	if err != nil { log.Fatalf("open '%s': %v", fCSV, err) }
	defer rdr.Close()

	ds := faadash.NewDataset()
	n,err := ds.ReadFrom(fCSV, rdr)
	if err != nil { log.Fatalf("read '%s': %v", fCSV, err) }

	fmt.Printf("loaded %d strike records from %s\n", n, fCSV)
	fmt.Print(ds.Log)

	ds = ds.FilterYears(opt.YearFrom, opt.YearTo)
	fmt.Printf("%d records in %d-%d\n", len(ds.Records), opt.YearFrom, opt.YearTo)

	return ds
}

// }}}

// {{{ dashboard

func dashboard() {
	opt,title,names := settings()
	ds := loadDataset(opt)

	f,err := os.Create(fOut)
	if err != nil { log.Fatalf("create '%s': %v", fOut, err) }
	defer f.Close()

	if err := ui.WriteStrikeDashboard(f, ds, opt, title, names); err != nil {
		log.Fatalf("render: %v", err)
	}

	fmt.Printf("Dashboard saved to: %s\n", fOut)
	fmt.Printf("Open this file in your browser to view the interactive dashboard.\n")
}

// }}}
// {{{ ls

func ls() {
	if fBucket == "" {
		log.Fatal("need a -bucket")
	}

	names,err := faadash.ListSources(ctx, fBucket, fPrefix)
	if err != nil { log.Fatal(err) }

	for _,name := range names {
		fmt.Printf("gs://%s/%s\n", fBucket, name)
	}
}

// }}}
// {{{ bq

func bq() {
	if fProject == "" {
		log.Fatal("need a -project")
	}

	opt,_,_ := settings()
	ds := loadDataset(opt)

	n,err := faadash.UploadToBigQuery(ctx, fProject, fDataset, fTable, ds)
	if err != nil { log.Fatalf("bigquery: %v", err) }

	fmt.Printf("uploaded %d rows to %s.%s.%s\n", n, fProject, fDataset, fTable)
}

// }}}
// {{{ decode

// Reads plotly figure JSON files (as saved by plotly.py, possibly with
// base64-packed data arrays), decodes them, and prints clean JSON.
func decode(files []string) {
	for _,file := range files {
		data,err := os.ReadFile(file)
		if err != nil { log.Fatalf("open '%s': %v", file, err) }

		node,err := plotly.UnmarshalNode(data)
		if err != nil { log.Fatalf("parse '%s': %v", file, err) }

		jsonStr,err := plotly.RenderJSON(node)
		if err != nil { log.Fatalf("decode '%s': %v", file, err) }

		fmt.Println(jsonStr)
	}
}

// }}}

func main() {
	switch fCmd {
	case "dashboard": dashboard()
	case "ls": ls()
	case "bq": bq()
	case "decode": decode(flag.Args())
	default: log.Fatalf("command '%s' not known", fCmd)
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
