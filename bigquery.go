package faadash

import(
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
)

// StrikeForBigQuery is a flattened strike record, designed for import into
// BigQuery for ad-hoc analysis beyond what the dashboard bakes in.
type StrikeForBigQuery struct {
	Date        string // "2006-01-02", or "" if the row had no date
	Year        int

	State       string
	Species     string
	Operator    string
	Aircraft    string
	Airport     string
	Phase       string
	TimeOfDay   string
	DamageLevel string
	Pandemic    string

	Latitude    float64
	Longitude   float64
	HasPos      bool
}

// {{{ r.ForBigQuery

func (r StrikeRecord)ForBigQuery() *StrikeForBigQuery {
	sbq := StrikeForBigQuery{
		Year:        r.Year,
		State:       r.State,
		Species:     r.Species,
		Operator:    r.Operator,
		Aircraft:    r.Aircraft,
		Airport:     r.Airport,
		Phase:       r.Phase,
		TimeOfDay:   r.TimeOfDay,
		DamageLevel: r.DamageLevel,
		Pandemic:    string(r.Pandemic()),
		Latitude:    r.AirportPos.Lat,
		Longitude:   r.AirportPos.Long,
		HasPos:      r.HasPos,
	}

	if !r.Date.IsZero() {
		sbq.Date = r.Date.Format("2006-01-02") // Same format as BQ's DATE() function
	}

	return &sbq
}

// }}}
// {{{ UploadToBigQuery

// UploadToBigQuery streams the dataset into project.dataset.table, creating
// the table (with an inferred schema) if needed. Returns rows written.
func UploadToBigQuery(ctx context.Context, project, dataset, table string, ds *Dataset) (int, error) {
	client,err := bigquery.NewClient(ctx, project)
	if err != nil {
		return 0, fmt.Errorf("creating bigquery client: %v", err)
	}
	defer client.Close()

	schema,err := bigquery.InferSchema(StrikeForBigQuery{})
	if err != nil {
		return 0, fmt.Errorf("inferring schema: %v", err)
	}

	tab := client.Dataset(dataset).Table(table)
	if _,err := tab.Metadata(ctx); err != nil {
		// Assume not-found; creation will fail loudly if it was something else
		if err := tab.Create(ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
			return 0, fmt.Errorf("creating table %s.%s: %v", dataset, table, err)
		}
	}

	ins := tab.Inserter()
	n := 0

	batch := []*StrikeForBigQuery{}
	flush := func() error {
		if len(batch) == 0 { return nil }
		if err := ins.Put(ctx, batch); err != nil { return err }
		n += len(batch)
		batch = batch[:0]
		return nil
	}

	for _,r := range ds.Records {
		batch = append(batch, r.ForBigQuery())
		if len(batch) >= 500 {
			if err := flush(); err != nil { return n, err }
		}
	}
	if err := flush(); err != nil { return n, err }

	return n, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
