package opsdata

import(
	"encoding/csv"
	"fmt"
	"io"
)

// Column set matches the dashboard's raw-data table.
var csvHeaders = []string{
	"date",
	"total_flights", "on_time_flights", "delayed_flights",
	"cancelled_flights", "diverted_flights",
	"avg_delay_minutes",
	"weather_delays", "carrier_delays", "nas_delays",
	"security_delays", "late_aircraft_delays",
	"on_time_percentage", "cancellation_rate", "delay_rate",
}

// {{{ OutputAsCSV

func OutputAsCSV(w io.Writer, days []DailyOps) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Write(csvHeaders)

	for _,d := range days {
		csvWriter.Write([]string{
			d.Date.Format("2006-01-02"),
			fmt.Sprintf("%d", d.TotalFlights),
			fmt.Sprintf("%d", d.OnTimeFlights),
			fmt.Sprintf("%d", d.DelayedFlights),
			fmt.Sprintf("%d", d.CancelledFlights),
			fmt.Sprintf("%d", d.DivertedFlights),
			fmt.Sprintf("%.2f", d.AvgDelayMinutes),
			fmt.Sprintf("%d", d.WeatherDelays),
			fmt.Sprintf("%d", d.CarrierDelays),
			fmt.Sprintf("%d", d.NASDelays),
			fmt.Sprintf("%d", d.SecurityDelays),
			fmt.Sprintf("%d", d.LateAircraftDelays),
			fmt.Sprintf("%.2f", d.OnTimePct()),
			fmt.Sprintf("%.2f", d.CancellationRate()),
			fmt.Sprintf("%.2f", d.DelayRate()),
		})
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
