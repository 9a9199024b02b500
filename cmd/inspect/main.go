// Command inspect loads and cleans an air-quality CSV and prints its
// summary and per-variable statistics as JSON. It exercises the same
// loader and cleaner as the dashboard, so its output matches what the API
// would serve for the same file.
//
// Usage:
//
//	go run ./cmd/inspect -csv data/AirQualityUCI.csv
//	go run ./cmd/inspect -csv data/AirQualityUCI.csv -daily
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/couchcryptid/air-quality-dashboard/internal/adapter/csvfile"
	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
)

type report struct {
	Summary domain.Summary          `json:"summary"`
	Metrics map[string]domain.Stats `json:"metrics"`
	Daily   []domain.DailyRow       `json:"daily_averages,omitempty"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	csvPath := flag.String("csv", "", "path to the semicolon-delimited dataset")
	withDaily := flag.Bool("daily", false, "include per-day averages in the output")
	flag.Parse()

	if *csvPath == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -csv")
	}

	// Loader log lines would interleave with the JSON output.
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	raw, err := csvfile.NewLoader(quiet).Load(*csvPath)
	if err != nil {
		return err
	}
	cleaned := domain.Clean(raw)

	out := report{
		Summary: domain.Summarize(cleaned),
		Metrics: domain.VariableMetrics(cleaned),
	}
	if *withDaily {
		out.Daily = domain.DailyAverages(cleaned)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
