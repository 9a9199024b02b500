// Command gensample writes a synthetic air-quality CSV in the source
// dataset's format: semicolon-delimited, comma decimals, DD/MM/YYYY dates,
// HH.MM.SS times, -200 sentinels for missing readings, and a trailing
// stray delimiter on every row. Useful for local runs and load testing
// without shipping the real dataset.
//
// Usage:
//
//	go run ./cmd/gensample -out data/sample.csv -days 7 -seed 1
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
)

var startDate = time.Date(2004, time.March, 10, 0, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output CSV path")
	days := flag.Int("days", 7, "number of days of hourly rows")
	seed := flag.Int64("seed", 1, "random seed, fixed for reproducible files")
	missing := flag.Float64("missing", 0.1, "probability a reading is the -200 sentinel")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if *days < 1 {
		return fmt.Errorf("-days must be at least 1")
	}
	if *missing < 0 || *missing > 1 {
		return fmt.Errorf("-missing must be in [0, 1]")
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close() //nolint:errcheck // flushed and synced below

	w := bufio.NewWriter(f)
	rng := rand.New(rand.NewSource(*seed))

	// Header with the stray trailing delimiters the real file carries.
	header := append([]string{domain.ColDate, domain.ColTime}, domain.NumericVariables...)
	fmt.Fprintf(w, "%s;;\n", strings.Join(header, ";"))

	rows := 0
	for day := 0; day < *days; day++ {
		date := startDate.AddDate(0, 0, day)
		for hour := 0; hour < 24; hour++ {
			cells := []string{date.Format("02/01/2006"), fmt.Sprintf("%02d.00.00", hour)}
			for _, col := range domain.NumericVariables {
				cells = append(cells, sampleCell(rng, col, hour, *missing))
			}
			fmt.Fprintf(w, "%s;;\n", strings.Join(cells, ";"))
			rows++
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Printf("wrote %s: %d rows", *out, rows)
	return nil
}

// sampleCell produces one comma-decimal reading with a plausible diurnal
// swing, or the sentinel.
func sampleCell(rng *rand.Rand, col string, hour int, missing float64) string {
	if rng.Float64() < missing {
		return "-200"
	}

	base, amplitude := rangeFor(col)
	// Peak mid-afternoon, trough overnight.
	swing := amplitude * (0.5 - 0.5*float64(abs(hour-15))/15.0)
	v := base + swing + rng.NormFloat64()*amplitude*0.1

	return strings.ReplaceAll(fmt.Sprintf("%.1f", v), ".", ",")
}

func rangeFor(col string) (base, amplitude float64) {
	switch col {
	case domain.VarCO:
		return 1.5, 2.0
	case domain.VarTemperature:
		return 12.0, 10.0
	case domain.VarRelHumidity:
		return 50.0, 25.0
	case domain.VarAbsHumidity:
		return 0.9, 0.4
	default:
		// Sensor response columns sit in the hundreds-to-thousands range.
		return 900.0, 400.0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
