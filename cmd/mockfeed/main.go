// Command mockfeed serves a synthetic FIRMS-style active-fire CSV so the
// snapshot job can be exercised without hitting the real feed. Rows are
// split between today and yesterday to exercise the date filter.
//
// Usage:
//
//	go run ./cmd/mockfeed -addr :9091 -rows 200
//	FIRMS_BASE_URL=http://localhost:9091 go run ./cmd/snapshot
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/cinderwatch/firms-snapshot/internal/domain"
)

func main() {
	addr := flag.String("addr", ":9091", "listen address")
	rows := flag.Int("rows", 200, "number of detection rows to generate")
	seed := flag.Int64("seed", 1, "random seed for reproducible fixtures")
	flag.Parse()

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		table := generate(*rows, *seed)
		w.Header().Set("Content-Type", "text/csv")
		if err := table.WriteCSV(w); err != nil {
			log.Printf("write fixture: %v", err)
			return
		}
		log.Printf("served %d rows to %s (%s)", table.Len(), r.RemoteAddr, r.URL.Path)
	})

	log.Printf("mock FIRMS feed listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

// generate builds a table in the MODIS column layout. Roughly half the rows
// carry today's acq_date, the rest yesterday's, so a filtered fetch returns
// a non-trivial subset.
func generate(n int, seed int64) domain.Table {
	rng := rand.New(rand.NewSource(seed))
	now := time.Now()
	dates := []string{
		now.Format(domain.DateLayout),
		now.AddDate(0, 0, -1).Format(domain.DateLayout),
	}

	table := domain.Table{
		Columns: []string{
			"latitude", "longitude", "brightness", "scan", "track",
			"acq_date", "acq_time", "satellite", "confidence", "version", "frp",
		},
	}

	for i := 0; i < n; i++ {
		lat := rng.Float64()*160 - 80
		lon := rng.Float64()*360 - 180
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%.4f", lat),
			fmt.Sprintf("%.4f", lon),
			fmt.Sprintf("%.1f", 300+rng.Float64()*100),
			fmt.Sprintf("%.1f", 1+rng.Float64()),
			fmt.Sprintf("%.1f", 1+rng.Float64()),
			dates[i%len(dates)],
			fmt.Sprintf("%02d%02d", rng.Intn(24), rng.Intn(60)),
			"T",
			fmt.Sprintf("%d", rng.Intn(101)),
			"6.1",
			fmt.Sprintf("%.1f", rng.Float64()*500),
		})
	}

	return table
}
