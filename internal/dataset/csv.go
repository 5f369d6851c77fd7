// Package dataset loads the seed reviews the store starts from. One CSV row
// per review; a load failure is fatal to process startup.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"review_radar/internal/domain"
)

// Load reads reviews from the CSV file at path. The header row maps columns
// to fields (ReviewId, ReviewBody, Location, Timestamp, matched
// case-insensitively). Rows missing an id get a generated one; seeded rows
// are otherwise treated exactly like submitted reviews downstream.
func Load(path string) ([]domain.Review, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) ([]domain.Review, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	bodyIdx, ok := cols["reviewbody"]
	if !ok {
		return nil, fmt.Errorf("dataset missing ReviewBody column")
	}
	locIdx, ok := cols["location"]
	if !ok {
		return nil, fmt.Errorf("dataset missing Location column")
	}
	tsIdx, ok := cols["timestamp"]
	if !ok {
		return nil, fmt.Errorf("dataset missing Timestamp column")
	}
	idIdx, hasID := cols["reviewid"]

	var out []domain.Review
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset line %d: %w", line, err)
		}

		ts, err := time.ParseInLocation(domain.TimestampLayout, rec[tsIdx], time.Local)
		if err != nil {
			return nil, fmt.Errorf("dataset line %d: bad timestamp %q: %w", line, rec[tsIdx], err)
		}

		id := ""
		if hasID {
			id = rec[idIdx]
		}
		if id == "" {
			id = uuid.NewString()
		}

		out = append(out, domain.Review{
			ID:        id,
			Body:      rec[bodyIdx],
			Location:  rec[locIdx],
			Timestamp: ts,
		})
	}
	return out, nil
}
