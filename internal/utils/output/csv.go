package output

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/law-makers/appraiser/internal/index"
)

var runHeaders = []string{
	"extracted_at", "parcel_id", "county", "status", "files", "sales", "owners", "duration_ms", "dir", "error", "run_id",
}

// WriteRunsCSV writes run-log rows with a header line.
func WriteRunsCSV(w io.Writer, runs []index.Run) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(runHeaders); err != nil {
		return err
	}
	for _, r := range runs {
		row := []string{
			r.ExtractedAt.UTC().Format(time.RFC3339),
			r.ParcelID,
			r.County,
			r.Status,
			strconv.Itoa(r.Files),
			strconv.Itoa(r.Sales),
			strconv.Itoa(r.Owners),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
			r.Dir,
			r.Error,
			r.RunID,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
