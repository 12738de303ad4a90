package export

import (
	"encoding/csv"
	"os"

	"github.com/n0mad-samurai/photo2geo/results"
)

// WriteCSV writes the header and one row per record to dir/Photo2GeoResults.csv.
func WriteCSV(dir string, records []results.Record) (string, error) {
	return writeFile("csv", dir, CSVName, func(f *os.File) error {
		w := csv.NewWriter(f)
		if err := w.Write(results.Header); err != nil {
			return err
		}
		for _, r := range records {
			if err := w.Write(r.Row()); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
}
