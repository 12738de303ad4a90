// Package export writes run results to files in the output directory.
package export

import (
	"os"
	"path/filepath"

	"github.com/n0mad-samurai/photo2geo/failure"
)

// BaseName is the stem shared by every export file.
const BaseName = "Photo2GeoResults"

var (
	CSVName    = BaseName + ".csv"
	KMLName    = BaseName + ".kml"
	SQLiteName = BaseName + ".db"
)

// writeFile creates dir/name and hands it to fill. The file is closed before
// writeFile returns and any error is an export failure naming the path.
func writeFile(op, dir, name string, fill func(f *os.File) error) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return path, failure.Wrap(failure.KindExport, op, "create failed", path, err)
	}
	if err := fill(f); err != nil {
		f.Close()
		return path, failure.Wrap(failure.KindExport, op, "write failed", path, err)
	}
	if err := f.Close(); err != nil {
		return path, failure.Wrap(failure.KindExport, op, "close failed", path, err)
	}
	return path, nil
}
