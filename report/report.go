// Package report prints run results to the console.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/n0mad-samurai/photo2geo/results"
)

// Padding is added to the widest value of each table column.
const Padding = 3

// DisplayWidth is the line width used when columnizing bucket lists.
const DisplayWidth = 40

var headings = map[results.Bucket]string{
	results.NotImage:        "These were not recognized as image files:",
	results.NoMetadata:      "These image files did not contain EXIF data:",
	results.NoCaptureDate:   "These image files contained EXIF data but no capture date:",
	results.NoGPSBlock:      "These image files contained EXIF data but no GPS data:",
	results.ZeroCoordinate:  `These image files contained EXIF GPS lat/lon data that was "0, 0, 0":`,
	results.SecondaryMarker: "These image files may contain other comments:",
}

// Table prints the records as a left-aligned table under the shared header.
func Table(w io.Writer, records []results.Record) {
	fmt.Fprintln(w, "\nThese are the results:")

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, results.Header)
	for _, r := range records {
		rows = append(rows, r.Row())
	}

	widths := make([]int, len(results.Header))
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.Reset()
		for i, cell := range row {
			fmt.Fprintf(&b, "%-*s", widths[i]+Padding, cell)
		}
		fmt.Fprintln(w, b.String())
	}
}

// Buckets prints every classification bucket under its heading.
func Buckets(w io.Writer, agg *results.Aggregate) {
	for _, bucket := range results.AllBuckets {
		fmt.Fprintln(w, "\n"+headings[bucket])
		Columnize(w, agg.Bucket(bucket), DisplayWidth)
	}
}

// Columnize prints names in as few rows as fit within width, filling columns
// top to bottom with two spaces between columns.
func Columnize(w io.Writer, names []string, width int) {
	size := len(names)
	switch size {
	case 0:
		fmt.Fprintln(w, "<empty>")
		return
	case 1:
		fmt.Fprintln(w, names[0])
		return
	}

	nrows, ncols := size, 1
	colWidths := []int{0}
	for rows := 1; rows < size; rows++ {
		cols := (size + rows - 1) / rows
		widths := make([]int, 0, cols)
		total := -2
		for col := 0; col < cols; col++ {
			colWidth := 0
			for row := 0; row < rows; row++ {
				i := row + rows*col
				if i >= size {
					break
				}
				if len(names[i]) > colWidth {
					colWidth = len(names[i])
				}
			}
			widths = append(widths, colWidth)
			total += colWidth + 2
			if total > width {
				break
			}
		}
		if total <= width {
			nrows, ncols, colWidths = rows, cols, widths
			break
		}
	}

	for row := 0; row < nrows; row++ {
		texts := make([]string, 0, ncols)
		for col := 0; col < ncols; col++ {
			i := row + nrows*col
			if i >= size {
				texts = append(texts, "")
			} else {
				texts = append(texts, names[i])
			}
		}
		for len(texts) > 0 && texts[len(texts)-1] == "" {
			texts = texts[:len(texts)-1]
		}
		for i := range texts {
			texts[i] = fmt.Sprintf("%-*s", colWidths[i], texts[i])
		}
		fmt.Fprintln(w, strings.Join(texts, "  "))
	}
}
