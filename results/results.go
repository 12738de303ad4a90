// Package results accumulates the per-file outcomes of a geotagging run.
package results

import (
	"strconv"
	"strings"
)

// Bucket names a classification that a file can be flagged with.
type Bucket string

const (
	NotImage        Bucket = "not-an-image"
	NoMetadata      Bucket = "no-metadata"
	NoCaptureDate   Bucket = "no-capture-date"
	NoGPSBlock      Bucket = "no-gps-block"
	ZeroCoordinate  Bucket = "zero-coordinate"
	SecondaryMarker Bucket = "contains-secondary-marker"
)

// AllBuckets lists every bucket in display order.
var AllBuckets = []Bucket{NotImage, NoMetadata, NoCaptureDate, NoGPSBlock, ZeroCoordinate, SecondaryMarker}

// Record is one geotagged image.
type Record struct {
	Name      string
	LocalDate string // YYYY-MM-DD or empty
	LocalTime string // HH:MM:SS or empty
	Latitude  float64
	Longitude float64
}

// Header is the column header shared by the console table and the CSV export.
var Header = []string{"Image Name", "Local Date", "Local Time", "Latitude", "Longitude"}

// Row renders r in Header column order.
func (r Record) Row() []string {
	return []string{r.Name, r.LocalDate, r.LocalTime, FormatCoord(r.Latitude), FormatCoord(r.Longitude)}
}

// When joins date and time as "<date>T<time>".
func (r Record) When() string {
	return r.LocalDate + "T" + r.LocalTime
}

// FormatCoord renders a decimal degree with the shortest exact representation,
// always keeping a decimal point ("0.0", "40.446111").
func FormatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// Outcome is what processing one file produced: an optional record and the
// buckets the file belongs to.
type Outcome struct {
	Name   string
	Record *Record
	Flags  []Bucket
}

// Flag adds b to the outcome's buckets.
func (o *Outcome) Flag(b Bucket) {
	o.Flags = append(o.Flags, b)
}

// Has reports whether the outcome is flagged with b.
func (o Outcome) Has(b Bucket) bool {
	for _, f := range o.Flags {
		if f == b {
			return true
		}
	}
	return false
}

// Aggregate holds the records and bucket memberships of a run in encounter
// order. Nothing is deduplicated.
type Aggregate struct {
	records []Record
	buckets map[Bucket][]string
}

func New() *Aggregate {
	return &Aggregate{buckets: make(map[Bucket][]string, len(AllBuckets))}
}

// Absorb appends the outcome's record, if any, and its bucket flags.
func (a *Aggregate) Absorb(o Outcome) {
	if o.Record != nil {
		a.records = append(a.records, *o.Record)
	}
	for _, b := range o.Flags {
		a.Flag(b, o.Name)
	}
}

func (a *Aggregate) Flag(b Bucket, name string) {
	a.buckets[b] = append(a.buckets[b], name)
}

// Records returns a copy of the records in aggregation order.
func (a *Aggregate) Records() []Record {
	out := make([]Record, len(a.records))
	copy(out, a.records)
	return out
}

// Bucket returns a copy of the names flagged with b in flag order.
func (a *Aggregate) Bucket(b Bucket) []string {
	out := make([]string, len(a.buckets[b]))
	copy(out, a.buckets[b])
	return out
}

func (a *Aggregate) Len() int {
	return len(a.records)
}
