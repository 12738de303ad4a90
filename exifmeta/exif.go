// Package exifmeta gives named, typed access to the embedded EXIF fields the
// geotagging pipeline needs, hiding tag numbers and decoder quirks.
package exifmeta

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	"github.com/rwcarlsen/goexif/tiff"
)

func init() {
	// Register manufacturer-specific note parsers so some vendor fields decode correctly.
	exif.RegisterParsers(mknote.All...)
}

// DMS is a degrees/minutes/seconds triple. A component whose rational has a
// zero denominator is NaN.
type DMS struct {
	Degrees float64
	Minutes float64
	Seconds float64
}

// AbsentDMS is the triple reported for a coordinate that carries no value.
func AbsentDMS() DMS {
	nan := math.NaN()
	return DMS{Degrees: nan, Minutes: nan, Seconds: nan}
}

// IsAbsent reports whether every component is NaN.
func (d DMS) IsAbsent() bool {
	return math.IsNaN(d.Degrees) && math.IsNaN(d.Minutes) && math.IsNaN(d.Seconds)
}

// GPSBlock holds the four GPS sub-IFD values used for positioning.
type GPSBlock struct {
	LatitudeRef  string
	Latitude     DMS
	LongitudeRef string
	Longitude    DMS
}

// Reading is the decoded metadata of one image.
type Reading interface {
	// CaptureTime returns the raw "YYYY:MM:DD HH:MM:SS" timestamp.
	CaptureTime() (string, bool)
	// GPS returns the GPS block if present. err is non-nil only when a
	// present DMS value is not a usable rational triple.
	GPS() (block *GPSBlock, ok bool, err error)
}

// Read decodes the EXIF structure in raw. Decoding failures produce a Reading
// with no timestamp and no GPS block.
func Read(raw []byte) Reading {
	x, err := exif.Decode(bytes.NewReader(raw))
	if (err != nil && exif.IsCriticalError(err)) || x == nil {
		return empty{}
	}
	return &exifReading{x: x}
}

type empty struct{}

func (empty) CaptureTime() (string, bool) { return "", false }
func (empty) GPS() (*GPSBlock, bool, error) { return nil, false, nil }

type exifReading struct {
	x *exif.Exif
}

var gpsPositionFields = []exif.FieldName{
	exif.GPSLatitudeRef,
	exif.GPSLatitude,
	exif.GPSLongitudeRef,
	exif.GPSLongitude,
}

func (r *exifReading) CaptureTime() (string, bool) {
	for _, name := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTime} {
		if s, ok := r.stringField(name); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

func (r *exifReading) GPS() (*GPSBlock, bool, error) {
	if _, err := r.x.Get(exif.GPSInfoIFDPointer); err != nil {
		return nil, false, nil
	}
	found := false
	for _, name := range gpsPositionFields {
		if _, err := r.x.Get(name); err == nil {
			found = true
			break
		}
	}
	if !found {
		return nil, false, nil
	}

	lat, err := r.dmsField(exif.GPSLatitude)
	if err != nil {
		return nil, true, err
	}
	lon, err := r.dmsField(exif.GPSLongitude)
	if err != nil {
		return nil, true, err
	}
	latRef, _ := r.stringField(exif.GPSLatitudeRef)
	lonRef, _ := r.stringField(exif.GPSLongitudeRef)

	return &GPSBlock{
		LatitudeRef:  latRef,
		Latitude:     lat,
		LongitudeRef: lonRef,
		Longitude:    lon,
	}, true, nil
}

func (r *exifReading) stringField(name exif.FieldName) (string, bool) {
	tag, err := r.x.Get(name)
	if err != nil {
		return "", false
	}
	s, err := tag.StringVal()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(strings.TrimRight(s, "\x00")), true
}

func (r *exifReading) dmsField(name exif.FieldName) (DMS, error) {
	tag, err := r.x.Get(name)
	if err != nil {
		return AbsentDMS(), nil
	}
	return tagDMS(name, tag)
}

func tagDMS(name exif.FieldName, tag *tiff.Tag) (DMS, error) {
	if tag.Count < 3 {
		return DMS{}, fmt.Errorf("%s has %d components, want 3", name, tag.Count)
	}
	var vals [3]float64
	for i := range vals {
		num, den, err := tag.Rat2(i)
		if err != nil {
			return DMS{}, fmt.Errorf("%s component %d: %w", name, i, err)
		}
		if den == 0 {
			vals[i] = math.NaN()
			continue
		}
		vals[i] = float64(num) / float64(den)
	}
	return DMS{Degrees: vals[0], Minutes: vals[1], Seconds: vals[2]}, nil
}
