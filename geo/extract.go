// Package geo turns the embedded metadata of an image into a geotagged record.
package geo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/n0mad-samurai/photo2geo/exifmeta"
	"github.com/n0mad-samurai/photo2geo/failure"
	"github.com/n0mad-samurai/photo2geo/results"
)

// Extractor produces one outcome per image file.
type Extractor struct {
	// Read decodes raw file bytes into typed metadata. Defaults to exifmeta.Read.
	Read func(raw []byte) exifmeta.Reading
	Log  logrus.FieldLogger
}

// NewExtractor returns an Extractor backed by the EXIF reader.
func NewExtractor(log logrus.FieldLogger) *Extractor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Extractor{Read: exifmeta.Read, Log: log}
}

// Extract processes root/name. The only error it returns is a gps_data
// failure; every other anomaly is reported as a bucket flag on the outcome.
func (e *Extractor) Extract(root, name string) (results.Outcome, error) {
	path := filepath.Join(root, name)
	out := results.Outcome{Name: name}

	raw, err := os.ReadFile(path)
	if err != nil {
		e.Log.WithField("file", path).WithError(err).Warn("could not re-read image")
		out.Flag(results.NoMetadata)
		return out, nil
	}

	if !exifmeta.HasContainerMarker(raw) {
		out.Flag(results.NoMetadata)
		e.markSecondary(&out, raw)
		return out, nil
	}

	rec := &results.Record{Name: name}
	meta := e.Read(raw)

	if ts, ok := meta.CaptureTime(); ok {
		date, clock, ok := SplitTimestamp(ts)
		if ok {
			rec.LocalDate, rec.LocalTime = date, clock
		} else {
			e.Log.WithField("file", path).WithField("timestamp", ts).Warn("unrecognised capture timestamp")
			out.Flag(results.NoCaptureDate)
		}
	} else {
		out.Flag(results.NoCaptureDate)
	}

	block, ok, err := meta.GPS()
	if err != nil {
		return out, failure.Wrap(failure.KindGPSData, "extract", "GPS data error", path, err)
	}
	if !ok {
		out.Flag(results.NoGPSBlock)
	} else {
		if rec.Latitude, err = ToDecimal(block.Latitude, block.LatitudeRef, South); err != nil {
			return out, failure.Wrap(failure.KindGPSData, "extract", "GPS data error", path, err)
		}
		if rec.Longitude, err = ToDecimal(block.Longitude, block.LongitudeRef, West); err != nil {
			return out, failure.Wrap(failure.KindGPSData, "extract", "GPS data error", path, err)
		}
	}

	if rec.Latitude == 0 {
		out.Flag(results.ZeroCoordinate)
	}
	e.markSecondary(&out, raw)

	out.Record = rec
	e.Log.WithFields(logrus.Fields{
		"file":  name,
		"lat":   rec.Latitude,
		"lon":   rec.Longitude,
		"flags": out.Flags,
	}).Debug("extracted")
	return out, nil
}

func (e *Extractor) markSecondary(out *results.Outcome, raw []byte) {
	if exifmeta.HasSecondaryMarker(raw) {
		out.Flag(results.SecondaryMarker)
	}
}

// SplitTimestamp turns "YYYY:MM:DD HH:MM:SS" into ("YYYY-MM-DD", "HH:MM:SS").
// ok is false unless the value has exactly one space separator.
func SplitTimestamp(ts string) (date, clock string, ok bool) {
	date, clock, found := strings.Cut(ts, " ")
	if !found || strings.Contains(clock, " ") {
		return "", "", false
	}
	return strings.ReplaceAll(date, ":", "-"), clock, true
}
