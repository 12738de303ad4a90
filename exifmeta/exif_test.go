package exifmeta

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n0mad-samurai/photo2geo/exiftest"
)

func TestRead_CaptureTimeAndGPS(t *testing.T) {
	raw := exiftest.JPEG(t, exiftest.Options{
		DateTime: "2023:03:15 10:20:00",
		GPS: &exiftest.GPS{
			LatitudeRef:  "N",
			Latitude:     exiftest.DMS(40, 26, 46),
			LongitudeRef: "W",
			Longitude:    exiftest.DMS(79, 58, 56),
		},
	})

	r := Read(raw)

	ts, ok := r.CaptureTime()
	require.True(t, ok)
	assert.Equal(t, "2023:03:15 10:20:00", ts)

	block, ok, err := r.GPS()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "N", block.LatitudeRef)
	assert.Equal(t, "W", block.LongitudeRef)
	assert.Equal(t, DMS{Degrees: 40, Minutes: 26, Seconds: 46}, block.Latitude)
	assert.Equal(t, DMS{Degrees: 79, Minutes: 58, Seconds: 56}, block.Longitude)
}

func TestRead_FractionalSeconds(t *testing.T) {
	raw := exiftest.JPEG(t, exiftest.Options{
		GPS: &exiftest.GPS{
			LatitudeRef:  "S",
			Latitude:     [3]exiftest.Rational{{33, 1}, {51, 1}, {5432, 100}},
			LongitudeRef: "E",
			Longitude:    [3]exiftest.Rational{{151, 1}, {12, 1}, {3, 4}},
		},
	})

	block, ok, err := Read(raw).GPS()
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 54.32, block.Latitude.Seconds, 1e-12)
	assert.InDelta(t, 0.75, block.Longitude.Seconds, 1e-12)
}

func TestRead_NoGPSBlock(t *testing.T) {
	r := Read(exiftest.JPEG(t, exiftest.Options{DateTime: "2021:01:02 03:04:05"}))

	block, ok, err := r.GPS()
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, block)
}

func TestRead_GPSBlockWithoutPosition(t *testing.T) {
	r := Read(exiftest.JPEG(t, exiftest.Options{GPS: &exiftest.GPS{OnlyAltitude: true}}))

	_, ok, err := r.GPS()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRead_ZeroDenominatorIsNaN(t *testing.T) {
	raw := exiftest.JPEG(t, exiftest.Options{
		GPS: &exiftest.GPS{
			LatitudeRef:  "N",
			Latitude:     exiftest.NaN(),
			LongitudeRef: "E",
			Longitude:    [3]exiftest.Rational{{10, 1}, {0, 0}, {0, 1}},
		},
	})

	block, ok, err := Read(raw).GPS()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, block.Latitude.IsAbsent())
	assert.False(t, block.Longitude.IsAbsent())
	assert.True(t, math.IsNaN(block.Longitude.Minutes))
}

func TestRead_MalformedLatitude(t *testing.T) {
	raw := exiftest.JPEG(t, exiftest.Options{
		GPS: &exiftest.GPS{
			LatitudeRef:       "N",
			MalformedLatitude: "forty degrees",
			LongitudeRef:      "E",
			Longitude:         exiftest.DMS(1, 2, 3),
		},
	})

	_, ok, err := Read(raw).GPS()
	assert.True(t, ok)
	assert.Error(t, err)
}

func TestRead_UndecodableMetadataIsEmpty(t *testing.T) {
	r := Read(exiftest.PNG(t))

	_, ok := r.CaptureTime()
	assert.False(t, ok)
	_, ok, err := r.GPS()
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestAbsentDMS(t *testing.T) {
	assert.True(t, AbsentDMS().IsAbsent())
	assert.False(t, DMS{Degrees: math.NaN(), Minutes: 1, Seconds: math.NaN()}.IsAbsent())
	assert.False(t, DMS{}.IsAbsent())
}
