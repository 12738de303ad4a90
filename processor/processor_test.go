package processor

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n0mad-samurai/photo2geo/exiftest"
	"github.com/n0mad-samurai/photo2geo/failure"
	"github.com/n0mad-samurai/photo2geo/results"
)

func newTestProcessor() *Processor {
	log, _ := test.NewNullLogger()
	return New(log)
}

func TestRun_GeotaggedJPEG(t *testing.T) {
	root := t.TempDir()
	exiftest.Write(t, root, "pitt.jpg", exiftest.JPEG(t, exiftest.Options{
		DateTime: "2023:03:15 10:20:00",
		GPS: &exiftest.GPS{
			LatitudeRef:  "N",
			Latitude:     exiftest.DMS(40, 26, 46),
			LongitudeRef: "W",
			Longitude:    exiftest.DMS(79, 58, 56),
		},
	}))

	agg, err := newTestProcessor().Run(root)
	require.NoError(t, err)
	assert.Equal(t, []results.Record{{
		Name:      "pitt.jpg",
		LocalDate: "2023-03-15",
		LocalTime: "10:20:00",
		Latitude:  40.446111,
		Longitude: -79.982222,
	}}, agg.Records())
	for _, b := range results.AllBuckets {
		assert.Empty(t, agg.Bucket(b), b)
	}
}

func TestRun_PNGWithoutMetadata(t *testing.T) {
	root := t.TempDir()
	exiftest.Write(t, root, "plain.png", exiftest.PNG(t))

	agg, err := newTestProcessor().Run(root)
	require.NoError(t, err)
	assert.Empty(t, agg.Records())
	assert.Equal(t, []string{"plain.png"}, agg.Bucket(results.NoMetadata))
}

func TestRun_EmptyDirectory(t *testing.T) {
	root := t.TempDir()

	agg, err := newTestProcessor().Run(root)
	require.Error(t, err)
	assert.Nil(t, agg)
	assert.True(t, failure.IsKind(err, failure.KindEmptyDir))
}

func TestRun_MalformedGPSAborts(t *testing.T) {
	root := t.TempDir()
	exiftest.Write(t, root, "a.jpg", exiftest.JPEG(t, exiftest.Options{DateTime: "2023:03:15 10:20:00"}))
	exiftest.Write(t, root, "b.jpg", exiftest.JPEG(t, exiftest.Options{
		GPS: &exiftest.GPS{
			LatitudeRef:       "N",
			MalformedLatitude: "north-ish",
			LongitudeRef:      "E",
			Longitude:         exiftest.DMS(1, 0, 0),
		},
	}))

	agg, err := newTestProcessor().Run(root)
	require.Error(t, err)
	assert.Nil(t, agg)
	assert.True(t, failure.IsKind(err, failure.KindGPSData))
}

func TestRun_MixedDirectory(t *testing.T) {
	root := t.TempDir()
	exiftest.Write(t, root, "1-nogps.jpg", exiftest.JPEG(t, exiftest.Options{DateTime: "2021:07:04 12:00:00"}))
	exiftest.Write(t, root, "2-notes.txt", []byte("shopping list"))
	exiftest.Write(t, root, "3-south.jpg", exiftest.JPEG(t, exiftest.Options{
		GPS: &exiftest.GPS{
			LatitudeRef:  "S",
			Latitude:     exiftest.DMS(22, 54, 30),
			LongitudeRef: "W",
			Longitude:    exiftest.DMS(43, 11, 47),
		},
		Comment: "File from phone",
	}))
	exiftest.Write(t, root, "4-plain.png", exiftest.PNG(t))

	agg, err := newTestProcessor().Run(root)
	require.NoError(t, err)

	records := agg.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "1-nogps.jpg", records[0].Name)
	assert.Equal(t, 0.0, records[0].Latitude)
	assert.Equal(t, "3-south.jpg", records[1].Name)
	assert.Equal(t, -22.908333, records[1].Latitude)
	assert.Equal(t, -43.196389, records[1].Longitude)

	assert.Equal(t, []string{"2-notes.txt"}, agg.Bucket(results.NotImage))
	assert.Equal(t, []string{"4-plain.png"}, agg.Bucket(results.NoMetadata))
	assert.Equal(t, []string{"3-south.jpg"}, agg.Bucket(results.NoCaptureDate))
	assert.Equal(t, []string{"1-nogps.jpg"}, agg.Bucket(results.NoGPSBlock))
	assert.Equal(t, []string{"1-nogps.jpg"}, agg.Bucket(results.ZeroCoordinate))
	assert.Equal(t, []string{"3-south.jpg"}, agg.Bucket(results.SecondaryMarker))
}
