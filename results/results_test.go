package results

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{40.446111, "40.446111"},
		{-79.982222, "-79.982222"},
		{12, "12.0"},
		{-180, "-180.0"},
		{0.5, "0.5"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCoord(tt.in))
	}
}

func TestRecord_RowAndWhen(t *testing.T) {
	r := Record{Name: "a.jpg", LocalDate: "2023-03-15", LocalTime: "10:20:00", Latitude: 40.446111, Longitude: -79.982222}

	assert.Equal(t, []string{"a.jpg", "2023-03-15", "10:20:00", "40.446111", "-79.982222"}, r.Row())
	assert.Equal(t, "2023-03-15T10:20:00", r.When())
	assert.Equal(t, "T", Record{}.When())
}

func TestAggregate_KeepsEncounterOrderAndDuplicates(t *testing.T) {
	agg := New()
	agg.Absorb(Outcome{Name: "b.jpg", Record: &Record{Name: "b.jpg"}, Flags: []Bucket{NoCaptureDate}})
	agg.Absorb(Outcome{Name: "a.png", Flags: []Bucket{NoMetadata}})
	agg.Absorb(Outcome{Name: "b.jpg", Record: &Record{Name: "b.jpg"}, Flags: []Bucket{NoCaptureDate, NoGPSBlock, ZeroCoordinate}})
	agg.Flag(NotImage, "notes.txt")

	assert.Equal(t, 2, agg.Len())
	records := agg.Records()
	assert.Equal(t, "b.jpg", records[0].Name)
	assert.Equal(t, "b.jpg", records[1].Name)

	assert.Equal(t, []string{"b.jpg", "b.jpg"}, agg.Bucket(NoCaptureDate))
	assert.Equal(t, []string{"a.png"}, agg.Bucket(NoMetadata))
	assert.Equal(t, []string{"b.jpg"}, agg.Bucket(ZeroCoordinate))
	assert.Equal(t, []string{"notes.txt"}, agg.Bucket(NotImage))
	assert.Empty(t, agg.Bucket(SecondaryMarker))
}

func TestAggregate_ReturnsCopies(t *testing.T) {
	agg := New()
	agg.Absorb(Outcome{Name: "a.jpg", Record: &Record{Name: "a.jpg"}, Flags: []Bucket{ZeroCoordinate}})

	agg.Records()[0].Name = "changed"
	agg.Bucket(ZeroCoordinate)[0] = "changed"

	assert.Equal(t, "a.jpg", agg.Records()[0].Name)
	assert.Equal(t, []string{"a.jpg"}, agg.Bucket(ZeroCoordinate))
}

func TestOutcome_Flag(t *testing.T) {
	var o Outcome
	o.Flag(NoGPSBlock)
	o.Flag(ZeroCoordinate)

	assert.True(t, o.Has(NoGPSBlock))
	assert.True(t, o.Has(ZeroCoordinate))
	assert.False(t, o.Has(NoMetadata))
}
