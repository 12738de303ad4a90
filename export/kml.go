package export

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/n0mad-samurai/photo2geo/results"
)

const (
	kmlNamespace   = "http://earth.google.com/kml/2.2"
	kmlDescription = "Mapped Photo"
)

type kmlDoc struct {
	XMLName  xml.Name    `xml:"kml"`
	Xmlns    string      `xml:"xmlns,attr"`
	Document kmlDocument `xml:"Document"`
}

type kmlDocument struct {
	Name       string         `xml:"name"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name        string       `xml:"name"`
	Description string       `xml:"description"`
	TimeStamp   kmlTimeStamp `xml:"TimeStamp"`
	Point       kmlPoint     `xml:"Point"`
}

type kmlTimeStamp struct {
	When string `xml:"when"`
}

type kmlPoint struct {
	Coordinates string `xml:"coordinates"`
}

// WriteKML writes one placemark per record to dir/Photo2GeoResults.kml.
func WriteKML(dir string, records []results.Record) (string, error) {
	return writeFile("kml", dir, KMLName, func(f *os.File) error {
		return EncodeKML(f, records)
	})
}

// EncodeKML writes the KML document for records to w.
func EncodeKML(w io.Writer, records []results.Record) error {
	doc := kmlDoc{
		Xmlns:    kmlNamespace,
		Document: kmlDocument{Name: KMLName},
	}
	for _, r := range records {
		doc.Document.Placemarks = append(doc.Document.Placemarks, kmlPlacemark{
			Name:        r.Name,
			Description: kmlDescription,
			TimeStamp:   kmlTimeStamp{When: r.When()},
			Point:       kmlPoint{Coordinates: Coordinates(r)},
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "   ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Coordinates renders a record as "longitude,latitude,0".
func Coordinates(r results.Record) string {
	return results.FormatCoord(r.Longitude) + "," + results.FormatCoord(r.Latitude) + ",0"
}
