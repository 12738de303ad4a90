// Package exiftest builds small image files with hand-assembled EXIF
// segments so tests can exercise metadata extraction without binary fixtures.
package exiftest

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// TIFF field types.
const (
	typeASCII    = 2
	typeLong     = 4
	typeRational = 5
)

// TIFF/EXIF tag ids.
const (
	tagDateTime         = 0x0132
	tagGPSInfo          = 0x8825
	tagGPSLatitudeRef   = 0x0001
	tagGPSLatitude      = 0x0002
	tagGPSLongitudeRef  = 0x0003
	tagGPSLongitude     = 0x0004
	tagGPSAltitudeRef   = 0x0005
	exifHeader          = "Exif\x00\x00"
	markerAPP1          = 0xE1
	markerCOM           = 0xFE
	maxSegmentLength    = 0xFFFF
	tiffHeaderSize      = 8
	ifdEntrySize        = 12
	ifdCountAndNextSize = 6
)

// Rational is an unsigned EXIF rational, numerator over denominator.
type Rational [2]uint32

// DMS returns a whole-number degrees/minutes/seconds triple.
func DMS(d, m, s uint32) [3]Rational {
	return [3]Rational{{d, 1}, {m, 1}, {s, 1}}
}

// NaN returns the triple that decodes as (NaN, NaN, NaN).
func NaN() [3]Rational {
	return [3]Rational{{0, 0}, {0, 0}, {0, 0}}
}

// GPS describes the GPS IFD written into a fixture.
type GPS struct {
	LatitudeRef  string
	Latitude     [3]Rational
	LongitudeRef string
	Longitude    [3]Rational

	// MalformedLatitude stores GPSLatitude as ASCII text instead of rationals.
	MalformedLatitude string
	// OnlyAltitude writes a GPS IFD that holds no latitude/longitude fields.
	OnlyAltitude bool
}

// Options controls the metadata embedded in a JPEG fixture.
type Options struct {
	// DateTime is written to IFD0 tag 0x0132 when non-empty.
	DateTime string
	GPS      *GPS
	// Comment is written as a JPEG COM segment when non-empty.
	Comment string
	// NoExif omits the APP1 segment entirely.
	NoExif bool
}

type entry struct {
	tag   uint16
	typ   uint16
	count uint32
	data  []byte
}

// JPEG returns a decodable 8x8 JPEG carrying the requested metadata.
func JPEG(t testing.TB, opts Options) []byte {
	t.Helper()

	var plain bytes.Buffer
	if err := jpeg.Encode(&plain, solid(), &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	body := plain.Bytes()

	var out bytes.Buffer
	out.Write(body[:2])
	if opts.Comment != "" {
		writeSegment(t, &out, markerCOM, []byte(opts.Comment))
	}
	if !opts.NoExif {
		payload := append([]byte(exifHeader), TIFF(opts)...)
		writeSegment(t, &out, markerAPP1, payload)
	}
	out.Write(body[2:])
	return out.Bytes()
}

// PNG returns a decodable 8x8 PNG without any metadata chunk.
func PNG(t testing.TB) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid()); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// TIFF returns a little-endian TIFF structure holding IFD0 and, if requested,
// a GPS IFD.
func TIFF(opts Options) []byte {
	var ifd0 []entry
	if opts.DateTime != "" {
		ifd0 = append(ifd0, ascii(tagDateTime, opts.DateTime))
	}

	var gps []entry
	if g := opts.GPS; g != nil {
		if g.OnlyAltitude {
			gps = append(gps, entry{tag: tagGPSAltitudeRef, typ: 1, count: 1, data: []byte{0}})
		} else {
			gps = append(gps, ascii(tagGPSLatitudeRef, g.LatitudeRef))
			if g.MalformedLatitude != "" {
				gps = append(gps, ascii(tagGPSLatitude, g.MalformedLatitude))
			} else {
				gps = append(gps, rationals(tagGPSLatitude, g.Latitude))
			}
			gps = append(gps, ascii(tagGPSLongitudeRef, g.LongitudeRef))
			gps = append(gps, rationals(tagGPSLongitude, g.Longitude))
		}
	}

	if gps == nil {
		return append(header(), encodeIFD(ifd0, tiffHeaderSize)...)
	}

	// The pointer value does not change the IFD0 size, so measure first.
	pointer := entry{tag: tagGPSInfo, typ: typeLong, count: 1, data: make([]byte, 4)}
	ifd0 = append(ifd0, pointer)
	gpsOffset := uint32(tiffHeaderSize + len(encodeIFD(ifd0, tiffHeaderSize)))
	binary.LittleEndian.PutUint32(ifd0[len(ifd0)-1].data, gpsOffset)

	out := header()
	out = append(out, encodeIFD(ifd0, tiffHeaderSize)...)
	out = append(out, encodeIFD(gps, gpsOffset)...)
	return out
}

// Write stores data as dir/name and returns the full path.
func Write(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func header() []byte {
	h := []byte{'I', 'I', 42, 0, 0, 0, 0, 0}
	binary.LittleEndian.PutUint32(h[4:], tiffHeaderSize)
	return h
}

// encodeIFD lays out entries at offset base followed by their out-of-line values.
func encodeIFD(entries []entry, base uint32) []byte {
	dataOffset := base + uint32(ifdCountAndNextSize+ifdEntrySize*len(entries))

	var dir, data bytes.Buffer
	_ = binary.Write(&dir, binary.LittleEndian, uint16(len(entries)))
	for _, e := range entries {
		_ = binary.Write(&dir, binary.LittleEndian, e.tag)
		_ = binary.Write(&dir, binary.LittleEndian, e.typ)
		_ = binary.Write(&dir, binary.LittleEndian, e.count)
		if len(e.data) <= 4 {
			inline := make([]byte, 4)
			copy(inline, e.data)
			dir.Write(inline)
			continue
		}
		_ = binary.Write(&dir, binary.LittleEndian, dataOffset+uint32(data.Len()))
		data.Write(e.data)
		if data.Len()%2 == 1 {
			data.WriteByte(0)
		}
	}
	_ = binary.Write(&dir, binary.LittleEndian, uint32(0))
	return append(dir.Bytes(), data.Bytes()...)
}

func ascii(tag uint16, s string) entry {
	b := append([]byte(s), 0)
	return entry{tag: tag, typ: typeASCII, count: uint32(len(b)), data: b}
}

func rationals(tag uint16, vals [3]Rational) entry {
	b := make([]byte, 0, 24)
	for _, r := range vals {
		b = binary.LittleEndian.AppendUint32(b, r[0])
		b = binary.LittleEndian.AppendUint32(b, r[1])
	}
	return entry{tag: tag, typ: typeRational, count: 3, data: b}
}

func writeSegment(t testing.TB, w *bytes.Buffer, marker byte, payload []byte) {
	t.Helper()
	n := len(payload) + 2
	if n > maxSegmentLength {
		t.Fatalf("segment too large: %d bytes", n)
	}
	w.Write([]byte{0xFF, marker, byte(n >> 8), byte(n)})
	w.Write(payload)
}

func solid() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 120, B: 200, A: 255})
		}
	}
	return img
}
