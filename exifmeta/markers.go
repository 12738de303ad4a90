package exifmeta

import "bytes"

var (
	containerMarker = []byte("exif")
	secondaryMarker = []byte("File")
)

// HasContainerMarker reports whether raw mentions an EXIF container anywhere,
// ignoring case.
func HasContainerMarker(raw []byte) bool {
	return indexFold(raw, containerMarker) != -1
}

// HasSecondaryMarker reports whether raw contains the literal "File", which
// usually comes from an embedded comment or software tag.
func HasSecondaryMarker(raw []byte) bool {
	return bytes.Contains(raw, secondaryMarker)
}

// indexFold returns the index of the first ASCII case-insensitive instance of
// sep in s, or -1. sep must be lower case.
func indexFold(s, sep []byte) int {
	n := len(sep)
	if n == 0 {
		return 0
	}
	for i := 0; i+n <= len(s); i++ {
		if lower(s[i]) != sep[0] {
			continue
		}
		match := true
		for j := 1; j < n; j++ {
			if lower(s[i+j]) != sep[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
