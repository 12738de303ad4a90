package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/n0mad-samurai/photo2geo/exifmeta"
)

// Hemisphere references that make a coordinate negative.
const (
	South = "S"
	West  = "W"
)

// ToDecimal converts a degrees/minutes/seconds triple to signed decimal
// degrees rounded to six places. The absent triple converts to 0. ref equal to
// negativeRef negates the result.
func ToDecimal(dms exifmeta.DMS, ref, negativeRef string) (float64, error) {
	if dms.IsAbsent() {
		return 0, nil
	}
	dd := dms.Degrees + dms.Minutes/60 + dms.Seconds/3600
	if math.IsNaN(dd) || math.IsInf(dd, 0) {
		return 0, fmt.Errorf("cannot convert %v/%v/%v to decimal degrees", dms.Degrees, dms.Minutes, dms.Seconds)
	}
	dd = round6(dd)
	if strings.EqualFold(strings.TrimSpace(ref), negativeRef) {
		dd = -dd
	}
	return dd, nil
}

// round6 rounds half-to-even on the exact binary value, the way decimal
// formatting does.
func round6(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 6, 64), 64)
	return r
}
