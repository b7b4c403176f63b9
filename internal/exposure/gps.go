package exposure

import (
	"strconv"
	"strings"

	"github.com/socialshield/socialshield/internal/model"
)

// mapLinkBase is the map-service query endpoint used for precise coordinates.
const mapLinkBase = "https://maps.google.com/?q="

// ToDecimalDegrees converts a degree/minute/second coordinate and its
// hemisphere reference into signed decimal degrees. Southern and western
// hemispheres produce negative values.
//
// The converter does not validate its inputs: out-of-range components
// produce out-of-range but well-defined output, never a fault. Range
// checking is the caller's responsibility.
func ToDecimalDegrees(degrees, minutes, seconds float64, ref string) float64 {
	decimal := degrees + minutes/60 + seconds/3600
	switch strings.ToUpper(strings.TrimSpace(ref)) {
	case "S", "W":
		return -decimal
	default:
		return decimal
	}
}

// DecimalDegrees resolves a complete GPS record into signed decimal
// latitude and longitude.
func DecimalDegrees(rec model.GPSRecord) (lat, lon float64) {
	lat = ToDecimalDegrees(rec.Latitude.Degrees, rec.Latitude.Minutes, rec.Latitude.Seconds, rec.LatitudeRef)
	lon = ToDecimalDegrees(rec.Longitude.Degrees, rec.Longitude.Minutes, rec.Longitude.Seconds, rec.LongitudeRef)
	return lat, lon
}

// MapLink builds a map-service query URL for the given decimal coordinates.
// Both values are rendered in full floating-point precision; any rounding
// is the caller's choice, not this function's.
func MapLink(lat, lon float64) string {
	return mapLinkBase +
		strconv.FormatFloat(lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(lon, 'f', -1, 64)
}
