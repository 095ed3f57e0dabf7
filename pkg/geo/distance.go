package geo

import (
	"sort"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/datastructure"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// DistanceMeters is the great-circle distance between two lat/lon pairs.
func DistanceMeters(latOne, lonOne, latTwo, lonTwo float64) float64 {
	return orbgeo.DistanceHaversine(orb.Point{lonOne, latOne}, orb.Point{lonTwo, latTwo})
}

// SortByDistance orders points nearest-first from (lat, lon). Ties keep their input order.
func SortByDistance(points []datastructure.PointOfInterest, lat, lon float64) {
	sort.SliceStable(points, func(i, j int) bool {
		return DistanceMeters(lat, lon, points[i].Lat, points[i].Lon) <
			DistanceMeters(lat, lon, points[j].Lat, points[j].Lon)
	})
}

// ValidCoords reports whether lat/lon fall in the wgs84 range.
func ValidCoords(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
