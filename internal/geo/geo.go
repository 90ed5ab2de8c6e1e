// Package geo turns complaint snapshots into map-ready point sets and the
// padded region framing them.
package geo

import (
	"math"

	"github.com/Santosh-Singh382/citizenloop/internal/config"
	"github.com/Santosh-Singh382/citizenloop/internal/models"
)

// Point is a single geo-tagged complaint marker.
type Point struct {
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Title     string          `json:"title"`
	Category  models.Category `json:"category"`
}

// Region is the padded rectangle enclosing a point set, used to frame the map
// view.
type Region struct {
	MinLatitude  float64 `json:"minLatitude"`
	MaxLatitude  float64 `json:"maxLatitude"`
	MinLongitude float64 `json:"minLongitude"`
	MaxLongitude float64 `json:"maxLongitude"`
}

// ExtractPoints returns a marker for every complaint carrying two finite
// coordinates, preserving input order. Records with missing or non-finite
// coordinates are skipped rather than failing the extraction.
func ExtractPoints(complaints []models.Complaint) []Point {
	points := make([]Point, 0, len(complaints))
	for _, c := range complaints {
		if !c.HasLocation() {
			continue
		}
		lat, lng := *c.Latitude, *c.Longitude
		if !isFinite(lat) || !isFinite(lng) {
			continue
		}
		points = append(points, Point{
			Latitude:  lat,
			Longitude: lng,
			Title:     c.Title,
			Category:  c.Category,
		})
	}
	return points
}

// BoundingRegion computes the smallest rectangle covering all points, expanded
// by the display padding factor on each side. The second return value is false
// for an empty point set; callers treat that as "no region", not as an error.
func BoundingRegion(points []Point) (Region, bool) {
	if len(points) == 0 {
		return Region{}, false
	}

	region := Region{
		MinLatitude:  points[0].Latitude,
		MaxLatitude:  points[0].Latitude,
		MinLongitude: points[0].Longitude,
		MaxLongitude: points[0].Longitude,
	}
	for _, p := range points[1:] {
		region.MinLatitude = math.Min(region.MinLatitude, p.Latitude)
		region.MaxLatitude = math.Max(region.MaxLatitude, p.Latitude)
		region.MinLongitude = math.Min(region.MinLongitude, p.Longitude)
		region.MaxLongitude = math.Max(region.MaxLongitude, p.Longitude)
	}

	latPad := (region.MaxLatitude - region.MinLatitude) * config.BoundingRegionPadding
	lngPad := (region.MaxLongitude - region.MinLongitude) * config.BoundingRegionPadding
	region.MinLatitude -= latPad
	region.MaxLatitude += latPad
	region.MinLongitude -= lngPad
	region.MaxLongitude += lngPad
	return region, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
