package spatial

import "fmt"

// Bounds is a closed geographic rectangle. All four edges are inclusive.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Contains reports whether the point lies inside the rectangle, edges
// included.
func (b Bounds) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

func (b Bounds) String() string {
	return fmt.Sprintf("Bounds[lat: %.4f to %.4f, lon: %.4f to %.4f]", b.MinLat, b.MaxLat, b.MinLon, b.MaxLon)
}
