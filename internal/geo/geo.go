// Package geo holds the geofence math: great-circle distances on a sphere,
// radius checks and nearby ranking.
package geo

import (
	"errors"
	"math"
	"sort"

	md "github.com/JMURv/attendance-guard/internal/models"
)

// EarthRadius in meters. Spherical approximation, fine for geofences of tens
// to hundreds of meters.
const EarthRadius = 6_371_000.0

var ErrInvalidRadius = errors.New("radius must be greater than zero")
var ErrInvalidCoordinates = errors.New("coordinates are out of range")

type Result struct {
	WithinRange bool    `json:"withinRange"`
	Distance    float64 `json:"distance"`
}

// DistanceMeters is the haversine distance between two points.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * c
}

func Distance(a, b md.Coordinates) float64 {
	return DistanceMeters(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

func Validate(center md.Coordinates, radius float64, position md.Coordinates) Result {
	d := Distance(center, position)
	return Result{
		WithinRange: d <= radius,
		Distance:    d,
	}
}

// Nearby keeps candidates within radius of position, closest first.
func Nearby(position md.Coordinates, radius float64, candidates []md.Location) []md.NearbyLocation {
	res := make([]md.NearbyLocation, 0, len(candidates))
	for _, loc := range candidates {
		d := Distance(position, loc.Center())
		if d <= radius {
			res = append(res, md.NearbyLocation{Location: loc, Distance: d})
		}
	}

	sort.SliceStable(
		res, func(i, j int) bool {
			return res[i].Distance < res[j].Distance
		},
	)
	return res
}

type Box struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// BoundingBox returns a box that fully contains the circle around position.
// It is only a coarse prefilter, so near the poles it widens to every longitude.
func BoundingBox(position md.Coordinates, radius float64) Box {
	dLat := toDeg(radius / EarthRadius)
	box := Box{
		MinLat: math.Max(position.Latitude-dLat, -90),
		MaxLat: math.Min(position.Latitude+dLat, 90),
		MinLng: -180,
		MaxLng: 180,
	}

	cos := math.Cos(toRad(position.Latitude))
	if cos <= 1e-9 || box.MinLat == -90 || box.MaxLat == 90 {
		return box
	}

	dLng := toDeg(radius / (EarthRadius * cos))
	if dLng >= 180 || position.Longitude-dLng < -180 || position.Longitude+dLng > 180 {
		return box
	}

	box.MinLng = position.Longitude - dLng
	box.MaxLng = position.Longitude + dLng
	return box
}

func ValidCoordinates(c md.Coordinates) bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180 &&
		!math.IsNaN(c.Latitude) && !math.IsNaN(c.Longitude)
}

func ValidateLocation(loc md.Location) error {
	if !(loc.Radius > 0) {
		return ErrInvalidRadius
	}

	if !ValidCoordinates(loc.Center()) {
		return ErrInvalidCoordinates
	}
	return nil
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
