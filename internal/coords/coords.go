package coords

import "math"

/*
	All tile math in this repo works on normalized web mercator coordinates:

	    x = (longitude + 180) / 360
	    y = (1 - ln[tan(lat) + sec(lat)] / π) / 2

	with (0,0) in the north-west and (1,1) in the south-east corner of the
	world. Multiplying by the pixel count of a zoom level yields global pixel
	coordinates, multiplying by 2^zoom yields tile indices.
*/

// EarthCircumference is the circumference of the earth at the equator in meters.
const EarthCircumference = 40075016.686

// Web mercator is only defined up to ~85° latitude
const (
	MaxLatitude = 85.05112878
	MinLatitude = -85.05112878
)

func deg2rad(deg float64) float64 { return (deg * (math.Pi / 180.0)) }

// GroundResolution returns the distance on the ground (in meters), which is
// covered by a single pixel at the given latitude on a world map of mapSize
// pixels.
func GroundResolution(latitude float64, mapSize float64) float64 {
	return math.Cos(deg2rad(latitude)) * EarthCircumference / mapSize
}

// MercatorX converts a longitude to a normalized web mercator x.
func MercatorX(lng float64) float64 {
	return (lng + 180.0) / 360.0
}

// MercatorY converts a latitude to a normalized web mercator y. Latitudes
// beyond the projection limit are clamped.
func MercatorY(lat float64) float64 {
	if lat > MaxLatitude {
		lat = MaxLatitude
	}
	if lat < MinLatitude {
		lat = MinLatitude
	}
	r := deg2rad(lat)
	return (1.0 - math.Log(math.Tan(r)+1.0/math.Cos(r))/math.Pi) / 2.0
}
