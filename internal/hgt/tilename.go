package hgt

import (
	"fmt"
	"path/filepath"
	"strings"
)

// TileName identifies an SRTM height tile by its south-west corner.
type TileName struct {
	Lat int // latitude of the southern edge, -90..89
	Lon int // longitude of the western edge, -180..179
}

// ParseTileName parses tile names like "N45E007" or "S04W063". The name may
// be a full path and may carry an extension.
func ParseTileName(name string) (TileName, error) {
	stem := filepath.Base(name)
	if ext := filepath.Ext(stem); ext != "" {
		stem = strings.TrimSuffix(stem, ext)
	}
	stem = strings.ToUpper(stem)

	var ns, ew string
	var lat, lon int
	n, err := fmt.Sscanf(stem, "%1s%2d%1s%3d", &ns, &lat, &ew, &lon)
	if err != nil || n != 4 {
		return TileName{}, fmt.Errorf("%q is no valid SRTM tile name", name)
	}

	switch ns {
	case "N":
	case "S":
		lat = -lat
	default:
		return TileName{}, fmt.Errorf("%q is no valid SRTM tile name", name)
	}

	switch ew {
	case "E":
	case "W":
		lon = -lon
	default:
		return TileName{}, fmt.Errorf("%q is no valid SRTM tile name", name)
	}

	if lat < -90 || lat > 89 || lon < -180 || lon > 179 {
		return TileName{}, fmt.Errorf("%q is outside the valid tile range", name)
	}

	return TileName{Lat: lat, Lon: lon}, nil
}

// Stem returns the canonical file stem of the tile, e.g. "N45E007".
func (t TileName) Stem() string {
	ns, lat := byte('N'), t.Lat
	if lat < 0 {
		ns, lat = 'S', -lat
	}
	ew, lon := byte('E'), t.Lon
	if lon < 0 {
		ew, lon = 'W', -lon
	}
	return fmt.Sprintf("%c%02d%c%03d", ns, lat, ew, lon)
}

// South returns the latitude of the tile's southern edge.
func (t TileName) South() float64 { return float64(t.Lat) }

// North returns the latitude of the tile's northern edge.
func (t TileName) North() float64 { return float64(t.Lat + 1) }

// West returns the longitude of the tile's western edge.
func (t TileName) West() float64 { return float64(t.Lon) }

// East returns the longitude of the tile's eastern edge.
func (t TileName) East() float64 { return float64(t.Lon + 1) }
