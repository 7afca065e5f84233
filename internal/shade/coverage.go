package shade

import (
	"encoding/json"
	"os"

	"github.com/gruppe-adler/hillshade-utils/internal/hgt"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// coverage collects the footprints of all shaded tiles.
type coverage struct {
	angle float64
	fc    *geojson.FeatureCollection
}

func newCoverage(angle float64) *coverage {
	return &coverage{angle: angle, fc: geojson.NewFeatureCollection()}
}

// add appends the footprint of one shaded tile.
func (c *coverage) add(name hgt.TileName, axisLength int) {
	ring := orb.Ring{
		{name.West(), name.South()},
		{name.East(), name.South()},
		{name.East(), name.North()},
		{name.West(), name.North()},
		{name.West(), name.South()},
	}

	feature := geojson.NewFeature(orb.Polygon{ring})
	feature.Properties["tile"] = name.Stem()
	feature.Properties["axisLength"] = axisLength
	feature.Properties["heightAngle"] = c.angle

	c.fc.Append(feature)
}

// write stores the collected footprints as GeoJSON.
func (c *coverage) write(filePath string) error {
	data, err := json.Marshal(c.fc)
	if err != nil {
		return err
	}

	f, err := os.Create(filePath)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
