package utils

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
)

// CloneFeature deep clones given feature
func CloneFeature(f *geojson.Feature) *geojson.Feature {
	clone := geojson.NewFeature(orb.Clone(f.Geometry))

	clone.ID = f.ID
	clone.Type = f.Type
	clone.Properties = f.Properties.Clone()
	clone.BBox = append(geojson.BBox(nil), f.BBox...)

	return clone
}

// DeepCloneFeatureCollection deep clones given feature collection
func DeepCloneFeatureCollection(fc *geojson.FeatureCollection) *geojson.FeatureCollection {
	clone := geojson.NewFeatureCollection()

	clone.Type = fc.Type
	clone.BBox = append(geojson.BBox(nil), fc.BBox...)
	clone.Features = make([]*geojson.Feature, len(fc.Features))
	for i, f := range fc.Features {
		clone.Features[i] = CloneFeature(f)
	}

	return clone
}

// DeepCloneLayers deep clones given layers
func DeepCloneLayers(layers mvt.Layers) mvt.Layers {
	clone := make(mvt.Layers, len(layers))

	for i, l := range layers {
		features := make([]*geojson.Feature, len(l.Features))
		for j, f := range l.Features {
			features[j] = CloneFeature(f)
		}

		clone[i] = &mvt.Layer{
			Name:     l.Name,
			Version:  l.Version,
			Extent:   l.Extent,
			Features: features,
		}
	}

	return clone
}
