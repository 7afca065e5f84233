package tilejson

import (
	"encoding/json"
	"os"
	"path"
)

// VectorLayer represents a vector layer of a tile.json
type VectorLayer struct {
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}

// TileJSON represents a tile.json
type TileJSON struct {
	TileJSON     string        `json:"tilejson"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Scheme       string        `json:"scheme"`
	Minzoom      uint8         `json:"minzoom"`
	Maxzoom      uint8         `json:"maxzoom"`
	Bounds       []float64     `json:"bounds,omitempty"`
	VectorLayers []VectorLayer `json:"vector_layers,omitempty"`
}

// vectorLayerFields holds the known attribute fields per vector layer
var vectorLayerFields = map[string]map[string]string{
	"contours/10":  {"elevation": "Number"},
	"contours/50":  {"elevation": "Number"},
	"contours/100": {"elevation": "Number"},
	"peaks":        {"elevation": "Number", "text": "String"},
}

// Write a tile.json
func Write(outputDirectory string, maxZoom uint8, name, description string, bounds []float64, vectorLayerNames []string) error {

	// build vector layers
	vectorLayers := make([]VectorLayer, len(vectorLayerNames))
	for i, layerName := range vectorLayerNames {
		fields, found := vectorLayerFields[layerName]

		if !found {
			fields = map[string]string{}
		}

		vectorLayers[i] = VectorLayer{
			ID:     layerName,
			Fields: fields,
		}
	}

	obj := TileJSON{
		TileJSON:     "2.2.0",
		Name:         name,
		Description:  description,
		Scheme:       "xyz",
		Minzoom:      0,
		Maxzoom:      maxZoom,
		Bounds:       bounds,
		VectorLayers: vectorLayers,
	}

	// create file
	f, err := os.Create(path.Join(outputDirectory, "tile.json"))
	if err != nil {
		return err
	}

	// marshal
	bytes, err := json.MarshalIndent(obj, "", "    ")
	if err != nil {
		return err
	}

	// write file
	if _, err = f.Write(bytes); err != nil {
		return err
	}

	return f.Close()
}
