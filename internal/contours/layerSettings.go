package contours

import (
	"encoding/json"
	"io/ioutil"
	"log"
)

// layerSetting limits one vector layer to a zoom range. Both bounds are
// optional.
type layerSetting struct {
	Layer   string  `json:"layer"`
	MinZoom *uint16 `json:"minzoom"`
	MaxZoom *uint16 `json:"maxzoom"`
}

// loadLayerSettings reads a layer_settings.json file. An empty path yields an
// empty settings list.
func loadLayerSettings(settingsPath string) []layerSetting {
	settings := []layerSetting{}

	if settingsPath == "" {
		return settings
	}

	data, err := ioutil.ReadFile(settingsPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		log.Fatal(err)
	}

	return settings
}
