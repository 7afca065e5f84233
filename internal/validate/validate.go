package validate

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/gruppe-adler/hillshade-utils/internal/hgt"
	"github.com/gruppe-adler/hillshade-utils/internal/utils"
)

// HgtDirectory validates that given directory holds raw SRTM height tiles
func HgtDirectory(dirPath string) error {
	if !utils.IsDirectory(dirPath) {
		return fmt.Errorf("%s does not exists or is no directory", dirPath)
	}

	entries, err := ioutil.ReadDir(dirPath)
	if err != nil {
		return err
	}

	found := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".hgt") {
			continue
		}

		if _, err := hgt.ParseTileName(entry.Name()); err != nil {
			return fmt.Errorf("%s is no valid tile name", entry.Name())
		}
		found++
	}

	if found == 0 {
		return fmt.Errorf("%s contains no .hgt tiles", dirPath)
	}

	return nil
}
