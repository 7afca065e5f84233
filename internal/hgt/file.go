package hgt

import (
	"io"
	"io/ioutil"
	"os"
	"path"
	"strings"
)

// File is an elevation tile backed by a raw SRTM height file. It carries
// everything the shading core needs: byte size, latitude bounds and a way to
// open the sample stream.
type File struct {
	Path string
	Name TileName
	size int64
}

// OpenFile derives the tile's bounds from the file name and stats its size.
func OpenFile(filePath string) (*File, error) {
	name, err := ParseTileName(filePath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}

	return &File{Path: filePath, Name: name, size: info.Size()}, nil
}

// Size returns the file size in bytes.
func (f *File) Size() int64 { return f.size }

// SouthLat returns the latitude of the tile's southern edge.
func (f *File) SouthLat() float64 { return f.Name.South() }

// NorthLat returns the latitude of the tile's northern edge.
func (f *File) NorthLat() float64 { return f.Name.North() }

// Open opens a fresh stream over the tile's raw samples.
func (f *File) Open() (io.ReadCloser, error) {
	return os.Open(f.Path)
}

// ListFiles returns the paths of all .hgt files in given directory, sorted
// by name.
func ListFiles(dir string) ([]string, error) {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	filePaths := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".hgt") {
			continue
		}
		filePaths = append(filePaths, path.Join(dir, entry.Name()))
	}

	return filePaths, nil
}
