package terrainrgb

import (
	"context"
	"log"
	"runtime"
	"sync"

	"github.com/gruppe-adler/hillshade-utils/internal/hgt"
	"golang.org/x/sync/semaphore"
)

// loadGrids reads all height tiles of the directory into memory in parallel.
func loadGrids(inputPath string) []*hgt.Grid {
	filePaths, err := hgt.ListFiles(inputPath)
	if err != nil {
		log.Fatal(err)
	}

	grids := make([]*hgt.Grid, len(filePaths))

	waitGrp := sync.WaitGroup{}
	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))

	for i, filePath := range filePaths {
		waitGrp.Add(1)
		go func(i int, filePath string) {
			defer waitGrp.Done()

			sem.Acquire(context.Background(), 1)
			defer sem.Release(1)

			grid, err := hgt.ReadGridFile(filePath)
			if err != nil {
				log.Fatal(err)
			}

			grids[i] = grid
		}(i, filePath)
	}

	waitGrp.Wait()
	return grids
}
