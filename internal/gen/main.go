package gen

import (
	"bufio"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path"
	"time"

	"github.com/gruppe-adler/hillshade-utils/internal/hgt"
	"github.com/gruppe-adler/hillshade-utils/internal/utils"
)

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet) {

	start := time.Now()

	outputPtr := flagSet.String("out", "", "Path to output directory")
	namePtr := flagSet.String("name", "N00E000", "Tile name of the generated tile")
	samplesPtr := flagSet.Int("samples", 1201, "Samples per tile side")
	seedPtr := flagSet.Int64("seed", 56, "Noise seed")
	voidsPtr := flagSet.Int("voids", 0, "Number of void samples to scatter over the tile")

	flagSet.Parse(os.Args[2:])

	// make sure output flag is present
	if *outputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	// make sure given output directory is a valid directory
	if !utils.IsDirectory(*outputPtr) {
		log.Fatal(errors.New("Output directory doesn't exists"))
	}

	name, err := hgt.ParseTileName(*namePtr)
	if err != nil {
		log.Fatal(err)
	}

	if *samplesPtr < 2 {
		log.Fatal(errors.New("samples must be at least 2"))
	}
	if *voidsPtr < 0 {
		log.Fatal(errors.New("voids must not be negative"))
	}

	timer := time.Now()
	fmt.Println("▶️  Generating elevation samples")
	data := Generate(*seedPtr, *samplesPtr, *voidsPtr)
	fmt.Println("✔️  Generated elevation samples in", time.Now().Sub(timer).String())

	filePath := path.Join(*outputPtr, name.Stem()+".hgt")

	timer = time.Now()
	fmt.Println("▶️  Writing", filePath)
	if err := writeTile(filePath, data); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Wrote tile in", time.Now().Sub(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
}

// Generate produces rowLen² elevation samples with the given number of void
// samples scattered over the tile.
func Generate(seed int64, rowLen, voids int) []int16 {
	g := newGenerator(seed)

	data := make([]int16, rowLen*rowLen)
	for row := 0; row < rowLen; row++ {
		for col := 0; col < rowLen; col++ {
			x := float64(col) / float64(rowLen-1)
			y := float64(row) / float64(rowLen-1)
			data[row*rowLen+col] = g.sample(x, y)
		}
	}

	rnd := rand.New(rand.NewSource(seed))
	for i := 0; i < voids; i++ {
		data[rnd.Intn(len(data))] = hgt.Void
	}

	return data
}

// writeTile stores the samples as a raw big-endian height file
func writeTile(filePath string, data []int16) error {
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.BigEndian, data); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
