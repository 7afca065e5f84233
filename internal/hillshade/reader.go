package hillshade

import (
	"bufio"
	"encoding/binary"
	"io"
)

// NoData is the reserved sample value marking voids in SRTM height data.
const NoData = int16(-32768)

// sampleReader decodes a stream of big-endian int16 elevation samples.
type sampleReader struct {
	r   *bufio.Reader
	buf [2]byte
}

func newSampleReader(r io.Reader) *sampleReader {
	return &sampleReader{r: bufio.NewReader(r)}
}

// next returns the next sample and whether it holds actual data. Voids are
// reported as absent; the caller decides which neighbour stands in.
func (sr *sampleReader) next() (int16, bool, error) {
	if _, err := io.ReadFull(sr.r, sr.buf[:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, false, err
	}

	v := int16(binary.BigEndian.Uint16(sr.buf[:]))
	if v == NoData {
		return 0, false, nil
	}
	return v, true, nil
}
