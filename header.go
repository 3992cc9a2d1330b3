package huffpack

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// MaxInputSize is the largest input, in bytes, whose length fits in the
// artifact header.
const MaxInputSize = math.MaxUint32

// headerSize is the length of the byte count that starts every artifact.
const headerSize = 4

func writeHeader(w io.Writer, count uint64) error {
	var buf [headerSize]byte
	binary.BigEndian.PutUint32(buf[:], uint32(count))
	_, err := w.Write(buf[:])
	return err
}

func readHeader(r io.Reader) (uint64, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, corruptf("header truncated")
		}
		return 0, ioError(err)
	}
	return uint64(binary.BigEndian.Uint32(buf[:])), nil
}
