package huffpack

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// EncodeStats describes the artifact produced by an encode.
type EncodeStats struct {
	InputBytes  uint64
	Distinct    int
	TreeBytes   uint64
	PayloadBits uint64

	// Frequencies and Codes are left zero for an empty input.
	Frequencies FrequencyTable
	Codes       CodeTable
}

// OutputBytes returns the total size of the artifact.
func (s EncodeStats) OutputBytes() uint64 {
	return headerSize + s.TreeBytes + bytesForBits(s.PayloadBits)
}

// Encode compresses data and writes the resulting artifact to w.
func Encode(w io.Writer, data []byte) error {
	bw := bufio.NewWriter(w)
	if _, err := encode(bw, data); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return ioError(err)
	}
	return nil
}

// Decode reads an artifact from r and returns the original bytes.
//
// The whole result is held in memory, and its size is whatever the artifact
// header declares, up to MaxInputSize.  A degenerate artifact of six bytes can
// declare four gigabytes of output.  Callers decoding untrusted input should
// use a Codec with a lower MaxInputSize, which rejects such headers.
func Decode(r io.Reader) ([]byte, error) {
	var out bytes.Buffer
	if _, err := decode(bufio.NewReader(r), &out, MaxInputSize); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func encode(w *bufio.Writer, data []byte) (EncodeStats, error) {
	stats := EncodeStats{InputBytes: uint64(len(data))}
	if stats.InputBytes > MaxInputSize {
		return stats, fmt.Errorf("%w: %d bytes, max %d", ErrInputTooLarge, stats.InputBytes, uint64(MaxInputSize))
	}

	if err := writeHeader(w, stats.InputBytes); err != nil {
		return stats, ioError(err)
	}
	if stats.InputBytes == 0 {
		return stats, nil
	}

	stats.Frequencies = CountFrequencies(data)
	root, err := BuildTree(stats.Frequencies)
	if err != nil {
		return stats, err
	}
	stats.Codes = GenerateCodes(root)
	codes := &stats.Codes
	stats.Distinct = codes.Len()

	if err := WriteTree(w, root); err != nil {
		return stats, ioError(err)
	}
	stats.TreeBytes = uint64(TreeSize(root))

	p := NewBitPacker(w, codes)
	if err := p.Pack(data); err != nil {
		return stats, err
	}
	if err := p.Close(); err != nil {
		return stats, ioError(err)
	}
	stats.PayloadBits = p.BitsWritten()
	return stats, nil
}

// decode reads an artifact from r, writes the decoded bytes to w, and returns
// the number of bytes written.  The artifact must end exactly where the
// payload does, and must not declare more than limit bytes.
func decode(r *bufio.Reader, w io.ByteWriter, limit uint64) (uint64, error) {
	count, err := readHeader(r)
	if err != nil {
		return 0, err
	}
	if count > limit {
		return 0, fmt.Errorf("%w: artifact declares %d bytes, max %d", ErrInputTooLarge, count, limit)
	}

	if count != 0 {
		root, err := ReadTree(r)
		if err != nil {
			return 0, err
		}
		if err := NewBitUnpacker(r, root).Unpack(w, count); err != nil {
			return 0, err
		}
	}

	if _, err := r.ReadByte(); err == nil {
		return 0, corruptf("trailing data after payload")
	} else if !errors.Is(err, io.EOF) {
		return 0, ioError(err)
	}
	return count, nil
}
