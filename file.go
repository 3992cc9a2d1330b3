package huffpack

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Codec compresses and decompresses files.  Create one with NewCodec.
type Codec struct {
	// Logger receives progress messages.
	Logger zerolog.Logger

	// MaxInputSize caps the size of an input file accepted by Compress,
	// and the original size an artifact may declare to Decompress.
	// Values <= 0, or above the package-level MaxInputSize, mean
	// MaxInputSize.
	MaxInputSize int64
}

// NewCodec returns a Codec that logs to logger.
func NewCodec(logger zerolog.Logger) *Codec {
	return &Codec{Logger: logger, MaxInputSize: MaxInputSize}
}

// Compress compresses the file at inputPath into a new artifact at
// outputPath, using a Codec that does not log.
func Compress(inputPath, outputPath string) error {
	return NewCodec(zerolog.Nop()).Compress(inputPath, outputPath)
}

// Decompress restores the original file from the artifact at inputPath,
// using a Codec that does not log.
func Decompress(inputPath, outputPath string) error {
	return NewCodec(zerolog.Nop()).Decompress(inputPath, outputPath)
}

// Compress reads the whole file at inputPath, then writes its artifact to
// outputPath, replacing any existing file.  If Compress fails after creating
// outputPath, the partial output is removed.
func (c *Codec) Compress(inputPath, outputPath string) error {
	const op = "compress"
	start := time.Now()
	log := c.Logger.With().Str("op", op).Str("input", inputPath).Str("output", outputPath).Logger()

	if err := checkDistinct(inputPath, outputPath); err != nil {
		return &FileError{Op: op, Path: outputPath, Err: err}
	}

	data, err := readInput(inputPath, c.maxInputSize())
	if err != nil {
		return &FileError{Op: op, Path: inputPath, Err: err}
	}
	log.Debug().Int("bytes", len(data)).Msg("input loaded")

	var stats EncodeStats
	err = writeOutput(outputPath, func(w *bufio.Writer) error {
		var err error
		stats, err = encode(w, data)
		return err
	})
	if err != nil {
		return &FileError{Op: op, Path: outputPath, Err: err}
	}

	if e := log.Debug(); e.Enabled() && stats.Distinct != 0 {
		logCodes(e, &stats)
	}

	log.Info().
		Uint64("input_bytes", stats.InputBytes).
		Uint64("output_bytes", stats.OutputBytes()).
		Int("distinct", stats.Distinct).
		Float64("ratio", ratio(stats.OutputBytes(), stats.InputBytes)).
		Dur("elapsed", time.Since(start)).
		Msg("file compressed successfully")
	return nil
}

// Decompress reads the artifact at inputPath and writes the original bytes to
// outputPath, replacing any existing file.  If Decompress fails after creating
// outputPath, the partial output is removed.
func (c *Codec) Decompress(inputPath, outputPath string) error {
	const op = "decompress"
	start := time.Now()
	log := c.Logger.With().Str("op", op).Str("input", inputPath).Str("output", outputPath).Logger()

	if err := checkDistinct(inputPath, outputPath); err != nil {
		return &FileError{Op: op, Path: outputPath, Err: err}
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return &FileError{Op: op, Path: inputPath, Err: ioError(err)}
	}
	defer f.Close()

	var count uint64
	err = writeOutput(outputPath, func(w *bufio.Writer) error {
		var err error
		count, err = decode(bufio.NewReader(f), w, uint64(c.maxInputSize()))
		return err
	})
	if err != nil {
		path := inputPath
		var oe *outputError
		if errors.As(err, &oe) {
			path = outputPath
		}
		return &FileError{Op: op, Path: path, Err: err}
	}

	log.Info().
		Uint64("output_bytes", count).
		Dur("elapsed", time.Since(start)).
		Msg("file decompressed successfully")
	return nil
}

func (c *Codec) maxInputSize() int64 {
	if c.MaxInputSize <= 0 || c.MaxInputSize > MaxInputSize {
		return MaxInputSize
	}
	return c.MaxInputSize
}

// readInput reads the whole file at path into memory, refusing files larger
// than limit bytes.
func readInput(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError(err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, ioError(err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: is a directory", ErrInvalidInput)
	}
	if fi.Size() > limit {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrInputTooLarge, fi.Size(), limit)
	}

	// The size reported by Stat is only a hint; the file may grow while we
	// read it.
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, ioError(err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, limit)
	}
	return data, nil
}

// logCodes writes the frequency table and the code table, shortest codes
// first, to a debug event.
func logCodes(e *zerolog.Event, stats *EncodeStats) {
	var freqs strings.Builder
	_, _ = stats.Frequencies.Dump(&freqs)

	var table strings.Builder
	_, _ = stats.Codes.Dump(&table)

	byLength := zerolog.Arr()
	for _, symbol := range stats.Codes.ByLength() {
		hc := stats.Codes.Encode(symbol)
		byLength.Str(strconv.Itoa(int(symbol)) + ":" + strings.Trim(hc.String(), `"`))
	}

	e.Str("frequencies", freqs.String()).
		Str("codes", table.String()).
		Array("by_length", byLength).
		Msg("code table built")
}

// outputError marks a failure to create, write, or close the output file, as
// opposed to a failure caused by the input.
type outputError struct {
	err error
}

func (e *outputError) Error() string {
	return e.err.Error()
}

func (e *outputError) Unwrap() error {
	return e.err
}

// outputWriter tags every write error from the output file as an
// outputError, so it stays recognizable after passing through bufio and the
// codec.
type outputWriter struct {
	w io.Writer
}

func (ow outputWriter) Write(p []byte) (int, error) {
	n, err := ow.w.Write(p)
	if err != nil {
		err = &outputError{err}
	}
	return n, err
}

// writeOutput creates the file at path and hands a buffered writer for it to
// fn.  The file is always closed, and is removed if fn, the final flush, or
// the close fails.
func writeOutput(path string, fn func(w *bufio.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return ioError(&outputError{err})
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioError(&outputError{cerr})
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	w := bufio.NewWriter(outputWriter{f})
	if err := fn(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return ioError(err)
	}
	return nil
}

// checkDistinct refuses to operate when the output would overwrite the input.
func checkDistinct(inputPath, outputPath string) error {
	in, err := os.Stat(inputPath)
	if err != nil {
		return nil
	}
	out, err := os.Stat(outputPath)
	if err != nil {
		return nil
	}
	if os.SameFile(in, out) {
		return fmt.Errorf("%w: output is the same file as the input", ErrInvalidInput)
	}
	return nil
}

func ratio(out, in uint64) float64 {
	if in == 0 {
		return 0
	}
	return float64(out) / float64(in)
}
