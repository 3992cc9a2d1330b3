// Command huffpack compresses and decompresses files with Huffman coding.
//
// Usage:
//
//     huffpack [-config file] [-v] compress <input> <output>
//     huffpack [-config file] [-v] decompress <input> <output>
//
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/chronos-tachyon/huffpack"
	"github.com/chronos-tachyon/huffpack/internal/config"
	"github.com/chronos-tachyon/huffpack/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("huffpack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "Configuration file path (YAML)")
	verbose := fs.Bool("v", false, "Log debug messages")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: huffpack [-config file] [-v] compress|decompress <input> <output>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return 2
	}
	mode, input, output := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	conf, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(stderr, "huffpack:", err)
		return 1
	}

	logger, err := logging.New(conf, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "huffpack:", err)
		return 1
	}
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	codec := huffpack.NewCodec(logger)
	codec.MaxInputSize = conf.Int64(config.KeyMaxInputSize, huffpack.MaxInputSize)

	switch mode {
	case "compress":
		err = codec.Compress(input, output)
	case "decompress":
		err = codec.Decompress(input, output)
	default:
		fmt.Fprintf(stderr, "huffpack: unknown mode %q\n", mode)
		fs.Usage()
		return 2
	}
	if err != nil {
		logger.Error().Err(err).Msg("huffpack failed")
		fmt.Fprintln(stderr, "huffpack:", err)
		return 1
	}
	return 0
}
