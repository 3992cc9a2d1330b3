// Package logging builds the zerolog logger used by the huffpack command.
package logging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/chronos-tachyon/huffpack/internal/config"
)

// New returns a logger writing to out, configured from conf.  With
// logger.prettier set, output is human-readable; otherwise it is one JSON
// object per line.
func New(conf *config.Conf, out io.Writer) (zerolog.Logger, error) {
	timeFormat := conf.String(config.KeyLogTimeFormat, zerolog.TimeFormatUnix)
	zerolog.TimeFieldFormat = timeFormat

	level, err := zerolog.ParseLevel(conf.String(config.KeyLogLevel, "info"))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse %s: %w", config.KeyLogLevel, err)
	}

	if conf.Bool(config.KeyLogPrettier, true) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: timeFormat, NoColor: true}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
