package simlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds a zerolog.Logger writing to w. verbose raises the level to
// Debug; otherwise only Info and above are emitted, mirroring the
// granularity flow.FlowOptions.Verbose gestures at for augmentation-step
// logging.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Default builds a zerolog.Logger writing human-readable output to stderr,
// for CLI use (cmd/quetzal-sim).
func Default(verbose bool) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: os.Stderr}
	return New(console, verbose)
}

// Generation logs one forward or backward generation step at Debug level.
func Generation(log zerolog.Logger, t int, totalEmitted int) {
	log.Debug().Int("generation", t).Int("emitted", totalEmitted).Msg("generation step")
}

// Replicate logs the outcome of one replicate attempt at Info level.
func Replicate(log zerolog.Logger, index int, accepted bool, err error) {
	ev := log.Info().Int("replicate", index).Bool("accepted", accepted)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg("replicate finished")
}
