// Package log wires zerolog into the FRI prover and verifier. Logging here
// is observability only: nothing in this package can change a Prove or
// Verify outcome, and a caller that never supplies a logger gets a
// disabled one that costs nothing per call.
package log

import (
	"io"

	"github.com/rs/zerolog"
)

// Disabled returns a zerolog.Logger that discards everything, the default
// used by the FRI prover/verifier when the caller passes no logger.
func Disabled() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}

// New returns a zerolog.Logger writing to w at the given minimum level,
// for callers that want to observe prove/verify lifecycle events.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
