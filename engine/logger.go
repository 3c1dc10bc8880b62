package engine

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger wraps a zerolog logger with the one structured line computeBestMove
// emits per call. Grounded on the negamax/alpha-beta solver's use of
// github.com/rs/zerolog/log throughout its search loop, rather than the
// teacher's own hand-rolled file writer.
type Logger struct {
	logger zerolog.Logger
}

// NewLogger wraps the global zerolog logger. Callers that want a dedicated
// sink can build one with zerolog.New and pass it via NewLoggerFrom.
func NewLogger() *Logger {
	return &Logger{logger: log.Logger}
}

func NewLoggerFrom(l zerolog.Logger) *Logger {
	return &Logger{logger: l}
}

// Result logs one computeBestMove call: strategy, depth chosen, nodes
// visited, and elapsed time. stats must not be nil.
func (l *Logger) Result(strategy Strategy, stats *Stats) {
	if l == nil {
		return
	}
	l.logger.Info().
		Str("strategy", strategy.String()).
		Int("depth", stats.Depth).
		Int64("nodes", stats.Nodes.Load()).
		Dur("elapsed", stats.Elapsed).
		Msg("computeBestMove")
}

// Pass logs the boundary case where no legal move exists at the root.
func (l *Logger) Pass(strategy Strategy) {
	if l == nil {
		return
	}
	l.logger.Info().Str("strategy", strategy.String()).Msg("no legal move at root, passing")
}
