package engine

// Session holds the per-call configuration that the source kept as global
// mutable state (minMaxDepth, calculatedMoves, stat counters): the active
// strategy, an optional thread count for the parallel root split, and the
// optional logger/stats observers. Mirrors the teacher's engine.Session,
// generalized from per-game chess state to per-call search configuration.
type Session struct {
	Strategy Strategy
	Threads  int // 0 means no limit on concurrent errgroup.Group tasks
	Logger   *Logger
	Stats    *Stats
}

// NewSession builds a session for strategy with fresh stats and no logger.
func NewSession(strategy Strategy) *Session {
	return &Session{
		Strategy: strategy,
		Stats:    &Stats{},
	}
}

// SetLogger attaches a logger; nil disables logging.
func (s *Session) SetLogger(l *Logger) {
	s.Logger = l
}

// SetThreads caps the number of concurrent tasks the parallel root split
// may run at once. 0 (the default) leaves errgroup.Group unlimited.
func (s *Session) SetThreads(n int) {
	if n < 0 {
		n = 0
	}
	s.Threads = n
}
