// Package solver implements a breadth first Ricochet Robots solver.
//
// At every dequeued configuration the solver computes from which cells the
// target robot could finish on its own while all other robots stay put. If
// the target robot can slide onto one of these cells, the remaining moves
// are appended without further search.
package solver

import (
	"io"
	"log/slog"
	"time"

	"github.com/go-ricrob/shortcutsolver/geom"
	"github.com/go-ricrob/shortcutsolver/internal/packed"
)

// Default bounds.
const (
	DefaultMaxMoves = 20
	DefaultMaxTime  = 2 * time.Minute
)

// Oracle answers the geometry questions of the solver.
type Oracle interface {
	// Reachable returns the cells a robot on c can stop on after one slide.
	Reachable(c geom.Cell, robots geom.Configuration) []geom.Cell
	// IsConnected reports whether the neighbour of c in direction d is free.
	IsConnected(c geom.Cell, d geom.Direction, robots geom.Configuration) bool
}

// Runner runs a search.
type Runner interface {
	Run() Resulter
}

var _ Runner = (*solver)(nil)

type solver struct {
	oracle    Oracle
	start     geom.Configuration
	targetIdx int
	goal      geom.Cell

	maxMoves int
	maxTime  time.Duration
	now      func() time.Time
	logger   *slog.Logger
	visited  bool
	exact    bool
}

// Option configures a solver.
type Option func(s *solver)

// WithMaxMoves limits the depth of the search tree.
func WithMaxMoves(n int) Option { return func(s *solver) { s.maxMoves = n } }

// WithMaxTime limits the wall clock time of a run.
func WithMaxTime(d time.Duration) Option { return func(s *solver) { s.maxTime = d } }

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(s *solver) { s.now = now } }

// WithLogger sets the logger debug output is written to.
func WithLogger(logger *slog.Logger) Option { return func(s *solver) { s.logger = logger } }

// WithVisited enables a set of all seen configurations. Without it only the
// reversal of the last move is suppressed.
func WithVisited(visited bool) Option { return func(s *solver) { s.visited = visited } }

// WithExact keeps searching after the first shortcut was found until no
// shorter solution is possible.
func WithExact(exact bool) Option { return func(s *solver) { s.exact = exact } }

// New returns a solver moving robot targetIdx of start onto goal.
// Robots must be on distinct cells and targetIdx must be a valid index.
func New(oracle Oracle, start geom.Configuration, targetIdx int, goal geom.Cell, opts ...Option) Runner {
	s := &solver{
		oracle:    oracle,
		start:     start,
		targetIdx: targetIdx,
		goal:      goal,
		maxMoves:  DefaultMaxMoves,
		maxTime:   DefaultMaxTime,
		now:       time.Now,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the search.
func (s *solver) Run() Resulter {
	startTime := s.now()
	deadline := startTime.Add(s.maxTime)

	s.logger.Debug("solve", "robots", len(s.start), "target", s.targetIdx, "goal", s.goal, "maxMoves", s.maxMoves, "maxTime", s.maxTime, "visited", s.visited, "exact", s.exact)

	states := newStates(s.start)

	var seen packed.Set
	if s.visited {
		seen = packed.Set{}
		seen.Add(s.start)
	}

	level := 0
	for head := 0; head < len(states.nodes); head++ {
		n := states.nodes[head]

		if states.best != nil && n.moves >= states.best.total {
			break
		}

		if n.moves > level {
			level = n.moves
			s.logger.Debug("level", "moves", level, "queued", len(states.nodes)-head, "nodes", len(states.nodes))
		}

		if n.cfg[s.targetIdx] == s.goal {
			states.offer(candidate{node: head, total: n.moves})
			if !s.exact {
				break
			}
			continue
		}

		if !s.now().Before(deadline) {
			states.err = ErrDeadline
			break
		}

		if finish := s.shortcut(n.cfg); finish != nil {
			if states.offer(candidate{node: head, finish: finish, total: n.moves + 1 + finish.moves}) {
				s.logger.Debug("shortcut", "moves", n.moves, "total", states.best.total)
			}
			if !s.exact {
				break
			}
		}

		if n.moves >= s.maxMoves {
			continue
		}
		if states.best != nil && n.moves+1 >= states.best.total {
			continue
		}
		s.expand(states, head, seen)
	}

	interrupted := states.err == ErrDeadline
	states.finalize(s.targetIdx)

	if states.Solved() {
		// every solution up to maxMoves+1 moves ends with a shortcut from a node within the bound
		states.minimal = states.Moves() == 0 || (s.exact && !interrupted && states.Moves() <= s.maxMoves+1)
		if !states.minimal {
			s.logger.Debug("not proven minimal", "exact", s.exact, "deadline", interrupted)
		}
		s.logger.Debug("solved", "moves", states.Moves(), "minimal", states.minimal, "nodes", states.NumCalcMove(), "elapsed", s.now().Sub(startTime))
	} else {
		s.logger.Debug("no solution", "err", states.err, "nodes", states.NumCalcMove(), "elapsed", s.now().Sub(startTime))
	}
	return states
}

// shortcut returns the cheapest approach entry the target robot can slide to from cfg.
func (s *solver) shortcut(cfg geom.Configuration) *entry {
	idx := newApproach(s.oracle, s.goal, cfg.Without(s.targetIdx))
	return idx.best(s.oracle.Reachable(cfg[s.targetIdx], cfg))
}

func (s *solver) expand(states *states, head int, seen packed.Set) {
	n := states.nodes[head]

	var parent geom.Configuration
	if n.parent != noNode {
		parent = states.nodes[n.parent].cfg
	}

	for idx, c := range n.cfg {
		for _, dest := range s.oracle.Reachable(c, n.cfg) {
			if dest == c {
				continue
			}
			next := n.cfg.With(idx, dest)
			if parent != nil && next.Equal(parent) {
				continue
			}
			if seen != nil && !seen.Add(next) {
				continue
			}
			states.add(next, n.moves+1, head)
		}
	}
}
