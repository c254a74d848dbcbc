package solver

import (
	"errors"

	"github.com/go-ricrob/shortcutsolver/geom"
	"golang.org/x/exp/slices"
)

// Resulter is the outcome of a solver run.
type Resulter interface {
	// Solved reports whether a solution was found.
	Solved() bool
	// Moves returns the number of moves of the solution or -1 if there is none.
	Moves() int
	// Solution returns the configurations from start to goal, nil if there is no solution.
	Solution() []geom.Configuration
	// Steps returns the moves of the solution, nil if there is none.
	Steps() []Step
	// Minimal reports whether the search proved that no shorter solution exists.
	// A solution returned after the first shortcut or after the time bound
	// elapsed is legal but may not be the shortest.
	Minimal() bool
	// NumCalcMove returns the number of calculated moves.
	NumCalcMove() int
	// Err returns why no solution was found.
	Err() error
}

var _ Resulter = (*states)(nil)

var (
	// ErrNoSolution is returned if the search space within the move bound was exhausted.
	ErrNoSolution = errors.New("no solution found")
	// ErrDeadline is returned if the time bound elapsed before a solution was found.
	ErrDeadline = errors.New("deadline exceeded")

	errInconsistentState = errors.New("inconsistent state")
)

// Step is a single slide of one robot.
type Step struct {
	Robot    int
	From, To geom.Cell
}

// Direction returns the direction of the slide.
func (s Step) Direction() geom.Direction {
	d, ok := geom.DirectionTo(s.From, s.To)
	if !ok {
		panic(errInconsistentState)
	}
	return d
}

const noNode = -1

type node struct {
	cfg    geom.Configuration
	moves  int
	parent int // arena index, noNode for the start
}

// candidate is a node the goal can be reached from, either directly
// (finish == nil) or by following the approach chain.
type candidate struct {
	node   int
	finish *entry
	total  int
}

// states is the search tree. Nodes are stored in breadth first order so the
// arena doubles as queue.
type states struct {
	nodes    []node
	best     *candidate
	solution int
	minimal  bool
	err      error
}

func newStates(start geom.Configuration) *states {
	return &states{
		nodes:    []node{{cfg: start, parent: noNode}},
		solution: noNode,
	}
}

func (m *states) add(cfg geom.Configuration, moves, parent int) int {
	m.nodes = append(m.nodes, node{cfg: cfg, moves: moves, parent: parent})
	return len(m.nodes) - 1
}

// offer records c if it is better than the best candidate so far.
func (m *states) offer(c candidate) bool {
	if m.best != nil && m.best.total <= c.total {
		return false
	}
	m.best = &c
	return true
}

// finalize appends the approach chain of the best candidate to the tree.
func (m *states) finalize(targetIdx int) {
	if m.best == nil {
		if m.err == nil {
			m.err = ErrNoSolution
		}
		return
	}
	m.err = nil
	cur := m.best.node
	for e := m.best.finish; e != nil; e = e.next {
		n := m.nodes[cur]
		cur = m.add(n.cfg.With(targetIdx, e.cell), n.moves+1, cur)
	}
	m.solution = cur
}

func (m *states) Solved() bool { return m.solution != noNode }

// Moves returns the number of moves of the solution or -1 if there is none.
func (m *states) Moves() int {
	if !m.Solved() {
		return -1
	}
	return m.nodes[m.solution].moves
}

// Solution returns the configurations from start to goal.
func (m *states) Solution() []geom.Configuration {
	if !m.Solved() {
		return nil
	}
	var cfgs []geom.Configuration
	for idx := m.solution; idx != noNode; idx = m.nodes[idx].parent {
		cfgs = slices.Insert(cfgs, 0, m.nodes[idx].cfg)
	}
	return cfgs
}

// Steps returns the moves of the solution.
func (m *states) Steps() []Step {
	cfgs := m.Solution()
	if cfgs == nil {
		return nil
	}
	steps := make([]Step, 0, len(cfgs)-1)
	for i := 1; i < len(cfgs); i++ {
		idx, ok := cfgs[i-1].Diff(cfgs[i])
		if !ok {
			panic(errInconsistentState)
		}
		steps = append(steps, Step{Robot: idx, From: cfgs[i-1][idx], To: cfgs[i][idx]})
	}
	return steps
}

func (m *states) Minimal() bool { return m.minimal }

func (m *states) NumCalcMove() int { return len(m.nodes) - 1 }

// Err returns ErrNoSolution or ErrDeadline if no solution was found.
func (m *states) Err() error { return m.err }
