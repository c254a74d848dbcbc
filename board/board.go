// Package board implements a rectangular Ricochet Robots board with walls.
// It answers the geometry questions the solver asks: where a robot stops after
// a slide and whether two neighbouring cells are connected.
package board

import (
	"errors"
	"fmt"

	"github.com/go-ricrob/shortcutsolver/geom"
)

// Target is a named goal cell printed on the board.
type Target struct {
	Name string
	Cell geom.Cell
}

// Board represents a board of width x height cells.
// The outer border is an implicit wall.
type Board struct {
	width, height int
	walls         []geom.Direction // per cell: blocked sides
	blocked       []bool           // per cell: inaccessible
	targets       []Target
}

// New returns an open board without internal walls.
func New(width, height int) *Board {
	return &Board{
		width:   width,
		height:  height,
		walls:   make([]geom.Direction, width*height),
		blocked: make([]bool, width*height),
	}
}

func (b *Board) Width() int { return b.width }

func (b *Board) Height() int { return b.height }

func (b *Board) idx(c geom.Cell) int { return c.Row*b.width + c.Col }

// Contains reports whether c lies on the board.
func (b *Board) Contains(c geom.Cell) bool {
	return c.Row >= 0 && c.Row < b.height && c.Col >= 0 && c.Col < b.width
}

// AddWall puts a wall on side d of cell c. The neighbouring cell gets the
// wall on its opposite side.
func (b *Board) AddWall(c geom.Cell, d geom.Direction) {
	b.walls[b.idx(c)] |= d
	if n := c.Move(d); b.Contains(n) {
		b.walls[b.idx(n)] |= d.Opposite()
	}
}

// HasWall reports whether side d of cell c is walled, including the border.
func (b *Board) HasWall(c geom.Cell, d geom.Direction) bool {
	return b.walls[b.idx(c)]&d != 0 || !b.Contains(c.Move(d))
}

// Block marks c as inaccessible.
func (b *Board) Block(c geom.Cell) { b.blocked[b.idx(c)] = true }

func (b *Board) IsBlocked(c geom.Cell) bool { return b.blocked[b.idx(c)] }

func (b *Board) AddTarget(name string, c geom.Cell) {
	b.targets = append(b.targets, Target{Name: name, Cell: c})
}

func (b *Board) Targets() []Target { return b.targets }

// Target returns the cell of the target called name.
func (b *Board) Target(name string) (geom.Cell, bool) {
	for _, t := range b.targets {
		if t.Name == name {
			return t.Cell, true
		}
	}
	return geom.Cell{}, false
}

// IsConnected reports whether a robot on c can step into the neighbouring
// cell in direction d: the neighbour is on the board, accessible, not
// separated by a wall and not occupied by any of robots.
func (b *Board) IsConnected(c geom.Cell, d geom.Direction, robots geom.Configuration) bool {
	if b.HasWall(c, d) {
		return false
	}
	n := c.Move(d)
	if b.IsBlocked(n) {
		return false
	}
	return !robots.Contains(n)
}

// Slide returns the cell a robot on c stops on when moving in direction d.
// The result equals c if the robot cannot move at all.
func (b *Board) Slide(c geom.Cell, d geom.Direction, robots geom.Configuration) geom.Cell {
	for b.IsConnected(c, d, robots) {
		c = c.Move(d)
	}
	return c
}

// Reachable returns every cell a robot on c can stop on after one slide.
// The origin is never part of the result.
func (b *Board) Reachable(c geom.Cell, robots geom.Configuration) []geom.Cell {
	dests := make([]geom.Cell, 0, len(geom.Directions))
	for _, d := range geom.Directions {
		dest := b.Slide(c, d, robots)
		if dest == c {
			continue
		}
		dests = append(dests, dest)
	}
	return dests
}

var (
	errTargetIdx = errors.New("target robot index out of range")
	errOverlap   = errors.New("robots overlap")
	errNoRobots  = errors.New("no robots")
	errOffBoard  = errors.New("cell is not on the board")
	errBlocked   = errors.New("cell is blocked")
)

// CheckCell returns an error if c is off the board or inaccessible.
func (b *Board) CheckCell(c geom.Cell) error {
	if !b.Contains(c) {
		return fmt.Errorf("%s: %w", c, errOffBoard)
	}
	if b.IsBlocked(c) {
		return fmt.Errorf("%s: %w", c, errBlocked)
	}
	return nil
}

// Validate checks the preconditions of a solve: robots on accessible cells
// without overlap, a valid target robot index and an accessible goal.
func (b *Board) Validate(robots geom.Configuration, targetIdx int, goal geom.Cell) error {
	if len(robots) == 0 {
		return errNoRobots
	}
	if targetIdx < 0 || targetIdx >= len(robots) {
		return fmt.Errorf("%d: %w", targetIdx, errTargetIdx)
	}
	for i, c := range robots {
		if err := b.CheckCell(c); err != nil {
			return fmt.Errorf("robot %d: %w", i, err)
		}
	}
	if !robots.Distinct() {
		return errOverlap
	}
	if err := b.CheckCell(goal); err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	return nil
}
