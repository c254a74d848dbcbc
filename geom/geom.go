// Package geom provides the value types the solver works on: cells, directions and robot configurations.
package geom

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Cell is a board position.
type Cell struct {
	Row, Col int
}

// Move returns the neighbour of c in direction d.
func (c Cell) Move(d Direction) Cell {
	dr, dc := d.Offset()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Direction is one of the four cardinal directions.
// Directions are bit flags so that sets of directions (walls) fit into one byte.
type Direction uint8

// Directions.
const (
	North Direction = 1 << iota
	East
	South
	West
)

// Directions lists all directions in a fixed order.
var Directions = [4]Direction{North, East, South, West}

func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		panic("invalid direction")
	}
}

// Perpendicular returns the two directions at a right angle to d.
func (d Direction) Perpendicular() [2]Direction {
	switch d {
	case North, South:
		return [2]Direction{East, West}
	case East, West:
		return [2]Direction{North, South}
	default:
		panic("invalid direction")
	}
}

// Offset returns the row and column delta of one step in direction d.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		panic("invalid direction")
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// DirectionTo returns the direction of a straight line from one cell to another.
// ok is false if both cells are equal or do not share a row or column.
func DirectionTo(from, to Cell) (d Direction, ok bool) {
	switch {
	case from == to:
		return 0, false
	case from.Col == to.Col && to.Row < from.Row:
		return North, true
	case from.Col == to.Col:
		return South, true
	case from.Row == to.Row && to.Col > from.Col:
		return East, true
	case from.Row == to.Row:
		return West, true
	}
	return 0, false
}

// ParseDirection converts north, east, south or west into a Direction.
// The short forms n, e, s, w and up, right, down, left are accepted as well.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "north", "n", "up":
		return North, nil
	case "east", "e", "right":
		return East, nil
	case "south", "s", "down":
		return South, nil
	case "west", "w", "left":
		return West, nil
	}
	return 0, fmt.Errorf("invalid direction %q", s)
}

// Configuration holds the cell of every robot; the index is the robot identity.
// A configuration is never modified after construction.
type Configuration []Cell

// With returns a copy of cfg where robot idx is moved to c.
func (cfg Configuration) With(idx int, c Cell) Configuration {
	next := slices.Clone(cfg)
	next[idx] = c
	return next
}

// Without returns a copy of cfg without robot idx.
func (cfg Configuration) Without(idx int) Configuration {
	next := make(Configuration, 0, len(cfg)-1)
	next = append(next, cfg[:idx]...)
	return append(next, cfg[idx+1:]...)
}

// Equal reports whether both configurations place every robot on the same cell.
func (cfg Configuration) Equal(other Configuration) bool { return slices.Equal(cfg, other) }

func (cfg Configuration) Contains(c Cell) bool { return slices.Contains(cfg, c) }

// Distinct reports whether no two robots share a cell.
func (cfg Configuration) Distinct() bool {
	seen := make(map[Cell]struct{}, len(cfg))
	for _, c := range cfg {
		if _, ok := seen[c]; ok {
			return false
		}
		seen[c] = struct{}{}
	}
	return true
}

// Diff returns the index of the single robot whose cell differs between cfg and next.
// ok is false if none or more than one robot moved.
func (cfg Configuration) Diff(next Configuration) (idx int, ok bool) {
	if len(cfg) != len(next) {
		return 0, false
	}
	idx = -1
	for i := range cfg {
		if cfg[i] == next[i] {
			continue
		}
		if idx != -1 {
			return 0, false
		}
		idx = i
	}
	return idx, idx != -1
}
