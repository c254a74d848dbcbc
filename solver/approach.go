package solver

import (
	"github.com/go-ricrob/shortcutsolver/geom"
)

// entry is a cell from which the target robot reaches the goal on its own.
// next is the cell the robot stops on after its next slide, nil for the goal.
type entry struct {
	cell  geom.Cell
	moves int
	next  *entry
}

// approach maps cells to the cheapest known way of sliding the target robot to the goal
// while all other robots stay where they are.
type approach map[geom.Cell]*entry

type approachItem struct {
	cell  geom.Cell
	moves int
	dir   geom.Direction // direction of the line, pointing away from next
	next  *entry
}

// newApproach builds the approach index for goal. obstacles must not contain the target robot.
func newApproach(oracle Oracle, goal geom.Cell, obstacles geom.Configuration) approach {
	a := approach{}
	if obstacles.Contains(goal) {
		return a
	}

	root := &entry{cell: goal}
	a[goal] = root

	var stack []approachItem
	for _, d := range geom.Directions {
		// a robot sliding back along d only stops on the goal if it can not pass it
		if oracle.IsConnected(goal, d, obstacles) && !oracle.IsConnected(goal, d.Opposite(), obstacles) {
			stack = append(stack, approachItem{cell: goal.Move(d), moves: 1, dir: d, next: root})
		}
	}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if e, ok := a[item.cell]; ok && e.moves <= item.moves {
			continue
		}
		e := &entry{cell: item.cell, moves: item.moves, next: item.next}
		a[item.cell] = e

		if oracle.IsConnected(item.cell, item.dir, obstacles) {
			stack = append(stack, approachItem{cell: item.cell.Move(item.dir), moves: item.moves, dir: item.dir, next: item.next})
		}

		// bounce: arrive perpendicular, get stopped here, continue along the line
		for _, perp := range item.dir.Perpendicular() {
			back := perp.Opposite()
			if !oracle.IsConnected(item.cell, perp, obstacles) && oracle.IsConnected(item.cell, back, obstacles) {
				stack = append(stack, approachItem{cell: item.cell.Move(back), moves: item.moves + 1, dir: back, next: e})
			}
		}
	}
	return a
}

// best returns the cheapest entry among cells, nil if none is part of the index.
func (a approach) best(cells []geom.Cell) *entry {
	var best *entry
	for _, c := range cells {
		if e, ok := a[c]; ok && (best == nil || e.moves < best.moves) {
			best = e
		}
	}
	return best
}
