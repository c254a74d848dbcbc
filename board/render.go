package board

import (
	"strings"

	"github.com/go-ricrob/shortcutsolver/geom"
)

const (
	emptyChar   = '.'
	blockedChar = '#'
	goalChar    = '*'
)

const robotChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// RobotChar returns the character used to print robot idx.
func RobotChar(idx int) byte {
	if idx < 0 || idx >= len(robotChars) {
		return '?'
	}
	return robotChars[idx]
}

// Render returns a text picture of the board with robots and goal.
// Robots are printed by index, walls as '|' and '-'.
func (b *Board) Render(robots geom.Configuration, goal geom.Cell) string {
	var sb strings.Builder

	horizontal := func(row int) {
		sb.WriteByte('+')
		for col := 0; col < b.width; col++ {
			if row < 0 || b.HasWall(geom.Cell{Row: row, Col: col}, geom.South) {
				sb.WriteByte('-')
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteByte('+')
		}
		sb.WriteByte('\n')
	}

	horizontal(-1)
	for row := 0; row < b.height; row++ {
		sb.WriteByte('|')
		for col := 0; col < b.width; col++ {
			c := geom.Cell{Row: row, Col: col}
			sb.WriteByte(b.glyph(c, robots, goal))
			if b.HasWall(c, geom.East) {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
		horizontal(row)
	}
	return sb.String()
}

func (b *Board) glyph(c geom.Cell, robots geom.Configuration, goal geom.Cell) byte {
	for i, r := range robots {
		if r == c {
			return RobotChar(i)
		}
	}
	switch {
	case b.IsBlocked(c):
		return blockedChar
	case c == goal:
		return goalChar
	default:
		return emptyChar
	}
}
