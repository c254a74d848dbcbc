// Package packed provides a memory efficient representation of robot configurations.
package packed

import (
	"fmt"

	"github.com/go-ricrob/shortcutsolver/geom"
)

// MaxDim is the largest number of rows or columns a packable board can have.
const MaxDim = 1 << 16

const cellSize = 4

// Key is a compressed representation of a configuration usable as map key.
// Every robot takes four bytes: row and column, big endian.
type Key string

// Pack returns the packed representation of cfg.
// It panics if a cell lies outside [0, MaxDim).
func Pack(cfg geom.Configuration) Key {
	b := make([]byte, cellSize*len(cfg))
	for i, c := range cfg {
		if c.Row < 0 || c.Row >= MaxDim || c.Col < 0 || c.Col >= MaxDim {
			panic(fmt.Sprintf("packed: cell %s out of range", c))
		}
		p := b[cellSize*i:]
		p[0], p[1] = byte(c.Row>>8), byte(c.Row)
		p[2], p[3] = byte(c.Col>>8), byte(c.Col)
	}
	return Key(b)
}

func (k Key) NumRobot() int { return len(k) / cellSize }

// Robot returns the cell of robot idx.
func (k Key) Robot(idx int) geom.Cell {
	p := k[cellSize*idx:]
	return geom.Cell{
		Row: int(p[0])<<8 | int(p[1]),
		Col: int(p[2])<<8 | int(p[3]),
	}
}

func (k Key) Unpack() geom.Configuration {
	cfg := make(geom.Configuration, k.NumRobot())
	for i := range cfg {
		cfg[i] = k.Robot(i)
	}
	return cfg
}

// Set is a set of packed configurations.
type Set map[Key]struct{}

// Add adds cfg to the set and reports whether it was not yet present.
func (s Set) Add(cfg geom.Configuration) bool {
	k := Pack(cfg)
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = struct{}{}
	return true
}
