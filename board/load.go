package board

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ricrob/shortcutsolver/geom"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"
)

// Robot is a named robot with its start cell.
type Robot struct {
	Name string
	Cell geom.Cell
}

// Definition is a board together with the robots placed on it.
type Definition struct {
	Board  *Board
	Robots []Robot
}

// Configuration returns the start configuration of the robots.
func (d *Definition) Configuration() geom.Configuration {
	cfg := make(geom.Configuration, len(d.Robots))
	for i, r := range d.Robots {
		cfg[i] = r.Cell
	}
	return cfg
}

func (d *Definition) RobotIndex(name string) (int, bool) {
	for i, r := range d.Robots {
		if r.Name == name {
			return i, true
		}
	}
	return 0, false
}

type cellSpec struct {
	Row int `yaml:"row" hcl:"row"`
	Col int `yaml:"col" hcl:"col"`
}

type wallSpec struct {
	Row  int    `yaml:"row" hcl:"row"`
	Col  int    `yaml:"col" hcl:"col"`
	Side string `yaml:"side" hcl:"side"`
}

type namedSpec struct {
	Name string `yaml:"name" hcl:"name,label"`
	Row  int    `yaml:"row" hcl:"row"`
	Col  int    `yaml:"col" hcl:"col"`
}

// fileSpec is the schema shared by yaml and hcl board files.
type fileSpec struct {
	Version int         `yaml:"version" hcl:"version"`
	Width   int         `yaml:"width" hcl:"width"`
	Height  int         `yaml:"height" hcl:"height"`
	Walls   []wallSpec  `yaml:"walls" hcl:"wall,block"`
	Blocked []cellSpec  `yaml:"blocked" hcl:"blocked,block"`
	Targets []namedSpec `yaml:"targets" hcl:"target,block"`
	Robots  []namedSpec `yaml:"robots" hcl:"robot,block"`
}

// Load reads a board definition file. The format is chosen by extension:
// .yaml and .yml are yaml, .hcl and .json are hcl native and json syntax.
func Load(path string) (*Definition, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, src)
}

// Parse decodes a board definition; filename selects the format.
func Parse(filename string, src []byte) (*Definition, error) {
	var spec fileSpec
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(src, &spec); err != nil {
			return nil, fmt.Errorf("failed to decode board file %s: %w", filename, err)
		}
	case ".hcl", ".json":
		if err := hclsimple.Decode(filename, src, nil, &spec); err != nil {
			return nil, fmt.Errorf("failed to decode board file %s: %w", filename, err)
		}
	default:
		return nil, fmt.Errorf("unsupported board file extension %q", ext)
	}
	def, err := spec.build()
	if err != nil {
		return nil, fmt.Errorf("invalid board file %s: %w", filename, err)
	}
	return def, nil
}

// maxSize is the largest width or height a board file may declare.
const maxSize = 256

func (s *fileSpec) build() (*Definition, error) {
	if s.Version != 1 {
		return nil, fmt.Errorf("unsupported board version: %d", s.Version)
	}
	if s.Width <= 0 || s.Height <= 0 || s.Width > maxSize || s.Height > maxSize {
		return nil, fmt.Errorf("invalid board size %dx%d", s.Width, s.Height)
	}

	b := New(s.Width, s.Height)

	for _, w := range s.Walls {
		c := geom.Cell{Row: w.Row, Col: w.Col}
		if !b.Contains(c) {
			return nil, fmt.Errorf("wall %s: %w", c, errOffBoard)
		}
		d, err := geom.ParseDirection(w.Side)
		if err != nil {
			return nil, fmt.Errorf("wall %s: %w", c, err)
		}
		b.AddWall(c, d)
	}

	for _, bl := range s.Blocked {
		c := geom.Cell{Row: bl.Row, Col: bl.Col}
		if !b.Contains(c) {
			return nil, fmt.Errorf("blocked %s: %w", c, errOffBoard)
		}
		b.Block(c)
	}

	for _, t := range s.Targets {
		c := geom.Cell{Row: t.Row, Col: t.Col}
		if err := b.CheckCell(c); err != nil {
			return nil, fmt.Errorf("target %q: %w", t.Name, err)
		}
		if _, ok := b.Target(t.Name); ok {
			return nil, fmt.Errorf("duplicate target %q", t.Name)
		}
		b.AddTarget(t.Name, c)
	}

	def := &Definition{Board: b}
	for _, r := range s.Robots {
		c := geom.Cell{Row: r.Row, Col: r.Col}
		if err := b.CheckCell(c); err != nil {
			return nil, fmt.Errorf("robot %q: %w", r.Name, err)
		}
		if _, ok := def.RobotIndex(r.Name); ok {
			return nil, fmt.Errorf("duplicate robot %q", r.Name)
		}
		def.Robots = append(def.Robots, Robot{Name: r.Name, Cell: c})
	}
	if !def.Configuration().Distinct() {
		return nil, errOverlap
	}
	return def, nil
}
