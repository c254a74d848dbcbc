package board

import (
	"testing"

	"github.com/go-ricrob/shortcutsolver/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlide(t *testing.T) {
	b := New(5, 5)
	b.AddWall(geom.Cell{Row: 0, Col: 2}, geom.East)
	b.Block(geom.Cell{Row: 2, Col: 2})

	robots := geom.Configuration{{Row: 0, Col: 0}, {Row: 4, Col: 0}}

	tests := []struct {
		from geom.Cell
		dir  geom.Direction
		to   geom.Cell
	}{
		{geom.Cell{Row: 0, Col: 0}, geom.East, geom.Cell{Row: 0, Col: 2}},  // wall
		{geom.Cell{Row: 0, Col: 0}, geom.South, geom.Cell{Row: 3, Col: 0}}, // robot
		{geom.Cell{Row: 0, Col: 0}, geom.North, geom.Cell{Row: 0, Col: 0}}, // border
		{geom.Cell{Row: 0, Col: 4}, geom.West, geom.Cell{Row: 0, Col: 3}},  // wall from the other side
		{geom.Cell{Row: 4, Col: 2}, geom.North, geom.Cell{Row: 3, Col: 2}}, // blocked cell
		{geom.Cell{Row: 2, Col: 4}, geom.West, geom.Cell{Row: 2, Col: 3}},  // blocked cell
	}
	for _, test := range tests {
		assert.Equal(t, test.to, b.Slide(test.from, test.dir, robots), "%s %s", test.from, test.dir)
	}
}

func TestReachable(t *testing.T) {
	b := New(5, 5)
	robots := geom.Configuration{{Row: 0, Col: 0}, {Row: 0, Col: 3}}

	assert.ElementsMatch(t, []geom.Cell{{Row: 0, Col: 2}, {Row: 4, Col: 0}}, b.Reachable(robots[0], robots))
	assert.ElementsMatch(t, []geom.Cell{{Row: 0, Col: 1}, {Row: 0, Col: 4}, {Row: 4, Col: 3}}, b.Reachable(robots[1], robots))

	// a robot boxed in cannot move at all
	boxed := geom.Configuration{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}
	assert.Empty(t, b.Reachable(boxed[0], boxed))
}

func TestIsConnected(t *testing.T) {
	b := New(3, 3)
	b.AddWall(geom.Cell{Row: 1, Col: 1}, geom.North)
	robots := geom.Configuration{{Row: 1, Col: 2}}

	c := geom.Cell{Row: 1, Col: 1}
	assert.False(t, b.IsConnected(c, geom.North, robots), "wall")
	assert.False(t, b.IsConnected(geom.Cell{Row: 0, Col: 1}, geom.South, robots), "wall seen from the neighbour")
	assert.False(t, b.IsConnected(c, geom.East, robots), "robot")
	assert.True(t, b.IsConnected(c, geom.South, robots))
	assert.True(t, b.IsConnected(c, geom.West, robots))
	assert.False(t, b.IsConnected(geom.Cell{Row: 0, Col: 0}, geom.West, robots), "border")
	assert.True(t, b.IsConnected(c, geom.East, nil))
}

func TestValidate(t *testing.T) {
	b := New(4, 4)
	b.Block(geom.Cell{Row: 1, Col: 1})
	robots := geom.Configuration{{Row: 0, Col: 0}, {Row: 3, Col: 3}}
	goal := geom.Cell{Row: 2, Col: 2}

	require.NoError(t, b.Validate(robots, 1, goal))

	assert.ErrorIs(t, b.Validate(robots, 2, goal), errTargetIdx)
	assert.ErrorIs(t, b.Validate(robots, -1, goal), errTargetIdx)
	assert.ErrorIs(t, b.Validate(nil, 0, goal), errNoRobots)
	assert.ErrorIs(t, b.Validate(geom.Configuration{{Row: 0, Col: 0}, {Row: 0, Col: 0}}, 0, goal), errOverlap)
	assert.ErrorIs(t, b.Validate(geom.Configuration{{Row: 4, Col: 0}}, 0, goal), errOffBoard)
	assert.ErrorIs(t, b.Validate(geom.Configuration{{Row: 1, Col: 1}}, 0, goal), errBlocked)
	assert.ErrorIs(t, b.Validate(robots, 0, geom.Cell{Row: 1, Col: 1}), errBlocked)
	assert.ErrorIs(t, b.Validate(robots, 0, geom.Cell{Row: 0, Col: 9}), errOffBoard)
}

func TestRender(t *testing.T) {
	b := New(3, 2)
	b.AddWall(geom.Cell{Row: 0, Col: 0}, geom.East)
	b.AddWall(geom.Cell{Row: 0, Col: 2}, geom.South)
	b.Block(geom.Cell{Row: 1, Col: 0})

	want := "" +
		"+-+-+-+\n" +
		"|0|. 1|\n" +
		"+ + +-+\n" +
		"|# * .|\n" +
		"+-+-+-+\n"
	assert.Equal(t, want, b.Render(geom.Configuration{{Row: 0, Col: 0}, {Row: 0, Col: 2}}, geom.Cell{Row: 1, Col: 1}))
}
