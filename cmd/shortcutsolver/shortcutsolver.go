package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-ricrob/shortcutsolver/board"
	"github.com/go-ricrob/shortcutsolver/geom"
	"github.com/go-ricrob/shortcutsolver/solver"
)

const (
	exitError      = 1
	exitNoSolution = 2
)

var defaultRobots = []string{"red", "yellow", "green", "blue"}

// exitErr carries the exit code of a failed run.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

type config struct {
	boardPath string
	robot     string
	goal      string
	maxMoves  int
	maxTime   time.Duration
	visited   bool
	exact     bool
	logLevel  string
	logFormat string
	seed      int64
}

func parseFlags(args []string, outW io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("shortcutsolver", flag.ContinueOnError)
	fs.SetOutput(outW)
	fs.StringVar(&cfg.boardPath, "board", "", "board file path (.yaml, .yml, .hcl, .json)")
	fs.StringVar(&cfg.robot, "robot", "", "name of the robot to move onto the goal (default first robot)")
	fs.StringVar(&cfg.goal, "goal", "", "target name or row,col (default random target)")
	fs.IntVar(&cfg.maxMoves, "max-moves", solver.DefaultMaxMoves, "maximal number of moves")
	fs.DurationVar(&cfg.maxTime, "max-time", solver.DefaultMaxTime, "maximal time")
	fs.BoolVar(&cfg.visited, "visited", false, "skip configurations seen before")
	fs.BoolVar(&cfg.exact, "exact", true, "keep searching until the solution is known to be the shortest")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format (text, json)")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed (default current time)")
	fs.Usage = func() {
		fmt.Fprintln(outW, "Usage: shortcutsolver -board <file> [options]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.boardPath == "" {
		fs.Usage()
		return nil, errors.New("-board is required")
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// parseCell parses "row,col".
func parseCell(s string) (geom.Cell, bool) {
	row, col, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Cell{}, false
	}
	r, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil {
		return geom.Cell{}, false
	}
	c, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil {
		return geom.Cell{}, false
	}
	return geom.Cell{Row: r, Col: c}, true
}

// placeRobots puts the default robots on random accessible cells without target.
func placeRobots(def *board.Definition, rnd *rand.Rand) error {
	b := def.Board
	targets := map[geom.Cell]bool{}
	for _, t := range b.Targets() {
		targets[t.Cell] = true
	}
	var free []geom.Cell
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			if c := (geom.Cell{Row: row, Col: col}); !b.IsBlocked(c) && !targets[c] {
				free = append(free, c)
			}
		}
	}
	if len(free) < len(defaultRobots) {
		return errors.New("board too small for random robots")
	}
	rnd.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	for i, name := range defaultRobots {
		def.Robots = append(def.Robots, board.Robot{Name: name, Cell: free[i]})
	}
	return nil
}

func selectGoal(b *board.Board, goal string, rnd *rand.Rand) (geom.Cell, string, error) {
	if goal == "" {
		targets := b.Targets()
		if len(targets) == 0 {
			return geom.Cell{}, "", errors.New("board has no targets, use -goal row,col")
		}
		t := targets[rnd.Intn(len(targets))]
		return t.Cell, t.Name, nil
	}
	if c, ok := b.Target(goal); ok {
		return c, goal, nil
	}
	if c, ok := parseCell(goal); ok {
		return c, c.String(), nil
	}
	return geom.Cell{}, "", fmt.Errorf("unknown goal %q", goal)
}

func selectRobot(def *board.Definition, name string, random bool, rnd *rand.Rand) (int, error) {
	if name == "" {
		if random {
			return rnd.Intn(len(def.Robots)), nil
		}
		return 0, nil
	}
	idx, ok := def.RobotIndex(name)
	if !ok {
		return 0, fmt.Errorf("unknown robot %q", name)
	}
	return idx, nil
}

func solve(outW, logW io.Writer, cfg *config) error {
	logger, err := newLogger(cfg.logLevel, cfg.logFormat, logW)
	if err != nil {
		return err
	}
	rnd := rand.New(rand.NewSource(cfg.seed))

	def, err := board.Load(cfg.boardPath)
	if err != nil {
		return err
	}
	b := def.Board

	randomRobots := len(def.Robots) == 0
	if randomRobots {
		logger.Info("board file contains no robots, placing them randomly", "seed", cfg.seed)
		if err := placeRobots(def, rnd); err != nil {
			return err
		}
	}

	targetIdx, err := selectRobot(def, cfg.robot, randomRobots, rnd)
	if err != nil {
		return err
	}
	goal, goalName, err := selectGoal(b, cfg.goal, rnd)
	if err != nil {
		return err
	}

	start := def.Configuration()
	if err := b.Validate(start, targetIdx, goal); err != nil {
		return err
	}

	fmt.Fprintf(outW, "Searching solution for robot %s (%c) to %s on board:\n", def.Robots[targetIdx].Name, board.RobotChar(targetIdx), goalName)
	fmt.Fprint(outW, b.Render(start, goal))
	fmt.Fprintf(outW, "Maximal number of moves: %d; maximal execution time: %s.\n\n", cfg.maxMoves, cfg.maxTime)

	begin := time.Now()
	result := solver.New(b, start, targetIdx, goal,
		solver.WithMaxMoves(cfg.maxMoves),
		solver.WithMaxTime(cfg.maxTime),
		solver.WithVisited(cfg.visited),
		solver.WithExact(cfg.exact),
		solver.WithLogger(logger),
	).Run()
	elapsed := time.Since(begin)

	logger.Info("search finished", "solved", result.Solved(), "numCalcMove", result.NumCalcMove(), "elapsed", elapsed)

	if !result.Solved() {
		return &exitErr{
			code: exitNoSolution,
			msg:  fmt.Sprintf("No solution found with %d moves or aborted after %s: %v.", cfg.maxMoves, elapsed, result.Err()),
		}
	}

	fmt.Fprintf(outW, "Found solution in %s with %d moves.\n", elapsed, result.Moves())
	if !result.Minimal() {
		fmt.Fprintln(outW, "A shorter solution may exist.")
	}
	cfgs := result.Solution()
	for i, step := range result.Steps() {
		fmt.Fprintf(outW, "\n%d. %s %s %s -> %s\n", i+1, def.Robots[step.Robot].Name, step.Direction(), step.From, step.To)
		fmt.Fprint(outW, b.Render(cfgs[i+1], goal))
	}
	return nil
}

// run parses args and solves; it is split from main for testing.
func run(outW, logW io.Writer, args []string) error {
	cfg, err := parseFlags(args, outW)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	return solve(outW, logW, cfg)
}

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var e *exitErr
		if errors.As(err, &e) {
			fmt.Fprintln(os.Stderr, e.msg)
			os.Exit(e.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}
}
