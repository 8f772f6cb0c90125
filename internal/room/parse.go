package room

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

// ParseError describes a problem in a room file. Line is 1-based and zero
// when the problem is not tied to a line.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("room: %s:%d: %s", e.File, e.Line, e.Msg)
	}
	return fmt.Sprintf("room: %s: %s", e.File, e.Msg)
}

// Parse builds a room from the text of a room file: a 80x25 board followed
// by rule lines. Unknown board characters become blanks and produce a
// single warning.
func Parse(id int, name string, data []byte) (*Room, []string, error) {
	r := newRoom(id, name)
	var warnings []string

	fail := func(line int, format string, args ...any) (*Room, []string, error) {
		return nil, warnings, &ParseError{File: name, Line: line, Msg: fmt.Sprintf(format, args...)}
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for y := 0; y < core.GridHeight; y++ {
		if !sc.Scan() {
			return fail(0, "has too few lines (%d, need %d)", y, core.GridHeight)
		}
		line++
		row := []rune(strings.TrimRight(sc.Text(), "\r"))
		if len(row) < core.GridWidth {
			return fail(line, "is too short (%d characters, need %d)", len(row), core.GridWidth)
		}
		for x := 0; x < core.GridWidth; x++ {
			c := row[x]
			switch {
			case c == Anchor:
				if r.hasLegend {
					return fail(line, "multiple legend anchors found")
				}
				r.legend = core.NewRect(x, y, LegendWidth, LegendHeight)
				r.hasLegend = true
				c = Empty
			case !validBoardRune(c):
				if len(warnings) == 0 {
					warnings = append(warnings, fmt.Sprintf("%s: unknown characters were replaced with spaces", name))
				}
				c = Empty
			}
			r.board[y][x] = c
		}
	}
	if !r.hasLegend {
		return fail(0, "legend is missing")
	}

	r.buildObjects()
	if err := r.buildSprings(); err != nil {
		return fail(0, "%s", err)
	}
	r.buildObstacles()

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if err := r.applyRule(text); err != nil {
			return fail(line, "%s", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fail(0, "read: %s", err)
	}

	r.RefreshDoors()
	return r, warnings, nil
}

func (r *Room) buildObjects() {
	for y := 0; y < core.GridHeight; y++ {
		for x := 0; x < core.GridWidth; x++ {
			p := core.P(x, y)
			switch c := r.board[y][x]; {
			case IsDoorRune(c):
				r.Doors = append(r.Doors, Door{Pos: p, Dest: int(c - '0'), Rule: NoRule})
			case c == KeyRune:
				r.Keys = append(r.Keys, Key{Pos: p, DoorID: -1, Active: true})
			case c == BombRune:
				r.Bombs = append(r.Bombs, Bomb{Pos: p, Active: true})
			case c == SwitchOn || c == SwitchOff:
				r.Switches = append(r.Switches, Switch{Pos: p, DoorID: -1, On: c == SwitchOn})
			case c == TorchRune:
				r.Torches = append(r.Torches, Torch{Pos: p, Active: true})
			case c == RiddleRune:
				r.Riddles = append(r.Riddles, Riddle{Pos: p})
			}
		}
	}
}

// springBase reports whether p is the base of a spring and the direction
// it extends in.
func (r *Room) springBase(p core.Point) (core.Direction, bool) {
	for _, d := range [4]core.Direction{core.DirDown, core.DirUp, core.DirRight, core.DirLeft} {
		back := p.Next(d.Opposite())
		if back.InBounds() && r.IsWall(back) && r.IsSpring(p.Next(d)) {
			return d, true
		}
	}
	return core.DirStay, false
}

func (r *Room) buildSprings() error {
	used := mapset.New[core.Point]()
	for y := 0; y < core.GridHeight; y++ {
		for x := 0; x < core.GridWidth; x++ {
			base := core.P(x, y)
			if !r.IsSpring(base) || used.Has(base) {
				continue
			}
			dir, ok := r.springBase(base)
			if !ok {
				continue
			}
			size := 0
			for p := base; r.IsSpring(p); p = p.Next(dir) {
				used.Put(p)
				size++
			}
			r.Springs = append(r.Springs, Spring{Base: base, Dir: dir, FullSize: size, CurrSize: size})
		}
	}
	for y := 0; y < core.GridHeight; y++ {
		for x := 0; x < core.GridWidth; x++ {
			p := core.P(x, y)
			if !r.IsSpring(p) || used.Has(p) {
				continue
			}
			for _, d := range core.Cardinals {
				if n := p.Next(d); n.InBounds() && r.IsWall(n) {
					return fmt.Errorf("spring at %v must be at least 2 characters", p)
				}
			}
			return fmt.Errorf("spring character at %v is not attached to a wall", p)
		}
	}
	return nil
}

func (r *Room) buildObstacles() {
	var cells []core.Point
	for y := 0; y < core.GridHeight; y++ {
		for x := 0; x < core.GridWidth; x++ {
			if r.board[y][x] == Obstacle {
				cells = append(cells, core.P(x, y))
			}
		}
	}
	for _, body := range components(cells) {
		r.Obstacles = append(r.Obstacles, ObstacleBody{Cells: body})
	}
}

// applyRule parses one rule line and binds it to the objects it names.
func (r *Room) applyRule(text string) error {
	f := strings.Fields(text)
	switch f[0] {
	case "DOOR":
		v, err := ruleInts(f, "DOOR x y ID id OPEN o KEYS k RULE r", "", "", "ID", "", "OPEN", "", "KEYS", "", "RULE", "")
		if err != nil {
			return err
		}
		p := core.P(v[0], v[1])
		d := r.DoorAt(p)
		if d == nil {
			return fmt.Errorf("rule refers to non-existing door at %v", p)
		}
		if v[4] < 0 {
			return fmt.Errorf("door at %v needs a non-negative key count", p)
		}
		if v[5] < int(AllOn) || v[5] > int(NoRule) {
			return fmt.Errorf("door at %v has unknown switch rule %d", p, v[5])
		}
		d.ApplyRules(v[2], v[4], v[3] != 0, SwitchRule(v[5]))
	case "KEY":
		v, err := ruleInts(f, "KEY x y ID id", "", "", "ID", "")
		if err != nil {
			return err
		}
		p := core.P(v[0], v[1])
		i, ok := r.KeyAt(p)
		if !ok {
			return fmt.Errorf("rule refers to non-existing key at %v", p)
		}
		r.Keys[i].DoorID = v[2]
	case "SWITCH":
		v, err := ruleInts(f, "SWITCH x y ID id", "", "", "ID", "")
		if err != nil {
			return err
		}
		p := core.P(v[0], v[1])
		s := r.SwitchAt(p)
		if s == nil {
			return fmt.Errorf("rule refers to non-existing switch at %v", p)
		}
		s.DoorID = v[2]
	case "TELEPORT":
		v, err := ruleInts(f, "TELEPORT x1 y1 x2 y2", "", "", "", "")
		if err != nil {
			return err
		}
		return r.addTeleport(core.P(v[0], v[1]), core.P(v[2], v[3]))
	case "DARK":
		v, err := ruleInts(f, "DARK x1 y1 x2 y2", "", "", "", "")
		if err != nil {
			return err
		}
		r.DarkAreas = append(r.DarkAreas, core.RectFromCorners(core.P(v[0], v[1]), core.P(v[2], v[3])))
	default:
		return fmt.Errorf("unknown rule type: %s", text)
	}
	return nil
}

// ruleInts checks a rule's shape and returns its numeric fields. layout has
// one entry per field after the rule name: a keyword that must appear
// literally, or "" for an integer.
func ruleInts(f []string, usage string, layout ...string) ([]int, error) {
	if len(f) != len(layout)+1 {
		return nil, fmt.Errorf("invalid %s rule format (expected: %s)", f[0], usage)
	}
	var out []int
	for i, want := range layout {
		tok := f[i+1]
		if want != "" {
			if tok != want {
				return nil, fmt.Errorf("invalid %s rule format (expected: %s)", f[0], usage)
			}
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid %s rule format: %q is not a number", f[0], tok)
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *Room) addTeleport(a, b core.Point) error {
	for _, p := range []core.Point{a, b} {
		if !p.InBounds() {
			return fmt.Errorf("teleporter out of bounds at %v", p)
		}
		if r.At(p) != Teleport {
			return fmt.Errorf("no teleporter char at %v", p)
		}
	}
	if a == b {
		return fmt.Errorf("teleporter cannot point to itself")
	}
	for _, t := range r.Teleports {
		for _, p := range []core.Point{a, b} {
			if t.A == p || t.B == p {
				return fmt.Errorf("duplicate teleporter definition at %v", p)
			}
		}
	}
	r.Teleports = append(r.Teleports, TeleportPair{A: a, B: b})
	return nil
}
