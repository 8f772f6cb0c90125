package room

import (
	"testing"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

func TestBombFuse(t *testing.T) {
	var b Bomb
	for i := 0; i < 10; i++ {
		if b.Tick() {
			t.Fatalf("Tick() on an unarmed bomb signalled detonation at tick %d", i)
		}
	}

	b.Arm(core.P(5, 5), 5)
	if b.Timer != 5 {
		t.Fatalf("Arm() timer = %d, expected 5", b.Timer)
	}
	for i := 1; i <= 4; i++ {
		if b.Tick() {
			t.Fatalf("Tick() detonated after %d ticks, expected 5", i)
		}
	}
	if !b.Tick() {
		t.Fatal("Tick() did not detonate on the 5th tick")
	}
	if b.Tick() {
		t.Error("Tick() detonated twice")
	}
}

func TestBombInactiveNeverDetonates(t *testing.T) {
	b := Bomb{Timer: 1, Ticking: true}
	if b.Tick() {
		t.Error("Tick() on an inactive bomb signalled detonation")
	}
}

func TestSpringReleaseForce(t *testing.T) {
	tests := []struct {
		name     string
		compress int
		expected int
	}{
		{"fully compressed", 3, 3},
		{"one link", 1, 1},
		{"untouched", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Spring{Base: core.P(1, 5), Dir: core.DirRight, FullSize: 3, CurrSize: 3}
			for i := 0; i < tc.compress; i++ {
				s.CurrSize--
			}
			if got := s.Release(); got != tc.expected {
				t.Errorf("Release() = %d, expected %d", got, tc.expected)
			}
			if s.CurrSize != s.FullSize {
				t.Errorf("CurrSize after Release() = %d, expected %d", s.CurrSize, s.FullSize)
			}
		})
	}
}

func TestSpringGeometry(t *testing.T) {
	s := Spring{Base: core.P(10, 1), Dir: core.DirDown, FullSize: 3, CurrSize: 3}

	if got := s.Tip(); got != core.P(10, 3) {
		t.Errorf("Tip() = %v, expected (10,3)", got)
	}
	if !s.Contains(core.P(10, 2)) || s.Contains(core.P(10, 4)) || s.Contains(core.P(11, 2)) {
		t.Error("Contains() does not match the extended links")
	}
	if !s.CompressedBy(core.DirUp) || s.CompressedBy(core.DirDown) || s.CompressedBy(core.DirLeft) {
		t.Error("CompressedBy() should only accept the direction opposite to the spring")
	}

	s.CurrSize = 0
	if got := s.Tip(); got != s.Base {
		t.Errorf("Tip() of a flat spring = %v, expected the base %v", got, s.Base)
	}
	if !s.Spans(core.P(10, 3)) {
		t.Error("Spans() should cover the full length of a compressed spring")
	}
}

func TestDoorNeedsKeysAndSwitches(t *testing.T) {
	d := Door{}
	d.ApplyRules(1, 2, false, AllOn)
	d.SwitchOK = true

	d.UseKey()
	if d.Ready() {
		t.Fatal("Ready() after one of two keys = true, expected false")
	}
	d.UseKey()
	if !d.Ready() {
		t.Fatal("Ready() after both keys with switches on = false, expected true")
	}

	d.SwitchOK = false
	if d.Ready() {
		t.Error("Ready() with switches off = true, expected false")
	}
	if !d.KeyOK {
		t.Error("KeyOK should stay latched once the keys are used")
	}
}

func TestDoorRules(t *testing.T) {
	var open Door
	open.ApplyRules(3, 0, true, NoRule)
	if !open.KeyOK || !open.SwitchOK || !open.Open {
		t.Errorf("ApplyRules(keys 0, NO_RULE, open) = %+v, expected both gates and open", open)
	}

	var gated Door
	gated.ApplyRules(3, 1, false, AllOff)
	if gated.KeyOK || gated.SwitchOK {
		t.Errorf("ApplyRules(keys 1, ALL_OFF) = %+v, expected both gates closed", gated)
	}
}

func TestRiddleCheck(t *testing.T) {
	q := Riddle{Question: "What has keys but no locks?", Answer: "Piano|Keyboard"}

	tests := []struct {
		answer   string
		expected bool
	}{
		{"piano", true},
		{"KEYBOARD", true},
		{"  Piano ", true},
		{"pian", false},
		{"", false},
		{"piano|keyboard", false},
	}
	for _, tc := range tests {
		if got := q.Check(tc.answer); got != tc.expected {
			t.Errorf("Check(%q) = %v, expected %v", tc.answer, got, tc.expected)
		}
	}
}

func TestBlastPatternOrder(t *testing.T) {
	rays := BlastPattern(core.P(10, 10), 3)
	if len(rays) != 9 {
		t.Fatalf("BlastPattern() returned %d rays, expected 9", len(rays))
	}
	if len(rays[0]) != 1 || rays[0][0] != core.P(10, 10) {
		t.Errorf("first ray = %v, expected the center only", rays[0])
	}
	expectedFirst := []core.Point{
		core.P(10, 9), core.P(10, 11), core.P(9, 10), core.P(11, 10),
		core.P(9, 9), core.P(11, 9), core.P(9, 11), core.P(11, 11),
	}
	for i, p := range expectedFirst {
		ray := rays[i+1]
		if len(ray) != 3 {
			t.Fatalf("ray %d has %d cells, expected 3", i+1, len(ray))
		}
		if ray[0] != p {
			t.Errorf("ray %d starts at %v, expected %v", i+1, ray[0], p)
		}
	}
	if last := rays[4][2]; last != core.P(13, 10) {
		t.Errorf("right ray ends at %v, expected (13,10)", last)
	}
}

func TestComponentsSplitsDisconnectedCells(t *testing.T) {
	cells := []core.Point{core.P(1, 1), core.P(2, 1), core.P(4, 1), core.P(4, 2)}
	got := components(cells)
	if len(got) != 2 {
		t.Fatalf("components() returned %d pieces, expected 2", len(got))
	}
	if len(got[0]) != 2 || len(got[1]) != 2 {
		t.Errorf("components() sizes = %d, %d, expected 2, 2", len(got[0]), len(got[1]))
	}
}
