package room

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

// RemoveBombAt removes the bomb at p and reports whether there was one.
func (r *Room) RemoveBombAt(p core.Point) bool {
	i, ok := r.BombAt(p)
	if !ok {
		return false
	}
	r.Bombs[i].Active = false
	r.Bombs[i].Ticking = false
	r.Erase(p)
	return true
}

// RemoveObjectsAt destroys whatever object sits on p and clears the cell.
// It reports whether anything besides the board character was removed.
func (r *Room) RemoveObjectsAt(p core.Point) bool {
	removed := false
	for i := range r.Doors {
		if d := &r.Doors[i]; !d.Removed && d.Pos == p {
			d.Removed = true
			removed = true
		}
	}
	if i, ok := r.KeyAt(p); ok {
		r.Keys[i].Active = false
		r.Keys[i].Removed = true
		removed = true
	}
	if s := r.SwitchAt(p); s != nil {
		s.Removed = true
		removed = true
	}
	if q := r.RiddleAt(p); q != nil {
		q.Solved = true
		removed = true
	}
	if i, ok := r.TorchAt(p); ok {
		r.Torches[i].Active = false
		r.Torches[i].Removed = true
		removed = true
	}
	removed = r.removeTeleportAt(p) || removed
	removed = r.removeSpringAt(p) || removed
	removed = r.removeObstacleAt(p) || removed
	r.Erase(p)
	return removed
}

func (r *Room) removeTeleportAt(p core.Point) bool {
	removed := false
	for i := range r.Teleports {
		t := &r.Teleports[i]
		if t.Removed || (t.A != p && t.B != p) {
			continue
		}
		t.Removed = true
		r.Erase(t.A)
		r.Erase(t.B)
		removed = true
	}
	return removed
}

// removeSpringAt cuts the spring at p. Hitting the base removes the whole
// spring, hitting a link keeps the part between the base and the hit.
func (r *Room) removeSpringAt(p core.Point) bool {
	s := r.SpringAt(p)
	if s == nil {
		return false
	}
	hit := s.linkIndex(p)
	for i := hit; i < s.CurrSize; i++ {
		r.Erase(s.LinkPos(i))
	}
	if hit == 0 {
		s.Removed = true
		s.CurrSize = 0
		return true
	}
	s.FullSize = hit
	s.CurrSize = hit
	return true
}

// removeObstacleAt drops the cell p from its obstacle and splits what is
// left into 4-connected pieces.
func (r *Room) removeObstacleAt(p core.Point) bool {
	o := r.ObstacleAt(p)
	if o == nil {
		return false
	}
	rest := make([]core.Point, 0, len(o.Cells)-1)
	for _, c := range o.Cells {
		if c != p {
			rest = append(rest, c)
		}
	}
	o.Removed = true
	r.Erase(p)
	for _, cells := range components(rest) {
		r.Obstacles = append(r.Obstacles, ObstacleBody{Cells: cells})
	}
	return true
}

// components groups cells into 4-connected pieces, in the order their
// first cell appears.
func components(cells []core.Point) [][]core.Point {
	member := mapset.New[core.Point]()
	for _, c := range cells {
		member.Put(c)
	}
	visited := mapset.New[core.Point]()
	var out [][]core.Point
	for _, start := range cells {
		if visited.Has(start) {
			continue
		}
		var body []core.Point
		stack := []core.Point{start}
		visited.Put(start)
		for len(stack) > 0 {
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			body = append(body, c)
			for _, d := range core.Cardinals {
				n := c.Next(d)
				if member.Has(n) && !visited.Has(n) {
					visited.Put(n)
					stack = append(stack, n)
				}
			}
		}
		out = append(out, body)
	}
	return out
}
