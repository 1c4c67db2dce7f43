package gridmodel

import "golang.org/x/exp/slices"

// Path is a finite ordered sequence of distinct cells where consecutive
// cells are 8-neighbors. Distinctness is a property of the whole path.
type Path []Cell

// Spell returns the word spelled by walking path over g.
func (p Path) Spell(g *Grid) string {
	buf := make([]byte, len(p))
	for i, c := range p {
		buf[i] = byte(g.At(c))
	}
	return string(buf)
}

// Clone deep-copies the path. The solver's best-so-far snapshot must
// clone every candidate's path, otherwise a later backtrack mutates the
// "best" copy out from under it.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// IsSimple8Path reports whether consecutive cells are 8-neighbors and no
// cell repeats. Used by tests to assert invariant E1 of spec.md.
func (p Path) IsSimple8Path(g *Grid) bool {
	if len(p) == 0 {
		return false
	}
	seen := make(map[Cell]bool, len(p))
	for i, c := range p {
		if !g.InBounds(c) {
			return false
		}
		if seen[c] {
			return false
		}
		seen[c] = true
		if i > 0 {
			dr := c.Row - p[i-1].Row
			dc := c.Col - p[i-1].Col
			if dr < -1 || dr > 1 || dc < -1 || dc > 1 || (dr == 0 && dc == 0) {
				return false
			}
		}
	}
	return true
}
