package gridmodel

import "golang.org/x/exp/slices"

// OccupancyMask is a bitset over a grid's R*C cells, used to mark cells
// already claimed by placed words. A bitset is preferred over a
// string-keyed set for speed; spec is agnostic about the representation
// (see DESIGN.md).
type OccupancyMask struct {
	bits []uint64
	size int
}

// NewOccupancyMask returns an empty mask sized for the given cell count.
func NewOccupancyMask(cellCount int) OccupancyMask {
	return OccupancyMask{
		bits: make([]uint64, (cellCount+63)/64),
		size: cellCount,
	}
}

// Set marks index as occupied.
func (m OccupancyMask) Set(index int) {
	m.bits[index/64] |= 1 << uint(index%64)
}

// Clear marks index as free.
func (m OccupancyMask) Clear(index int) {
	m.bits[index/64] &^= 1 << uint(index%64)
}

// Has reports whether index is occupied.
func (m OccupancyMask) Has(index int) bool {
	return m.bits[index/64]&(1<<uint(index%64)) != 0
}

// Count returns the number of occupied cells (the coverage count).
func (m OccupancyMask) Count() int {
	n := 0
	for _, w := range m.bits {
		for w != 0 {
			w &= w - 1
			n++
		}
	}
	return n
}

// Full reports whether every one of the mask's cells is occupied.
func (m OccupancyMask) Full() bool {
	return m.Count() == m.size
}

// Clone deep-copies the mask. Required whenever a snapshot must survive
// later in-place mutation of the original (e.g. the solver's best-so-far).
func (m OccupancyMask) Clone() OccupancyMask {
	return OccupancyMask{bits: slices.Clone(m.bits), size: m.size}
}

// Union returns a new mask with the bits of both m and other set.
func (m OccupancyMask) Union(other OccupancyMask) OccupancyMask {
	out := m.Clone()
	for i, w := range other.bits {
		out.bits[i] |= w
	}
	return out
}

// SetPath marks every cell of path (by flat grid index) as occupied.
func (m OccupancyMask) SetPath(g *Grid, path Path) {
	for _, c := range path {
		m.Set(g.Index(c))
	}
}

// ClearPath marks every cell of path (by flat grid index) as free.
func (m OccupancyMask) ClearPath(g *Grid, path Path) {
	for _, c := range path {
		m.Clear(g.Index(c))
	}
}

// HasCell reports whether c is occupied.
func (m OccupancyMask) HasCell(g *Grid, c Cell) bool {
	return m.Has(g.Index(c))
}

// DisjointFromPath reports whether no cell of path is occupied in m.
func (m OccupancyMask) DisjointFromPath(g *Grid, path Path) bool {
	for _, c := range path {
		if m.HasCell(g, c) {
			return false
		}
	}
	return true
}
