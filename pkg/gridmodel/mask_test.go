package gridmodel

import "testing"

func TestOccupancyMaskSetClearHas(t *testing.T) {
	m := NewOccupancyMask(100)
	if m.Has(42) {
		t.Fatal("fresh mask should have no bits set")
	}
	m.Set(42)
	if !m.Has(42) {
		t.Fatal("Set(42) then Has(42) should be true")
	}
	m.Clear(42)
	if m.Has(42) {
		t.Fatal("Clear(42) then Has(42) should be false")
	}
}

func TestOccupancyMaskCountAndFull(t *testing.T) {
	m := NewOccupancyMask(4)
	if m.Full() {
		t.Fatal("empty mask should not be full")
	}
	for i := 0; i < 4; i++ {
		m.Set(i)
	}
	if m.Count() != 4 {
		t.Fatalf("Count() = %d, want 4", m.Count())
	}
	if !m.Full() {
		t.Fatal("mask with every cell set should be Full")
	}
}

func TestOccupancyMaskCloneIsIndependent(t *testing.T) {
	m := NewOccupancyMask(10)
	m.Set(3)
	clone := m.Clone()
	clone.Set(7)

	if m.Has(7) {
		t.Fatal("mutating a clone must not affect the original mask")
	}
	if !clone.Has(3) {
		t.Fatal("clone should retain bits set before cloning")
	}
}

func TestOccupancyMaskPathHelpers(t *testing.T) {
	g, err := NewGrid([][]byte{{'A', 'B'}, {'C', 'D'}})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	m := NewOccupancyMask(g.Size())
	path := Path{{0, 0}, {0, 1}}

	if !m.DisjointFromPath(g, path) {
		t.Fatal("fresh mask should be disjoint from any path")
	}
	m.SetPath(g, path)
	if m.DisjointFromPath(g, path) {
		t.Fatal("mask should no longer be disjoint after SetPath")
	}
	if m.Count() != 2 {
		t.Fatalf("Count() after SetPath = %d, want 2", m.Count())
	}
	m.ClearPath(g, path)
	if m.Count() != 0 {
		t.Fatalf("Count() after ClearPath = %d, want 0", m.Count())
	}
}
