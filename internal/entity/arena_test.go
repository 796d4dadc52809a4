package entity

import "testing"

func TestArenaHandlesAreStableAndDistinct(t *testing.T) {
	a := NewArena()
	h1 := a.Add(NewObject("a", Position{}, Constant, nil, nil))
	h2 := a.Add(NewObject("b", Position{}, Constant, nil, nil))
	if h1 == h2 {
		t.Fatal("handles for distinct Add calls must be distinct")
	}
	h3 := a.Add(NewObject("c", Position{}, Constant, nil, nil))
	if a.Get(h1).Designator() != "a" || a.Get(h2).Designator() != "b" || a.Get(h3).Designator() != "c" {
		t.Fatal("earlier handles must keep dereferencing to the entity they were issued for, even after later Add calls (invariant I1)")
	}
}

func TestInvalidHandleSentinelNeverIssuedByAdd(t *testing.T) {
	a := NewArena()
	for i := 0; i < 8; i++ {
		h := a.Add(NewObject(Designator(string(rune('a'+i))), Position{}, Constant, nil, nil))
		if h == InvalidHandle {
			t.Fatalf("Add issued the InvalidHandle sentinel at index %d", i)
		}
	}
}

func TestEveryEntityCarriesDesignatorAndPosition(t *testing.T) {
	pos := Position{Line: 3, Column: 7}
	a := NewArena()
	h := a.Add(NewObject("sig", pos, Signal, nil, nil))
	e := a.Get(h)
	if e.Designator() != "sig" {
		t.Errorf("designator = %q, want %q", e.Designator(), "sig")
	}
	if e.Pos() != pos {
		t.Errorf("pos = %v, want %v", e.Pos(), pos)
	}
}

func TestHandleStringIsStableFormat(t *testing.T) {
	if got, want := Handle(3).String(), "#3"; got != want {
		t.Errorf("Handle(3).String() = %q, want %q", got, want)
	}
}
