package ui

import "testing"

func TestPoolAllocGetFree(t *testing.T) {
	p := NewPool[int]()

	h := p.Alloc()
	if h == 0 {
		t.Fatal("Alloc should never hand out the reserved sentinel handle 0")
	}

	*p.Get(h) = 42
	if got := *p.Get(h); got != 42 {
		t.Errorf("Get(h) = %d, want 42", got)
	}

	p.Free(h)
	if p.Get(h) != nil {
		t.Error("Get on a freed handle should return nil")
	}
	if p.Valid(h) {
		t.Error("Valid on a freed handle should be false")
	}
}

func TestPoolReusesFreedSlots(t *testing.T) {
	p := NewPool[int]()

	h1 := p.Alloc()
	p.Free(h1)
	h2 := p.Alloc()

	if h1 != h2 {
		t.Errorf("Alloc after Free should reuse the freelist slot: h1=%v h2=%v", h1, h2)
	}
}

func TestPoolZeroHandleIsInvalid(t *testing.T) {
	p := NewPool[int]()
	if p.Valid(0) {
		t.Error("handle 0 is the reserved sentinel and must never be valid")
	}
	if p.Get(0) != nil {
		t.Error("Get(0) must return nil")
	}
}
