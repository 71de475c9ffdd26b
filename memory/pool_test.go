package memory

import "testing"

type thing struct {
	id int
}

func TestPoolRecycle(t *testing.T) {
	p := NewPool(func() *thing { return &thing{} })
	a := p.Get()
	if a == nil {
		t.Fatal("Get from fresh pool returned nil")
	}
	a.id = 7
	p.Put(a)
	b := p.Get()
	if b == nil {
		t.Fatal("Get after Put returned nil")
	}
}

func TestFixedPoolExhaustAndReuse(t *testing.T) {
	p := NewFixedPool[thing](2)
	if p.Cap() != 2 || p.Free() != 2 {
		t.Fatalf("fresh pool: cap=%d free=%d", p.Cap(), p.Free())
	}

	a, b := p.Get(), p.Get()
	if a == nil || b == nil || a == b {
		t.Fatal("expected two distinct objects from the slab")
	}
	if p.Get() != nil {
		t.Error("expected nil from an exhausted pool")
	}
	if p.Free() != 0 {
		t.Errorf("exhausted pool reports %d free", p.Free())
	}

	p.Put(a)
	if p.Free() != 1 {
		t.Errorf("expected 1 free after Put, got %d", p.Free())
	}
	if c := p.Get(); c != a {
		t.Error("expected the returned object to be reissued")
	}
}

func TestFixedPoolInvalidCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-positive capacity")
		}
	}()
	NewFixedPool[thing](0)
}
