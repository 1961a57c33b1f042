package xpath

import "testing"

func TestContext_FixedSize(t *testing.T) {
	c := NewContext(nil, nil, 1, 5)
	if c.Size() != 5 {
		t.Errorf("Size = %d, want 5", c.Size())
	}
}

func TestContext_LazySizeResolvesOnce(t *testing.T) {
	calls := 0
	c := NewLazySizeContext(nil, nil, 1, func() int {
		calls++
		return 7
	})
	for range 3 {
		if c.Size() != 7 {
			t.Fatalf("Size = %d, want 7", c.Size())
		}
	}
	if calls != 1 {
		t.Errorf("size fn ran %d times, want 1", calls)
	}
}

func TestContext_SetLazySize(t *testing.T) {
	c := NewContext(nil, nil, 1, 5)
	c.SetLazySize(func() int { return 9 })
	if c.Size() != 9 {
		t.Errorf("Size = %d, want 9", c.Size())
	}
	c.SetSize(2)
	if c.Size() != 2 {
		t.Errorf("Size = %d, want 2", c.Size())
	}
}

func TestContext_CloneResolvesIndependently(t *testing.T) {
	calls := 0
	c := NewLazySizeContext(nil, nil, 1, func() int {
		calls++
		return calls
	})
	cp := c.Clone()
	cp.Position = 2
	if c.Position != 1 {
		t.Errorf("clone mutated original position")
	}
	if c.Size() != 1 {
		t.Errorf("Size = %d, want 1", c.Size())
	}
	// The clone took the pending cell before the original resolved;
	// it resolves once for itself.
	if cp.Size() != 2 {
		t.Errorf("clone Size = %d, want 2", cp.Size())
	}
	if cp.Size() != 2 {
		t.Errorf("clone Size changed on re-read")
	}
}
