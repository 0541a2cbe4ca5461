package scene

import "testing"

func TestFloat32ArraySetAt(t *testing.T) {
	a := NewFloat32Array(3, 2)
	a.Set(0, 0, 1)
	a.Set(0, 1, 2)
	a.Set(0, 2, 3)
	a.Set(1, 0, 4)
	if a.Len() != 2 || a.ItemSize() != 3 {
		t.Fatalf("Len/ItemSize = %d/%d, want 2/3", a.Len(), a.ItemSize())
	}
	if a.At(0, 1) != 2 {
		t.Fatalf("At(0,1) = %v, want 2", a.At(0, 1))
	}
	if a.At(1, 0) != 4 {
		t.Fatalf("At(1,0) = %v, want 4", a.At(1, 0))
	}
}

func TestUint16ArrayWrapsWideValues(t *testing.T) {
	a := NewUint16Array(1, 1)
	a.Set(0, 0, 70000)
	if a.At(0, 0) == 70000 {
		t.Fatalf("expected uint16 wraparound, got %v unchanged", a.At(0, 0))
	}
}

func TestArrayCloneIsIndependent(t *testing.T) {
	a := NewFloat32Array(1, 2)
	a.Set(0, 0, 1)
	clone := a.Clone()
	clone.Set(0, 0, 99)
	if a.At(0, 0) != 1 {
		t.Fatalf("mutating clone affected original: got %v", a.At(0, 0))
	}
}
