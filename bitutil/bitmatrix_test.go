package bitutil

import "testing"

func TestBitMatrixGetSet(t *testing.T) {
	bm := NewBitMatrixWithSize(10, 10)
	bm.Set(3, 5)
	if !bm.Get(3, 5) {
		t.Error("bit (3,5) should be set")
	}
	if bm.Get(5, 3) {
		t.Error("bit (5,3) should not be set")
	}
}

func TestBitMatrixUnset(t *testing.T) {
	bm := NewBitMatrixWithSize(4, 4)
	bm.Set(2, 3)
	bm.Unset(2, 3)
	if bm.Get(2, 3) {
		t.Error("bit should be unset")
	}
}

func TestBitMatrixRow(t *testing.T) {
	bm := NewBitMatrixWithSize(40, 4)
	bm.Set(3, 2)
	bm.Set(35, 2)
	bm.Set(4, 1)
	row := bm.Row(2, nil)
	if !row.Get(3) || !row.Get(35) {
		t.Error("row should have bits 3 and 35 set")
	}
	if row.Get(4) {
		t.Error("row bit 4 should not be set")
	}

	reused := bm.Row(1, row)
	if reused != row {
		t.Error("Row should reuse a large enough BitArray")
	}
	if !reused.Get(4) || reused.Get(3) || reused.Get(35) {
		t.Errorf("reused row = %s", reused)
	}
}

func TestBitMatrixCount(t *testing.T) {
	bm := NewBitMatrixWithSize(33, 3)
	bm.Set(0, 0)
	bm.Set(32, 0)
	bm.Set(16, 2)
	if got := bm.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}

func TestBitMatrixString(t *testing.T) {
	bm := NewBitMatrixWithSize(2, 2)
	bm.Set(0, 0)
	bm.Set(1, 1)
	want := "X   \n  X \n"
	if got := bm.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBitMatrixInvalidSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewBitMatrixWithSize(0, 1) should panic")
		}
	}()
	NewBitMatrixWithSize(0, 1)
}
