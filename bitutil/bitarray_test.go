package bitutil

import "testing"

func TestBitArrayGetSet(t *testing.T) {
	ba := NewBitArray(33)
	for i := 0; i < 33; i++ {
		if ba.Get(i) {
			t.Errorf("bit %d should not be set", i)
		}
	}
	ba.Set(0)
	ba.Set(31)
	ba.Set(32)
	if !ba.Get(0) || !ba.Get(31) || !ba.Get(32) {
		t.Error("bits should be set")
	}
	if ba.Get(1) || ba.Get(30) {
		t.Error("bits should not be set")
	}
	if got := ba.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}

func TestBitArrayClear(t *testing.T) {
	ba := NewBitArray(40)
	ba.Set(5)
	ba.Set(39)
	ba.Clear()
	if got := ba.Count(); got != 0 {
		t.Errorf("Count() after Clear = %d, want 0", got)
	}
	if ba.Size() != 40 {
		t.Errorf("Size() = %d, want 40", ba.Size())
	}
}

func TestBitArrayString(t *testing.T) {
	ba := NewBitArray(5)
	ba.Set(1)
	ba.Set(4)
	if got, want := ba.String(), ".X..X"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBitArrayZeroSize(t *testing.T) {
	ba := NewBitArray(0)
	if ba.Size() != 0 || ba.Count() != 0 {
		t.Errorf("empty array: size %d count %d", ba.Size(), ba.Count())
	}
}
