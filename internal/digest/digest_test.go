package digest

import "testing"

func TestContentHash(t *testing.T) {
	if got, want := ContentHash(nil, 0), "ef46db3751d8e999"; got != want {
		t.Errorf("ContentHash(nil) = %s, want %s", got, want)
	}
	if got := ContentHash([]byte("frame"), 8); len(got) != 8 {
		t.Errorf("len = %d, want 8", len(got))
	}
	if got := ContentHash([]byte("frame"), 32); len(got) != 16 {
		t.Errorf("len = %d, want 16", len(got))
	}
	a := ContentHash([]byte{1, 2, 3}, 0)
	if a != ContentHash([]byte{1, 2, 3}, 0) {
		t.Error("hash is not deterministic")
	}
	if a == ContentHash([]byte{1, 2, 4}, 0) {
		t.Error("different inputs hashed equal")
	}
}
