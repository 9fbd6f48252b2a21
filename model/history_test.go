package model

import "testing"

func TestHistoryDetectsCycles(t *testing.T) {
	tests := []struct {
		name     string
		recorded []string
		current  string
		want     bool
	}{
		{"empty", nil, "a", false},
		{"static", []string{"x", "a"}, "a", true},
		{"period two", []string{"a", "b"}, "a", true},
		{"period three", []string{"a", "b", "c"}, "a", true},
		{"period four", []string{"a", "b", "c", "d"}, "a", false},
		{"changing", []string{"a", "b", "c"}, "d", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory(0)
			for _, fp := range tt.recorded {
				h.Record(fp)
			}
			if got := h.IsStagnant(tt.current); got != tt.want {
				t.Errorf("IsStagnant(%q) = %v, want %v", tt.current, got, tt.want)
			}
		})
	}
}

func TestHistoryTracksBlinker(t *testing.T) {
	b := newSeeded(t, 10, 10, Coord{3, 4}, Coord{4, 4}, Coord{5, 4})
	h := NewHistory(3)

	h.Record(b.Fingerprint())
	b.Step()
	if h.IsStagnant(b.Fingerprint()) {
		t.Fatal("first step of a blinker should not look stagnant")
	}
	h.Record(b.Fingerprint())
	b.Step()
	if !h.IsStagnant(b.Fingerprint()) {
		t.Error("blinker cycle not detected")
	}

	h.Reset()
	if h.IsStagnant(b.Fingerprint()) {
		t.Error("Reset kept fingerprints")
	}
}
