package model

// defaultHistorySize covers static states and cycles up to period 3
const defaultHistorySize = 5

// History stores recent board fingerprints for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a history keeping the last size fingerprints
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Record adds a fingerprint and drops the oldest beyond the history size
func (h *History) Record(fingerprint string) {
	h.hashes = append(h.hashes, fingerprint)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded fingerprint
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant checks if the fingerprint repeats one of the last three recorded states
func (h *History) IsStagnant(fingerprint string) bool {
	for i := 1; i <= 3 && i <= len(h.hashes); i++ {
		if h.hashes[len(h.hashes)-i] == fingerprint {
			return true
		}
	}
	return false
}
