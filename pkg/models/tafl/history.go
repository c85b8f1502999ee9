package tafl

// History is the ordered record of position keys seen so far, used for
// threefold-repetition detection. The game appends the key of every position
// it reaches, the starting one included.
type History struct {
	keys   []string
	counts map[string]int
}

func NewHistory() *History {
	return &History{counts: make(map[string]int)}
}

// Record appends a position key and returns how many times it has now been
// seen, the new occurrence included.
func (h *History) Record(key string) int {
	h.keys = append(h.keys, key)
	h.counts[key]++
	return h.counts[key]
}

func (h *History) Count(key string) int {
	return h.counts[key]
}

func (h *History) Len() int {
	return len(h.keys)
}

// Last returns the most recent key, which is always the current position.
func (h *History) Last() string {
	if len(h.keys) == 0 {
		return ""
	}
	return h.keys[len(h.keys)-1]
}
