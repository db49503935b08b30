package hashing

// RepetitionTable counts how often each position key has occurred in a
// game. Keys are recorded in play order so the table can be rewound when
// moves are taken back.
type RepetitionTable struct {
	// counts maps a position key to its number of occurrences
	counts map[uint64]int
	// history holds recorded keys, oldest first
	history []uint64
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{
		counts: make(map[uint64]int),
	}
}

// Record adds one occurrence of key and returns how many times it has now
// been seen.
func (r *RepetitionTable) Record(key uint64) int {
	r.history = append(r.history, key)
	r.counts[key]++
	return r.counts[key]
}

// Count returns how many times key has been recorded.
func (r *RepetitionTable) Count(key uint64) int {
	return r.counts[key]
}

// Len returns the number of recorded positions.
func (r *RepetitionTable) Len() int {
	return len(r.history)
}

// Truncate forgets every position recorded after the first n.
func (r *RepetitionTable) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	for len(r.history) > n {
		last := r.history[len(r.history)-1]
		r.history = r.history[:len(r.history)-1]
		if r.counts[last]--; r.counts[last] == 0 {
			delete(r.counts, last)
		}
	}
}

// MaxCount returns the highest occurrence count of any key.
func (r *RepetitionTable) MaxCount() int {
	maxCount := 0
	for _, c := range r.counts {
		if c > maxCount {
			maxCount = c
		}
	}
	return maxCount
}

// Reset clears the table.
func (r *RepetitionTable) Reset() {
	r.counts = make(map[uint64]int)
	r.history = nil
}
