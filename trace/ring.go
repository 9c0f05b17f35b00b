// Package trace keeps a bounded history of solver iterates. When a run
// exceeds the ring capacity the oldest records fall off, so a long
// non-converging solve retains only its recent tail.
package trace

const base = 8

// Record is one fixed-point iterate.
type Record struct {
	Iteration int     `json:"iteration"`
	Velocity  float64 `json:"velocity"`  // inlet velocity estimate, m/s
	ErrorPct  float64 `json:"error_pct"` // percent change from the previous iterate
}

// Ring is a fixed-capacity FIFO of records backed by a circular array.
type Ring struct {
	buf  []Record
	head int // index of the oldest record
	size int
}

// NewRing rounds the capacity up to a multiple of the base block size.
func NewRing(capacity int) *Ring {
	if capacity < base {
		capacity = base
	}
	if r := capacity % base; r != 0 {
		capacity = capacity - r + base
	}
	return &Ring{buf: make([]Record, capacity)}
}

// PushBack appends a record, evicting the oldest one when full.
func (r *Ring) PushBack(rec Record) {
	tail := (r.head + r.size) % len(r.buf)
	r.buf[tail] = rec
	if r.size == len(r.buf) {
		r.head = (r.head + 1) % len(r.buf)
		return
	}
	r.size++
}

// PopFront removes and returns the oldest record.
func (r *Ring) PopFront() (Record, bool) {
	if r.size == 0 {
		return Record{}, false
	}
	rec := r.buf[r.head]
	r.head = (r.head + 1) % len(r.buf)
	r.size--
	return rec, true
}

// At returns the i-th record counted from the oldest.
func (r *Ring) At(i int) (Record, bool) {
	if i < 0 || i >= r.size {
		return Record{}, false
	}
	return r.buf[(r.head+i)%len(r.buf)], true
}

// Last returns the most recent record.
func (r *Ring) Last() (Record, bool) {
	return r.At(r.size - 1)
}

func (r *Ring) Len() int { return r.size }

func (r *Ring) Cap() int { return len(r.buf) }

// Records returns an oldest-first snapshot of the ring contents.
func (r *Ring) Records() []Record {
	out := make([]Record, r.size)
	for i := 0; i < r.size; i++ {
		out[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	return out
}

// Traverse visits records oldest first, stopping when fn returns false.
func (r *Ring) Traverse(fn func(i int, rec Record) bool) {
	for i := 0; i < r.size; i++ {
		if !fn(i, r.buf[(r.head+i)%len(r.buf)]) {
			return
		}
	}
}
