package snake

// Deque is a ring-buffer double-ended queue.
// PushFront and PopBack are O(1) amortized; the buffer doubles when full.
type Deque[T any] struct {
	buf  []T
	head int // index of the front element
	n    int
}

// NewDeque returns an empty deque with room for capacity elements.
func NewDeque[T any](capacity int) *Deque[T] {
	return &Deque[T]{buf: make([]T, max(capacity, 1))}
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int {
	return d.n
}

// PushFront inserts v before the first element.
func (d *Deque[T]) PushFront(v T) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.n++
}

// PushBack appends v after the last element.
func (d *Deque[T]) PushBack(v T) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.n)%len(d.buf)] = v
	d.n++
}

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.n == 0 {
		return zero, false
	}
	i := (d.head + d.n - 1) % len(d.buf)
	v := d.buf[i]
	d.buf[i] = zero
	d.n--
	return v, true
}

// Front returns the first element, or the zero value if empty.
func (d *Deque[T]) Front() T {
	var zero T
	if d.n == 0 {
		return zero
	}
	return d.buf[d.head]
}

// At returns the i-th element counted from the front.
// It panics if i is out of range.
func (d *Deque[T]) At(i int) T {
	if i < 0 || i >= d.n {
		panic("snake: deque index out of range")
	}
	return d.buf[(d.head+i)%len(d.buf)]
}

// Slice copies the elements front to back into a new slice.
func (d *Deque[T]) Slice() []T {
	out := make([]T, d.n)
	for i := range out {
		out[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	return out
}

func (d *Deque[T]) grow() {
	buf := make([]T, len(d.buf)*2)
	for i := 0; i < d.n; i++ {
		buf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = buf
	d.head = 0
}
