package sector

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is returned when a list already holds its limit.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// Bounded is an append-only list with an explicit capacity. Appends past the
// limit fail instead of silently dropping the item.
type Bounded[T any] struct {
	name    string
	limit   int
	items   []T
	dropped int
}

// NewBounded creates a list that accepts at most limit items. A limit of zero
// or less means unlimited.
func NewBounded[T any](name string, limit int) *Bounded[T] {
	return &Bounded[T]{name: name, limit: limit}
}

// Append adds v, or records a drop and returns ErrCapacityExceeded.
func (b *Bounded[T]) Append(v T) error {
	if b.Full() {
		b.dropped++
		return fmt.Errorf("%s list holds %d entries: %w", b.name, b.limit, ErrCapacityExceeded)
	}
	b.items = append(b.items, v)
	return nil
}

// Full reports whether the next Append would fail.
func (b *Bounded[T]) Full() bool {
	return b.limit > 0 && len(b.items) >= b.limit
}

func (b *Bounded[T]) Len() int     { return len(b.items) }
func (b *Bounded[T]) Limit() int   { return b.limit }
func (b *Bounded[T]) Name() string { return b.name }

// Dropped is the number of rejected appends.
func (b *Bounded[T]) Dropped() int { return b.dropped }

// Items returns a copy of the stored items.
func (b *Bounded[T]) Items() []T {
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

// Truncate shortens the list to n items. Larger n is a no-op.
func (b *Bounded[T]) Truncate(n int) int {
	if n < 0 {
		n = 0
	}
	if n >= len(b.items) {
		return 0
	}
	removed := len(b.items) - n
	clear(b.items[n:])
	b.items = b.items[:n]
	return removed
}
