// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

// Options configures vector creation.
type Options struct {
	// Initial capacity (promotes to heap at build time if above inline capacity)
	reserve int

	// Capacity ceiling
	limit      int
	inlineOnly bool
}

// Builder creates vectors with fluent configuration.
//
// The zero value of [Vector] is already usable; Builder is only needed to
// pre-size a vector or to bound its growth.
//
// Example:
//
//	// Pre-sized: starts in heap mode with capacity 32
//	v := smallvec.Build[int, [8]int](smallvec.New().Reserve(32))
//
//	// Bounded: never grows past 64 elements
//	v := smallvec.Build[int, [8]int](smallvec.New().Limit(64))
//
//	// Fixed: never leaves the inline storage
//	v := smallvec.Build[int, [8]int](smallvec.New().InlineOnly())
type Builder struct {
	opts Options
}

// New creates a vector builder with default options: no initial
// reservation and no capacity ceiling.
func New() *Builder {
	return &Builder{}
}

// Reserve sets the initial capacity. Capacities at or below the inline
// capacity keep the vector in inline mode.
//
// Panics if n < 0.
func (b *Builder) Reserve(n int) *Builder {
	if n < 0 {
		panic("smallvec: reserve must be >= 0")
	}
	b.opts.reserve = n
	return b
}

// Limit sets a capacity ceiling. Growth past the ceiling reports
// [ErrWouldBlock] from the Try variants and panics from the others.
// Ceilings below the inline capacity are raised to it. Zero removes the
// ceiling.
//
// Panics if n < 0.
func (b *Builder) Limit(n int) *Builder {
	if n < 0 {
		panic("smallvec: limit must be >= 0")
	}
	b.opts.limit = n
	b.opts.inlineOnly = false
	return b
}

// InlineOnly sets the capacity ceiling to the inline capacity: the vector
// never allocates.
func (b *Builder) InlineOnly() *Builder {
	b.opts.inlineOnly = true
	b.opts.limit = 0
	return b
}

// Build creates a Vector with the builder's options.
//
// Panics if the initial reservation exceeds the ceiling or cannot be
// allocated.
func Build[T any, A Inline[T]](b *Builder) *Vector[T, A] {
	v := &Vector[T, A]{}
	switch {
	case b.opts.inlineOnly:
		v.bounded, v.limit = true, len(v.inline)
	case b.opts.limit > 0:
		v.bounded, v.limit = true, max(b.opts.limit, len(v.inline))
	}
	if err := v.TryReserve(b.opts.reserve); err != nil {
		fatal("build", err)
	}
	return v
}
