// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"
)

// Span is a non-owning view of a contiguous range of elements.
//
// A Span is two words: a pointer to the first element and a length.
// Copying a Span copies the view, not the elements. Writes through a Span
// are visible to the owner and to every other view of the same range.
//
// A Span is valid only while the viewed storage is. Any structural change
// of the owner (growth, ShrinkToFit, Move, Take, Reset of a [Vector])
// invalidates every Span over it immediately. Nothing detects this at
// runtime; keeping spans valid is the caller's contract, exactly as with a
// raw pointer.
//
// All accessors are O(1), allocation-free and unchecked.
type Span[T any] struct {
	ptr *T
	len int
}

// NewSpan creates a view of n elements starting at ptr.
// ptr must point to n contiguous valid elements; it may be nil when n is 0.
func NewSpan[T any](ptr *T, n int) Span[T] {
	if DebugChecks && (n < 0 || (n > 0 && ptr == nil)) {
		panic(fmt.Sprintf("smallvec: invalid span (ptr=%p, len=%d)", ptr, n))
	}
	return Span[T]{ptr: ptr, len: n}
}

// SpanOf creates a view of the range c owns at the instant of the call.
func SpanOf[T any](c Contiguous[T]) Span[T] {
	return NewSpan(c.Data(), c.Len())
}

// SpanFromSlice creates a view of the elements of s.
func SpanFromSlice[T any](s []T) Span[T] {
	return Span[T]{ptr: unsafe.SliceData(s), len: len(s)}
}

func (s Span[T]) slot(i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(s.ptr), uintptr(i)*sizeOf[T]()))
}

func (s Span[T]) check(i int) {
	if uint(i) >= uint(s.len) {
		panic(fmt.Sprintf("smallvec: span index %d out of range [0:%d]", i, s.len))
	}
}

// Len returns the number of elements in view.
func (s Span[T]) Len() int {
	return s.len
}

// Empty reports whether the span has no elements.
func (s Span[T]) Empty() bool {
	return s.len == 0
}

// Data returns the pointer to the first element.
func (s Span[T]) Data() *T {
	return s.ptr
}

// At returns the element at index i.
// Unchecked: i must be in [0, Len).
func (s Span[T]) At(i int) T {
	if DebugChecks {
		s.check(i)
	}
	return *s.slot(i)
}

// Ref returns a pointer to the element at index i.
// Unchecked: i must be in [0, Len).
func (s Span[T]) Ref(i int) *T {
	if DebugChecks {
		s.check(i)
	}
	return s.slot(i)
}

// Set replaces the element at index i in the viewed storage.
// Unchecked: i must be in [0, Len).
func (s Span[T]) Set(i int, elem T) {
	if DebugChecks {
		s.check(i)
	}
	*s.slot(i) = elem
}

// Front returns the first element.
// Unchecked: the span must not be empty.
func (s Span[T]) Front() T {
	if DebugChecks {
		s.check(0)
	}
	return *s.ptr
}

// Back returns the last element.
// Unchecked: the span must not be empty.
func (s Span[T]) Back() T {
	if DebugChecks {
		s.check(s.len - 1)
	}
	return *s.slot(s.len - 1)
}

// Sub returns the view of elements [lo, hi).
// Unchecked: 0 <= lo <= hi <= Len.
func (s Span[T]) Sub(lo, hi int) Span[T] {
	if DebugChecks && (lo < 0 || hi < lo || hi > s.len) {
		panic(fmt.Sprintf("smallvec: span bounds [%d:%d] out of range [0:%d]", lo, hi, s.len))
	}
	if lo == hi {
		// No pointer one past the end of the viewed allocation.
		return Span[T]{}
	}
	return Span[T]{ptr: s.slot(lo), len: hi - lo}
}

// Slice returns a Go slice aliasing the viewed elements, with len == cap.
func (s Span[T]) Slice() []T {
	if s.len == 0 {
		return nil
	}
	return unsafe.Slice(s.ptr, s.len)
}

// All returns an iterator over index-element pairs, front to back.
func (s Span[T]) All() iter.Seq2[int, T] {
	return slices.All(s.Slice())
}

// Values returns an iterator over the elements, front to back.
func (s Span[T]) Values() iter.Seq[T] {
	return slices.Values(s.Slice())
}

// Format implements fmt.Formatter by formatting the viewed elements as a slice.
func (s Span[T]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), s.Slice())
}
