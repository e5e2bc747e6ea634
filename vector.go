// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"unsafe"
)

// Vector is a dynamic array with small buffer optimization.
//
// Up to N elements (N = len(A)) live in storage embedded in the Vector
// value. The first growth past N promotes the vector to a heap buffer;
// from then on capacity only grows, until ShrinkToFit or Reset.
//
// Exactly one storage region is active. The mode is derived from the
// state: the vector is inline iff it holds no heap buffer, iff Cap() == N.
//
// Slots in [Len, Cap) always hold the zero value. Removing an element
// clears its slot so the garbage collector can reclaim what it referenced.
//
// The zero value is an empty inline vector ready to use. A Vector must not
// be copied by value after first use: use Clone to copy and Move or Take
// to transfer ownership.
//
// Memory: N*sizeof(T) inline plus Cap*sizeof(T) on the heap in heap mode
type Vector[T any, A Inline[T]] struct {
	_       noCopy
	inline  A
	heap    []T // nil in inline mode; len(heap) == capacity
	n       int
	limit   int // capacity ceiling when bounded
	bounded bool
}

// NewVector creates an empty inline vector.
func NewVector[T any, A Inline[T]]() *Vector[T, A] {
	return &Vector[T, A]{}
}

// Of creates a vector holding elems in order.
// The vector stays inline when len(elems) <= N.
func Of[T any, A Inline[T]](elems ...T) *Vector[T, A] {
	return FromSlice[T, A](elems)
}

// FromSlice creates a vector holding a copy of s.
// Capacity is exactly max(N, len(s)).
func FromSlice[T any, A Inline[T]](s []T) *Vector[T, A] {
	v := &Vector[T, A]{}
	if err := v.TryReserve(len(s)); err != nil {
		fatal("from slice", err)
	}
	copy(v.slots(), s)
	v.n = len(s)
	return v
}

// FromSeq creates a vector holding the values of seq in order.
func FromSeq[T any, A Inline[T]](seq iter.Seq[T]) *Vector[T, A] {
	v := &Vector[T, A]{}
	v.AppendSeq(seq)
	return v
}

// =============================================================================
// Storage
// =============================================================================

// inlineSlots returns the inline storage as a slice of N slots.
func (v *Vector[T, A]) inlineSlots() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.inline)), len(v.inline))
}

// slots returns the active storage region, Cap slots long.
func (v *Vector[T, A]) slots() []T {
	if v.heap != nil {
		return v.heap
	}
	return v.inlineSlots()
}

// base returns the address of slot 0 of the active storage region.
func (v *Vector[T, A]) base() unsafe.Pointer {
	if v.heap != nil {
		return unsafe.Pointer(unsafe.SliceData(v.heap))
	}
	return unsafe.Pointer(&v.inline)
}

// slot returns the address of slot i without bounds checking.
func (v *Vector[T, A]) slot(i int) *T {
	return (*T)(unsafe.Add(v.base(), uintptr(i)*sizeOf[T]()))
}

// relocate moves the live elements into a fresh heap buffer of exactly
// capacity slots and clears the old slots.
func (v *Vector[T, A]) relocate(capacity int) {
	clear(v.migrate(capacity))
}

// migrate copies the live elements into a fresh heap buffer of exactly
// capacity slots and installs it. The old live slots are returned still
// populated; the caller must clear them.
func (v *Vector[T, A]) migrate(capacity int) []T {
	buf := make([]T, capacity)
	old := v.slots()[:v.n]
	copy(buf, old)
	if v.heap == nil {
		stats.promotions.Add(1)
	}
	stats.allocations.Add(1)
	stats.relocations.Add(int64(v.n))
	v.heap = buf
	return old
}

// growTarget returns the capacity for the next push when the vector is full.
func (v *Vector[T, A]) growTarget() (int, error) {
	c := v.Cap()
	target := math.MaxInt
	if c <= math.MaxInt/2 {
		target = max(c*2, 1)
	}
	if v.bounded && target > v.limit {
		target = v.limit
	}
	if target <= c {
		return 0, ErrWouldBlock
	}
	return target, checkAlloc[T](target)
}

// expand grows a full vector by the doubling policy.
func (v *Vector[T, A]) expand() error {
	target, err := v.growTarget()
	if err != nil {
		return err
	}
	v.relocate(target)
	return nil
}

func (v *Vector[T, A]) check(i int) {
	if uint(i) >= uint(v.n) {
		panic(fmt.Sprintf("smallvec: index %d out of range [0:%d]", i, v.n))
	}
}

// =============================================================================
// Observation
// =============================================================================

// Len returns the number of elements.
func (v *Vector[T, A]) Len() int {
	return v.n
}

// Cap returns the current capacity: N in inline mode, the heap buffer
// length in heap mode.
func (v *Vector[T, A]) Cap() int {
	if v.heap != nil {
		return len(v.heap)
	}
	return len(v.inline)
}

// InlineCap returns N, the inline capacity.
func (v *Vector[T, A]) InlineCap() int {
	return len(v.inline)
}

// IsInline reports whether the elements live in the inline storage.
func (v *Vector[T, A]) IsInline() bool {
	return v.heap == nil
}

// Empty reports whether the vector has no elements.
func (v *Vector[T, A]) Empty() bool {
	return v.n == 0
}

// At returns the element at index i.
// Unchecked: i must be in [0, Len).
func (v *Vector[T, A]) At(i int) T {
	if DebugChecks {
		v.check(i)
	}
	return *v.slot(i)
}

// Ref returns a pointer to the element at index i.
// Unchecked: i must be in [0, Len). The pointer is invalidated by any
// operation that changes the storage location (growth, ShrinkToFit, Move,
// Take, Reset).
func (v *Vector[T, A]) Ref(i int) *T {
	if DebugChecks {
		v.check(i)
	}
	return v.slot(i)
}

// Set replaces the element at index i.
// Unchecked: i must be in [0, Len).
func (v *Vector[T, A]) Set(i int, elem T) {
	if DebugChecks {
		v.check(i)
	}
	*v.slot(i) = elem
}

// Front returns the first element.
// Unchecked: the vector must not be empty.
func (v *Vector[T, A]) Front() T {
	if DebugChecks {
		v.check(0)
	}
	return *v.slot(0)
}

// Back returns the last element.
// Unchecked: the vector must not be empty.
func (v *Vector[T, A]) Back() T {
	if DebugChecks {
		v.check(v.n - 1)
	}
	return *v.slot(v.n - 1)
}

// Data returns a pointer to the first slot of the active storage.
// It is non-nil whenever Len > 0.
func (v *Vector[T, A]) Data() *T {
	return (*T)(v.base())
}

// Slice returns the live elements as a slice aliasing the vector storage.
//
// The slice has len == cap == Len, so appending to it never writes into the
// vector's spare capacity. It is invalidated by the same operations as Ref.
func (v *Vector[T, A]) Slice() []T {
	return v.slots()[:v.n:v.n]
}

// Span returns a view of the live elements. See [Span] for validity.
func (v *Vector[T, A]) Span() Span[T] {
	return Span[T]{ptr: v.Data(), len: v.n}
}

// All returns an iterator over index-element pairs, front to back.
func (v *Vector[T, A]) All() iter.Seq2[int, T] {
	return slices.All(v.Slice())
}

// Values returns an iterator over the elements, front to back.
func (v *Vector[T, A]) Values() iter.Seq[T] {
	return slices.Values(v.Slice())
}

// Backward returns an iterator over index-element pairs, back to front.
func (v *Vector[T, A]) Backward() iter.Seq2[int, T] {
	return slices.Backward(v.Slice())
}

// Format implements fmt.Formatter by formatting the live elements as a slice.
func (v *Vector[T, A]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.Slice())
}

// =============================================================================
// Mutation
// =============================================================================

// Reserve ensures Cap >= n. See TryReserve.
//
// Panics if the capacity cannot be reached.
func (v *Vector[T, A]) Reserve(n int) {
	if err := v.TryReserve(n); err != nil {
		fatal("reserve", err)
	}
}

// TryReserve ensures Cap >= n.
//
// If n <= Cap it does nothing. Otherwise it allocates a heap buffer of
// exactly n slots, moves the elements into it in order and drops the old
// storage. This is the only place element addresses change on growth.
//
// Returns ErrWouldBlock if n exceeds the capacity ceiling, or ErrTooLarge
// if n elements cannot be allocated. The vector is unchanged on error.
func (v *Vector[T, A]) TryReserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	if v.bounded && n > v.limit {
		return ErrWouldBlock
	}
	if err := checkAlloc[T](n); err != nil {
		return err
	}
	v.relocate(n)
	return nil
}

// PushBack appends elem. See TryPushBack.
//
// Panics if the vector cannot grow.
func (v *Vector[T, A]) PushBack(elem T) {
	if err := v.TryPushBack(elem); err != nil {
		fatal("push back", err)
	}
}

// TryPushBack appends elem.
//
// When the vector is full, capacity first grows to max(2*Cap, 1), clamped
// to the ceiling if one is set. Amortized O(1).
//
// Returns ErrWouldBlock if the vector is full at its ceiling, or
// ErrTooLarge if the grown buffer cannot be allocated. The vector is
// unchanged on error.
func (v *Vector[T, A]) TryPushBack(elem T) error {
	if v.n == v.Cap() {
		if err := v.expand(); err != nil {
			return err
		}
	}
	*v.slot(v.n) = elem
	v.n++
	return nil
}

// Emplace appends a zero element and returns a pointer to it for
// construction in place.
//
// The pointer is invalidated like Ref. Panics if the vector cannot grow.
//
// Example:
//
//	e := v.Emplace()
//	e.ID = id
//	e.Tags = tags
func (v *Vector[T, A]) Emplace() *T {
	p, err := v.TryEmplace()
	if err != nil {
		fatal("emplace", err)
	}
	return p
}

// TryEmplace is Emplace with the growth error returned instead of raised.
//
// Returns ErrWouldBlock when the vector is full at its ceiling, or
// ErrTooLarge if the grown buffer cannot be allocated. The vector is
// unchanged on error.
func (v *Vector[T, A]) TryEmplace() (*T, error) {
	if v.n == v.Cap() {
		if err := v.expand(); err != nil {
			return nil, err
		}
	}
	p := v.slot(v.n)
	v.n++
	return p, nil
}

// Append appends elems in order. See TryAppend.
//
// Panics if the vector cannot grow.
func (v *Vector[T, A]) Append(elems ...T) {
	if err := v.TryAppend(elems...); err != nil {
		fatal("append", err)
	}
}

// TryAppend appends elems in order, growing at most once.
//
// Returns ErrWouldBlock if the result would exceed the ceiling, or
// ErrTooLarge if the grown buffer cannot be allocated. Either all of elems
// are appended or none is. elems may alias the vector's own storage, as in
// v.Append(v.Slice()...).
func (v *Vector[T, A]) TryAppend(elems ...T) error {
	if len(elems) > math.MaxInt-v.n {
		return ErrTooLarge
	}
	need := v.n + len(elems)
	if c := v.Cap(); need > c {
		if v.bounded && need > v.limit {
			return ErrWouldBlock
		}
		target := need
		if c <= math.MaxInt/2 {
			target = max(c*2, need)
		}
		if v.bounded {
			target = min(target, v.limit)
		}
		if err := checkAlloc[T](target); err != nil {
			return err
		}
		old := v.migrate(target)
		copy(v.heap[v.n:need], elems)
		clear(old)
		v.n = need
		return nil
	}
	copy(v.slots()[v.n:need], elems)
	v.n = need
	return nil
}

// AppendSeq appends the values of seq in order.
//
// seq is drained before the vector changes, so it may iterate the vector
// itself. Panics if the vector cannot grow, in which case nothing is
// appended.
func (v *Vector[T, A]) AppendSeq(seq iter.Seq[T]) {
	v.Append(slices.Collect(seq)...)
}

// PopBack removes and returns the last element.
//
// Unchecked: the vector must not be empty. Capacity is never reduced, so
// pushing and popping around the inline boundary does not reallocate.
func (v *Vector[T, A]) PopBack() T {
	if DebugChecks && v.n == 0 {
		panic("smallvec: PopBack on empty vector")
	}
	v.n--
	p := v.slot(v.n)
	elem := *p
	var zero T
	*p = zero
	return elem
}

// Clear removes all elements. Capacity is unchanged.
func (v *Vector[T, A]) Clear() {
	clear(v.slots()[:v.n])
	v.n = 0
}

// ShrinkToFit compacts the storage toward Len.
//
// Inline: no-op. Heap with Len <= N: the elements move back into the
// inline storage and the heap buffer is dropped. Heap with Len > N: the
// elements move to a heap buffer of exactly Len slots.
//
// Compaction only ever happens on request; no other operation shrinks
// capacity.
func (v *Vector[T, A]) ShrinkToFit() {
	if v.heap == nil {
		return
	}
	old := v.heap[:v.n]
	switch {
	case v.n <= len(v.inline):
		v.heap = nil
		copy(v.inlineSlots(), old)
		stats.demotions.Add(1)
	case v.n < len(v.heap):
		buf := make([]T, v.n)
		copy(buf, old)
		v.heap = buf
		stats.allocations.Add(1)
	default:
		return
	}
	clear(old)
	stats.relocations.Add(int64(v.n))
}

// Reset removes all elements and releases the heap buffer, returning the
// vector to inline mode. The ceiling, if any, is kept.
//
// Reset is the end of a vector's lifetime in the container sense: elements
// are cleared front to back, then the heap storage is dropped.
func (v *Vector[T, A]) Reset() {
	clear(v.slots()[:v.n])
	v.n = 0
	v.heap = nil
}

// =============================================================================
// Copy and Move
// =============================================================================

// Clone returns a deep copy of the vector's element sequence.
//
// The copy is inline when Len <= N, otherwise it gets a heap buffer of
// exactly Len slots. The ceiling is carried over. Elements are copied by
// assignment: pointers inside elements are shared.
func (v *Vector[T, A]) Clone() *Vector[T, A] {
	dst := &Vector[T, A]{limit: v.limit, bounded: v.bounded}
	copyInto(dst, v.Slice())
	return dst
}

// Convert copies src into a new vector with a different inline capacity.
// The result has no ceiling.
func Convert[T any, A Inline[T], B Inline[T]](src *Vector[T, A]) *Vector[T, B] {
	dst := &Vector[T, B]{}
	copyInto(dst, src.Slice())
	return dst
}

// copyInto fills an empty dst with elems, choosing the storage mode that fits.
func copyInto[T any, A Inline[T]](dst *Vector[T, A], elems []T) {
	if len(elems) > len(dst.inline) {
		dst.heap = make([]T, len(elems))
		stats.allocations.Add(1)
	}
	copy(dst.slots(), elems)
	dst.n = len(elems)
}

// Move transfers the contents of v to a new vector and leaves v empty and
// inline. See Take.
func (v *Vector[T, A]) Move() *Vector[T, A] {
	dst := &Vector[T, A]{}
	dst.Take(v)
	return dst
}

// Take replaces the contents of v with those of src and leaves src empty
// and inline. The ceiling of src is carried over.
//
// Heap mode: the buffer is handed over as is. O(1), no element is touched.
// Inline mode: each element is moved into v's inline storage and src's
// slots are cleared. O(Len).
//
// Spans and pointers into src are invalidated. Taking from v itself is a
// no-op.
func (v *Vector[T, A]) Take(src *Vector[T, A]) {
	if v == src {
		return
	}
	v.Reset()
	v.limit, v.bounded = src.limit, src.bounded
	if src.heap != nil {
		v.heap, v.n = src.heap, src.n
		src.heap, src.n = nil, 0
		stats.steals.Add(1)
		return
	}
	live := src.inlineSlots()[:src.n]
	copy(v.inlineSlots(), live)
	clear(live)
	v.n, src.n = src.n, 0
	stats.relocations.Add(int64(v.n))
}

// Equal reports whether a and b hold equal elements in the same order.
// Storage mode and capacity are not compared.
func Equal[T comparable, A Inline[T], B Inline[T]](a *Vector[T, A], b *Vector[T, B]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}
