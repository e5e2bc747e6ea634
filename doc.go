// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package smallvec provides a dynamic array with small buffer optimization
// and a non-owning contiguous view.
//
//   - Vector: up to N elements stored inline, transparently promoted to a
//     heap buffer beyond that
//   - Span: a pointer and a length over elements owned elsewhere
//
// # Quick Start
//
// The inline capacity N is the length of the inline array type:
//
//	var v smallvec.Vector[int, [4]int] // empty, inline, Cap() == 4
//	v.PushBack(1)
//	v.PushBack(2)
//
//	w := smallvec.Of[string, [8]string]("a", "b", "c")
//
// Builder API for pre-sized or bounded vectors:
//
//	v := smallvec.Build[Event, [16]Event](smallvec.New().Reserve(64))
//	v := smallvec.Build[Event, [16]Event](smallvec.New().Limit(256))
//	v := smallvec.Build[Event, [16]Event](smallvec.New().InlineOnly())
//
// # Storage Modes
//
// A vector is in exactly one of two modes:
//
//	Inline: elements live in the Vector value itself, Cap() == N
//	Heap:   elements live in a separately allocated buffer, Cap() > N
//
// The mode is derived, not stored: Cap() == N iff inline. Transitions:
//
//	Inline --(growth past N)-------------> Heap
//	Heap   --(growth, ShrinkToFit Len>N)-> Heap
//	Heap   --(ShrinkToFit Len<=N, Reset)-> Inline
//
// # Growth and Compaction
//
// PushBack on a full vector grows capacity to max(2*Cap, 1). Reserve(n)
// grows to exactly n. Growth moves the elements in order and is the only
// point where element addresses change.
//
// PopBack and Clear never shrink capacity, so pushing and popping around
// the inline boundary does not reallocate. Compaction happens only through
// ShrinkToFit:
//
//	v := smallvec.Vector[int, [4]int]{}
//	for i := range 5 {
//	    v.PushBack(i) // fifth push promotes: Cap() == 8
//	}
//	v.PopBack()
//	v.PopBack()       // Cap() still 8
//	v.ShrinkToFit()   // back to inline: Cap() == 4
//
// # Copy and Move
//
// A Vector must not be copied by value. Clone copies the elements into a
// fresh vector. Move and Take transfer ownership and leave the source empty
// and inline:
//
//	w := v.Move() // heap mode: O(1), the buffer changes hands
//	              // inline mode: O(Len), elements are moved one by one
//
// # Spans
//
// A Span views a contiguous range without owning it:
//
//	s := v.Span()
//	s := smallvec.SpanOf[int](v)
//	s := smallvec.SpanFromSlice(arr[:])
//	first, last := s.Front(), s.Back()
//
// Any structural change of the owner (growth, ShrinkToFit, Move, Take,
// Reset) invalidates all spans over it. This is not detected; it is the
// caller's contract.
//
// # Error Handling
//
// Two categories:
//
//	ErrWouldBlock - a configured ceiling prevents growth (control flow signal)
//	ErrTooLarge   - the requested capacity cannot be allocated (failure)
//
// Try variants (TryReserve, TryPushBack, TryEmplace, TryAppend) return the
// error and leave the vector unchanged. The plain variants panic, treating
// growth failure as fatal:
//
//	if err := v.TryPushBack(x); smallvec.IsWouldBlock(err) {
//	    drain(v)
//	}
//
// ErrWouldBlock is sourced from [code.hybscloud.com/iox].
//
// # Unchecked Access
//
// At, Ref, Set, Front, Back, PopBack and their Span counterparts do not
// check bounds: they compile to a pointer offset. Out-of-range use is a
// contract violation with undefined results. Building with
//
//	go build -tags smallvecdebug
//
// sets [DebugChecks] and turns every such access into an asserting one.
// The assertion tests only run under the tag:
//
//	go test -tags smallvecdebug ./...
//
// # Thread Safety
//
// None. A vector has one owner at a time; ownership may move between
// goroutines through any synchronizing handoff (channel, queue, atomic
// flag). Spans are unsynchronized aliases.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// [code.hybscloud.com/atomix] for the package-wide [Stats] counters.
package smallvec
