// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

import "unsafe"

// Inline is the set of inline storage types a [Vector] accepts.
//
// The array length is the inline capacity N: elements up to N live inside
// the Vector value itself, beyond N they move to a heap buffer.
//
//	smallvec.Vector[int, [4]int]        // N = 4
//	smallvec.Vector[*Node, [16]*Node]   // N = 16
type Inline[T any] interface {
	~[0]T | ~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T |
		~[20]T | ~[24]T | ~[32]T | ~[48]T | ~[64]T | ~[96]T | ~[128]T | ~[256]T
}

// Contiguous is implemented by owners of a contiguous element range.
//
// Data returns a pointer to the first element and Len the number of
// elements, both valid at the instant of the call. [SpanOf] builds a view
// from any Contiguous; *[Vector] and [Span] implement it.
type Contiguous[T any] interface {
	// Data returns a pointer to the first element.
	// May be nil or dangling when Len returns 0.
	Data() *T

	// Len returns the number of elements.
	Len() int
}

// maxAlloc bounds a single heap buffer in bytes: 1<<47 on 64-bit, 1<<31 on 32-bit.
const maxAlloc = uintptr(1) << (31 + 16*(^uintptr(0)>>63))

// sizeOf returns the size of T in bytes.
func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// checkAlloc reports whether a buffer of n elements of T can be allocated.
func checkAlloc[T any](n int) error {
	size := sizeOf[T]()
	if size != 0 && uintptr(n) > maxAlloc/size {
		return ErrTooLarge
	}
	return nil
}

// noCopy may be embedded into structs which must not be copied
// after first use. See go vet copylocks.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
