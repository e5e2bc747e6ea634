// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the vector cannot grow because a capacity
// ceiling configured with [Builder.Limit] or [Builder.InlineOnly] has been
// reached.
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// make room (PopBack, Clear) and retry, or hand the element elsewhere.
// The vector is unchanged when ErrWouldBlock is returned.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	v := smallvec.Build[Frame, [16]Frame](smallvec.New().InlineOnly())
//	if err := v.TryPushBack(f); smallvec.IsWouldBlock(err) {
//	    flush(v.Slice())
//	    v.Clear()
//	    v.PushBack(f)
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrTooLarge indicates a requested capacity cannot be allocated: the
// element count multiplied by the element size exceeds what the runtime
// can address.
//
// ErrTooLarge is the resource exhaustion category. It is a failure, not a
// control flow signal. The vector is unchanged when ErrTooLarge is returned.
var ErrTooLarge = errors.New("smallvec: requested capacity too large")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// fatal panics with err wrapped under op. Used by the non-Try mutators,
// which treat growth failure as unrecoverable.
func fatal(op string, err error) {
	panic(fmt.Errorf("smallvec: %s: %w", op, err))
}
