// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build smallvecdebug

package smallvec

// DebugChecks is true when built with the smallvecdebug tag.
// Unchecked accessors (At, Ref, Set, Front, Back, PopBack and the Span
// equivalents) assert their preconditions and panic on violation.
const DebugChecks = true
