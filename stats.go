// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

import "code.hybscloud.com/atomix"

// Stats is a snapshot of package-wide storage accounting.
//
// Counters are cumulative since process start and shared by all vectors.
// Each vector is single-owner, but owners may run on different goroutines,
// so the counters are atomic. They are updated once per storage change,
// never per element access.
type Stats struct {
	// Allocations counts heap buffers created (growth, compaction, clone).
	Allocations int64

	// Promotions counts inline to heap transitions.
	Promotions int64

	// Demotions counts heap to inline transitions (ShrinkToFit).
	Demotions int64

	// Relocations counts elements moved between storage regions by growth,
	// compaction and moves out of inline storage.
	Relocations int64

	// Steals counts heap buffers handed over by Move or Take without
	// touching elements.
	Steals int64
}

var stats struct {
	allocations atomix.Int64
	promotions  atomix.Int64
	demotions   atomix.Int64
	relocations atomix.Int64
	steals      atomix.Int64
}

// ReadStats returns the current package-wide counters.
//
// Example:
//
//	before := smallvec.ReadStats()
//	w := v.Move()
//	after := smallvec.ReadStats()
//	// after.Relocations - before.Relocations == 0 when v was in heap mode
func ReadStats() Stats {
	return Stats{
		Allocations: stats.allocations.Load(),
		Promotions:  stats.promotions.Load(),
		Demotions:   stats.demotions.Load(),
		Relocations: stats.relocations.Load(),
		Steals:      stats.steals.Load(),
	}
}

// Sub returns the counter deltas s - prev.
func (s Stats) Sub(prev Stats) Stats {
	return Stats{
		Allocations: s.Allocations - prev.Allocations,
		Promotions:  s.Promotions - prev.Promotions,
		Demotions:   s.Demotions - prev.Demotions,
		Relocations: s.Relocations - prev.Relocations,
		Steals:      s.Steals - prev.Steals,
	}
}
