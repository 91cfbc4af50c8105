// This file generates the operand sizes measured for each band.

package calibration

import (
	"runtime"
	"slices"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Adaptive Size Ladders
// ─────────────────────────────────────────────────────────────────────────────

// Ladder returns geometrically spaced limb counts bracketing the estimate
// guess: from guess/4 up to 4*guess, capped at maxLimbs and never below lo.
// Quick ladders use a coarser ratio so a band takes a handful of points.
func Ladder(guess, lo, maxLimbs int, quick bool) []int {
	ratio := 1.15
	if quick {
		ratio = 1.5
	}
	start := max(guess/4, lo, 1)
	end := min(guess*4, maxLimbs)
	var sizes []int
	for f := float64(start); int(f) <= end; f *= ratio {
		n := int(f)
		if len(sizes) == 0 || sizes[len(sizes)-1] != n {
			sizes = append(sizes, n)
		}
	}
	if len(sizes) == 0 && end >= lo {
		sizes = append(sizes, end)
	}
	return sizes
}

// MinTime returns how long each algorithm is timed at one size. Hosts with
// few CPUs are noisier under a concurrent run and get a longer window.
func MinTime(quick, parallel bool) time.Duration {
	d := 20 * time.Millisecond
	if quick {
		d = 2 * time.Millisecond
	}
	if parallel && runtime.NumCPU() <= 4 {
		d *= 2
	}
	return d
}

// Crossover returns the first size at which faster reports true for
// streak consecutive sizes, or false if no such run exists.
func Crossover(sizes []int, faster []bool, streak int) (int, bool) {
	run := 0
	for i, f := range faster {
		if !f {
			run = 0
			continue
		}
		run++
		if run == streak {
			return sizes[i-streak+1], true
		}
	}
	return 0, false
}

// Monotone raises each value to at least its predecessor, so that measured
// bands never overlap. The input is not modified.
func Monotone(values []int) []int {
	out := slices.Clone(values)
	for i := 1; i < len(out); i++ {
		out[i] = max(out[i], out[i-1])
	}
	return out
}
