// Package randutil centralises how random sources are seeded so that every
// call site gets reproducible sequences from a single int64 seed.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper derives the two 64-bit seeds required by rand/v2's PCG so all
// call sites agree on the derivation.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// ForWorker returns an independent source for worker i derived from the
// base seed. Different workers get decorrelated streams; the same
// (seed, worker) pair always yields the same stream.
func ForWorker(seed int64, worker int) *rand.Rand {
	u := uint64(seed) + uint64(worker+1)*goldenRatio64
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
