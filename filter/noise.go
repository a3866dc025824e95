package filter

// noiseSource is the deterministic pseudo-random generator behind the
// grain filter. It is a counter-based 32-bit integer hash: sample i of a
// given seed is a pure function of (seed, i), with no floating-point
// accumulation in the state. Identical seeds and sample order therefore
// reproduce byte-identical noise in every execution context, which is the
// contract the grain filter depends on.
type noiseSource struct {
	seed    uint32
	counter uint32
}

// newNoiseSource creates a generator for the given seed.
func newNoiseSource(seed uint32) *noiseSource {
	return &noiseSource{seed: seed}
}

// next returns the next 32-bit sample, advancing the counter once.
func (n *noiseSource) next() uint32 {
	x := n.seed ^ (n.counter * 0x9e3779b9)
	n.counter++
	// fmix32 avalanche.
	x ^= x >> 16
	x *= 0x85ebca6b
	x ^= x >> 13
	x *= 0xc2b2ae35
	x ^= x >> 16
	return x
}

// nextSigned returns the next sample mapped into [-1, 1). The mapping uses
// only the top 24 bits so the division is exact in float64.
func (n *noiseSource) nextSigned() float64 {
	return float64(n.next()>>8)/float64(1<<23) - 1
}
