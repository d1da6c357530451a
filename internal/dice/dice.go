// Package dice provides the seeded die used by Pig games.
package dice

import rand "math/rand/v2"

const (
	// DefaultSeed keeps games reproducible unless a seed is chosen explicitly.
	DefaultSeed int64 = 0

	// DefaultSides is a standard six-sided die.
	DefaultSides = 6

	goldenRatio64 = 0x9e3779b97f4a7c15
)

// Die rolls integers in [1, sides] from a deterministic PCG stream.
type Die struct {
	rng   *rand.Rand
	sides int
	seed  int64
}

// New returns a die seeded from seed. Equal seeds always produce equal
// sequences. A sides value below 2 falls back to DefaultSides.
func New(seed int64, sides int) *Die {
	if sides < 2 {
		sides = DefaultSides
	}
	u := uint64(seed)
	return &Die{
		rng:   rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64))),
		sides: sides,
		seed:  seed,
	}
}

// Roll returns the next face value.
func (d *Die) Roll() int {
	return d.rng.IntN(d.sides) + 1
}

// Sides returns the number of faces on the die.
func (d *Die) Sides() int {
	return d.sides
}

// Seed returns the seed the die was created with.
func (d *Die) Seed() int64 {
	return d.seed
}

// mix is the splitmix64 finalizer; it spreads nearby seeds across the PCG state space.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
