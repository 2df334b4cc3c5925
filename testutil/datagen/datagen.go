package datagen

import (
	"math/rand"
	"testing"
	"time"

	"cosmossdk.io/math"
)

// AddRandomSeedsToFuzzer seeds the fuzzer with num random seeds.
func AddRandomSeedsToFuzzer(f *testing.F, num uint) {
	// Seed based on the current time
	r := rand.New(rand.NewSource(time.Now().Unix()))
	var idx uint
	for idx = 0; idx < num; idx++ {
		f.Add(r.Int63())
	}
}

func GenRandomByteArray(r *rand.Rand, length uint64) []byte {
	bz := make([]byte, length)
	r.Read(bz)
	return bz
}

func RandomInt(r *rand.Rand, rng int) uint64 {
	return uint64(r.Intn(rng))
}

func RandomMathInt(r *rand.Rand, rng int) math.Int {
	return math.NewIntFromUint64(RandomInt(r, rng))
}

// RandomInRange returns a random integer in the range [min, max).
func RandomInRange(r *rand.Rand, min, max int) int {
	return r.Intn(max-min) + min
}
