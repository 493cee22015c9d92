package peseltest

import (
	"math/rand"
	"sync"
	"time"

	"github.com/hupe1980/peselgo"
)

// Generator produces pseudo random valid PESEL numbers spread over the
// whole encodable range, births from 1800 through 2299.
// It is thread-safe.
type Generator struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewGenerator creates a new Generator with the specified seed. The same
// seed yields the same sequence of numbers.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset rewinds the Generator to its initial seed.
func (g *Generator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rand.Seed(g.seed)
}

// Seed returns the initial seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Uint64 returns the decimal value of a random valid number.
func (g *Generator) Uint64() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.uint64Locked()
}

// Values returns the decimal values of n random valid numbers.
// Locks only once per call (preferred over calling Uint64 in a loop).
func (g *Generator) Values(n int) []uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	values := make([]uint64, n)
	for i := range n {
		values[i] = g.uint64Locked()
	}
	return values
}

// uint64Locked is the internal implementation (caller must hold lock).
func (g *Generator) uint64Locked() uint64 {
	year := 1800 + g.rand.Intn(500)
	month := 1 + g.rand.Intn(12)
	day := 1 + g.rand.Intn(daysIn(year, time.Month(month)))
	ordinal := g.rand.Intn(10_000)

	section := peselgo.MonthToSection(uint8(month), year)
	value := uint64(year%100)*1_000_000_000 +
		uint64(section)*10_000_000 +
		uint64(day)*100_000 +
		uint64(ordinal)*10

	// Exactly one control digit completes the number: its checksum weight
	// is 1, so the ten candidates cover all residues mod 10.
	for digit := uint64(0); digit < 10; digit++ {
		if peselgo.Validate(value+digit) == nil {
			value += digit
			break
		}
	}
	return value
}

// Decimal returns a random valid number as a peselgo.Decimal.
func (g *Generator) Decimal() peselgo.Decimal {
	d, err := peselgo.NewDecimal(g.Uint64())
	if err != nil {
		panic(err) // Uint64 hands out valid numbers only
	}
	return d
}

// Binary returns a random valid number as a peselgo.Binary.
func (g *Generator) Binary() peselgo.Binary {
	b, err := peselgo.NewBinary(g.Uint64())
	if err != nil {
		panic(err) // Uint64 hands out valid numbers only
	}
	return b
}

// daysIn returns the number of days in the given month. Day zero of the
// following month is the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
