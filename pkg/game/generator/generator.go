package generator

import (
	"fmt"
	"math/rand"
	"time"

	"mazeadventure/pkg/engine/world"
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(level int) *world.Grid
	Name() string
}

// Rand is the randomness a generator draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Generator names accepted by ByName
const (
	NameBacktracker = "backtracker"
	NameFixed       = "fixed"
)

// Available generators
var (
	Fixed = &FixedGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = NewSeeded(time.Now().UnixNano())

// NewRand returns a generator-ready source. Seed 0 picks a time based seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ByName resolves a generator by its configuration name
func ByName(name string, seed int64) (GridGenerator, error) {
	switch name {
	case "", NameBacktracker:
		return NewSeeded(seed), nil
	case NameFixed:
		return Fixed, nil
	default:
		return nil, fmt.Errorf("unknown generator %q", name)
	}
}
