package terrain

import (
	"fmt"
	"math/rand"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"modzero.net/monstrous/internal/core/grid"
)

// Policy decides which catalog entry each cell receives during generation.
type Policy interface {
	Assign(t grid.Tile, size grid.Size) (int, error)
}

// Fixed assigns the same terrain to every cell.
type Fixed struct {
	Index int
}

// Assign implements Policy.
func (f Fixed) Assign(grid.Tile, grid.Size) (int, error) {
	return f.Index, nil
}

// Random assigns terrain uniformly from the inclusive index range [Min, Max].
type Random struct {
	Min, Max int
	rng      *rand.Rand
}

// NewRandom creates a seeded random policy.
func NewRandom(min, max int, seed int64) (*Random, error) {
	if min > max {
		return nil, fmt.Errorf("random terrain range [%d, %d] is empty", min, max)
	}
	return &Random{
		Min: min,
		Max: max,
		rng: rand.New(rand.NewSource(seed)),
	}, nil
}

// Assign implements Policy.
func (r *Random) Assign(grid.Tile, grid.Size) (int, error) {
	return r.Min + r.rng.Intn(r.Max-r.Min+1), nil
}

// AssignEnv is the environment visible to terrain expressions.
type AssignEnv struct {
	X, Y          int
	Width, Height int
	Count         int // Number of catalog entries

	catalog *Catalog
}

// Terrain returns the catalog index of a named terrain, or -1 if unknown.
func (e AssignEnv) Terrain(name string) int {
	if e.catalog == nil {
		return -1
	}
	if i, ok := e.catalog.IndexOf(name); ok {
		return i
	}
	return -1
}

// Hash returns a stable pseudo-random value in [0, n) for the current cell.
func (e AssignEnv) Hash(n int) int {
	if n <= 0 {
		return 0
	}
	h := uint32(e.X)*73856093 ^ uint32(e.Y)*19349663
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return int(h % uint32(n))
}

// Expression assigns terrain by evaluating a compiled expression per cell,
// e.g. `Y < Height / 2 ? Terrain("grass") : Terrain("sand")`.
type Expression struct {
	Source  string
	catalog *Catalog
	program *vm.Program
}

// NewExpression compiles a terrain expression against the catalog.
func NewExpression(src string, catalog *Catalog) (*Expression, error) {
	program, err := expr.Compile(src, expr.Env(AssignEnv{}), expr.AsInt())
	if err != nil {
		return nil, fmt.Errorf("compile terrain expression %q: %w", src, err)
	}
	return &Expression{
		Source:  src,
		catalog: catalog,
		program: program,
	}, nil
}

// Assign implements Policy.
func (e *Expression) Assign(t grid.Tile, size grid.Size) (int, error) {
	env := AssignEnv{
		X:       t.X,
		Y:       t.Y,
		Width:   size.Width,
		Height:  size.Height,
		Count:   e.catalog.Len(),
		catalog: e.catalog,
	}

	result, err := vm.Run(e.program, env)
	if err != nil {
		return 0, fmt.Errorf("evaluate terrain expression at %v: %w", t, err)
	}
	index, ok := result.(int)
	if !ok {
		return 0, fmt.Errorf("terrain expression returned %T, want int", result)
	}
	return index, nil
}
