// Package landscape samples a fitness function on a regular grid over its
// domain. Grids are static for a given function and domain, so Cache keeps
// them until they are evicted or explicitly invalidated.
package landscape

import (
	"fmt"
	"math"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
	"k8s.io/utils/lru"

	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/framework"
)

const DefaultResolution = 100

// Grid holds Z[j][i] = f(X[i], Y[j])
type Grid struct {
	Fitness    string
	Domain     framework.Domain
	Resolution int

	X, Y []float64
	Z    [][]float64

	Min, Max float64
}

// Compute evaluates f on a resolution x resolution grid spanning its domain.
// Resolutions below 2 are raised to 2.
func Compute(f framework.FitnessFunction, resolution int) *Grid {
	if resolution < 2 {
		resolution = 2
	}
	d := f.Domain()
	g := &Grid{
		Fitness:    f.Name(),
		Domain:     d,
		Resolution: resolution,
		X:          linspace(d.MinX, d.MaxX, resolution),
		Y:          linspace(d.MinY, d.MaxY, resolution),
		Z:          make([][]float64, resolution),
		Min:        math.Inf(1),
		Max:        math.Inf(-1),
	}
	for j, y := range g.Y {
		row := make([]float64, resolution)
		for i, x := range g.X {
			z := f.Evaluate(framework.Vector{x, y})
			row[i] = z
			g.Min = math.Min(g.Min, z)
			g.Max = math.Max(g.Max, z)
		}
		g.Z[j] = row
	}
	return g
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

type cacheKey struct {
	fitness    string
	domain     framework.Domain
	resolution int
}

func (k cacheKey) String() string {
	return fmt.Sprintf("%s/%s/%d", k.fitness, k.domain, k.resolution)
}

// DefaultCacheSize is the number of grids kept by NewCache(0)
const DefaultCacheSize = 16

// Cache memoizes grids by fitness name, domain and resolution. The least
// recently used grid is evicted once size grids are held. Concurrent misses
// for the same key compute the grid once.
type Cache struct {
	grids  *lru.Cache
	flight singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache returns a cache holding at most size grids; size <= 0 selects
// DefaultCacheSize.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{grids: lru.New(size)}
}

// Get returns the cached grid for f or computes and stores it
func (c *Cache) Get(f framework.FitnessFunction, resolution int) *Grid {
	if resolution < 2 {
		resolution = 2
	}
	key := cacheKey{fitness: f.Name(), domain: f.Domain(), resolution: resolution}

	if g, ok := c.grids.Get(key); ok {
		c.hits.Add(1)
		return g.(*Grid)
	}
	g, _, _ := c.flight.Do(key.String(), func() (interface{}, error) {
		if g, ok := c.grids.Get(key); ok {
			c.hits.Add(1)
			return g, nil
		}
		c.misses.Add(1)
		g := Compute(f, resolution)
		c.grids.Add(key, g)
		return g, nil
	})
	return g.(*Grid)
}

// Invalidate drops every cached grid
func (c *Cache) Invalidate() {
	c.grids.Clear()
}

// Len returns the number of cached grids
func (c *Cache) Len() int {
	return c.grids.Len()
}

// Stats returns the number of cache hits and misses so far
func (c *Cache) Stats() (hits, misses int) {
	return int(c.hits.Load()), int(c.misses.Load())
}
