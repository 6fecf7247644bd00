package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/biconn/core"
)

// TestGraph_ConcurrentAddAndQuery hammers AddEdge and the query methods from
// many goroutines at once; run with -race to check the lock discipline.
func TestGraph_ConcurrentAddAndQuery(t *testing.T) {
	const (
		vertices = 64
		writers  = 8
		readers  = 8
		perG     = 200
	)

	g, err := core.NewGraph(vertices)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(writers + readers)

	for w := 0; w < writers; w++ {
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				v := (seed + i) % vertices
				u := (seed + i*7) % vertices
				_ = g.AddEdge(v, u)
			}
		}(w)
	}
	for r := 0; r < readers; r++ {
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				v := (seed + i) % vertices
				_, _ = g.NeighborsOf(v)
				_, _ = g.IsAdjacent(v, (v+1)%vertices)
				_ = g.EdgeCount()
			}
		}(r)
	}
	wg.Wait()

	assert.Equal(t, writers*perG, g.EdgeCount(), "every successful AddEdge counts exactly once")
}

// TestGraph_ConcurrentCloneWhileMutating exercises Clone against a mutating
// source; each clone must be internally consistent.
func TestGraph_ConcurrentCloneWhileMutating(t *testing.T) {
	g, err := core.NewGraph(16)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_ = g.AddEdge(i%16, (i+1)%16)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			c := g.Clone()
			// Adjacency entries are two per edge; the clone must agree with itself.
			total := 0
			for v := 0; v < c.VertexCount(); v++ {
				nbrs, nerr := c.NeighborsOf(v)
				assert.NoError(t, nerr)
				total += len(nbrs)
			}
			assert.Equal(t, 2*c.EdgeCount(), total)
		}
	}()
	wg.Wait()
}
