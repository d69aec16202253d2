package frontier_test

import (
	"container/heap"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mallpath/core"
	"github.com/katalvlaran/mallpath/internal/frontier"
)

func TestQueue_Order(t *testing.T) {
	var pq frontier.Queue
	heap.Push(&pq, &frontier.Item{ID: 1, F: 5, H: 1, Coord: core.Coord{Row: 0, Col: 1}})
	heap.Push(&pq, &frontier.Item{ID: 2, F: 4, H: 3, Coord: core.Coord{Row: 2, Col: 2}})
	heap.Push(&pq, &frontier.Item{ID: 3, F: 4, H: 1, Coord: core.Coord{Row: 1, Col: 1}})
	heap.Push(&pq, &frontier.Item{ID: 4, F: 4, H: 1, Coord: core.Coord{Row: 0, Col: 2}})

	var got []core.NodeID
	for pq.Len() > 0 {
		got = append(got, heap.Pop(&pq).(*frontier.Item).ID)
	}
	// lowest f, then lowest h, then row-major coordinate
	assert.Equal(t, []core.NodeID{4, 3, 2, 1}, got)
}

func TestReconstruct(t *testing.T) {
	parent := []core.NodeID{core.None, 0, 1, core.None, 2}
	if diff := cmp.Diff([]core.NodeID{0, 1, 2, 4}, frontier.Reconstruct(parent, 4)); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []core.NodeID{3}, frontier.Reconstruct(parent, 3))
}
