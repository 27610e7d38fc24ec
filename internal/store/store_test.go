package store_test

import (
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colour-pipeline/go-clf/internal/store"
)

func TestVertexLifecycle(t *testing.T) {
	s := store.NewMemoryStore[string, string]()

	err := s.AddVertex("a", "a", graph.VertexProperties{Attributes: map[string]string{}})
	require.NoError(t, err)

	err = s.AddVertex("a", "a", graph.VertexProperties{})
	assert.ErrorIs(t, err, graph.ErrVertexAlreadyExists)

	_, _, err = s.Vertex("missing")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)

	v, _, err := s.Vertex("a")
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	count, err := s.VertexCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, s.RemoveVertex("a"))
	assert.ErrorIs(t, s.RemoveVertex("a"), graph.ErrVertexNotFound)
}

func TestUpdateVertexProperties(t *testing.T) {
	s := store.NewMemoryStore[string, string]()

	err := s.AddVertex("a", "a", graph.VertexProperties{Attributes: map[string]string{}})
	require.NoError(t, err)

	s.UpdateVertex("a", func(p *graph.VertexProperties) {
		p.Attributes["xlabel"] = "24 samples"
	})

	_, props, err := s.Vertex("a")
	require.NoError(t, err)
	assert.Equal(t, "24 samples", props.Attributes["xlabel"])
}

func TestEdges(t *testing.T) {
	s := store.NewMemoryStore[string, string]()

	for _, k := range []string{"a", "b"} {
		require.NoError(t, s.AddVertex(k, k, graph.VertexProperties{Attributes: map[string]string{}}))
	}

	edge := graph.Edge[string]{Source: "a", Target: "b"}
	require.NoError(t, s.AddEdge("a", "b", edge))

	got, err := s.Edge("a", "b")
	require.NoError(t, err)
	assert.Equal(t, edge, got)

	_, err = s.Edge("b", "a")
	assert.ErrorIs(t, err, graph.ErrEdgeNotFound)

	edges, err := s.ListEdges()
	require.NoError(t, err)
	assert.Len(t, edges, 1)

	// Vertices with edges cannot be removed.
	assert.ErrorIs(t, s.RemoveVertex("a"), graph.ErrVertexHasEdges)
	assert.ErrorIs(t, s.RemoveVertex("b"), graph.ErrVertexHasEdges)

	require.NoError(t, s.RemoveEdge("a", "b"))
	require.NoError(t, s.RemoveVertex("a"))
}

func TestUpdateEdge(t *testing.T) {
	s := store.NewMemoryStore[string, string]()

	assert.ErrorIs(t,
		s.UpdateEdge("a", "b", graph.Edge[string]{}),
		graph.ErrEdgeNotFound,
	)

	require.NoError(t, s.AddEdge("a", "b", graph.Edge[string]{Source: "a", Target: "b"}))

	updated := graph.Edge[string]{
		Source:     "a",
		Target:     "b",
		Properties: graph.EdgeProperties{Weight: 3},
	}
	require.NoError(t, s.UpdateEdge("a", "b", updated))

	got, err := s.Edge("a", "b")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Properties.Weight)
}
