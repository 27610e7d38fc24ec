// Package store provides the in-memory graph store backing the pipeline
// drawer. Compared to the library default it allows updating vertex
// properties in place, which the drawer uses to attach colours and labels
// after the graph is built.
package store

import (
	"sync"

	"github.com/dominikbraun/graph"
)

// CustomStore extends graph.Store with in-place vertex property updates.
type CustomStore[K comparable, T any] interface {
	graph.Store[K, T]
	UpdateVertex(k K, options ...func(*graph.VertexProperties))
}

type vertexRecord[T any] struct {
	value T
	props *graph.VertexProperties
}

// MemoryStore is a mutex-guarded map-based CustomStore.
type MemoryStore[K comparable, T any] struct {
	mu       sync.RWMutex
	vertices map[K]*vertexRecord[T]
	edges    map[K]map[K]graph.Edge[K] // source -> target
	inbound  map[K]map[K]struct{}      // target -> sources, for removal checks
}

// NewMemoryStore creates an empty store.
func NewMemoryStore[K comparable, T any]() CustomStore[K, T] {
	return &MemoryStore[K, T]{
		vertices: make(map[K]*vertexRecord[T]),
		edges:    make(map[K]map[K]graph.Edge[K]),
		inbound:  make(map[K]map[K]struct{}),
	}
}

func (s *MemoryStore[K, T]) AddVertex(k K, t T, p graph.VertexProperties) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vertices[k]; ok {
		return graph.ErrVertexAlreadyExists
	}

	s.vertices[k] = &vertexRecord[T]{value: t, props: &p}

	return nil
}

func (s *MemoryStore[K, T]) Vertex(k K) (T, graph.VertexProperties, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.vertices[k]
	if !ok {
		var zero T

		return zero, graph.VertexProperties{}, graph.ErrVertexNotFound
	}

	return rec.value, *rec.props, nil
}

func (s *MemoryStore[K, T]) ListVertices() ([]K, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]K, 0, len(s.vertices))
	for k := range s.vertices {
		keys = append(keys, k)
	}

	return keys, nil
}

func (s *MemoryStore[K, T]) VertexCount() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.vertices), nil
}

func (s *MemoryStore[K, T]) RemoveVertex(k K) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vertices[k]; !ok {
		return graph.ErrVertexNotFound
	}

	if len(s.edges[k]) > 0 || len(s.inbound[k]) > 0 {
		return graph.ErrVertexHasEdges
	}

	delete(s.vertices, k)
	delete(s.edges, k)
	delete(s.inbound, k)

	return nil
}

// UpdateVertex applies the given options to the stored vertex properties.
func (s *MemoryStore[K, T]) UpdateVertex(k K, options ...func(*graph.VertexProperties)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.vertices[k]
	if !ok {
		return
	}

	for _, opt := range options {
		opt(rec.props)
	}
}

func (s *MemoryStore[K, T]) AddEdge(source, target K, edge graph.Edge[K]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.edges[source] == nil {
		s.edges[source] = make(map[K]graph.Edge[K])
	}
	s.edges[source][target] = edge

	if s.inbound[target] == nil {
		s.inbound[target] = make(map[K]struct{})
	}
	s.inbound[target][source] = struct{}{}

	return nil
}

func (s *MemoryStore[K, T]) UpdateEdge(source, target K, edge graph.Edge[K]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.edges[source][target]; !ok {
		return graph.ErrEdgeNotFound
	}

	s.edges[source][target] = edge

	return nil
}

func (s *MemoryStore[K, T]) RemoveEdge(source, target K) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.edges[source], target)
	delete(s.inbound[target], source)

	return nil
}

func (s *MemoryStore[K, T]) Edge(source, target K) (graph.Edge[K], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	edge, ok := s.edges[source][target]
	if !ok {
		return graph.Edge[K]{}, graph.ErrEdgeNotFound
	}

	return edge, nil
}

func (s *MemoryStore[K, T]) ListEdges() ([]graph.Edge[K], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]graph.Edge[K], 0)
	for _, targets := range s.edges {
		for _, edge := range targets {
			out = append(out, edge)
		}
	}

	return out, nil
}
