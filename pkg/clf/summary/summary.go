// Package summary computes per-node statistics of a parsed ProcessList,
// used for reporting and by the drawer package for graph labels.
package summary

import (
	"github.com/colour-pipeline/go-clf/pkg/clf"
)

// NodeStats describes one pipeline stage.
type NodeStats struct {
	ID      string
	Kind    clf.NodeKind
	Samples int
}

// Summary aggregates statistics over a whole ProcessList.
type Summary struct {
	// Nodes holds per-node statistics in pipeline order.
	Nodes []NodeStats
	// Counts holds the number of nodes per kind.
	Counts map[clf.NodeKind]int
	// TotalSamples is the flat value count over all array-backed nodes, the
	// dominant memory cost of a document.
	TotalSamples int
}

// Of computes the summary of a parsed ProcessList.
func Of(pl *clf.ProcessList) *Summary {
	s := &Summary{Counts: make(map[clf.NodeKind]int)}

	for _, node := range pl.Nodes {
		stats := NodeStats{
			ID:      node.Header().ID,
			Kind:    node.Kind(),
			Samples: sampleCount(node),
		}

		s.Nodes = append(s.Nodes, stats)
		s.Counts[stats.Kind]++
		s.TotalSamples += stats.Samples
	}

	return s
}

// sampleCount returns the flat array length of array-backed nodes, 0 for
// parameter-only nodes.
func sampleCount(node clf.ProcessNode) int {
	switch n := node.(type) {
	case *clf.LUT1D:
		return n.Array.Len()
	case *clf.LUT3D:
		return n.Array.Len()
	case *clf.Matrix:
		return n.Array.Len()
	default:
		return 0
	}
}
