// Package drawer renders a parsed CLF ProcessList as a Graphviz pipeline
// graph: one vertex per process node, coloured by kind, with edges following
// the execution order.
package drawer

import (
	"io"

	"github.com/colour-pipeline/go-clf/pkg/clf"
)

// Drawer builds a drawable graph from process lists.
type Drawer interface {
	// AddProcessList adds every node of the process list to the graph.
	AddProcessList(pl *clf.ProcessList) error
	// Draw writes the accumulated graph.
	Draw(w io.Writer) error
}
