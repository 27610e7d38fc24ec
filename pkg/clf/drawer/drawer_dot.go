package drawer

import (
	"fmt"
	"io"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/colour-pipeline/go-clf/internal/store"
	"github.com/colour-pipeline/go-clf/pkg/clf"
	"github.com/colour-pipeline/go-clf/pkg/clf/summary"
)

// DOTDrawer renders process lists as a Graphviz DOT digraph.
type DOTDrawer struct {
	graph   graph.Graph[string, string]
	store   store.CustomStore[string, string]
	options []func(*description)
	next    int
}

// NewDOTDrawer creates an empty drawer. Options such as GraphAttribute apply
// to every Draw call.
func NewDOTDrawer(options ...func(*description)) *DOTDrawer {
	st := store.NewMemoryStore[string, string]()

	return &DOTDrawer{
		graph:   graph.NewWithStore[string, string](graph.StringHash, st, graph.Directed()),
		store:   st,
		options: options,
	}
}

// kindColours maps each node kind to its fill colour components.
var kindColours = map[clf.NodeKind][3]uint8{
	clf.KindLUT1D:    {255, 196, 110},
	clf.KindLUT3D:    {255, 140, 60},
	clf.KindMatrix:   {120, 170, 255},
	clf.KindRange:    {150, 220, 150},
	clf.KindLog:      {200, 160, 255},
	clf.KindExponent: {230, 130, 200},
	clf.KindASCCDL:   {250, 230, 120},
}

func kindColour(kind clf.NodeKind) (string, error) {
	rgb, ok := kindColours[kind]
	if !ok {
		rgb = [3]uint8{200, 200, 200}
	}

	c, err := colors.RGB(rgb[0], rgb[1], rgb[2]) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return c.ToHEX().String(), nil
}

// AddProcessList adds one vertex per process node and chains them with edges
// in pipeline order. Edge labels carry the bit depth flowing between nodes,
// vertex labels carry the sample count of array-backed nodes.
func (d *DOTDrawer) AddProcessList(pl *clf.ProcessList) error {
	stats := summary.Of(pl)

	names := make([]string, len(pl.Nodes))

	for i, node := range pl.Nodes {
		names[i] = d.vertexName(node)

		colour, err := kindColour(node.Kind())
		if err != nil {
			return err
		}

		err = d.graph.AddVertex(names[i],
			graph.VertexAttribute("style", "filled"),
			graph.VertexAttribute("fillcolor", colour),
		)
		if err != nil {
			return errors.Wrapf(err, "unable to add vertex for node %q", names[i])
		}

		if samples := stats.Nodes[i].Samples; samples > 0 {
			d.store.UpdateVertex(names[i], func(p *graph.VertexProperties) {
				p.Attributes["xlabel"] = fmt.Sprintf("%d samples", samples)
			})
		}
	}

	for i := 0; i+1 < len(names); i++ {
		depth := string(pl.Nodes[i].Header().OutBitDepth)

		err := d.graph.AddEdge(names[i], names[i+1], graph.EdgeAttribute("label", depth))
		if err != nil {
			return errors.Wrapf(err, "unable to add edge from %s to %s", names[i], names[i+1])
		}
	}

	return nil
}

// vertexName builds a unique, readable vertex id for a node.
func (d *DOTDrawer) vertexName(node clf.ProcessNode) string {
	d.next++

	label := node.Header().ID
	if label == "" {
		label = node.Header().Name
	}

	if label == "" {
		return fmt.Sprintf("%d. %s", d.next, node.Kind())
	}

	return fmt.Sprintf("%d. %s %s", d.next, node.Kind(), label)
}

// Draw writes the accumulated graph as DOT.
func (d *DOTDrawer) Draw(w io.Writer) error {
	desc, err := generateDOT(d.graph, d.options...)
	if err != nil {
		return errors.Wrap(err, "unable to generate DOT description")
	}

	return renderDOT(w, desc)
}

var _ Drawer = (*DOTDrawer)(nil)

// The pipeline graph is always directed, so the template hardcodes a
// digraph. Vertices with an xlabel get an HTML label combining the vertex
// name and the annotation.
//
//nolint:lll //this is a template
const dotTemplate = `strict digraph {
{{- range $k, $v := .Attributes}}
	{{$k}}="{{$v}}";
{{- end}}
{{- range .Vertices}}
	"{{.Name}}" [ {{range $k, $v := .HTML}}{{$k}}={{$v}}, {{end}}{{range $k, $v := .Attributes}}{{$k}}="{{$v}}", {{end}}weight={{.Weight}} ];
{{- end}}
{{- range .Edges}}
	"{{.Source}}" -> "{{.Target}}" [ {{range $k, $v := .Attributes}}{{$k}}="{{$v}}", {{end}}weight={{.Weight}} ];
{{- end}}
}
`

type description struct {
	Attributes map[string]string
	Vertices   []vertexStatement
	Edges      []edgeStatement
}

type vertexStatement struct {
	Name       string
	Weight     int
	Attributes map[string]string
	HTML       map[string]string
}

type edgeStatement struct {
	Source     string
	Target     string
	Weight     int
	Attributes map[string]string
}

// GraphAttribute sets a top level attribute on the rendered graph.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

func generateDOT(gra graph.Graph[string, string], options ...func(*description)) (description, error) {
	desc := description{Attributes: make(map[string]string)}

	for _, option := range options {
		option(&desc)
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for vertex, adjacencies := range adjacencyMap {
		_, properties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		html := make(map[string]string)

		if xlabel, ok := properties.Attributes["xlabel"]; ok {
			html["label"] = fmt.Sprintf(`<%s <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, xlabel)

			delete(properties.Attributes, "xlabel")
		}

		desc.Vertices = append(desc.Vertices, vertexStatement{
			Name:       vertex,
			Weight:     properties.Weight,
			Attributes: properties.Attributes,
			HTML:       html,
		})

		for target, edge := range adjacencies {
			desc.Edges = append(desc.Edges, edgeStatement{
				Source:     vertex,
				Target:     target,
				Weight:     edge.Properties.Weight,
				Attributes: edge.Properties.Attributes,
			})
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "unable to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}
