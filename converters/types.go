package converters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/topcorr/bfs"
	"github.com/katalvlaran/topcorr/core"
)

// Supported formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	// ErrFormat indicates an unsupported format name.
	ErrFormat = errors.New("converters: unsupported format")

	// ErrParse indicates unreadable input.
	ErrParse = errors.New("converters: parse error")
)

// ParseFormat normalizes a format name; "yml" is accepted as YAML.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrFormat, s)
}

// MatrixDocument is the JSON/YAML form of a labelled correlation matrix.
type MatrixDocument struct {
	Labels []string    `json:"labels,omitempty" yaml:"labels,omitempty"`
	Matrix [][]float64 `json:"matrix" yaml:"matrix"`
}

// NodeDoc is one node of a GraphDocument.
type NodeDoc struct {
	ID    int    `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// EdgeDoc is one edge of a GraphDocument.
type EdgeDoc struct {
	U      int     `json:"u" yaml:"u"`
	V      int     `json:"v" yaml:"v"`
	Source string  `json:"source" yaml:"source"`
	Target string  `json:"target" yaml:"target"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// GraphDocument is the serialized output of one filter run.
type GraphDocument struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	Method      string    `json:"method" yaml:"method"`
	NodeCount   int       `json:"node_count" yaml:"node_count"`
	EdgeCount   int       `json:"edge_count" yaml:"edge_count"`
	TotalWeight float64   `json:"total_weight" yaml:"total_weight"`
	Components  int       `json:"components" yaml:"components"`
	Diameter    int       `json:"diameter" yaml:"diameter"`
	Nodes       []NodeDoc `json:"nodes" yaml:"nodes"`
	Edges       []EdgeDoc `json:"edges" yaml:"edges"`
}

// NewGraphDocument snapshots g. Edges are sorted by (u, v); labels fall
// back to the decimal node index. Diameter is the largest hop distance
// inside any component.
func NewGraphDocument(g *core.Graph, method, runID string) (GraphDocument, error) {
	_, components, err := bfs.Components(g)
	if err != nil {
		return GraphDocument{}, fmt.Errorf("NewGraphDocument: %w", err)
	}
	diameter, err := bfs.Diameter(g)
	if err != nil {
		return GraphDocument{}, fmt.Errorf("NewGraphDocument: %w", err)
	}

	nodes := g.Nodes()
	doc := GraphDocument{
		RunID:       runID,
		Method:      method,
		NodeCount:   len(nodes),
		TotalWeight: g.TotalWeight(),
		Components:  components,
		Diameter:    diameter,
		Nodes:       make([]NodeDoc, len(nodes)),
	}
	for i, nd := range nodes {
		doc.Nodes[i] = NodeDoc{ID: nd.ID, Label: g.Label(nd.ID)}
	}
	edges := g.Edges()
	doc.EdgeCount = len(edges)
	doc.Edges = make([]EdgeDoc, len(edges))
	for i, e := range edges {
		doc.Edges[i] = EdgeDoc{
			U:      e.U,
			V:      e.V,
			Source: g.Label(e.U),
			Target: g.Label(e.V),
			Weight: e.Weight,
		}
	}

	return doc, nil
}
