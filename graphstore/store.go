// Package graphstore provides a generic directed labeled graph store.
//
// Nodes are keyed by a globally unique string identifier and hold an opaque
// attribute map. Edges are keyed by (source, target) and hold a label and a
// numeric weight. The store attaches no semantics to either; semantic layers
// are built on top of the Store interface.
package graphstore

// Edge is a directed labeled edge between two nodes.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

// Store is the narrow graph interface consumed by semantic layers.
// Implementations are assumed durable and atomic for single operations only;
// multi-operation sequences are not transactional.
type Store interface {
	// NodeExists reports whether a node with the given id exists.
	NodeExists(id string) bool

	// CreateNode creates a node with an opaque attribute map.
	// Fails if the id already exists.
	CreateNode(id string, data map[string]interface{}) error

	// Node returns the attribute map of a node.
	Node(id string) (map[string]interface{}, error)

	// DeleteNode removes a node and all edges incident to it.
	DeleteNode(id string) error

	// CreateEdge creates a directed labeled edge. The target is not
	// required to be an existing node: edges may point at literal names
	// (e.g. datatypes).
	CreateEdge(source, target, label string, weight float64) error

	// Edge returns the edge keyed by (source, target).
	Edge(source, target string) (*Edge, error)

	// Nodes enumerates all node ids.
	Nodes() ([]string, error)

	// Edges enumerates all edges.
	Edges() ([]Edge, error)
}
