package graphstore

import (
	"testing"

	"github.com/owlet-db/owlet/errors"
	"github.com/owlet-db/owlet/graphstore/testutil"
)

func TestCreateAndGetNode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewSQLStore(db, nil)

	data := map[string]interface{}{
		"label":     "Person",
		"node_type": "owl:Class",
	}
	if err := store.CreateNode("demo:Person", data); err != nil {
		t.Fatalf("CreateNode() error: %v", err)
	}

	got, err := store.Node("demo:Person")
	if err != nil {
		t.Fatalf("Node() error: %v", err)
	}
	if got["label"] != "Person" || got["node_type"] != "owl:Class" {
		t.Errorf("Node() = %v, want label/node_type round-trip", got)
	}
}

func TestNodeExists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewSQLStore(db, nil)

	if store.NodeExists("absent") {
		t.Error("NodeExists('absent') = true, want false")
	}

	if err := store.CreateNode("present", nil); err != nil {
		t.Fatalf("CreateNode() error: %v", err)
	}
	if !store.NodeExists("present") {
		t.Error("NodeExists('present') = false, want true")
	}
}

func TestCreateNodeDuplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewSQLStore(db, nil)

	if err := store.CreateNode("dup", nil); err != nil {
		t.Fatalf("CreateNode() error: %v", err)
	}
	if err := store.CreateNode("dup", nil); err == nil {
		t.Error("CreateNode() with duplicate id succeeded, want error")
	}
}

func TestNodeNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewSQLStore(db, nil)

	_, err := store.Node("absent")
	if !errors.IsNotFound(err) {
		t.Errorf("Node('absent') error = %v, want not-found", err)
	}
}

func TestCreateAndGetEdge(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewSQLStore(db, nil)

	if err := store.CreateEdge("demo:Dog", "demo:Animal", "rdfs:subClassOf", 1.0); err != nil {
		t.Fatalf("CreateEdge() error: %v", err)
	}

	edge, err := store.Edge("demo:Dog", "demo:Animal")
	if err != nil {
		t.Fatalf("Edge() error: %v", err)
	}
	if edge.Label != "rdfs:subClassOf" || edge.Weight != 1.0 {
		t.Errorf("Edge() = %+v, want label rdfs:subClassOf weight 1.0", edge)
	}

	if _, err := store.Edge("demo:Animal", "demo:Dog"); !errors.IsNotFound(err) {
		t.Errorf("Edge() reverse direction error = %v, want not-found", err)
	}
}

func TestEdgeToLiteralTarget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewSQLStore(db, nil)

	// Edges may target names that are not nodes (e.g. datatypes)
	if err := store.CreateEdge("demo:name", "xsd:string", "rdfs:range", 1.0); err != nil {
		t.Fatalf("CreateEdge() to literal target error: %v", err)
	}

	edge, err := store.Edge("demo:name", "xsd:string")
	if err != nil {
		t.Fatalf("Edge() error: %v", err)
	}
	if edge.Target != "xsd:string" {
		t.Errorf("Edge().Target = %q, want xsd:string", edge.Target)
	}
}

func TestDeleteNodeCascadesEdges(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewSQLStore(db, nil)

	for _, id := range []string{"a", "b", "c"} {
		if err := store.CreateNode(id, nil); err != nil {
			t.Fatalf("CreateNode(%s) error: %v", id, err)
		}
	}
	store.CreateEdge("a", "b", "rel", 1.0)
	store.CreateEdge("b", "c", "rel", 1.0)
	store.CreateEdge("c", "a", "rel", 1.0)

	if err := store.DeleteNode("b"); err != nil {
		t.Fatalf("DeleteNode() error: %v", err)
	}

	edges, err := store.Edges()
	if err != nil {
		t.Fatalf("Edges() error: %v", err)
	}
	for _, e := range edges {
		if e.Source == "b" || e.Target == "b" {
			t.Errorf("edge %+v survived DeleteNode('b')", e)
		}
	}
	if len(edges) != 1 {
		t.Errorf("len(Edges()) = %d, want 1 (only c->a survives)", len(edges))
	}
}

func TestDeleteNodeMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewSQLStore(db, nil)

	if err := store.DeleteNode("absent"); !errors.IsNotFound(err) {
		t.Errorf("DeleteNode('absent') error = %v, want not-found", err)
	}
}

func TestEnumerateNodesAndEdges(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewSQLStore(db, nil)

	ids := []string{"n1", "n2", "n3"}
	for _, id := range ids {
		if err := store.CreateNode(id, nil); err != nil {
			t.Fatalf("CreateNode(%s) error: %v", id, err)
		}
	}
	store.CreateEdge("n1", "n2", "x", 1.0)
	store.CreateEdge("n2", "n3", "y", 2.0)

	nodes, err := store.Nodes()
	if err != nil {
		t.Fatalf("Nodes() error: %v", err)
	}
	if len(nodes) != 3 {
		t.Errorf("len(Nodes()) = %d, want 3", len(nodes))
	}

	edges, err := store.Edges()
	if err != nil {
		t.Fatalf("Edges() error: %v", err)
	}
	if len(edges) != 2 {
		t.Errorf("len(Edges()) = %d, want 2", len(edges))
	}
}
