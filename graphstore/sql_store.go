package graphstore

import (
	"database/sql"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/owlet-db/owlet/errors"
)

// Query constants
const (
	nodeInsertQuery = `INSERT INTO nodes (id, data) VALUES (?, ?)`
	nodeSelectQuery = `SELECT data FROM nodes WHERE id = ?`
	nodeExistsQuery = `SELECT EXISTS(SELECT 1 FROM nodes WHERE id = ?)`
	nodeDeleteQuery = `DELETE FROM nodes WHERE id = ?`
	nodeListQuery   = `SELECT id FROM nodes ORDER BY id`

	edgeInsertQuery = `INSERT INTO edges (source, target, label, weight) VALUES (?, ?, ?, ?)`
	edgeSelectQuery = `SELECT source, target, label, weight FROM edges WHERE source = ? AND target = ?`
	edgeListQuery   = `SELECT source, target, label, weight FROM edges ORDER BY source, target`

	incidentEdgesDeleteQuery = `DELETE FROM edges WHERE source = ? OR target = ?`
)

// SQLStore implements the Store interface with a SQLite backend.
// Node attribute maps are serialized as JSON in a single data column.
type SQLStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewSQLStore creates a new SQL-based graph store.
// If logger is nil the store operates silently.
func NewSQLStore(db *sql.DB, logger *zap.SugaredLogger) *SQLStore {
	if logger != nil {
		logger = logger.Named("graphstore")
	}
	return &SQLStore{
		db:     db,
		logger: logger,
	}
}

// NodeExists reports whether a node with the given id exists.
func (s *SQLStore) NodeExists(id string) bool {
	var exists bool
	err := s.db.QueryRow(nodeExistsQuery, id).Scan(&exists)
	return err == nil && exists
}

// CreateNode creates a node with an opaque attribute map.
func (s *SQLStore) CreateNode(id string, data map[string]interface{}) error {
	if data == nil {
		data = map[string]interface{}{}
	}
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return errors.Wrapf(err, "marshal node data for %q", id)
	}

	if _, err := s.db.Exec(nodeInsertQuery, id, string(dataJSON)); err != nil {
		return errors.Wrapf(err, "insert node %q", id)
	}

	if s.logger != nil {
		s.logger.Debugw("Node created", "node_id", id)
	}
	return nil
}

// Node returns the attribute map of a node.
func (s *SQLStore) Node(id string) (map[string]interface{}, error) {
	var dataJSON string
	err := s.db.QueryRow(nodeSelectQuery, id).Scan(&dataJSON)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("node %q not found", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "select node %q", id)
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
		return nil, errors.Wrapf(err, "unmarshal node data for %q", id)
	}
	return data, nil
}

// DeleteNode removes a node and all edges incident to it.
func (s *SQLStore) DeleteNode(id string) error {
	if _, err := s.db.Exec(incidentEdgesDeleteQuery, id, id); err != nil {
		return errors.Wrapf(err, "delete edges incident to %q", id)
	}

	res, err := s.db.Exec(nodeDeleteQuery, id)
	if err != nil {
		return errors.Wrapf(err, "delete node %q", id)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.NewNotFoundError("node %q not found", id)
	}

	if s.logger != nil {
		s.logger.Debugw("Node deleted", "node_id", id)
	}
	return nil
}

// CreateEdge creates a directed labeled edge keyed by (source, target).
func (s *SQLStore) CreateEdge(source, target, label string, weight float64) error {
	if _, err := s.db.Exec(edgeInsertQuery, source, target, label, weight); err != nil {
		return errors.Wrapf(err, "insert edge %q -> %q", source, target)
	}
	return nil
}

// Edge returns the edge keyed by (source, target).
func (s *SQLStore) Edge(source, target string) (*Edge, error) {
	var e Edge
	err := s.db.QueryRow(edgeSelectQuery, source, target).Scan(&e.Source, &e.Target, &e.Label, &e.Weight)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("edge %q -> %q not found", source, target)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "select edge %q -> %q", source, target)
	}
	return &e, nil
}

// Nodes enumerates all node ids.
func (s *SQLStore) Nodes() ([]string, error) {
	rows, err := s.db.Query(nodeListQuery)
	if err != nil {
		return nil, errors.Wrap(err, "list nodes")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "scan node id")
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Edges enumerates all edges.
func (s *SQLStore) Edges() ([]Edge, error) {
	rows, err := s.db.Query(edgeListQuery)
	if err != nil {
		return nil, errors.Wrap(err, "list edges")
	}
	defer rows.Close()

	var edges []Edge
	for rows.Next() {
		var e Edge
		if err := rows.Scan(&e.Source, &e.Target, &e.Label, &e.Weight); err != nil {
			return nil, errors.Wrap(err, "scan edge")
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}
