// Package ontology implements a semantic data model — classes, properties,
// and instances connected by typed relations — layered on a generic labeled
// graph store.
//
// The graph store is consumed through the narrow graphstore.Store interface
// and carries no semantics of its own; this package owns the reserved
// node_type tag, the relation labels, hierarchy traversal, property
// inheritance, instance validation, and consistency checking.
//
// The service is single-threaded and synchronous: every traversal scans the
// full edge set and filters in memory, which is acceptable for the small
// ontologies this is built for. Multi-edge writes are not atomic; a failed
// intermediate edge write leaves the node partially connected.
package ontology

import (
	"go.uber.org/zap"

	"github.com/owlet-db/owlet/graphstore"
)

// Service is the single stable surface combining the hierarchy, property,
// instance, and consistency engines. It is the only component adapters call.
//
// The caller owns the Service lifetime: construct once at process start,
// call Init, and tear down with the process.
type Service struct {
	store graphstore.Store
	log   *zap.SugaredLogger

	Hierarchy   *HierarchyEngine
	Properties  *PropertyEngine
	Instances   *InstanceEngine
	Consistency *ConsistencyChecker
}

// NewService creates an ontology service over the given graph store.
// If logger is nil the service operates silently.
func NewService(store graphstore.Store, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	s := &Service{
		store: store,
		log:   logger.Named("ontology"),
	}
	s.Hierarchy = &HierarchyEngine{svc: s, log: s.log.Named("hierarchy")}
	s.Properties = &PropertyEngine{svc: s, log: s.log.Named("properties")}
	s.Instances = &InstanceEngine{svc: s, log: s.log.Named("instances")}
	s.Consistency = &ConsistencyChecker{svc: s, log: s.log.Named("consistency")}
	return s
}

// Init creates the root class node (owl:Thing) if it does not exist.
// Idempotent; safe to call on every startup.
func (s *Service) Init() error {
	if s.store.NodeExists(RootClassID) {
		return nil
	}
	s.log.Infow("Creating root class", "class_id", RootClassID)
	return s.store.CreateNode(RootClassID, map[string]interface{}{
		attrLabel:       "Thing",
		attrNodeType:    NodeTypeClass,
		attrDescription: "Root of all classes",
	})
}

// ClassDetail merges a class with its direct and inherited properties into
// one report, used both for display and as the instance-validation input.
func (s *Service) ClassDetail(classID string) (*ClassDetail, error) {
	cls, err := s.Class(classID)
	if err != nil {
		return nil, err
	}

	direct, err := s.Properties.Direct(classID)
	if err != nil {
		return nil, err
	}
	inherited, err := s.Properties.Inherited(classID)
	if err != nil {
		return nil, err
	}

	all := make([]PropertyDetail, 0, len(direct)+len(inherited))
	all = append(all, direct...)
	all = append(all, inherited...)

	return &ClassDetail{
		Class:               *cls,
		DirectProperties:    direct,
		InheritedProperties: inherited,
		AllProperties:       all,
	}, nil
}

// attribute helpers for the loosely typed node data maps

func stringAttr(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func boolAttr(data map[string]interface{}, key string) bool {
	if v, ok := data[key].(bool); ok {
		return v
	}
	return false
}

func mapAttr(data map[string]interface{}, key string) map[string]interface{} {
	if v, ok := data[key].(map[string]interface{}); ok {
		return v
	}
	return nil
}

func stringMapAttr(data map[string]interface{}, key string) map[string]string {
	raw := mapAttr(data, key)
	if raw == nil {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
