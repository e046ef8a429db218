package ontology

import (
	"github.com/owlet-db/owlet/errors"
)

// Statistics counts classes, properties by kind, and instances, and
// computes the maximum hierarchy depth.
//
// Depth is recomputed from scratch on every call by walking each class's
// superclass chain — O(V²) in the worst case, acceptable only because
// ontology sizes are small.
func (s *Service) Statistics() (*Stats, error) {
	classes, err := s.AllClasses()
	if err != nil {
		return nil, err
	}
	properties, err := s.AllProperties()
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalClasses:    len(classes),
		TotalProperties: len(properties),
	}

	for _, prop := range properties {
		switch prop.Kind {
		case ObjectProperty:
			stats.ObjectProperties++
		case DataProperty:
			stats.DataProperties++
		case AnnotationProperty:
			stats.AnnotationProperties++
		}
	}

	nodeIDs, err := s.store.Nodes()
	if err != nil {
		return nil, errors.Wrap(err, "count instances")
	}
	for _, nodeID := range nodeIDs {
		data, err := s.store.Node(nodeID)
		if err != nil {
			continue
		}
		if stringAttr(data, attrNodeType) == NodeTypeInstance {
			stats.TotalInstances++
		}
	}

	for _, cls := range classes {
		onPath := make(map[string]bool)
		if depth := s.hierarchyDepth(cls.ID, onPath); depth > stats.MaxHierarchyDepth {
			stats.MaxHierarchyDepth = depth
		}
	}

	return stats, nil
}

// hierarchyDepth is 1 + the maximum parent depth, with 0 for classes that
// have no superclasses. The current path is tracked so that a subclass
// cycle (accepted lazily at write time) terminates instead of recursing
// forever; a class already on the path contributes depth 0.
func (s *Service) hierarchyDepth(classID string, onPath map[string]bool) int {
	if onPath[classID] {
		return 0
	}
	onPath[classID] = true
	defer delete(onPath, classID)

	parents, err := s.Hierarchy.directSuperclassIDs(classID)
	if err != nil || len(parents) == 0 {
		return 0
	}

	maxParent := 0
	for _, parentID := range parents {
		if depth := s.hierarchyDepth(parentID, onPath); depth > maxParent {
			maxParent = depth
		}
	}
	return 1 + maxParent
}
