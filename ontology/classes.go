package ontology

import (
	"github.com/owlet-db/owlet/errors"
)

// CreateClass creates a new ontology class.
//
// Fails with a validation error if the id is taken, and with not-found if a
// named parent is missing. A class created without explicit parents is
// attached to the root. Equivalent and disjoint edges are best effort:
// targets that do not exist are skipped silently.
//
// The node plus its edges are written as separate store operations; a failed
// edge write leaves the class partially connected with no rollback.
func (s *Service) CreateClass(c Class) (*Class, error) {
	if s.store.NodeExists(c.ID) {
		return nil, errors.NewValidationError("class %q already exists", c.ID)
	}

	for _, parentID := range c.ParentClasses {
		if !s.store.NodeExists(parentID) {
			return nil, errors.NewNotFoundError("parent class %q not found", parentID)
		}
	}

	if c.Label == "" {
		c.Label = c.ID
	}

	data := map[string]interface{}{
		attrLabel:       c.Label,
		attrNodeType:    NodeTypeClass,
		attrDescription: c.Description,
		attrIsAbstract:  c.IsAbstract,
	}
	if len(c.Attributes) > 0 {
		data[attrProps] = c.Attributes
	}
	if err := s.store.CreateNode(c.ID, data); err != nil {
		return nil, errors.Wrapf(err, "create class %q", c.ID)
	}

	if len(c.ParentClasses) == 0 {
		c.ParentClasses = []string{RootClassID}
	}
	for _, parentID := range c.ParentClasses {
		if err := s.store.CreateEdge(c.ID, parentID, SubClassOfRelation, 1.0); err != nil {
			return nil, errors.Wrapf(err, "link class %q to parent %q", c.ID, parentID)
		}
	}

	for _, equivID := range c.EquivalentClasses {
		if s.store.NodeExists(equivID) {
			if err := s.store.CreateEdge(c.ID, equivID, EquivalentClassRelation, 1.0); err != nil {
				return nil, errors.Wrapf(err, "link class %q to equivalent %q", c.ID, equivID)
			}
		}
	}
	for _, disjID := range c.DisjointClasses {
		if s.store.NodeExists(disjID) {
			if err := s.store.CreateEdge(c.ID, disjID, DisjointWithRelation, 1.0); err != nil {
				return nil, errors.Wrapf(err, "link class %q to disjoint %q", c.ID, disjID)
			}
		}
	}

	s.log.Infow("Class created",
		"class_id", c.ID,
		"parents", c.ParentClasses,
	)
	return &c, nil
}

// Class returns a class by id, reconstructing parent, equivalent, and
// disjoint relations from the edge set.
func (s *Service) Class(classID string) (*Class, error) {
	data, err := s.store.Node(classID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewNotFoundError("class %q not found", classID)
		}
		return nil, err
	}

	if stringAttr(data, attrNodeType) != NodeTypeClass {
		return nil, errors.NewValidationError("node %q is not a class", classID)
	}

	cls := &Class{
		ID:            classID,
		Label:         stringAttr(data, attrLabel),
		Description:   stringAttr(data, attrDescription),
		IsAbstract:    boolAttr(data, attrIsAbstract),
		ParentClasses: []string{},
		Attributes:    mapAttr(data, attrProps),
	}
	if cls.Label == "" {
		cls.Label = classID
	}

	edges, err := s.store.Edges()
	if err != nil {
		return nil, errors.Wrapf(err, "load edges for class %q", classID)
	}
	for _, e := range edges {
		if e.Source != classID {
			continue
		}
		switch e.Label {
		case SubClassOfRelation:
			cls.ParentClasses = append(cls.ParentClasses, e.Target)
		case EquivalentClassRelation:
			cls.EquivalentClasses = append(cls.EquivalentClasses, e.Target)
		case DisjointWithRelation:
			cls.DisjointClasses = append(cls.DisjointClasses, e.Target)
		}
	}

	return cls, nil
}

// AllClasses returns every ontology class. Nodes that fail to load are
// skipped so one malformed node cannot break the listing.
func (s *Service) AllClasses() ([]Class, error) {
	nodeIDs, err := s.store.Nodes()
	if err != nil {
		return nil, errors.Wrap(err, "list classes")
	}

	classes := []Class{}
	for _, nodeID := range nodeIDs {
		data, err := s.store.Node(nodeID)
		if err != nil || stringAttr(data, attrNodeType) != NodeTypeClass {
			continue
		}
		cls, err := s.Class(nodeID)
		if err != nil {
			s.log.Warnw("Skipping unreadable class", "class_id", nodeID, "error", err)
			continue
		}
		classes = append(classes, *cls)
	}
	return classes, nil
}

// DeleteClass deletes a class.
//
// Without force, deletion is refused while the class has direct instances or
// direct subclasses. With force, cascading removal of incident edges is
// delegated to the graph store.
func (s *Service) DeleteClass(classID string, force bool) error {
	if _, err := s.Class(classID); err != nil {
		return err
	}

	if !force {
		instances, err := s.Instances.OfClass(classID, true)
		if err != nil {
			return err
		}
		if len(instances) > 0 {
			return errors.NewInvalidOperationError(
				"cannot delete class %q: has %d instances", classID, len(instances))
		}

		subclasses, err := s.Hierarchy.Subclasses(classID, true)
		if err != nil {
			return err
		}
		if len(subclasses) > 0 {
			return errors.NewInvalidOperationError(
				"cannot delete class %q: has %d subclasses", classID, len(subclasses))
		}
	}

	if err := s.store.DeleteNode(classID); err != nil {
		return errors.Wrapf(err, "delete class %q", classID)
	}

	s.log.Infow("Class deleted", "class_id", classID, "force", force)
	return nil
}
