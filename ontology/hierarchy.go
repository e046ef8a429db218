package ontology

import (
	"go.uber.org/zap"

	"github.com/owlet-db/owlet/errors"
)

// HierarchyEngine traverses the subclass relation: subclass/superclass
// expansion, tree construction, and cycle probing.
//
// Traversals scan the full edge set and filter in memory, and they skip
// nodes that fail to load rather than aborting the whole walk. Recursive
// expansion does NOT deduplicate: under diamond inheritance a class
// reachable via two paths appears once per path, and callers must tolerate
// repeats.
type HierarchyEngine struct {
	svc *Service
	log *zap.SugaredLogger
}

// Subclasses returns the classes with a subclass edge to classID. When
// directOnly is false the result is expanded recursively through each
// subclass's own subclasses.
func (h *HierarchyEngine) Subclasses(classID string, directOnly bool) ([]Class, error) {
	edges, err := h.svc.store.Edges()
	if err != nil {
		return nil, errors.Wrap(err, "load edges")
	}

	subclasses := []Class{}
	for _, e := range edges {
		if e.Target != classID || e.Label != SubClassOfRelation {
			continue
		}
		cls, err := h.svc.Class(e.Source)
		if err != nil {
			h.log.Debugw("Skipping unreadable subclass", "class_id", e.Source, "error", err)
			continue
		}
		subclasses = append(subclasses, *cls)

		if !directOnly {
			indirect, err := h.Subclasses(e.Source, false)
			if err != nil {
				continue
			}
			subclasses = append(subclasses, indirect...)
		}
	}
	return subclasses, nil
}

// Superclasses returns the classes classID has a subclass edge to. When
// directOnly is false the result is expanded recursively up the hierarchy;
// for any acyclic hierarchy it includes every ancestor up to the root.
func (h *HierarchyEngine) Superclasses(classID string, directOnly bool) ([]Class, error) {
	edges, err := h.svc.store.Edges()
	if err != nil {
		return nil, errors.Wrap(err, "load edges")
	}

	superclasses := []Class{}
	for _, e := range edges {
		if e.Source != classID || e.Label != SubClassOfRelation {
			continue
		}
		cls, err := h.svc.Class(e.Target)
		if err != nil {
			h.log.Debugw("Skipping unreadable superclass", "class_id", e.Target, "error", err)
			continue
		}
		superclasses = append(superclasses, *cls)

		if !directOnly {
			indirect, err := h.Superclasses(e.Target, false)
			if err != nil {
				continue
			}
			superclasses = append(superclasses, indirect...)
		}
	}
	return superclasses, nil
}

// Tree builds the class hierarchy tree rooted at rootID, annotating each
// node with its direct instance count and depth (root depth 0).
//
// Tree does not guard against subclass cycles; run a consistency check
// first if the hierarchy is untrusted.
func (h *HierarchyEngine) Tree(rootID string) (*HierarchyNode, error) {
	if rootID == "" {
		rootID = RootClassID
	}
	return h.buildTree(rootID, "", 0)
}

func (h *HierarchyEngine) buildTree(classID, parentID string, depth int) (*HierarchyNode, error) {
	cls, err := h.svc.Class(classID)
	if err != nil {
		return nil, err
	}

	instances, err := h.svc.Instances.OfClass(classID, true)
	if err != nil {
		return nil, err
	}

	node := &HierarchyNode{
		ClassID:       classID,
		Label:         cls.Label,
		ParentID:      parentID,
		InstanceCount: len(instances),
		Depth:         depth,
		Children:      []*HierarchyNode{},
	}

	subclasses, err := h.Subclasses(classID, true)
	if err != nil {
		return nil, err
	}
	for _, subclass := range subclasses {
		child, err := h.buildTree(subclass.ID, classID, depth+1)
		if err != nil {
			h.log.Debugw("Skipping unreadable subtree", "class_id", subclass.ID, "error", err)
			continue
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}

// HasCycle probes for a subclass cycle reachable from classID by walking
// superclass edges depth-first. It tracks the current path, not a
// cumulative visited set: multiple parents reaching a common ancestor
// (diamond shapes) are not cycles.
func (h *HierarchyEngine) HasCycle(classID string) bool {
	onPath := make(map[string]bool)

	var visit func(id string) bool
	visit = func(id string) bool {
		if onPath[id] {
			return true
		}
		onPath[id] = true
		defer delete(onPath, id)

		parents, err := h.directSuperclassIDs(id)
		if err != nil {
			return false
		}
		for _, parentID := range parents {
			if visit(parentID) {
				return true
			}
		}
		return false
	}

	return visit(classID)
}

// directSuperclassIDs returns the ids classID has subclass edges to,
// without materializing full Class values.
func (h *HierarchyEngine) directSuperclassIDs(classID string) ([]string, error) {
	edges, err := h.svc.store.Edges()
	if err != nil {
		return nil, errors.Wrap(err, "load edges")
	}

	var parents []string
	for _, e := range edges {
		if e.Source == classID && e.Label == SubClassOfRelation {
			parents = append(parents, e.Target)
		}
	}
	return parents, nil
}
