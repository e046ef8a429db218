package ontology

import (
	"strings"

	"go.uber.org/zap"

	"github.com/owlet-db/owlet/errors"
)

// CreateProperty creates a new ontology property.
//
// Domain edges are written only for classes that exist (best effort). Range
// edges are written unconditionally: a range entry may be a datatype name
// (e.g. xsd:string) that is not a node, and the edge is still materialized
// so the range round-trips.
func (s *Service) CreateProperty(p Property) (*Property, error) {
	if s.store.NodeExists(p.ID) {
		return nil, errors.NewValidationError("property %q already exists", p.ID)
	}

	if p.Label == "" {
		p.Label = p.ID
	}
	if p.Kind == "" {
		p.Kind = ObjectProperty
	}

	characteristics := make([]string, 0, len(p.Characteristics))
	for _, c := range p.Characteristics {
		characteristics = append(characteristics, string(c))
	}

	data := map[string]interface{}{
		attrLabel:           p.Label,
		attrNodeType:        NodeTypeProperty,
		attrPropertyType:    string(p.Kind),
		attrDescription:     p.Description,
		attrInverseOf:       p.InverseOf,
		attrCharacteristics: strings.Join(characteristics, ","),
	}
	if len(p.Annotations) > 0 {
		annotations := make(map[string]interface{}, len(p.Annotations))
		for k, v := range p.Annotations {
			annotations[k] = v
		}
		data[attrAnnotations] = annotations
	}
	if err := s.store.CreateNode(p.ID, data); err != nil {
		return nil, errors.Wrapf(err, "create property %q", p.ID)
	}

	for _, domainClass := range p.Domain {
		if s.store.NodeExists(domainClass) {
			if err := s.store.CreateEdge(p.ID, domainClass, DomainRelation, 1.0); err != nil {
				return nil, errors.Wrapf(err, "link property %q to domain %q", p.ID, domainClass)
			}
		}
	}
	for _, rangeTarget := range p.Range {
		if err := s.store.CreateEdge(p.ID, rangeTarget, RangeRelation, 1.0); err != nil {
			return nil, errors.Wrapf(err, "link property %q to range %q", p.ID, rangeTarget)
		}
	}

	s.log.Infow("Property created",
		"property_id", p.ID,
		"property_type", p.Kind,
		"domain", p.Domain,
	)
	return &p, nil
}

// Property returns a property by id, reconstructing domain and range from
// the edge set.
func (s *Service) Property(propertyID string) (*Property, error) {
	data, err := s.store.Node(propertyID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewNotFoundError("property %q not found", propertyID)
		}
		return nil, err
	}

	if stringAttr(data, attrNodeType) != NodeTypeProperty {
		return nil, errors.NewValidationError("node %q is not a property", propertyID)
	}

	prop := &Property{
		ID:          propertyID,
		Label:       stringAttr(data, attrLabel),
		Kind:        PropertyKind(stringAttr(data, attrPropertyType)),
		Description: stringAttr(data, attrDescription),
		InverseOf:   stringAttr(data, attrInverseOf),
		Domain:      []string{},
		Range:       []string{},
		Annotations: stringMapAttr(data, attrAnnotations),
	}
	if prop.Label == "" {
		prop.Label = propertyID
	}
	if prop.Kind == "" {
		prop.Kind = ObjectProperty
	}

	if raw := stringAttr(data, attrCharacteristics); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			switch Characteristic(c) {
			case Functional, InverseFunctional, Transitive, Symmetric,
				Asymmetric, Reflexive, Irreflexive:
				prop.Characteristics = append(prop.Characteristics, Characteristic(c))
			}
		}
	}

	edges, err := s.store.Edges()
	if err != nil {
		return nil, errors.Wrapf(err, "load edges for property %q", propertyID)
	}
	for _, e := range edges {
		if e.Source != propertyID {
			continue
		}
		switch e.Label {
		case DomainRelation:
			prop.Domain = append(prop.Domain, e.Target)
		case RangeRelation:
			prop.Range = append(prop.Range, e.Target)
		}
	}

	return prop, nil
}

// AllProperties returns every ontology property. Nodes that fail to load
// are skipped with a warning.
func (s *Service) AllProperties() ([]Property, error) {
	nodeIDs, err := s.store.Nodes()
	if err != nil {
		return nil, errors.Wrap(err, "list properties")
	}

	properties := []Property{}
	for _, nodeID := range nodeIDs {
		data, err := s.store.Node(nodeID)
		if err != nil || stringAttr(data, attrNodeType) != NodeTypeProperty {
			continue
		}
		prop, err := s.Property(nodeID)
		if err != nil {
			s.log.Warnw("Skipping unreadable property", "property_id", nodeID, "error", err)
			continue
		}
		properties = append(properties, *prop)
	}
	return properties, nil
}

// PropertyEngine computes domain association and recursive property
// inheritance across the class hierarchy.
type PropertyEngine struct {
	svc *Service
	log *zap.SugaredLogger
}

// Direct returns the properties whose domain includes classID.
func (e *PropertyEngine) Direct(classID string) ([]PropertyDetail, error) {
	allProps, err := e.svc.AllProperties()
	if err != nil {
		return nil, err
	}

	details := []PropertyDetail{}
	for _, prop := range allProps {
		for _, domainClass := range prop.Domain {
			if domainClass != classID {
				continue
			}
			details = append(details, PropertyDetail{
				ID:          prop.ID,
				Label:       prop.Label,
				Kind:        prop.Kind,
				Description: prop.Description,
				Range:       prop.Range,
				Required:    prop.Required(),
				Source:      SourceDirect,
			})
			break
		}
	}
	return details, nil
}

// Inherited recursively collects the direct properties of every ancestor,
// tagging each with its source label and the inheritance path
// (nearest-ancestor-first). The root carries no properties and is skipped.
//
// Diamond inheritance is not deduplicated: a property reachable via two
// distinct ancestor paths appears twice, once per path.
func (e *PropertyEngine) Inherited(classID string) ([]PropertyDetail, error) {
	onPath := make(map[string]bool)
	return e.inherited(classID, onPath)
}

func (e *PropertyEngine) inherited(classID string, onPath map[string]bool) ([]PropertyDetail, error) {
	if onPath[classID] {
		return nil, nil
	}
	onPath[classID] = true
	defer delete(onPath, classID)

	cls, err := e.svc.Class(classID)
	if err != nil {
		// Best effort: a missing or malformed class contributes nothing.
		e.log.Debugw("Skipping unreadable class in inheritance walk", "class_id", classID, "error", err)
		return nil, nil
	}

	inherited := []PropertyDetail{}
	for _, parentID := range cls.ParentClasses {
		if parentID == RootClassID {
			continue
		}

		parent, err := e.svc.Class(parentID)
		if err != nil {
			continue
		}

		parentProps, err := e.Direct(parentID)
		if err != nil {
			continue
		}
		for _, prop := range parentProps {
			prop.Source = parent.Label
			prop.InheritancePath = []string{parent.Label}
			inherited = append(inherited, prop)
		}

		grandparentProps, err := e.inherited(parentID, onPath)
		if err != nil {
			continue
		}
		for _, prop := range grandparentProps {
			prop.InheritancePath = append([]string{parent.Label}, prop.InheritancePath...)
			inherited = append(inherited, prop)
		}
	}

	return inherited, nil
}

// All returns direct plus inherited properties; this is the instance
// validation input.
func (e *PropertyEngine) All(classID string) ([]PropertyDetail, error) {
	direct, err := e.Direct(classID)
	if err != nil {
		return nil, err
	}
	inherited, err := e.Inherited(classID)
	if err != nil {
		return nil, err
	}
	return append(direct, inherited...), nil
}
