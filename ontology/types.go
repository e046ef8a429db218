package ontology

import (
	"time"
)

// PropertyKind classifies a property.
type PropertyKind string

// Property kinds.
const (
	ObjectProperty     PropertyKind = "object"
	DataProperty       PropertyKind = "data"
	AnnotationProperty PropertyKind = "annotation"
)

// Characteristic is an OWL property characteristic.
type Characteristic string

// Property characteristics.
const (
	Functional        Characteristic = "functional"
	InverseFunctional Characteristic = "inverse_functional"
	Transitive        Characteristic = "transitive"
	Symmetric         Characteristic = "symmetric"
	Asymmetric        Characteristic = "asymmetric"
	Reflexive         Characteristic = "reflexive"
	Irreflexive       Characteristic = "irreflexive"
)

// Class is a category with zero or more parent classes.
// All entity kinds share one identifier namespace.
type Class struct {
	ID                string                 `json:"id"`
	Label             string                 `json:"label"`
	Description       string                 `json:"description,omitempty"`
	ParentClasses     []string               `json:"parent_classes"`
	EquivalentClasses []string               `json:"equivalent_classes,omitempty"`
	DisjointClasses   []string               `json:"disjoint_classes,omitempty"`
	IsAbstract        bool                   `json:"is_abstract"`
	Attributes        map[string]interface{} `json:"attributes,omitempty"` // extra free-form attributes
}

// Property is a typed relation with declared domain and range.
// Range entries are class ids or XSD datatype names.
type Property struct {
	ID              string            `json:"id"`
	Label           string            `json:"label"`
	Kind            PropertyKind      `json:"property_type"`
	Description     string            `json:"description,omitempty"`
	Domain          []string          `json:"domain"`
	Range           []string          `json:"range"`
	InverseOf       string            `json:"inverse_of,omitempty"`
	Characteristics []Characteristic  `json:"characteristics,omitempty"`
	Annotations     map[string]string `json:"annotations,omitempty"`
}

// Required reports whether the property is marked required for instance
// validation via its annotations.
func (p Property) Required() bool {
	return p.Annotations[AnnotationRequired] == "true"
}

// Instance is an individual typed by one or more classes.
// Properties holds only user-set values; scaffolding fields (label, node
// type) are stored separately and never appear here.
type Instance struct {
	ID         string                 `json:"id"`
	Label      string                 `json:"label"`
	ClassIDs   []string               `json:"class_ids"`
	Properties map[string]interface{} `json:"properties"`
}

// PropertyDetail describes one property applicable to a class, either
// declared directly or obtained via an ancestor.
type PropertyDetail struct {
	ID          string       `json:"id"`
	Label       string       `json:"label"`
	Kind        PropertyKind `json:"property_type"`
	Description string       `json:"description,omitempty"`
	Range       []string     `json:"range"`
	Required    bool         `json:"required"`
	// Source is "direct" for declared properties, otherwise the label of
	// the ancestor class that declares it.
	Source string `json:"source"`
	// InheritancePath lists ancestor labels nearest-first for inherited
	// properties. A property reachable via two ancestor paths appears
	// once per path; diamond inheritance is not deduplicated.
	InheritancePath []string `json:"inheritance_path,omitempty"`
}

// SourceDirect is the PropertyDetail source for directly declared properties.
const SourceDirect = "direct"

// HierarchyNode is one node of the class hierarchy tree.
type HierarchyNode struct {
	ClassID       string           `json:"class_id"`
	Label         string           `json:"label"`
	ParentID      string           `json:"parent_id,omitempty"`
	InstanceCount int              `json:"instance_count"`
	Depth         int              `json:"depth"`
	Children      []*HierarchyNode `json:"children"`
}

// ReasoningReport is the result of a consistency check.
type ReasoningReport struct {
	Consistent bool          `json:"consistent"`
	Errors     []string      `json:"errors"`
	Warnings   []string      `json:"warnings"`
	Elapsed    time.Duration `json:"elapsed"`
}

// StructureReport is the result of a structural validation pass.
type StructureReport struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Stats summarizes the ontology contents.
type Stats struct {
	TotalClasses         int `json:"total_classes"`
	TotalProperties      int `json:"total_properties"`
	TotalInstances       int `json:"total_instances"`
	ObjectProperties     int `json:"total_object_properties"`
	DataProperties       int `json:"total_data_properties"`
	AnnotationProperties int `json:"total_annotation_properties"`
	MaxHierarchyDepth    int `json:"max_hierarchy_depth"`
}

// ClassDetail is a class with its full property report, used for display
// and as the input to instance validation.
type ClassDetail struct {
	Class
	DirectProperties    []PropertyDetail `json:"direct_properties"`
	InheritedProperties []PropertyDetail `json:"inherited_properties"`
	AllProperties       []PropertyDetail `json:"all_properties"`
}
