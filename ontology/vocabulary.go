package ontology

// Node type tags distinguishing entity kinds on the generic graph.
const (
	NodeTypeClass    = "owl:Class"
	NodeTypeProperty = "owl:Property"
	NodeTypeInstance = "owl:Individual"
)

// Relation labels materialized as directed edges in the graph store.
const (
	SubClassOfRelation      = "rdfs:subClassOf"
	EquivalentClassRelation = "owl:equivalentClass"
	DisjointWithRelation    = "owl:disjointWith"
	DomainRelation          = "rdfs:domain"
	RangeRelation           = "rdfs:range"
	TypeRelation            = "rdf:type"
)

// RootClassID is the distinguished root of the class hierarchy.
// Every class except the root has at least one parent; classes created
// without explicit parents are attached to the root.
const RootClassID = "owl:Thing"

// XSD datatype names usable as property ranges alongside class ids.
const (
	XSDString   = "xsd:string"
	XSDInteger  = "xsd:integer"
	XSDFloat    = "xsd:float"
	XSDBoolean  = "xsd:boolean"
	XSDDate     = "xsd:date"
	XSDDateTime = "xsd:dateTime"
)

// Reserved node attribute keys. User-defined instance properties are kept
// under attrProps, physically separate from these scaffolding fields, so a
// user property literally named "label" cannot collide.
const (
	attrLabel           = "label"
	attrNodeType        = "node_type"
	attrDescription     = "description"
	attrIsAbstract      = "is_abstract"
	attrPropertyType    = "property_type"
	attrInverseOf       = "inverse_of"
	attrCharacteristics = "characteristics"
	attrAnnotations     = "annotations"
	attrProps           = "props"
)

// AnnotationRequired marks a property as required for instance validation
// when set to "true" in the property's annotations.
const AnnotationRequired = "required"
