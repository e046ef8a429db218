package ontology

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/owlet-db/owlet/errors"
)

// InstanceEngine handles type assignment and required-property validation.
type InstanceEngine struct {
	svc *Service
	log *zap.SugaredLogger
}

// Create creates a new instance. Every listed class must exist; one type
// edge is written per class.
//
// Create does not enforce required-property completeness — run Validate
// separately and surface its result as a distinct validation-failed outcome
// before committing.
func (e *InstanceEngine) Create(inst Instance) (*Instance, error) {
	if e.svc.store.NodeExists(inst.ID) {
		return nil, errors.NewValidationError("instance %q already exists", inst.ID)
	}

	for _, classID := range inst.ClassIDs {
		if !e.svc.store.NodeExists(classID) {
			return nil, errors.NewNotFoundError("class %q not found", classID)
		}
	}

	if inst.Label == "" {
		inst.Label = inst.ID
	}

	// User properties live under their own key, physically separate from
	// the scaffolding fields, so names like "label" cannot collide.
	data := map[string]interface{}{
		attrLabel:    inst.Label,
		attrNodeType: NodeTypeInstance,
	}
	if len(inst.Properties) > 0 {
		data[attrProps] = inst.Properties
	}
	if err := e.svc.store.CreateNode(inst.ID, data); err != nil {
		return nil, errors.Wrapf(err, "create instance %q", inst.ID)
	}

	for _, classID := range inst.ClassIDs {
		if err := e.svc.store.CreateEdge(inst.ID, classID, TypeRelation, 1.0); err != nil {
			return nil, errors.Wrapf(err, "link instance %q to class %q", inst.ID, classID)
		}
	}

	e.log.Infow("Instance created",
		"instance_id", inst.ID,
		"classes", inst.ClassIDs,
	)
	return &inst, nil
}

// Get returns an instance by id, reconstructing class membership from its
// outgoing type edges.
func (e *InstanceEngine) Get(instanceID string) (*Instance, error) {
	data, err := e.svc.store.Node(instanceID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewNotFoundError("instance %q not found", instanceID)
		}
		return nil, err
	}

	if stringAttr(data, attrNodeType) != NodeTypeInstance {
		return nil, errors.NewValidationError("node %q is not an instance", instanceID)
	}

	inst := &Instance{
		ID:         instanceID,
		Label:      stringAttr(data, attrLabel),
		ClassIDs:   []string{},
		Properties: mapAttr(data, attrProps),
	}
	if inst.Label == "" {
		inst.Label = instanceID
	}
	if inst.Properties == nil {
		inst.Properties = map[string]interface{}{}
	}

	edges, err := e.svc.store.Edges()
	if err != nil {
		return nil, errors.Wrapf(err, "load edges for instance %q", instanceID)
	}
	for _, edge := range edges {
		if edge.Source == instanceID && edge.Label == TypeRelation {
			inst.ClassIDs = append(inst.ClassIDs, edge.Target)
		}
	}

	return inst, nil
}

// OfClass returns the instances typed by classID. When directOnly is false
// the target class set is expanded to include all subclasses (deduplicated
// as a set) before scanning type edges.
func (e *InstanceEngine) OfClass(classID string, directOnly bool) ([]Instance, error) {
	targetClasses := map[string]bool{classID: true}
	if !directOnly {
		subclasses, err := e.svc.Hierarchy.Subclasses(classID, false)
		if err != nil {
			return nil, err
		}
		for _, subclass := range subclasses {
			targetClasses[subclass.ID] = true
		}
	}

	edges, err := e.svc.store.Edges()
	if err != nil {
		return nil, errors.Wrap(err, "load edges")
	}

	instances := []Instance{}
	for _, edge := range edges {
		if edge.Label != TypeRelation || !targetClasses[edge.Target] {
			continue
		}
		inst, err := e.Get(edge.Source)
		if err != nil {
			e.log.Debugw("Skipping unreadable instance", "instance_id", edge.Source, "error", err)
			continue
		}
		instances = append(instances, *inst)
	}
	return instances, nil
}

// Validate checks the given property values against every required property
// of classID, including inherited ones. It returns human-readable error
// strings, each naming the property label and, if inherited, its source
// ancestor. Only presence and non-nilness are checked, not types or ranges.
func (e *InstanceEngine) Validate(classID string, properties map[string]interface{}) ([]string, error) {
	detail, err := e.svc.ClassDetail(classID)
	if err != nil {
		return nil, err
	}

	validationErrors := []string{}
	for _, prop := range detail.AllProperties {
		if !prop.Required {
			continue
		}
		if value, ok := properties[prop.ID]; !ok || value == nil {
			if prop.Source != SourceDirect {
				validationErrors = append(validationErrors,
					fmt.Sprintf("Missing required property '%s' (inherited from %s)", prop.Label, prop.Source))
			} else {
				validationErrors = append(validationErrors,
					fmt.Sprintf("Missing required property '%s'", prop.Label))
			}
		}
	}
	return validationErrors, nil
}
