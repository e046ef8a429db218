package ontology

import (
	"github.com/owlet-db/owlet/errors"
)

// SeedDemo populates a small university ontology for demos and manual
// testing: Person with Professor/Student/Employee subclasses, required data
// properties, and two instances. Skips when the ontology already holds more
// than the root class.
func (s *Service) SeedDemo() error {
	classes, err := s.AllClasses()
	if err != nil {
		return err
	}
	if len(classes) > 1 {
		s.log.Infow("Demo data already exists, skipping seed")
		return nil
	}

	s.log.Infow("Seeding demo ontology")

	demoClasses := []Class{
		{ID: "demo:Person", Label: "Person", Description: "A human being",
			ParentClasses: []string{RootClassID}},
		{ID: "demo:Professor", Label: "Professor", Description: "A university professor",
			ParentClasses: []string{"demo:Person"}},
		{ID: "demo:Student", Label: "Student", Description: "A university student",
			ParentClasses: []string{"demo:Person"}},
		{ID: "demo:Employee", Label: "Employee", Description: "An employee",
			ParentClasses: []string{"demo:Person"}},
	}
	for _, cls := range demoClasses {
		if _, err := s.CreateClass(cls); err != nil {
			return errors.Wrapf(err, "seed class %q", cls.ID)
		}
	}

	required := map[string]string{AnnotationRequired: "true"}
	demoProperties := []Property{
		{ID: "demo:name", Label: "name", Kind: DataProperty,
			Domain: []string{"demo:Person"}, Range: []string{XSDString}, Annotations: required},
		{ID: "demo:email", Label: "email", Kind: DataProperty,
			Domain: []string{"demo:Person"}, Range: []string{XSDString}, Annotations: required},
		{ID: "demo:department", Label: "department", Kind: DataProperty,
			Domain: []string{"demo:Professor"}, Range: []string{XSDString}, Annotations: required},
		{ID: "demo:student_id", Label: "student_id", Kind: DataProperty,
			Domain: []string{"demo:Student"}, Range: []string{XSDString}, Annotations: required},
	}
	for _, prop := range demoProperties {
		if _, err := s.CreateProperty(prop); err != nil {
			return errors.Wrapf(err, "seed property %q", prop.ID)
		}
	}

	demoInstances := []Instance{
		{ID: "demo:prof_smith", Label: "Professor Smith",
			ClassIDs: []string{"demo:Professor"},
			Properties: map[string]interface{}{
				"demo:name":       "Dr. John Smith",
				"demo:email":      "john.smith@university.edu",
				"demo:department": "Computer Science",
			}},
		{ID: "demo:student_jones", Label: "Student Jones",
			ClassIDs: []string{"demo:Student"},
			Properties: map[string]interface{}{
				"demo:name":       "Alice Jones",
				"demo:email":      "alice.jones@university.edu",
				"demo:student_id": "S12345",
			}},
	}
	for _, inst := range demoInstances {
		if _, err := s.Instances.Create(inst); err != nil {
			return errors.Wrapf(err, "seed instance %q", inst.ID)
		}
	}

	s.log.Infow("Demo ontology seeded",
		"classes", len(demoClasses),
		"properties", len(demoProperties),
		"instances", len(demoInstances),
	)
	return nil
}
