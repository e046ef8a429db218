package server

import (
	"net/http"

	"github.com/owlet-db/owlet/ontology"
)

// instanceSummary is the class-instances listing projection.
type instanceSummary struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	ClassIDs []string `json:"class_ids"`
}

// handleCreateInstance validates required properties against every listed
// class before creating. Validation failures return 422 with one detail
// string per missing property; a class that cannot be validated is skipped.
func (s *Server) handleCreateInstance(w http.ResponseWriter, r *http.Request) {
	var req ontology.Instance
	if !s.readJSON(w, r, &req) {
		return
	}
	if req.ID == "" {
		s.writeError(w, http.StatusBadRequest, "Instance id is required")
		return
	}

	details := []string{}
	for _, classID := range req.ClassIDs {
		failures, err := s.svc.Instances.Validate(classID, req.Properties)
		if err != nil {
			s.logger.Warnw("Could not validate against class", "class_id", classID, "error", err)
			continue
		}
		details = append(details, failures...)
	}
	if len(details) > 0 {
		s.writeValidationFailure(w, details)
		return
	}

	created, err := s.svc.Instances.Create(req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeSuccess(w, created, "Instance created successfully")
}

func (s *Server) handleGetInstance(w http.ResponseWriter, r *http.Request) {
	inst, err := s.svc.Instances.Get(r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeSuccess(w, inst, "Success")
}

// handleClassInstances lists instances of a class; direct defaults to true,
// pass direct=false to include instances of subclasses.
func (s *Server) handleClassInstances(w http.ResponseWriter, r *http.Request) {
	directOnly := boolQuery(r, "direct", true)
	instances, err := s.svc.Instances.OfClass(r.PathValue("id"), directOnly)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	summaries := make([]instanceSummary, 0, len(instances))
	for _, inst := range instances {
		summaries = append(summaries, instanceSummary{
			ID:       inst.ID,
			Label:    inst.Label,
			ClassIDs: inst.ClassIDs,
		})
	}
	s.writeSuccess(w, summaries, "Success")
}
