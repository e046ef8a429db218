package server

import (
	"net/http"

	"github.com/owlet-db/owlet/ontology"
)

// classSummary is the list-endpoint projection of a class.
type classSummary struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	Description   string   `json:"description,omitempty"`
	ParentClasses []string `json:"parent_classes,omitempty"`
	IsAbstract    bool     `json:"is_abstract"`
}

func (s *Server) handleListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := s.svc.AllClasses()
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	summaries := make([]classSummary, 0, len(classes))
	for _, c := range classes {
		summaries = append(summaries, classSummary{
			ID:            c.ID,
			Label:         c.Label,
			Description:   c.Description,
			ParentClasses: c.ParentClasses,
			IsAbstract:    c.IsAbstract,
		})
	}
	s.writeSuccess(w, summaries, "Success")
}

func (s *Server) handleGetClass(w http.ResponseWriter, r *http.Request) {
	cls, err := s.svc.Class(r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeSuccess(w, cls, "Success")
}

func (s *Server) handleCreateClass(w http.ResponseWriter, r *http.Request) {
	var req ontology.Class
	if !s.readJSON(w, r, &req) {
		return
	}
	if req.ID == "" {
		s.writeError(w, http.StatusBadRequest, "Class id is required")
		return
	}

	created, err := s.svc.CreateClass(req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeSuccess(w, created, "Class created successfully")
}

func (s *Server) handleDeleteClass(w http.ResponseWriter, r *http.Request) {
	classID := r.PathValue("id")
	force := boolQuery(r, "force", false)

	if err := s.svc.DeleteClass(classID, force); err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeSuccess(w, nil, "Class '"+classID+"' deleted")
}

func (s *Server) handleSubclasses(w http.ResponseWriter, r *http.Request) {
	directOnly := boolQuery(r, "direct", false)
	subclasses, err := s.svc.Hierarchy.Subclasses(r.PathValue("id"), directOnly)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeSuccess(w, toSummaries(subclasses), "Success")
}

func (s *Server) handleSuperclasses(w http.ResponseWriter, r *http.Request) {
	directOnly := boolQuery(r, "direct", false)
	superclasses, err := s.svc.Hierarchy.Superclasses(r.PathValue("id"), directOnly)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeSuccess(w, toSummaries(superclasses), "Success")
}

func (s *Server) handleClassFull(w http.ResponseWriter, r *http.Request) {
	detail, err := s.svc.ClassDetail(r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeSuccess(w, detail, "Success")
}

func (s *Server) handleHierarchy(w http.ResponseWriter, r *http.Request) {
	rootID := r.URL.Query().Get("root")
	tree, err := s.svc.Hierarchy.Tree(rootID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeSuccess(w, tree, "Success")
}

func toSummaries(classes []ontology.Class) []classSummary {
	summaries := make([]classSummary, 0, len(classes))
	for _, c := range classes {
		summaries = append(summaries, classSummary{
			ID:          c.ID,
			Label:       c.Label,
			Description: c.Description,
		})
	}
	return summaries
}
