package server

import (
	"net/http"

	"github.com/owlet-db/owlet/ontology"
)

func (s *Server) handleListProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := s.svc.AllProperties()
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeSuccess(w, properties, "Success")
}

func (s *Server) handleGetProperty(w http.ResponseWriter, r *http.Request) {
	prop, err := s.svc.Property(r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeSuccess(w, prop, "Success")
}

func (s *Server) handleCreateProperty(w http.ResponseWriter, r *http.Request) {
	var req ontology.Property
	if !s.readJSON(w, r, &req) {
		return
	}
	if req.ID == "" {
		s.writeError(w, http.StatusBadRequest, "Property id is required")
		return
	}

	created, err := s.svc.CreateProperty(req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeSuccess(w, created, "Property created successfully")
}
