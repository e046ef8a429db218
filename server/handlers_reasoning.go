package server

import (
	"net/http"
)

// consistencyResponse reports reasoning time in seconds.
type consistencyResponse struct {
	Consistent    bool     `json:"consistent"`
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
	ReasoningTime float64  `json:"reasoning_time"`
}

func (s *Server) handleConsistency(w http.ResponseWriter, r *http.Request) {
	report, err := s.svc.Consistency.Check()
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeSuccess(w, consistencyResponse{
		Consistent:    report.Consistent,
		Errors:        report.Errors,
		Warnings:      report.Warnings,
		ReasoningTime: report.Elapsed.Seconds(),
	}, "Success")
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.Statistics()
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeSuccess(w, stats, "Success")
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	report, err := s.svc.Consistency.ValidateStructure()
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeSuccess(w, report, "Success")
}
