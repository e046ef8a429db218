package server

import (
	"net/http"

	"github.com/owlet-db/owlet/version"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeSuccess(w, map[string]string{
		"status":  "healthy",
		"service": "Owlet Ontology API",
		"version": version.Version,
	}, "Success")
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>Owlet Ontology API</title></head>
<body>
<h1>Owlet Ontology API</h1>
<p>RESTful API for semantic ontology management.</p>
<ul>
<li><code>GET /api/ontology/classes</code> — list all classes</li>
<li><code>POST /api/ontology/classes</code> — create a class</li>
<li><code>GET /api/ontology/classes/{id}</code> — class details</li>
<li><code>GET /api/ontology/classes/{id}/full</code> — class with inherited properties</li>
<li><code>GET /api/ontology/hierarchy</code> — class hierarchy tree</li>
<li><code>GET /api/ontology/properties</code> — list all properties</li>
<li><code>POST /api/ontology/properties</code> — create a property</li>
<li><code>POST /api/ontology/instances</code> — create an instance</li>
<li><code>GET /api/ontology/reasoning/consistency</code> — consistency check</li>
<li><code>GET /api/ontology/statistics</code> — ontology statistics</li>
</ul>
</body>
</html>
`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}
