package httpserver

import (
	_ "embed"
	"net/http"
)

// endpointsJSON is the static API description served at GET /api. Embedding
// it keeps the documentation next to the routes it describes.
//
//go:embed endpoints.json
var endpointsJSON []byte

// getEndpoints handles GET /api.
func (s *Server) getEndpoints(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(endpointsJSON)
}
