package handler

import (
	"context"
	"errors"
	"net/http"
)

// RunImport handles POST /import, the simulated "saved from Instagram"
// import. The request blocks for the simulated extraction delay; closing the
// connection cancels the import and nothing is added.
func (s *Server) RunImport(w http.ResponseWriter, r *http.Request) {
	result, err := s.imports.Run(r.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// The client went away; 499-style situations get no body.
			w.WriteHeader(http.StatusRequestTimeout)
			return
		}
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
