package server

import (
	"net/http"
)

// handleListExperiences lists experiences, optionally filtered to one company
// with ?company_id=.
func (s *Server) handleListExperiences(w http.ResponseWriter, r *http.Request) {
	companyID := r.URL.Query().Get("company_id")
	experiences := s.store.GetExperiences(companyID)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"experiences": experiences,
		"count":       len(experiences),
	})
}

// handleGetExperience retrieves an experience by id.
func (s *Server) handleGetExperience(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Experience ID is required")
		return
	}

	exp, ok := s.store.GetExperienceByID(id)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Experience not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, exp)
}

// handleUpvote increments an experience's upvote counter. There is no
// per-user tracking; every call counts.
func (s *Server) handleUpvote(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.currentUser(w, r); !ok {
		return
	}

	id := r.PathValue("id")
	exp, found, err := s.store.Upvote(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to record upvote")
		return
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "Experience not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, exp)
}
