package server

import (
	"net/http"
)

// handleListCompanies lists all companies in store order.
func (s *Server) handleListCompanies(w http.ResponseWriter, _ *http.Request) {
	companies := s.store.GetCompanies()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"companies": companies,
		"count":     len(companies),
	})
}

// handleGetCompany retrieves a company by id.
func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Company ID is required")
		return
	}

	company, ok := s.store.GetCompany(id)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Company not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, company)
}

// handleTrendingCompanies returns the top companies by experience count.
func (s *Server) handleTrendingCompanies(w http.ResponseWriter, _ *http.Request) {
	trending := s.store.TrendingCompanies()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"trending": trending,
		"count":    len(trending),
	})
}

// handleCompanyInsight returns the AI preparation narrative for a company.
// The insight is recomputed on every call; with no experiences the static
// placeholder is returned without touching the summarizer.
func (s *Server) handleCompanyInsight(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	company, ok := s.store.GetCompany(id)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Company not found")
		return
	}

	pending := s.insights.Generate(r.Context(), company)
	text, ok := pending.Wait(r.Context())
	if !ok {
		// Client went away; the generation finishes on its own and the
		// result is discarded.
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"companyId": company.ID,
		"insight":   text,
	})
}
