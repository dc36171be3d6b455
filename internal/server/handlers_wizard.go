package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/placement-portal/internal/types"
	"github.com/jonathan/placement-portal/internal/wizard"
)

// wizardDraftRequest carries a partial draft update. Only fields present in
// the body are applied, so the client can patch one form field at a time.
type wizardDraftRequest struct {
	CompanyID        *string        `json:"companyId"`
	NewCompanyName   *string        `json:"newCompanyName"`
	Role             *string        `json:"role"`
	Year             *int           `json:"year"`
	OADetails        *types.OARound `json:"oaDetails"`
	Shortlisted      *bool          `json:"shortlisted"`
	Summary          *string        `json:"summary"`
	IsAnonymous      *bool          `json:"isAnonymous"`
	DifficultyRating *int           `json:"difficultyRating"`
	Tags             *[]string      `json:"tags"`
}

// userWizard resolves the authenticated user's in-progress wizard. A false
// return means the response has already been written.
func (s *Server) userWizard(w http.ResponseWriter, r *http.Request) (*wizard.Wizard, bool) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return nil, false
	}

	s.mu.Lock()
	wiz, exists := s.wizards[user.ID]
	s.mu.Unlock()
	if !exists {
		s.errorResponse(w, http.StatusNotFound, "No submission in progress")
		return nil, false
	}
	return wiz, true
}

// handleStartWizard begins a new submission for the authenticated user. An
// existing in-progress submission is abandoned and replaced.
func (s *Server) handleStartWizard(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	wiz := wizard.New(s.store, s.summarizer, user)

	s.mu.Lock()
	if old, exists := s.wizards[user.ID]; exists {
		old.Abandon()
	}
	s.wizards[user.ID] = wiz
	s.mu.Unlock()

	s.jsonResponse(w, http.StatusCreated, wiz.State())
}

// handleWizardState returns the current wizard state. With ?wait=true and a
// generation in flight, the response is held until the summary resolves or
// the client goes away.
func (s *Server) handleWizardState(w http.ResponseWriter, r *http.Request) {
	wiz, ok := s.userWizard(w, r)
	if !ok {
		return
	}

	if r.URL.Query().Get("wait") == "true" {
		if pending := wiz.Pending(); pending != nil {
			if _, ok := pending.Wait(r.Context()); !ok {
				return
			}
		}
	}

	s.jsonResponse(w, http.StatusOK, wiz.State())
}

// handleAbandonWizard discards the in-progress submission.
func (s *Server) handleAbandonWizard(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	wiz, exists := s.wizards[user.ID]
	delete(s.wizards, user.ID)
	s.mu.Unlock()

	if !exists {
		s.errorResponse(w, http.StatusNotFound, "No submission in progress")
		return
	}

	wiz.Abandon()
	w.WriteHeader(http.StatusNoContent)
}

// handleWizardNext advances the wizard one step. The summarizer call kicked
// off when leaving the Resources step runs on the background context so it
// survives the request; pass ?wait=true to hold the response until it
// resolves. Advancing past the Summary step publishes and the stored
// experience is included in the response.
func (s *Server) handleWizardNext(w http.ResponseWriter, r *http.Request) {
	wiz, ok := s.userWizard(w, r)
	if !ok {
		return
	}

	if _, err := wiz.Next(context.Background()); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to advance submission")
		return
	}

	if r.URL.Query().Get("wait") == "true" {
		if pending := wiz.Pending(); pending != nil {
			if _, ok := pending.Wait(r.Context()); !ok {
				return
			}
		}
	}

	if exp, published := wiz.Published(); published {
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"state":      wiz.State(),
			"experience": exp,
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, wiz.State())
}

// handleWizardBack moves the wizard one step backwards.
func (s *Server) handleWizardBack(w http.ResponseWriter, r *http.Request) {
	wiz, ok := s.userWizard(w, r)
	if !ok {
		return
	}

	wiz.Back()
	s.jsonResponse(w, http.StatusOK, wiz.State())
}

// handleWizardDraft applies a partial draft update.
func (s *Server) handleWizardDraft(w http.ResponseWriter, r *http.Request) {
	wiz, ok := s.userWizard(w, r)
	if !ok {
		return
	}

	var req wizardDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.CompanyID != nil {
		wiz.SelectCompany(*req.CompanyID)
	}
	if req.NewCompanyName != nil {
		wiz.SetNewCompanyName(*req.NewCompanyName)
	}
	if req.Role != nil {
		wiz.SetRole(*req.Role)
	}
	if req.Year != nil {
		wiz.SetYear(*req.Year)
	}
	if req.OADetails != nil {
		if !req.OADetails.Difficulty.Valid() {
			s.errorResponse(w, http.StatusBadRequest, "Invalid difficulty: "+string(req.OADetails.Difficulty))
			return
		}
		wiz.SetOADetails(*req.OADetails)
	}
	if req.Shortlisted != nil {
		wiz.SetShortlisted(*req.Shortlisted)
	}
	if req.Summary != nil {
		wiz.SetSummary(*req.Summary)
	}
	if req.IsAnonymous != nil {
		wiz.SetAnonymous(*req.IsAnonymous)
	}
	if req.DifficultyRating != nil {
		wiz.SetDifficultyRating(*req.DifficultyRating)
	}
	if req.Tags != nil {
		wiz.SetTags(*req.Tags)
	}

	s.jsonResponse(w, http.StatusOK, wiz.State())
}

// handleWizardAddRound appends a new interview round with form defaults.
func (s *Server) handleWizardAddRound(w http.ResponseWriter, r *http.Request) {
	wiz, ok := s.userWizard(w, r)
	if !ok {
		return
	}

	index := wiz.AddRound()
	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"index": index,
		"state": wiz.State(),
	})
}

// handleWizardUpdateRound replaces the round at the path index.
func (s *Server) handleWizardUpdateRound(w http.ResponseWriter, r *http.Request) {
	wiz, ok := s.userWizard(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid round index")
		return
	}

	var round types.InterviewRound
	if err := json.NewDecoder(r.Body).Decode(&round); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !round.Type.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "Invalid round type: "+string(round.Type))
		return
	}
	if !round.Difficulty.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "Invalid difficulty: "+string(round.Difficulty))
		return
	}

	wiz.UpdateRound(index, round)
	s.jsonResponse(w, http.StatusOK, wiz.State())
}

// handleWizardRemoveRound deletes the round at the path index.
func (s *Server) handleWizardRemoveRound(w http.ResponseWriter, r *http.Request) {
	wiz, ok := s.userWizard(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid round index")
		return
	}

	wiz.RemoveRound(index)
	s.jsonResponse(w, http.StatusOK, wiz.State())
}

// handleWizardAddResource appends an empty resource entry.
func (s *Server) handleWizardAddResource(w http.ResponseWriter, r *http.Request) {
	wiz, ok := s.userWizard(w, r)
	if !ok {
		return
	}

	index := wiz.AddResource()
	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"index": index,
		"state": wiz.State(),
	})
}

// handleWizardUpdateResource replaces the resource at the path index.
func (s *Server) handleWizardUpdateResource(w http.ResponseWriter, r *http.Request) {
	wiz, ok := s.userWizard(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resource index")
		return
	}

	var res types.Resource
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !res.Type.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resource type: "+string(res.Type))
		return
	}

	wiz.UpdateResource(index, res)
	s.jsonResponse(w, http.StatusOK, wiz.State())
}

// handleWizardRemoveResource deletes the resource at the path index.
func (s *Server) handleWizardRemoveResource(w http.ResponseWriter, r *http.Request) {
	wiz, ok := s.userWizard(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resource index")
		return
	}

	wiz.RemoveResource(index)
	s.jsonResponse(w, http.StatusOK, wiz.State())
}
