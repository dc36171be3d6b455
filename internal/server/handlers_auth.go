package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jonathan/placement-portal/internal/types"
)

// handleLogin resolves an institute email to a session. Emails outside the
// configured domain are rejected; a valid email without a user record gets a
// setup-required response instead of a token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	if !strings.HasSuffix(req.Email, "@"+s.emailDomain) {
		s.errorResponse(w, http.StatusForbidden, "Only @"+s.emailDomain+" emails are allowed.")
		return
	}

	user, ok := s.store.GetUser(req.Email)
	if !ok {
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"setupRequired": true,
			"email":         req.Email,
		})
		return
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.LoginResponse{User: &user, Token: token})
}

// handleCompleteProfile creates the user record for a first-time login and
// returns a session. The uniqueness pre-check lives here because the store
// appends unconditionally.
func (s *Server) handleCompleteProfile(w http.ResponseWriter, r *http.Request) {
	var req types.CompleteProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile: "+err.Error())
		return
	}
	if !strings.HasSuffix(req.Email, "@"+s.emailDomain) {
		s.errorResponse(w, http.StatusForbidden, "Only @"+s.emailDomain+" emails are allowed.")
		return
	}
	if _, exists := s.store.GetUser(req.Email); exists {
		s.errorResponse(w, http.StatusConflict, "Profile already exists for this email")
		return
	}

	user, err := s.store.CreateUser(r.Context(), types.User{
		ID:       types.NewID(),
		Email:    req.Email,
		Name:     req.Name,
		Branch:   req.Branch,
		Year:     req.Year,
		LinkedIn: req.LinkedIn,
		Phone:    req.Phone,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	s.jsonResponse(w, http.StatusCreated, types.LoginResponse{User: &user, Token: token})
}

// handleCurrentUser returns the profile behind the session token.
func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}
