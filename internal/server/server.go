// Package server provides the HTTP REST API for the placement portal. It is
// the routing/view collaborator of the core: it registers the logged-in user,
// drives wizard step transitions from client input and renders store queries
// as JSON.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/jonathan/placement-portal/internal/insight"
	"github.com/jonathan/placement-portal/internal/llm"
	"github.com/jonathan/placement-portal/internal/store"
	"github.com/jonathan/placement-portal/internal/summary"
	"github.com/jonathan/placement-portal/internal/types"
	"github.com/jonathan/placement-portal/internal/wizard"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	store       *store.Store
	summarizer  *summary.Generator
	insights    *insight.Aggregator
	llmClient   llm.Client
	jwtService  *JWTService
	emailDomain string

	mu      sync.Mutex
	wizards map[string]*wizard.Wizard // one in-progress submission per user
}

// Config holds server configuration.
type Config struct {
	Port               int
	StorePath          string
	APIKey             string // empty disables generation; fallbacks are served instead
	EmailDomain        string
	JWTSecret          string
	JWTExpirationHours int // 0 means 24
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	st, err := store.Open(context.Background(), cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	var client llm.Client
	if cfg.APIKey != "" {
		client, err = llm.NewClient(context.Background(), llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	}
	gen := summary.NewGenerator(client)

	if cfg.JWTSecret == "" {
		st.Close()
		return nil, fmt.Errorf("JWT secret is required")
	}
	expirationHours := cfg.JWTExpirationHours
	if expirationHours <= 0 {
		expirationHours = 24
	}

	s := &Server{
		store:       st,
		summarizer:  gen,
		insights:    insight.New(st, gen),
		llmClient:   client,
		jwtService:  NewJWTService(cfg.JWTSecret, expirationHours),
		emailDomain: cfg.EmailDomain,
		wizards:     make(map[string]*wizard.Wizard),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Session endpoints
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("POST /auth/complete-profile", s.handleCompleteProfile)
	mux.HandleFunc("GET /users/me", s.handleCurrentUser)

	// Company endpoints
	mux.HandleFunc("GET /companies", s.handleListCompanies)
	mux.HandleFunc("GET /companies/trending", s.handleTrendingCompanies)
	mux.HandleFunc("GET /companies/{id}", s.handleGetCompany)
	mux.HandleFunc("GET /companies/{id}/insight", s.handleCompanyInsight)

	// Experience endpoints
	mux.HandleFunc("GET /experiences", s.handleListExperiences)
	mux.HandleFunc("GET /experiences/{id}", s.handleGetExperience)
	mux.HandleFunc("POST /experiences/{id}/upvote", s.handleUpvote)

	// Submission wizard endpoints (one session per authenticated user)
	mux.HandleFunc("POST /wizard", s.handleStartWizard)
	mux.HandleFunc("GET /wizard", s.handleWizardState)
	mux.HandleFunc("DELETE /wizard", s.handleAbandonWizard)
	mux.HandleFunc("POST /wizard/next", s.handleWizardNext)
	mux.HandleFunc("POST /wizard/back", s.handleWizardBack)
	mux.HandleFunc("PUT /wizard/draft", s.handleWizardDraft)
	mux.HandleFunc("POST /wizard/rounds", s.handleWizardAddRound)
	mux.HandleFunc("PUT /wizard/rounds/{index}", s.handleWizardUpdateRound)
	mux.HandleFunc("DELETE /wizard/rounds/{index}", s.handleWizardRemoveRound)
	mux.HandleFunc("POST /wizard/resources", s.handleWizardAddResource)
	mux.HandleFunc("PUT /wizard/resources/{index}", s.handleWizardUpdateResource)
	mux.HandleFunc("DELETE /wizard/resources/{index}", s.handleWizardRemoveResource)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until interrupted.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	if err := s.store.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// currentUser resolves the authenticated user from the bearer token. A nil
// user with ok=false means the response has already been written.
func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) (types.User, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		s.errorResponse(w, http.StatusUnauthorized, "Missing bearer token")
		return types.User{}, false
	}

	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Invalid session token")
		return types.User{}, false
	}

	user, ok := s.store.GetUserByID(claims.UserID)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "Unknown user")
		return types.User{}, false
	}
	return user, true
}
