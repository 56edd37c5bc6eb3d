// Package authstub serves a stand-in for the valid-user endpoint so the
// shell can be exercised without the production authorization service.
package authstub

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/netip"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/zhubert/chatgate/internal/access"
	"github.com/zhubert/chatgate/internal/logger"
)

// ValidUserPath is where the stub answers authorization checks.
const ValidUserPath = "/api/valid-user"

// CodeNotAllowed is returned for signatures outside the allow list.
const CodeNotAllowed = 401

// Config controls which requests the stub authorizes.
type Config struct {
	Addr string
	// Signatures lists the authorized signatures. Empty authorizes everyone.
	Signatures []string
	// Networks lists the client address ranges treated as the office
	// network. Requests from elsewhere get code 403. Empty disables the check.
	Networks []netip.Prefix
	// AllowAllOrigins relaxes CORS to any origin.
	AllowAllOrigins bool
}

// Server is the stub HTTP server.
type Server struct {
	cfg        Config
	allowed    map[string]bool
	router     chi.Router
	httpServer *http.Server
}

// New builds a stub server from cfg.
func New(cfg Config) *Server {
	s := &Server{cfg: cfg, allowed: make(map[string]bool, len(cfg.Signatures))}
	for _, sig := range cfg.Signatures {
		s.allowed[sig] = true
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept"},
		MaxAge:         300,
	}
	if s.cfg.AllowAllOrigins {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})
	r.Get(ValidUserPath, s.handleValidUser)
	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) handleValidUser(w http.ResponseWriter, r *http.Request) {
	log := logger.WithComponent("authstub")
	sig := r.URL.Query().Get("signature")

	resp := s.decide(sig, r.RemoteAddr)
	log.Info("valid-user", "requestID", middleware.GetReqID(r.Context()),
		"remote", r.RemoteAddr, "code", *resp.Code)
	writeJSON(w, resp)
}

func (s *Server) decide(signature, remote string) *access.Response {
	if len(s.cfg.Networks) > 0 && !s.inNetwork(remote) {
		return access.NewResponse(access.CodeNotInNetwork, "not in office network")
	}
	if len(s.allowed) > 0 && !s.allowed[signature] {
		return access.NewResponse(CodeNotAllowed, "not allowed")
	}
	return access.NewResponse(access.CodeAllowed, "ok")
}

func (s *Server) inNetwork(remote string) bool {
	host, _, err := net.SplitHostPort(remote)
	if err != nil {
		host = remote
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range s.cfg.Networks {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithComponent("authstub").Info("listening", "addr", s.cfg.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

// ParseNetworks parses CIDR strings such as "10.0.0.0/8".
func ParseNetworks(cidrs []string) ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(cidrs))
	for _, c := range cidrs {
		p, err := netip.ParsePrefix(c)
		if err != nil {
			return nil, err
		}
		out = append(out, p.Masked())
	}
	return out, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
