// Package server exposes the u256str conversions over HTTP so adjacent
// tooling can request contract-identical strings without linking the
// library.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/hexforge/u256strings/pkg/errors"
	"github.com/hexforge/u256strings/pkg/tokenuri"
	"github.com/hexforge/u256strings/pkg/u256str"
)

// FormatResponse is the body returned by /v1/format
type FormatResponse struct {
	Input    string `json:"input"`
	Decimal  string `json:"decimal"`
	Hex      string `json:"hex"`
	HexFixed string `json:"hexFixed"`
}

// TokenURIResponse is the body returned by /v1/tokenuri
type TokenURIResponse struct {
	ID  string `json:"id"`
	URI string `json:"uri"`
}

// ErrorResponse is the body returned on client errors
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Server serves the formatting endpoints
type Server struct {
	addr    string
	builder tokenuri.Builder
	logger  *zap.SugaredLogger
	httpSrv *http.Server
}

// NewServer creates a formatting server listening on addr. The builder
// supplies the token URI template and default hex id width.
func NewServer(addr string, builder tokenuri.Builder, logger *zap.SugaredLogger) *Server {
	s := &Server{
		addr:    addr,
		builder: builder,
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/format", s.formatHandler)
	mux.HandleFunc("/v1/tokenuri", s.tokenURIHandler)
	mux.HandleFunc("/health", s.healthHandler)

	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infow("Formatting service listening", "addr", s.addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	}
}

func (s *Server) formatHandler(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get("value")
	v, err := u256str.Parse(value)
	if err != nil {
		s.writeError(w, err)
		return
	}

	minDigits := s.builder.HexIDDigits
	if q := r.URL.Query().Get("minDigits"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			s.writeError(w, errors.NewInvalidDecimal("server", "formatHandler", q, err))
			return
		}
		minDigits = n
	}

	s.writeJSON(w, http.StatusOK, FormatResponse{
		Input:    value,
		Decimal:  u256str.ToString(v),
		Hex:      u256str.ToHexString(v),
		HexFixed: u256str.ToHexStringFixed(v, minDigits),
	})
}

func (s *Server) tokenURIHandler(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	v, err := u256str.Parse(id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, TokenURIResponse{
		ID:  u256str.ToString(v),
		URI: s.builder.TokenURI(v),
	})
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.logger.Warnw("Rejected request", errors.LogContext(err)...)
	s.writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: err.Error(),
		Code:  errors.GetErrorCode(err),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Errorw("Failed to encode response", "error", err)
	}
}
