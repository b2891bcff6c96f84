package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/sitechat"
)

// maxRequestSize caps the size of an /ask request body.
const maxRequestSize = 1 << 20

// Server serves questions about one indexed site over a JSON API.
// The conversation history is owned by the client and sent with every
// question.
type Server struct {
	server   *http.Server
	listener net.Listener

	// Addr is the address to listen on, e.g. ":8080".
	Addr string

	Answerer sitechat.Answerer
	Logger   *slog.Logger

	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
}

// NewServer returns a Server for answerer.
func NewServer(answerer sitechat.Answerer) *Server {
	s := &Server{
		server:   &http.Server{ReadHeaderTimeout: 10 * time.Second},
		Answerer: answerer,
		Logger:   slog.New(slog.DiscardHandler),
	}
	s.server.Handler = s.Handler()
	return s
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /ask", s.handleAsk)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /metrics", func(w http.ResponseWriter, r *http.Request) {
		if s.Metrics == nil {
			http.NotFound(w, r)
			return
		}
		s.Metrics.ServeHTTP(w, r)
	})
	return mux
}

// Open starts listening on Addr and serves in the background.
func (s *Server) Open() (err error) {
	if s.listener, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() { _ = s.server.Serve(s.listener) }()
	return nil
}

// URL returns the base URL the server listens on.
func (s *Server) URL() string {
	if s.listener == nil {
		return ""
	}
	return "http://" + s.listener.Addr().String()
}

// Close gracefully shuts the server down.
func (s *Server) Close(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// AskRequest is the body of POST /ask.
type AskRequest struct {
	Question string           `json:"question"`
	History  sitechat.History `json:"history"`
}

// AskResponse is the body of a successful POST /ask.
type AskResponse struct {
	Answer  string           `json:"answer"`
	Outcome sitechat.Outcome `json:"outcome"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestSize)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	reply, err := s.Answerer.Answer(r.Context(), req.Question, req.History)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, AskResponse{Answer: reply.Text, Outcome: reply.Outcome})
}

// writeError reports a failure to answer. Whatever its code, it comes from
// the index or a model backend rather than the request, so it is a 502 and
// clients can tell it apart from a fallback answer.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	if errors.Is(err, context.Canceled) {
		// Client went away; nobody reads the response.
		status = http.StatusServiceUnavailable
	}
	s.Logger.Error("ask failed", "path", r.URL.Path, "err", err)
	writeJSON(w, status, ErrorResponse{Error: sitechat.ErrorMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
