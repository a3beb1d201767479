package httpmock

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
)

var resourcePath = regexp.MustCompile(`^/resources/([^/]+)$`)

// Server provides a mock origin for testing the HTTP backend.
type Server struct {
	server *httptest.Server

	mu       sync.Mutex
	payloads map[string]string
	hits     map[string]int
}

// NewServer creates and starts a new mock origin.
func NewServer() *Server {
	s := &Server{
		payloads: make(map[string]string),
		hits:     make(map[string]int),
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		matches := resourcePath.FindStringSubmatch(r.URL.Path)
		if matches == nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		identifier := matches[1]
		s.mu.Lock()
		payload, ok := s.payloads[identifier]
		s.hits[identifier]++
		s.mu.Unlock()

		if !ok {
			http.Error(w, "unknown resource", http.StatusNotFound)
			return
		}
		fmt.Fprint(w, payload)
	})

	s.server = httptest.NewServer(handler)
	return s
}

// URL returns the URL of the mock origin.
func (s *Server) URL() string {
	return s.server.URL
}

// Close shuts down the mock origin.
func (s *Server) Close() {
	s.server.Close()
}

// SetPayload sets the payload served for an identifier.
func (s *Server) SetPayload(identifier, payload string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads[identifier] = payload
}

// Hits returns how many times an identifier was requested.
func (s *Server) Hits(identifier string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[identifier]
}
