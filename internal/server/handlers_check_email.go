package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/jonathan/email-finder/internal/relay"
)

// handleCheckEmail forwards the JSON body to the upstream and relays its reply.
// Every failure is reported as 500 with an {"error": ...} envelope.
func (s *Server) handleCheckEmail(w http.ResponseWriter, r *http.Request) {
	body, err := readJSONBody(r)
	if err != nil {
		s.proxyFailure(w, r, err)
		return
	}

	resp, err := s.relay.Forward(r.Context(), body)
	if err != nil {
		s.proxyFailure(w, r, err)
		return
	}

	if s.verbose {
		log.Printf("[relay] %s forwarded %d bytes, relayed %d bytes", w.Header().Get(RequestIDHeader), len(body), len(resp))
	}
	s.rawJSONResponse(w, http.StatusOK, resp)
}

// proxyFailure logs err and writes the error envelope
func (s *Server) proxyFailure(w http.ResponseWriter, r *http.Request, err error) {
	target := r.URL.Path
	var relayErr *relay.Error
	if errors.As(err, &relayErr) && relayErr.URL != "" {
		target = relayErr.URL
	}
	log.Printf("[relay] %s %s failed: %v", w.Header().Get(RequestIDHeader), target, err)
	s.errorResponse(w, http.StatusInternalServerError, relay.Message(err))
}

// readJSONBody reads the request body and checks that it is syntactically valid JSON.
// The bytes are returned untouched.
func readJSONBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, &ErrBadRequestBody{Cause: err}
	}

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &ErrBadRequestBody{Cause: err}
	}
	return body, nil
}
