package server

import (
	"bytes"
	"context"
	"log"
	"net/http"

	"github.com/jonathan/email-finder/internal/relay"
	"github.com/jonathan/email-finder/internal/types"
	"github.com/jonathan/email-finder/internal/ui"
)

const invalidFormMessage = "Invalid form submission"

// handleIndex renders the empty lookup page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	session := ui.NewSession(ui.PrefersDark(r))
	s.renderPage(w, http.StatusOK, session)
}

// handleSubmit handles the lookup form: either a theme toggle or a lookup
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("[ui] %s invalid form submission: %v", w.Header().Get(RequestIDHeader), err)
		session := ui.NewSession(ui.PrefersDark(r))
		session.Error = invalidFormMessage
		s.renderPage(w, http.StatusBadRequest, session)
		return
	}

	session := ui.NewSession(ui.PrefersDark(r))
	session.FullName = r.PostFormValue("full_name")
	session.CompanyURL = r.PostFormValue("company_url")

	if r.PostFormValue("action") == ui.ActionToggleTheme {
		session.ToggleTheme()
		session.RestoreResults(r.PostFormValue(ui.ResultsField))
	} else {
		// The outcome is recorded on the session and rendered below.
		_ = session.Submit(r.Context(), ui.CheckerFunc(s.lookup))
	}

	s.renderPage(w, http.StatusOK, session)
}

// lookup is the in-process checker behind the form. It runs the same relay call
// as the proxy endpoint and reports failures with the message the endpoint would return.
func (s *Server) lookup(ctx context.Context, req types.LookupRequest) (*types.LookupResponse, error) {
	resp, _, err := s.relay.Lookup(ctx, req)
	if err != nil {
		log.Printf("[ui] lookup via %s failed: %v", s.relay.Endpoint(), err)
		return nil, &ui.APIError{
			StatusCode: http.StatusInternalServerError,
			Message:    relay.Message(err),
		}
	}
	return resp, nil
}

// renderPage writes the HTML page for session with the given status
func (s *Server) renderPage(w http.ResponseWriter, status int, session *ui.Session) {
	var buf bytes.Buffer
	if err := ui.Render(&buf, session); err != nil {
		log.Printf("[ui] render failed: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Accept-CH", ui.PrefersColorSchemeHeader)
	w.Header().Set("Critical-CH", ui.PrefersColorSchemeHeader)
	w.Header().Set("Vary", ui.PrefersColorSchemeHeader)
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("[ui] write failed: %v", err)
	}
}
