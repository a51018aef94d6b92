// Package ui provides the presentation layer for the email variation finder:
// form state, the lookup submission flow and HTML rendering of the results.
package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/email-finder/internal/types"
)

// GenericErrorMessage is shown when a failed lookup carries no usable message.
const GenericErrorMessage = "An error occurred while fetching the data"

// Checker performs a lookup through the proxy endpoint.
type Checker interface {
	Check(ctx context.Context, req types.LookupRequest) (*types.LookupResponse, error)
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ctx context.Context, req types.LookupRequest) (*types.LookupResponse, error)

// Check calls f(ctx, req).
func (f CheckerFunc) Check(ctx context.Context, req types.LookupRequest) (*types.LookupResponse, error) {
	return f(ctx, req)
}

// ErrValidation indicates the form was submitted with missing fields.
type ErrValidation struct {
	Cause error
}

func (e *ErrValidation) Error() string {
	return "Full name and company website are required"
}

func (e *ErrValidation) Unwrap() error {
	return e.Cause
}

// Session holds the transient state of one page: theme, form fields and the last lookup outcome.
// A Session is not safe for concurrent use.
type Session struct {
	DarkMode   bool
	FullName   string
	CompanyURL string
	Loading    bool
	Response   *types.LookupResponse
	Error      string

	onLoading func(loading bool)
}

// NewSession creates a Session whose theme follows the client's OS preference.
func NewSession(prefersDark bool) *Session {
	return &Session{DarkMode: prefersDark}
}

// ToggleTheme switches between dark and light mode.
func (s *Session) ToggleTheme() {
	s.DarkMode = !s.DarkMode
}

// Theme returns "dark" or "light".
func (s *Session) Theme() string {
	if s.DarkMode {
		return ThemeDark
	}
	return ThemeLight
}

// OnLoadingChange registers fn to be called whenever the loading flag changes.
func (s *Session) OnLoadingChange(fn func(loading bool)) {
	s.onLoading = fn
}

func (s *Session) setLoading(loading bool) {
	s.Loading = loading
	if s.onLoading != nil {
		s.onLoading(loading)
	}
}

// Request returns the lookup payload built from the form fields.
func (s *Session) Request() types.LookupRequest {
	return types.LookupRequest{
		FullName:   s.FullName,
		CompanyURL: s.CompanyURL,
	}
}

// Submit runs one lookup for the current form fields.
// Any previous response and error are discarded first. On failure the error is
// stored on the session as a readable message and also returned.
// Loading is always false once Submit returns, including when the checker panics.
func (s *Session) Submit(ctx context.Context, checker Checker) error {
	req := s.Request()
	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Cause: err}
		s.Response = nil
		s.Error = verr.Error()
		return verr
	}

	s.Error = ""
	s.Response = nil
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := checker.Check(ctx, req)
	if err != nil {
		s.Error = errorMessage(err)
		log.Printf("[ui] lookup failed for %q at %q: %v", req.FullName, req.CompanyURL, err)
		return err
	}
	if resp == nil {
		err := fmt.Errorf("empty lookup response")
		s.Error = GenericErrorMessage
		return err
	}

	s.Response = resp
	return nil
}

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return GenericErrorMessage
	}
	return err.Error()
}
