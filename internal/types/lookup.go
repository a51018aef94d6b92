// Package types provides type definitions for the payloads exchanged with the email variation service.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// DefaultAvatarURL is shown when a candidate has no avatar or its image fails to load.
const DefaultAvatarURL = "https://www.gravatar.com/avatar/default?d=mp"

// LookupRequest is the payload sent to the email variation service.
// The proxy endpoint forwards it verbatim; only the form and CLI validate it.
type LookupRequest struct {
	FullName   string `json:"full_name" validate:"required"`
	CompanyURL string `json:"company_url" validate:"required"`
}

// Validate validates the LookupRequest using the validator.
func (r *LookupRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// EmailCandidate is one generated address guess with the metadata the upstream attaches to it.
type EmailCandidate struct {
	Email        string  `json:"email"`
	Score        float64 `json:"score"`
	Deliverable  bool    `json:"deliverable"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	FullName     string  `json:"full_name"`
	Domain       string  `json:"domain"`
	SMTPProvider string  `json:"smtp_provider"`
	State        string  `json:"state"`
	Avatar       string  `json:"avatar"`
}

// AvatarOrDefault returns the candidate's avatar URL, or DefaultAvatarURL when it is empty.
func (c EmailCandidate) AvatarOrDefault() string {
	if c.Avatar == "" {
		return DefaultAvatarURL
	}
	return c.Avatar
}

// DeliverableLabel renders the deliverable flag the way the results page shows it.
func (c EmailCandidate) DeliverableLabel() string {
	if c.Deliverable {
		return "Yes"
	}
	return "No"
}

// LookupResponse is the envelope returned by the email variation service.
type LookupResponse struct {
	ValidEmails []EmailCandidate `json:"valid_emails"`
}

// ErrorResponse is the JSON body returned by the proxy endpoint on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
