package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/email-finder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledSession() *Session {
	s := NewSession(true)
	s.FullName = "Jane Roe"
	s.CompanyURL = "acme.io"
	return s
}

func TestNewSession_Theme(t *testing.T) {
	dark := NewSession(true)
	assert.True(t, dark.DarkMode)
	assert.Equal(t, ThemeDark, dark.Theme())

	light := NewSession(false)
	assert.False(t, light.DarkMode)
	assert.Equal(t, ThemeLight, light.Theme())
}

func TestToggleTheme(t *testing.T) {
	s := NewSession(true)
	s.ToggleTheme()
	assert.False(t, s.DarkMode)
	s.ToggleTheme()
	assert.True(t, s.DarkMode)
}

func TestSubmit_Success(t *testing.T) {
	s := filledSession()
	want := &types.LookupResponse{ValidEmails: []types.EmailCandidate{{Email: "jane@acme.io"}}}

	var gotReq types.LookupRequest
	err := s.Submit(context.Background(), CheckerFunc(func(_ context.Context, req types.LookupRequest) (*types.LookupResponse, error) {
		gotReq = req
		return want, nil
	}))

	require.NoError(t, err)
	assert.Equal(t, types.LookupRequest{FullName: "Jane Roe", CompanyURL: "acme.io"}, gotReq)
	assert.Same(t, want, s.Response)
	assert.Empty(t, s.Error)
	assert.False(t, s.Loading)
}

func TestSubmit_LoadingOnlyDuringCall(t *testing.T) {
	tests := []struct {
		name    string
		checker CheckerFunc
	}{
		{
			name: "success",
			checker: func(context.Context, types.LookupRequest) (*types.LookupResponse, error) {
				return &types.LookupResponse{}, nil
			},
		},
		{
			name: "failure",
			checker: func(context.Context, types.LookupRequest) (*types.LookupResponse, error) {
				return nil, errors.New("boom")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := filledSession()
			var transitions []bool
			s.OnLoadingChange(func(loading bool) { transitions = append(transitions, loading) })

			var loadingDuringCall bool
			_ = s.Submit(context.Background(), CheckerFunc(func(ctx context.Context, req types.LookupRequest) (*types.LookupResponse, error) {
				loadingDuringCall = s.Loading
				return tt.checker(ctx, req)
			}))

			assert.True(t, loadingDuringCall)
			assert.False(t, s.Loading)
			assert.Equal(t, []bool{true, false}, transitions)
		})
	}
}

func TestSubmit_PanicClearsLoading(t *testing.T) {
	s := filledSession()

	assert.Panics(t, func() {
		_ = s.Submit(context.Background(), CheckerFunc(func(context.Context, types.LookupRequest) (*types.LookupResponse, error) {
			panic("checker exploded")
		}))
	})
	assert.False(t, s.Loading)
}

func TestSubmit_FailureDiscardsPreviousResponse(t *testing.T) {
	s := filledSession()
	s.Response = &types.LookupResponse{ValidEmails: []types.EmailCandidate{{Email: "old@acme.io"}}}

	err := s.Submit(context.Background(), CheckerFunc(func(context.Context, types.LookupRequest) (*types.LookupResponse, error) {
		return nil, &APIError{StatusCode: 500, Message: "upstream responded with status 503"}
	}))

	require.Error(t, err)
	assert.Nil(t, s.Response)
	assert.Equal(t, "upstream responded with status 503", s.Error)
}

func TestSubmit_SuccessClearsPreviousError(t *testing.T) {
	s := filledSession()
	s.Error = "previous failure"

	err := s.Submit(context.Background(), CheckerFunc(func(context.Context, types.LookupRequest) (*types.LookupResponse, error) {
		return &types.LookupResponse{ValidEmails: []types.EmailCandidate{}}, nil
	}))

	require.NoError(t, err)
	assert.Empty(t, s.Error)
	require.NotNil(t, s.Response)
	assert.Empty(t, s.Response.ValidEmails)
}

func TestSubmit_EmptyErrorMessageFallsBack(t *testing.T) {
	s := filledSession()

	err := s.Submit(context.Background(), CheckerFunc(func(context.Context, types.LookupRequest) (*types.LookupResponse, error) {
		return nil, errors.New("")
	}))

	require.Error(t, err)
	assert.Equal(t, GenericErrorMessage, s.Error)
}

func TestSubmit_NilResponse(t *testing.T) {
	s := filledSession()

	err := s.Submit(context.Background(), CheckerFunc(func(context.Context, types.LookupRequest) (*types.LookupResponse, error) {
		return nil, nil
	}))

	require.Error(t, err)
	assert.Nil(t, s.Response)
	assert.Equal(t, GenericErrorMessage, s.Error)
}

func TestSubmit_ValidationSkipsChecker(t *testing.T) {
	tests := []struct {
		name       string
		fullName   string
		companyURL string
	}{
		{name: "missing name", companyURL: "acme.io"},
		{name: "missing company", fullName: "Jane Roe"},
		{name: "both missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(true)
			s.FullName = tt.fullName
			s.CompanyURL = tt.companyURL

			called := false
			err := s.Submit(context.Background(), CheckerFunc(func(context.Context, types.LookupRequest) (*types.LookupResponse, error) {
				called = true
				return nil, nil
			}))

			require.Error(t, err)
			var verr *ErrValidation
			assert.ErrorAs(t, err, &verr)
			assert.False(t, called)
			assert.False(t, s.Loading)
			assert.Equal(t, verr.Error(), s.Error)
		})
	}
}
