package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/email-finder/internal/config"
	"github.com/jonathan/email-finder/internal/observability"
	"github.com/jonathan/email-finder/internal/relay"
	"github.com/jonathan/email-finder/internal/schemas"
	"github.com/jonathan/email-finder/internal/types"
	"github.com/jonathan/email-finder/internal/ui"
	"github.com/spf13/cobra"
)

var (
	lookupName     string
	lookupCompany  string
	lookupServer   string
	lookupUpstream string
	lookupJSON     bool
	lookupValidate bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Find likely email addresses for a person at a company",
	Long: `Send a single lookup for --name at --company and print the candidates.

By default the email variation service is called directly (UPSTREAM_BASE_URL or --upstream).
With --server the lookup goes through a running server's /api/check-email endpoint instead.`,
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVarP(&lookupName, "name", "n", "", "Full name of the person (required)")
	lookupCmd.Flags().StringVarP(&lookupCompany, "company", "u", "", "Company website, e.g. acme.io (required)")
	lookupCmd.Flags().StringVar(&lookupServer, "server", "", "Base URL of a running email_finder server")
	lookupCmd.Flags().StringVar(&lookupUpstream, "upstream", "", "Base URL of the email variation service (overrides UPSTREAM_BASE_URL)")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "Print the response as JSON instead of a summary")
	lookupCmd.Flags().BoolVar(&lookupValidate, "validate", false, "Validate the request and the response against the lookup schemas")

	if err := lookupCmd.MarkFlagRequired("name"); err != nil {
		panic(fmt.Sprintf("failed to mark name flag as required: %v", err))
	}
	if err := lookupCmd.MarkFlagRequired("company"); err != nil {
		panic(fmt.Sprintf("failed to mark company flag as required: %v", err))
	}

	rootCmd.AddCommand(lookupCmd)
}

// rawLookupFunc performs a lookup and returns the reply body exactly as received.
type rawLookupFunc func(ctx context.Context, req types.LookupRequest) (*types.LookupResponse, []byte, error)

func runLookup(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)

	session := ui.NewSession(true)
	session.FullName = lookupName
	session.CompanyURL = lookupCompany

	lookup, target, err := lookupTarget()
	if err != nil {
		return err
	}

	if !lookupJSON {
		req := session.Request()
		printer.PrintLookupRequest(&req)
		session.OnLoadingChange(func(loading bool) {
			if loading {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Searching via %s...\n", target)
			}
		})
	}

	var raw []byte
	checker := ui.CheckerFunc(func(ctx context.Context, req types.LookupRequest) (*types.LookupResponse, error) {
		if lookupValidate {
			if err := validateRequest(req); err != nil {
				return nil, err
			}
		}
		resp, body, err := lookup(ctx, req)
		if err != nil {
			return nil, err
		}
		raw = body
		return resp, nil
	})

	if err := session.Submit(cmd.Context(), checker); err != nil {
		var verr *ui.ErrValidation
		if errors.As(err, &verr) {
			return verr
		}
		if !lookupJSON {
			printer.PrintError(session.Error)
		}
		return fmt.Errorf("lookup failed: %s", session.Error)
	}

	if lookupValidate {
		if err := schemas.ValidateLookupResponse(raw); err != nil {
			return fmt.Errorf("response failed schema validation: %w", err)
		}
	}

	if lookupJSON {
		_, err := fmt.Fprintln(out, string(raw))
		return err
	}

	printer.PrintCandidates(session.Response)
	return nil
}

// validateRequest checks the outgoing body against the lookup request schema.
func validateRequest(req types.LookupRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode lookup request: %w", err)
	}
	if err := schemas.ValidateLookupRequest(body); err != nil {
		return fmt.Errorf("request failed schema validation: %w", err)
	}
	return nil
}

// lookupTarget picks the proxy endpoint when --server is set and the upstream otherwise.
// It also returns the URL requests are sent to.
func lookupTarget() (rawLookupFunc, string, error) {
	if lookupServer != "" {
		client := ui.NewAPIClient(lookupServer, nil)
		return client.CheckRaw, lookupServer, nil
	}

	baseURL := lookupUpstream
	if baseURL == "" {
		cfg := config.FromEnv(config.Default())
		baseURL = cfg.UpstreamBaseURL
	}

	client, err := relay.NewClient(baseURL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create upstream client: %w", err)
	}
	return client.Lookup, client.Endpoint(), nil
}
