package main

import (
	"fmt"
	"log"

	"github.com/jonathan/email-finder/internal/config"
	"github.com/jonathan/email-finder/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveUpstream   string
	serveConfigPath string
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start an HTTP server that serves the lookup page and proxies /api/check-email to the email variation service.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT and the config file)")
	serveCmd.Flags().StringVar(&serveUpstream, "upstream", "", "Base URL of the email variation service (overrides UPSTREAM_BASE_URL)")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to a JSON config file")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Log relayed payload sizes")
	rootCmd.AddCommand(serveCmd)
}

// buildServeConfig resolves the effective config with command-line flags taking precedence.
func buildServeConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("upstream") {
		cfg.UpstreamBaseURL = serveUpstream
	}
	if serveVerbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := buildServeConfig(cmd)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	log.Printf("[serve] relaying lookups to %s", cfg.UpstreamBaseURL)
	return srv.Start()
}
