package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pawel123789/peopleclient"
	"github.com/pawel123789/peopleclient/internal/config"
	"github.com/pawel123789/peopleclient/internal/logger"
)

// settings are the global flags layered over PEOPLE_* environment variables.
type settings struct {
	baseURL     string
	token       string
	tokenSecret string
	timeout     time.Duration
	logLevel    string
	debug       bool

	cfg *config.Config
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	s := &settings{}

	rootCmd := &cobra.Command{
		Use:           "peoplectl",
		Short:         "peoplectl manages records in a people directory service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			s.apply(cmd, cfg)
			if err := cfg.ResolveDefaults(); err != nil {
				return err
			}
			s.cfg = cfg

			if cfg.LogFormat == "json" {
				log.Logger = logger.New("peoplectl")
			} else {
				log.Logger = logger.NewConsole("peoplectl")
			}
			if cfg.Debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))
			}
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&s.baseURL, "base-url", "", "Collection URL of the people service (env PEOPLE_BASE_URL)")
	pf.StringVar(&s.token, "token", "", "Bearer token for write requests (env PEOPLE_TOKEN)")
	pf.StringVar(&s.tokenSecret, "token-secret", "", "Derive the bearer token from this secret (env PEOPLE_TOKEN_SECRET)")
	pf.DurationVar(&s.timeout, "timeout", 0, "HTTP timeout per request (env PEOPLE_TIMEOUT)")
	pf.StringVar(&s.logLevel, "log-level", "", "Log level: debug, info, warn, error (env PEOPLE_LOG_LEVEL)")
	pf.BoolVarP(&s.debug, "debug", "d", false, "Log every HTTP request and response")

	rootCmd.AddCommand(newListCmd(s))
	rootCmd.AddCommand(newAddCmd(s))
	rootCmd.AddCommand(newGetCmd(s))
	rootCmd.AddCommand(newQueryCmd(s))
	rootCmd.AddCommand(newByIPCmd(s))
	rootCmd.AddCommand(newDeleteCmd(s))
	rootCmd.AddCommand(newDeleteByNameCmd(s))
	rootCmd.AddCommand(newImportCmd(s))

	return rootCmd
}

// apply copies explicitly set flags over the environment configuration.
func (s *settings) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = s.baseURL
	}
	if flags.Changed("token") {
		cfg.Token = s.token
	}
	if flags.Changed("token-secret") {
		cfg.TokenSecret = s.tokenSecret
		if !flags.Changed("token") {
			cfg.Token = ""
		}
	}
	if flags.Changed("timeout") {
		cfg.Timeout = s.timeout
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = s.logLevel
	}
	if flags.Changed("debug") {
		cfg.Debug = s.debug
	}
}

// client builds a people client from the resolved configuration. Each request
// is bounded by the http timeout; the returned context only carries
// cancellation from the command.
func (s *settings) client(cmd *cobra.Command) (*peopleclient.Client, context.Context, context.CancelFunc, error) {
	c, err := peopleclient.New(s.cfg.BaseURL, s.cfg.Token,
		peopleclient.WithHTTPTimeout(s.cfg.Timeout),
		peopleclient.WithDebugLogging(s.cfg.Debug),
		peopleclient.WithLogger(log.Logger),
	)
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := context.WithCancel(cmd.Context())
	return c, ctx, cancel, nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
