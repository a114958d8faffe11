package cmd

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cinek810/zabbix-hostctl/internal/config"
	"github.com/cinek810/zabbix-hostctl/internal/exit"
	"github.com/cinek810/zabbix-hostctl/internal/logging"
	"github.com/cinek810/zabbix-hostctl/internal/zabbix"
)

// resolveConfig merges environment configuration with command-line flags;
// a flag set on the command line wins over its environment variable.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("server-url") {
		cfg.ServerURL = serverURL
	}
	if cmd.Flags().Changed("username") {
		cfg.Username = username
	}
	if cmd.Flags().Changed("password") {
		cfg.Password = password
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = timeout
	}
	if cmd.Flags().Changed("insecure-skip-tls-verify") {
		cfg.InsecureSkipVerify = insecureTLS
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSession builds a logged-in API client. The caller owns the session and
// should Logout when done.
func newSession(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*zabbix.Client, error) {
	client, err := zabbix.NewClient(cfg.ServerURL, cfg.Username, cfg.Password,
		zabbix.WithTimeout(cfg.Timeout),
		zabbix.WithInsecureSkipVerify(cfg.InsecureSkipVerify),
		zabbix.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	if err := client.Login(ctx); err != nil {
		return nil, err
	}
	if verbose {
		if version, err := client.Version(ctx); err == nil {
			log.Debug().Str("version", version).Msg("connected to zabbix api")
		}
	}
	return client, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	return logging.Setup(cfg.LogLevel, verbose)
}

// apiExit maps a failure to the exit code contract: missing remote
// references are distinguishable from rejected API calls.
func apiExit(err error) error {
	if errors.Is(err, zabbix.ErrNotFound) {
		return exit.New(exit.CodeNotFound, err)
	}
	return exit.New(exit.CodeAPI, err)
}
