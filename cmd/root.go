package cmd

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	serverURL   string
	username    string
	password    string
	timeout     time.Duration
	insecureTLS bool
	verbose     bool
	outputMode  string
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "zabbix-hostctl",
		Short:         "Reconcile Zabbix hosts against a desired description",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// A .env next to the working directory is convenient for orchestration
	// wrappers; absence is not an error.
	_ = godotenv.Load()

	cmd.PersistentFlags().StringVar(&serverURL, "server-url", "", "Zabbix server URL, with protocol")
	cmd.PersistentFlags().StringVar(&username, "username", "", "Zabbix API user name")
	cmd.PersistentFlags().StringVar(&password, "password", "", "Zabbix API user password")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "API request timeout")
	cmd.PersistentFlags().BoolVar(&insecureTLS, "insecure-skip-tls-verify", false, "skip TLS verification for the Zabbix server")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	cmd.PersistentFlags().StringVarP(&outputMode, "output", "o", "table", "output format: table|json|yaml")

	cmd.AddCommand(newApplyCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newDeleteCmd())

	return cmd
}
