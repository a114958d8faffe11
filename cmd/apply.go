package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cinek810/zabbix-hostctl/internal/exit"
	"github.com/cinek810/zabbix-hostctl/internal/output"
	"github.com/cinek810/zabbix-hostctl/internal/reconcile"
	"github.com/cinek810/zabbix-hostctl/internal/spec"
)

func newApplyCmd() *cobra.Command {
	var (
		specPath string
		hostName string
		state    string
		status   string
		check    bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Reconcile a host against its desired description",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := output.ParseMode(outputMode)
			if err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			if specPath == "" {
				return exit.New(exit.CodeUsage, fmt.Errorf("a spec file is required (use --spec)"))
			}

			desired, err := spec.Load(specPath)
			if err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			if cmd.Flags().Changed("host") {
				desired.Host = hostName
			}
			if cmd.Flags().Changed("state") {
				desired.State = spec.State(state)
			}
			if cmd.Flags().Changed("status") {
				desired.Status = spec.Status(status)
			}
			if err := desired.Validate(); err != nil {
				return exit.New(exit.CodeUsage, err)
			}

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			log := newLogger(cfg)

			ctx := context.Background()
			client, err := newSession(ctx, cfg, log)
			if err != nil {
				return exit.New(exit.CodeAPI, err)
			}
			defer func() {
				if err := client.Logout(ctx); err != nil {
					log.Debug().Err(err).Msg("logout failed")
				}
			}()

			reconciler := reconcile.New(client,
				reconcile.WithCheckMode(check),
				reconcile.WithLogger(log),
			)
			result, err := reconciler.Reconcile(ctx, desired)
			if err != nil {
				return apiExit(err)
			}
			if err := output.RenderResult(result, mode); err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&specPath, "spec", "f", "", "path to the desired host spec (YAML or JSON)")
	cmd.Flags().StringVar(&hostName, "host", "", "override the host name from the spec file")
	cmd.Flags().StringVar(&state, "state", "", "override the desired state: present|absent")
	cmd.Flags().StringVar(&status, "status", "", "override the desired status: enabled|disabled")
	cmd.Flags().BoolVar(&check, "check", false, "compute the plan without issuing any change")

	return cmd
}
