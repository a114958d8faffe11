package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cinek810/zabbix-hostctl/internal/exit"
	"github.com/cinek810/zabbix-hostctl/internal/output"
	"github.com/cinek810/zabbix-hostctl/internal/reconcile"
	"github.com/cinek810/zabbix-hostctl/internal/spec"
)

func newDeleteCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "delete HOST",
		Short: "Ensure a host is absent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := output.ParseMode(outputMode)
			if err != nil {
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

			desired := spec.HostSpec{Host: args[0], State: spec.StateAbsent}
			desired.ApplyDefaults()

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

	cmd.Flags().BoolVar(&check, "check", false, "compute the plan without issuing any change")
	return cmd
}
