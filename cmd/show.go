package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cinek810/zabbix-hostctl/internal/exit"
	"github.com/cinek810/zabbix-hostctl/internal/output"
	"github.com/cinek810/zabbix-hostctl/internal/zabbix"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show HOST",
		Short: "Show the live state of a host",
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

			view, err := liveHostView(ctx, client, args[0])
			if err != nil {
				return apiExit(err)
			}
			if err := output.RenderHost(view, mode); err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			return nil
		},
	}
	return cmd
}

func liveHostView(ctx context.Context, client *zabbix.Client, name string) (output.HostView, error) {
	host, err := client.HostByName(ctx, name)
	if err != nil {
		return output.HostView{}, err
	}
	groups, err := client.GroupsByHostID(ctx, host.HostID)
	if err != nil {
		return output.HostView{}, err
	}
	templateIDs, err := client.TemplateIDsByHostID(ctx, host.HostID)
	if err != nil {
		return output.HostView{}, err
	}
	interfaces, err := client.InterfacesByHostID(ctx, host.HostID)
	if err != nil {
		return output.HostView{}, err
	}

	view := output.HostView{
		Host:       host.Host,
		HostID:     host.HostID,
		Status:     statusWord(host.Status),
		Templates:  templateIDs,
		Interfaces: interfaces,
	}
	if host.ProxyHostID != "" && host.ProxyHostID != zabbix.NoProxy {
		view.Proxy = host.ProxyHostID
	}
	for _, group := range groups {
		view.Groups = append(view.Groups, group.Name)
	}
	return view, nil
}

func statusWord(code int) string {
	if code == zabbix.StatusUnmonitored {
		return "disabled"
	}
	if code == zabbix.StatusMonitored {
		return "enabled"
	}
	return fmt.Sprintf("unknown (%d)", code)
}
