package output

import (
	"github.com/pterm/pterm"

	"github.com/cinek810/zabbix-hostctl/internal/zabbix"
)

// HostView is the assembled live state of a host for display.
type HostView struct {
	Host       string                 `json:"host" yaml:"host"`
	HostID     string                 `json:"hostid" yaml:"hostid"`
	Status     string                 `json:"status" yaml:"status"`
	Proxy      string                 `json:"proxy,omitempty" yaml:"proxy,omitempty"`
	Groups     []string               `json:"groups" yaml:"groups"`
	Templates  []string               `json:"templates" yaml:"templates"`
	Interfaces []zabbix.HostInterface `json:"interfaces" yaml:"interfaces"`
}

// RenderHost emits a live host view in the chosen mode.
func RenderHost(view HostView, mode Mode) error {
	switch mode {
	case ModeJSON:
		return EmitJSON(view)
	case ModeYAML:
		return EmitYAML(view)
	default:
		return renderHostTable(view)
	}
}

func renderHostTable(view HostView) error {
	InitStyles()
	proxy := view.Proxy
	if proxy == "" {
		proxy = "-"
	}
	rows := [][]string{
		{"Host", "HostID", "Status", "Proxy", "Groups", "Templates"},
		{view.Host, view.HostID, view.Status, proxy, joinOrDash(view.Groups), joinOrDash(view.Templates)},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}
	if len(view.Interfaces) == 0 {
		return nil
	}
	pterm.DefaultSection.Println("Interfaces")
	ifaceRows := [][]string{{"Type", "IP", "DNS", "Port", "UseIP", "Main"}}
	for _, iface := range view.Interfaces {
		ifaceRows = append(ifaceRows, []string{
			iface.Type.String(),
			iface.IP,
			iface.DNS,
			iface.Port,
			flagToString(iface.UseIP),
			flagToString(iface.Main),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(ifaceRows).Render()
}

func flagToString(flag int) string {
	if flag == 1 {
		return "yes"
	}
	return "no"
}
