package output

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/cinek810/zabbix-hostctl/internal/reconcile"
)

// RenderResult emits a reconciliation result record in the chosen mode.
func RenderResult(result reconcile.Result, mode Mode) error {
	switch mode {
	case ModeJSON:
		return EmitJSON(result)
	case ModeYAML:
		return EmitYAML(result)
	default:
		return renderResultTable(result)
	}
}

func renderResultTable(result reconcile.Result) error {
	InitStyles()
	rows := [][]string{
		{"Host", "Action", "Changed", "Message"},
		{result.Host, string(result.Action), strconv.FormatBool(result.Changed), result.Message},
	}
	table := pterm.DefaultTable.WithHasHeader().WithData(rows)
	if err := table.Render(); err != nil {
		return err
	}
	if len(result.Details) > 0 {
		pterm.DefaultSection.Println("Changes")
		items := make([]pterm.BulletListItem, 0, len(result.Details))
		for _, detail := range result.Details {
			items = append(items, pterm.BulletListItem{Level: 0, Text: detail})
		}
		return pterm.DefaultBulletList.WithItems(items).Render()
	}
	return nil
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
