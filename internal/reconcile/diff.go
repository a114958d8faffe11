package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cinek810/zabbix-hostctl/internal/zabbix"
)

// groupDiff compares desired groups against live membership. updateIDs is
// the full group set to send on update: the desired set in replace mode,
// the union of desired and live in merge mode (merge never removes).
type groupDiff struct {
	changed   bool
	updateIDs []string
	details   []string
}

func diffGroups(desired, live []zabbix.HostGroup, replace bool) groupDiff {
	liveNames := make(map[string]string, len(live))
	for _, group := range live {
		liveNames[group.Name] = group.GroupID
	}
	desiredNames := make(map[string]struct{}, len(desired))

	diff := groupDiff{}
	var add []string
	for _, group := range desired {
		desiredNames[group.Name] = struct{}{}
		diff.updateIDs = append(diff.updateIDs, group.GroupID)
		if _, ok := liveNames[group.Name]; !ok {
			add = append(add, group.Name)
		}
	}

	var remove []string
	for _, group := range live {
		if _, ok := desiredNames[group.Name]; ok {
			continue
		}
		if replace {
			remove = append(remove, group.Name)
		} else {
			diff.updateIDs = append(diff.updateIDs, group.GroupID)
		}
	}

	if len(add) > 0 {
		sort.Strings(add)
		diff.changed = true
		diff.details = append(diff.details, fmt.Sprintf("groups: add %s", strings.Join(add, ", ")))
	}
	if len(remove) > 0 {
		sort.Strings(remove)
		diff.changed = true
		diff.details = append(diff.details, fmt.Sprintf("groups: remove %s", strings.Join(remove, ", ")))
	}
	return diff
}

// templateDiff compares desired template links against live ones. linkIDs is
// the full template set to send; clearIDs are unlinked-and-cleared, which
// only replace mode produces.
type templateDiff struct {
	changed  bool
	linkIDs  []string
	clearIDs []string
	details  []string
}

func diffTemplates(desired, live []string, replace bool) templateDiff {
	liveSet := make(map[string]struct{}, len(live))
	for _, id := range live {
		liveSet[id] = struct{}{}
	}
	desiredSet := make(map[string]struct{}, len(desired))

	diff := templateDiff{}
	var link []string
	for _, id := range desired {
		desiredSet[id] = struct{}{}
		diff.linkIDs = append(diff.linkIDs, id)
		if _, ok := liveSet[id]; !ok {
			link = append(link, id)
		}
	}

	for _, id := range live {
		if _, ok := desiredSet[id]; ok {
			continue
		}
		if replace {
			diff.clearIDs = append(diff.clearIDs, id)
		} else {
			diff.linkIDs = append(diff.linkIDs, id)
		}
	}

	if len(link) > 0 {
		sort.Strings(link)
		diff.changed = true
		diff.details = append(diff.details, fmt.Sprintf("templates: link %s", strings.Join(link, ", ")))
	}
	if len(diff.clearIDs) > 0 {
		sort.Strings(diff.clearIDs)
		diff.changed = true
		diff.details = append(diff.details, fmt.Sprintf("templates: clear %s", strings.Join(diff.clearIDs, ", ")))
	}
	return diff
}

// interfaceDiff matches desired interfaces to live ones by type. Matched
// pairs that differ field-by-field become updates, unmatched desired types
// become creates, and leftover live types become deletes in replace mode
// only.
type interfaceDiff struct {
	changed   bool
	creates   []zabbix.HostInterface
	updates   []zabbix.HostInterface
	deleteIDs []string
	details   []string
}

func diffInterfaces(desired, live []zabbix.HostInterface, replace bool) interfaceDiff {
	liveByType := make(map[zabbix.InterfaceType]zabbix.HostInterface, len(live))
	for _, iface := range live {
		liveByType[iface.Type] = iface
	}

	diff := interfaceDiff{}
	matched := make(map[zabbix.InterfaceType]struct{}, len(desired))
	for _, want := range desired {
		have, ok := liveByType[want.Type]
		if !ok {
			diff.changed = true
			diff.creates = append(diff.creates, want)
			diff.details = append(diff.details, fmt.Sprintf("interface %s: create", want.Type))
			continue
		}
		matched[want.Type] = struct{}{}
		if fields := interfaceFieldChanges(have, want); len(fields) > 0 {
			want.InterfaceID = have.InterfaceID
			diff.changed = true
			diff.updates = append(diff.updates, want)
			diff.details = append(diff.details,
				fmt.Sprintf("interface %s: %s", want.Type, strings.Join(fields, ", ")))
		}
	}

	for _, have := range live {
		if _, ok := matched[have.Type]; ok {
			continue
		}
		if replace {
			diff.changed = true
			diff.deleteIDs = append(diff.deleteIDs, have.InterfaceID)
			diff.details = append(diff.details, fmt.Sprintf("interface %s: remove", have.Type))
		}
	}
	return diff
}

func interfaceFieldChanges(have, want zabbix.HostInterface) []string {
	var fields []string
	if have.IP != want.IP {
		fields = append(fields, fmt.Sprintf("ip %q -> %q", have.IP, want.IP))
	}
	if have.DNS != want.DNS {
		fields = append(fields, fmt.Sprintf("dns %q -> %q", have.DNS, want.DNS))
	}
	if have.Port != want.Port {
		fields = append(fields, fmt.Sprintf("port %s -> %s", have.Port, want.Port))
	}
	if have.UseIP != want.UseIP {
		fields = append(fields, fmt.Sprintf("useip %d -> %d", have.UseIP, want.UseIP))
	}
	if have.Main != want.Main {
		fields = append(fields, fmt.Sprintf("main %d -> %d", have.Main, want.Main))
	}
	return fields
}

func statusName(code int) string {
	if code == zabbix.StatusUnmonitored {
		return "disabled"
	}
	return "enabled"
}
