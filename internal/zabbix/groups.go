package zabbix

import "context"

// GroupsByNames resolves host group names to group objects. Every name must
// exist on the server; a missing group is fatal for the invocation.
func (c *Client) GroupsByNames(ctx context.Context, names []string) ([]HostGroup, error) {
	if len(names) == 0 {
		return nil, nil
	}
	params := map[string]any{
		"output": "extend",
		"filter": map[string]any{"name": names},
	}
	var groups []HostGroup
	if err := c.Call(ctx, "hostgroup.get", params, &groups); err != nil {
		return nil, err
	}
	found := make(map[string]struct{}, len(groups))
	for _, group := range groups {
		found[group.Name] = struct{}{}
	}
	for _, name := range names {
		if _, ok := found[name]; !ok {
			return nil, &NotFoundError{Resource: "host group", Name: name}
		}
	}
	return groups, nil
}

// GroupsByHostID returns the groups the host currently belongs to.
func (c *Client) GroupsByHostID(ctx context.Context, hostID string) ([]HostGroup, error) {
	params := map[string]any{
		"output":  "extend",
		"hostids": hostID,
	}
	var groups []HostGroup
	if err := c.Call(ctx, "hostgroup.get", params, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
