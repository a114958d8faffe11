package zabbix

import (
	"context"
	"fmt"
)

// CreateHostParams carries everything host.create needs for a new host.
type CreateHostParams struct {
	Host        string          `json:"host"`
	Groups      []GroupRef      `json:"groups"`
	Interfaces  []HostInterface `json:"interfaces"`
	Status      int             `json:"status"`
	ProxyHostID string          `json:"proxy_hostid,omitempty"`
}

// NewCreateHostParams builds create parameters from resolved IDs.
func NewCreateHostParams(host string, groupIDs []string, interfaces []HostInterface, status int, proxyID string) CreateHostParams {
	params := CreateHostParams{
		Host:       host,
		Groups:     groupRefs(groupIDs),
		Interfaces: interfaces,
		Status:     status,
	}
	if proxyID != "" && proxyID != NoProxy {
		params.ProxyHostID = proxyID
	}
	return params
}

// UpdateHostParams carries the host.update fields the reconciler manages.
type UpdateHostParams struct {
	HostID      string     `json:"hostid"`
	Groups      []GroupRef `json:"groups"`
	Status      int        `json:"status"`
	ProxyHostID string     `json:"proxy_hostid"`
}

// NewUpdateHostParams builds update parameters from resolved IDs.
func NewUpdateHostParams(hostID string, groupIDs []string, status int, proxyID string) UpdateHostParams {
	if proxyID == "" {
		proxyID = NoProxy
	}
	return UpdateHostParams{
		HostID:      hostID,
		Groups:      groupRefs(groupIDs),
		Status:      status,
		ProxyHostID: proxyID,
	}
}

// HostByName fetches a host by its technical name. A missing host is
// reported as ErrNotFound so callers can distinguish absence from failure.
func (c *Client) HostByName(ctx context.Context, name string) (Host, error) {
	params := map[string]any{
		"output": "extend",
		"filter": map[string]any{"host": []string{name}},
	}
	var hosts []Host
	if err := c.Call(ctx, "host.get", params, &hosts); err != nil {
		return Host{}, err
	}
	if len(hosts) == 0 {
		return Host{}, &NotFoundError{Resource: "host", Name: name}
	}
	return hosts[0], nil
}

// CreateHost creates a host and returns its new ID.
func (c *Client) CreateHost(ctx context.Context, params CreateHostParams) (string, error) {
	var result struct {
		HostIDs []string `json:"hostids"`
	}
	if err := c.Call(ctx, "host.create", params, &result); err != nil {
		return "", err
	}
	if len(result.HostIDs) == 0 {
		return "", fmt.Errorf("host.create for %q returned no host ID", params.Host)
	}
	return result.HostIDs[0], nil
}

// UpdateHost updates the host's groups, status and proxy assignment.
func (c *Client) UpdateHost(ctx context.Context, params UpdateHostParams) error {
	return c.Call(ctx, "host.update", params, nil)
}

// LinkTemplates sets the host's linked templates. Templates in clearIDs are
// unlinked and cleared so their items and triggers do not linger.
func (c *Client) LinkTemplates(ctx context.Context, hostID string, templateIDs, clearIDs []string) error {
	params := map[string]any{
		"hostid":    hostID,
		"templates": templateRefs(templateIDs),
	}
	if len(clearIDs) > 0 {
		params["templates_clear"] = templateRefs(clearIDs)
	}
	return c.Call(ctx, "host.update", params, nil)
}

// DeleteHost removes the host and all of its interfaces.
func (c *Client) DeleteHost(ctx context.Context, hostID string) error {
	return c.Call(ctx, "host.delete", []string{hostID}, nil)
}
