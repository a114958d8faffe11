package zabbix

import "context"

// InterfacesByHostID returns the host's current interfaces.
func (c *Client) InterfacesByHostID(ctx context.Context, hostID string) ([]HostInterface, error) {
	params := map[string]any{
		"output":  "extend",
		"hostids": hostID,
	}
	var interfaces []HostInterface
	if err := c.Call(ctx, "hostinterface.get", params, &interfaces); err != nil {
		return nil, err
	}
	return interfaces, nil
}

// CreateInterface attaches a new interface to iface.HostID.
func (c *Client) CreateInterface(ctx context.Context, iface HostInterface) error {
	return c.Call(ctx, "hostinterface.create", iface, nil)
}

// UpdateInterface rewrites the interface identified by iface.InterfaceID.
func (c *Client) UpdateInterface(ctx context.Context, iface HostInterface) error {
	return c.Call(ctx, "hostinterface.update", iface, nil)
}

// DeleteInterfaces removes interfaces by ID.
func (c *Client) DeleteInterfaces(ctx context.Context, interfaceIDs []string) error {
	if len(interfaceIDs) == 0 {
		return nil
	}
	return c.Call(ctx, "hostinterface.delete", interfaceIDs, nil)
}
