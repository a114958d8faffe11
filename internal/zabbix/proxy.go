package zabbix

import "context"

// ProxyIDByName resolves a proxy's technical name to its ID. A missing
// proxy is fatal for the invocation.
func (c *Client) ProxyIDByName(ctx context.Context, name string) (string, error) {
	params := map[string]any{
		"output": "extend",
		"filter": map[string]any{"host": []string{name}},
	}
	var proxies []Proxy
	if err := c.Call(ctx, "proxy.get", params, &proxies); err != nil {
		return "", err
	}
	if len(proxies) == 0 {
		return "", &NotFoundError{Resource: "proxy", Name: name}
	}
	return proxies[0].ProxyID, nil
}
