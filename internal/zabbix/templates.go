package zabbix

import "context"

// TemplateIDsByNames resolves template technical names to IDs. Every name
// must exist on the server; a missing template is fatal for the invocation.
func (c *Client) TemplateIDsByNames(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	params := map[string]any{
		"output": "extend",
		"filter": map[string]any{"host": names},
	}
	var templates []Template
	if err := c.Call(ctx, "template.get", params, &templates); err != nil {
		return nil, err
	}
	byName := make(map[string]string, len(templates))
	for _, template := range templates {
		byName[template.Host] = template.TemplateID
	}
	ids := make([]string, 0, len(names))
	for _, name := range names {
		id, ok := byName[name]
		if !ok {
			return nil, &NotFoundError{Resource: "template", Name: name}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// TemplateIDsByHostID returns the IDs of templates linked to the host.
func (c *Client) TemplateIDsByHostID(ctx context.Context, hostID string) ([]string, error) {
	params := map[string]any{
		"output":  "extend",
		"hostids": hostID,
	}
	var templates []Template
	if err := c.Call(ctx, "template.get", params, &templates); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(templates))
	for _, template := range templates {
		ids = append(ids, template.TemplateID)
	}
	return ids, nil
}
