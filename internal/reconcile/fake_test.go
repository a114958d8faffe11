package reconcile

import (
	"context"

	"github.com/cinek810/zabbix-hostctl/internal/zabbix"
)

type linkCall struct {
	hostID      string
	templateIDs []string
	clearIDs    []string
}

// fakeAPI serves canned live state and records every write call.
type fakeAPI struct {
	host    zabbix.Host
	hostErr error

	groups          map[string]string
	liveGroups      []zabbix.HostGroup
	templates       map[string]string
	liveTemplateIDs []string
	proxies         map[string]string
	liveInterfaces  []zabbix.HostInterface

	created      []zabbix.CreateHostParams
	updated      []zabbix.UpdateHostParams
	deleted      []string
	linked       []linkCall
	ifaceCreated []zabbix.HostInterface
	ifaceUpdated []zabbix.HostInterface
	ifaceDeleted []string
}

func (f *fakeAPI) HostByName(_ context.Context, name string) (zabbix.Host, error) {
	if f.hostErr != nil {
		return zabbix.Host{}, f.hostErr
	}
	if f.host.HostID == "" {
		return zabbix.Host{}, &zabbix.NotFoundError{Resource: "host", Name: name}
	}
	return f.host, nil
}

func (f *fakeAPI) CreateHost(_ context.Context, params zabbix.CreateHostParams) (string, error) {
	f.created = append(f.created, params)
	return "10500", nil
}

func (f *fakeAPI) UpdateHost(_ context.Context, params zabbix.UpdateHostParams) error {
	f.updated = append(f.updated, params)
	return nil
}

func (f *fakeAPI) DeleteHost(_ context.Context, hostID string) error {
	f.deleted = append(f.deleted, hostID)
	return nil
}

func (f *fakeAPI) LinkTemplates(_ context.Context, hostID string, templateIDs, clearIDs []string) error {
	f.linked = append(f.linked, linkCall{hostID: hostID, templateIDs: templateIDs, clearIDs: clearIDs})
	return nil
}

func (f *fakeAPI) GroupsByNames(_ context.Context, names []string) ([]zabbix.HostGroup, error) {
	groups := make([]zabbix.HostGroup, 0, len(names))
	for _, name := range names {
		id, ok := f.groups[name]
		if !ok {
			return nil, &zabbix.NotFoundError{Resource: "host group", Name: name}
		}
		groups = append(groups, zabbix.HostGroup{GroupID: id, Name: name})
	}
	return groups, nil
}

func (f *fakeAPI) GroupsByHostID(context.Context, string) ([]zabbix.HostGroup, error) {
	return f.liveGroups, nil
}

func (f *fakeAPI) TemplateIDsByNames(_ context.Context, names []string) ([]string, error) {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		id, ok := f.templates[name]
		if !ok {
			return nil, &zabbix.NotFoundError{Resource: "template", Name: name}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeAPI) TemplateIDsByHostID(context.Context, string) ([]string, error) {
	return f.liveTemplateIDs, nil
}

func (f *fakeAPI) ProxyIDByName(_ context.Context, name string) (string, error) {
	id, ok := f.proxies[name]
	if !ok {
		return "", &zabbix.NotFoundError{Resource: "proxy", Name: name}
	}
	return id, nil
}

func (f *fakeAPI) InterfacesByHostID(context.Context, string) ([]zabbix.HostInterface, error) {
	return f.liveInterfaces, nil
}

func (f *fakeAPI) CreateInterface(_ context.Context, iface zabbix.HostInterface) error {
	f.ifaceCreated = append(f.ifaceCreated, iface)
	return nil
}

func (f *fakeAPI) UpdateInterface(_ context.Context, iface zabbix.HostInterface) error {
	f.ifaceUpdated = append(f.ifaceUpdated, iface)
	return nil
}

func (f *fakeAPI) DeleteInterfaces(_ context.Context, interfaceIDs []string) error {
	f.ifaceDeleted = append(f.ifaceDeleted, interfaceIDs...)
	return nil
}

func (f *fakeAPI) writeCount() int {
	return len(f.created) + len(f.updated) + len(f.deleted) + len(f.linked) +
		len(f.ifaceCreated) + len(f.ifaceUpdated) + len(f.ifaceDeleted)
}
