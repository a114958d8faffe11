package reconcile

import (
	"context"

	"github.com/cinek810/zabbix-hostctl/internal/zabbix"
)

// API is the slice of the Zabbix client the reconciler consumes. Satisfied
// by *zabbix.Client; tests substitute a fake.
type API interface {
	HostByName(ctx context.Context, name string) (zabbix.Host, error)
	CreateHost(ctx context.Context, params zabbix.CreateHostParams) (string, error)
	UpdateHost(ctx context.Context, params zabbix.UpdateHostParams) error
	DeleteHost(ctx context.Context, hostID string) error
	LinkTemplates(ctx context.Context, hostID string, templateIDs, clearIDs []string) error

	GroupsByNames(ctx context.Context, names []string) ([]zabbix.HostGroup, error)
	GroupsByHostID(ctx context.Context, hostID string) ([]zabbix.HostGroup, error)
	TemplateIDsByNames(ctx context.Context, names []string) ([]string, error)
	TemplateIDsByHostID(ctx context.Context, hostID string) ([]string, error)
	ProxyIDByName(ctx context.Context, name string) (string, error)

	InterfacesByHostID(ctx context.Context, hostID string) ([]zabbix.HostInterface, error)
	CreateInterface(ctx context.Context, iface zabbix.HostInterface) error
	UpdateInterface(ctx context.Context, iface zabbix.HostInterface) error
	DeleteInterfaces(ctx context.Context, interfaceIDs []string) error
}
