package zabbix

// InterfaceType identifies how the Zabbix server reaches a host.
type InterfaceType int

// Interface types as defined by the hostinterface API object.
const (
	Agent InterfaceType = 1
	SNMP  InterfaceType = 2
	IPMI  InterfaceType = 3
	JMX   InterfaceType = 4
)

func (t InterfaceType) String() string {
	switch t {
	case Agent:
		return "agent"
	case SNMP:
		return "snmp"
	case IPMI:
		return "ipmi"
	case JMX:
		return "jmx"
	default:
		return "unknown"
	}
}

// Host monitoring status values on the wire.
const (
	StatusMonitored   = 0
	StatusUnmonitored = 1
)

// NoProxy is the proxy_hostid value of a host monitored directly by the server.
const NoProxy = "0"

// Host is the server's representation of a monitored host.
// Zabbix returns numeric fields as JSON strings.
type Host struct {
	HostID      string `json:"hostid"`
	Host        string `json:"host"`
	Status      int    `json:"status,string"`
	ProxyHostID string `json:"proxy_hostid"`
}

// HostGroup is a named group a host belongs to.
type HostGroup struct {
	GroupID string `json:"groupid"`
	Name    string `json:"name"`
}

// Template is a reusable monitoring configuration linkable to a host.
type Template struct {
	TemplateID string `json:"templateid"`
	Host       string `json:"host"`
	Name       string `json:"name"`
}

// Proxy is a monitoring proxy a host can be assigned to.
type Proxy struct {
	ProxyID string `json:"proxyid"`
	Host    string `json:"host"`
}

// HostInterface is a network endpoint the server uses to reach a host.
type HostInterface struct {
	InterfaceID string        `json:"interfaceid,omitempty"`
	HostID      string        `json:"hostid,omitempty"`
	Type        InterfaceType `json:"type,string"`
	Main        int           `json:"main,string"`
	UseIP       int           `json:"useip,string"`
	IP          string        `json:"ip"`
	DNS         string        `json:"dns"`
	Port        string        `json:"port"`
}

// GroupRef is the {"groupid": "..."} shape host.create and host.update expect.
type GroupRef struct {
	GroupID string `json:"groupid"`
}

// TemplateRef is the {"templateid": "..."} shape host.update expects.
type TemplateRef struct {
	TemplateID string `json:"templateid"`
}

func groupRefs(ids []string) []GroupRef {
	refs := make([]GroupRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, GroupRef{GroupID: id})
	}
	return refs
}

func templateRefs(ids []string) []TemplateRef {
	refs := make([]TemplateRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, TemplateRef{TemplateID: id})
	}
	return refs
}
