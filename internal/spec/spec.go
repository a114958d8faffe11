// Package spec defines the desired description of a monitored host and its
// validation rules. Specs are loaded from YAML or JSON files; yaml.v3
// handles both.
package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cinek810/zabbix-hostctl/internal/zabbix"
)

// State of the host on the server.
type State string

const (
	StatePresent State = "present"
	StateAbsent  State = "absent"
)

// Status is the desired monitoring status.
type Status string

const (
	StatusEnabled  Status = "enabled"
	StatusDisabled Status = "disabled"
)

// HostSpec is the desired description of a single monitored host. Host is
// the immutable identifier; everything else converges toward it.
type HostSpec struct {
	Host       string          `yaml:"host"`
	State      State           `yaml:"state"`
	Status     Status          `yaml:"status"`
	Groups     []string        `yaml:"groups"`
	Templates  []string        `yaml:"templates"`
	Proxy      string          `yaml:"proxy"`
	Replace    *bool           `yaml:"replace"`
	Interfaces []InterfaceSpec `yaml:"interfaces"`
}

// InterfaceSpec describes one connection endpoint. Interfaces are matched
// against live ones by type, so at most one of each type may be declared.
type InterfaceSpec struct {
	Type  string `yaml:"type"`
	IP    string `yaml:"ip"`
	DNS   string `yaml:"dns"`
	Port  string `yaml:"port"`
	UseIP bool   `yaml:"useip"`
	Main  bool   `yaml:"main"`
}

// Load reads a host spec from path and applies defaults.
func Load(path string) (HostSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return HostSpec{}, fmt.Errorf("reading spec file: %w", err)
	}
	var s HostSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return HostSpec{}, fmt.Errorf("parsing spec file %s: %w", path, err)
	}
	s.ApplyDefaults()
	return s, nil
}

// ApplyDefaults fills unset fields: state present, status enabled, replace
// mode on.
func (s *HostSpec) ApplyDefaults() {
	if s.State == "" {
		s.State = StatePresent
	}
	if s.Status == "" {
		s.Status = StatusEnabled
	}
	if s.Replace == nil {
		replace := true
		s.Replace = &replace
	}
	for i := range s.Interfaces {
		if s.Interfaces[i].Port == "" {
			s.Interfaces[i].Port = defaultPort(s.Interfaces[i].Type)
		}
	}
}

// Validate checks the spec before any API call is made. Interface presence
// is not checked here: it is only required when the host has to be created,
// which the reconciler knows and this package does not.
func (s *HostSpec) Validate() error {
	if s.Host == "" {
		return fmt.Errorf("host name is required")
	}
	if s.State != StatePresent && s.State != StateAbsent {
		return fmt.Errorf("invalid state %q (want present or absent)", s.State)
	}
	if s.Status != StatusEnabled && s.Status != StatusDisabled {
		return fmt.Errorf("invalid status %q (want enabled or disabled)", s.Status)
	}
	if s.State == StateAbsent {
		return nil
	}
	if len(s.Groups) == 0 {
		return fmt.Errorf("specify at least one group for host %q", s.Host)
	}
	seen := make(map[string]struct{}, len(s.Interfaces))
	for _, iface := range s.Interfaces {
		if _, err := iface.InterfaceType(); err != nil {
			return err
		}
		if _, dup := seen[iface.Type]; dup {
			return fmt.Errorf("duplicate interface type %q for host %q", iface.Type, s.Host)
		}
		seen[iface.Type] = struct{}{}
	}
	return nil
}

// ReplaceMode reports whether groups and templates not in the spec should
// be removed from the live host.
func (s *HostSpec) ReplaceMode() bool {
	return s.Replace == nil || *s.Replace
}

// StatusCode converts the desired status to its wire value.
func (s *HostSpec) StatusCode() int {
	if s.Status == StatusDisabled {
		return zabbix.StatusUnmonitored
	}
	return zabbix.StatusMonitored
}

// InterfaceType maps the spec's type tag to the API's numeric type.
func (i *InterfaceSpec) InterfaceType() (zabbix.InterfaceType, error) {
	switch i.Type {
	case "agent":
		return zabbix.Agent, nil
	case "snmp":
		return zabbix.SNMP, nil
	case "ipmi":
		return zabbix.IPMI, nil
	case "jmx":
		return zabbix.JMX, nil
	default:
		return 0, fmt.Errorf("invalid interface type %q (want agent, snmp, ipmi or jmx)", i.Type)
	}
}

// WireInterface converts the spec interface to the API's representation.
func (i *InterfaceSpec) WireInterface() zabbix.HostInterface {
	ifaceType, _ := i.InterfaceType()
	return zabbix.HostInterface{
		Type:  ifaceType,
		Main:  boolToFlag(i.Main),
		UseIP: boolToFlag(i.UseIP),
		IP:    i.IP,
		DNS:   i.DNS,
		Port:  i.Port,
	}
}

func defaultPort(ifaceType string) string {
	switch ifaceType {
	case "snmp":
		return "161"
	case "ipmi":
		return "623"
	case "jmx":
		return "12345"
	default:
		return "10050"
	}
}

func boolToFlag(value bool) int {
	if value {
		return 1
	}
	return 0
}
