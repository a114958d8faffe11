// Package reconcile converges a live Zabbix host toward its desired
// description: existence check, diff against live state, then the minimal
// set of create, update and delete calls.
package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cinek810/zabbix-hostctl/internal/spec"
	"github.com/cinek810/zabbix-hostctl/internal/zabbix"
)

// Reconciler performs one-shot, idempotent host reconciliation.
type Reconciler struct {
	api   API
	check bool
	log   zerolog.Logger
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithCheckMode computes the full plan but issues no write calls.
func WithCheckMode(check bool) Option {
	return func(r *Reconciler) {
		r.check = check
	}
}

// WithLogger attaches a logger.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Reconciler) {
		r.log = log
	}
}

// New builds a Reconciler over the given API handle.
func New(api API, opts ...Option) *Reconciler {
	r := &Reconciler{api: api, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile converges the named host toward the spec and reports what it
// did. Any API failure or missing referenced object is terminal.
func (r *Reconciler) Reconcile(ctx context.Context, s spec.HostSpec) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}

	live, err := r.api.HostByName(ctx, s.Host)
	exists := err == nil
	if err != nil && !errors.Is(err, zabbix.ErrNotFound) {
		return Result{}, err
	}

	if s.State == spec.StateAbsent {
		return r.ensureAbsent(ctx, s, live, exists)
	}

	// Resolve every referenced name up front; a missing group, template or
	// proxy is fatal before any write happens.
	groups, err := r.api.GroupsByNames(ctx, s.Groups)
	if err != nil {
		return Result{}, err
	}
	templateIDs, err := r.api.TemplateIDsByNames(ctx, s.Templates)
	if err != nil {
		return Result{}, err
	}
	proxyID := zabbix.NoProxy
	if s.Proxy != "" {
		proxyID, err = r.api.ProxyIDByName(ctx, s.Proxy)
		if err != nil {
			return Result{}, err
		}
	}

	if !exists {
		return r.create(ctx, s, groups, templateIDs, proxyID)
	}
	return r.update(ctx, s, live, groups, templateIDs, proxyID)
}

func (r *Reconciler) ensureAbsent(ctx context.Context, s spec.HostSpec, live zabbix.Host, exists bool) (Result, error) {
	if !exists {
		return unchanged(s.Host, fmt.Sprintf("host %s already absent", s.Host)), nil
	}
	result := Result{
		Host:    s.Host,
		Action:  ActionDeleted,
		Changed: true,
		Check:   r.check,
		Message: fmt.Sprintf("deleted host %s", s.Host),
	}
	if r.check {
		result.Message = fmt.Sprintf("would delete host %s", s.Host)
		return result, nil
	}
	if err := r.api.DeleteHost(ctx, live.HostID); err != nil {
		return Result{}, fmt.Errorf("failed to delete host %s: %w", s.Host, err)
	}
	r.log.Info().Str("host", s.Host).Msg("host deleted")
	return result, nil
}

func (r *Reconciler) create(ctx context.Context, s spec.HostSpec, groups []zabbix.HostGroup, templateIDs []string, proxyID string) (Result, error) {
	if len(s.Interfaces) == 0 {
		return Result{}, fmt.Errorf("specify at least one interface for creating host %q", s.Host)
	}

	result := Result{
		Host:    s.Host,
		Action:  ActionCreated,
		Changed: true,
		Check:   r.check,
		Message: fmt.Sprintf("created host %s", s.Host),
	}
	if r.check {
		result.Message = fmt.Sprintf("would create host %s", s.Host)
		return result, nil
	}

	groupIDs := make([]string, 0, len(groups))
	for _, group := range groups {
		groupIDs = append(groupIDs, group.GroupID)
	}
	interfaces := make([]zabbix.HostInterface, 0, len(s.Interfaces))
	for _, iface := range s.Interfaces {
		interfaces = append(interfaces, iface.WireInterface())
	}

	hostID, err := r.api.CreateHost(ctx, zabbix.NewCreateHostParams(s.Host, groupIDs, interfaces, s.StatusCode(), proxyID))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create host %s: %w", s.Host, err)
	}
	if len(templateIDs) > 0 {
		if err := r.api.LinkTemplates(ctx, hostID, templateIDs, nil); err != nil {
			return Result{}, fmt.Errorf("failed to link templates to host %s: %w", s.Host, err)
		}
	}
	r.log.Info().Str("host", s.Host).Str("hostid", hostID).Msg("host created")
	return result, nil
}

func (r *Reconciler) update(ctx context.Context, s spec.HostSpec, live zabbix.Host, groups []zabbix.HostGroup, templateIDs []string, proxyID string) (Result, error) {
	liveGroups, err := r.api.GroupsByHostID(ctx, live.HostID)
	if err != nil {
		return Result{}, err
	}
	liveTemplateIDs, err := r.api.TemplateIDsByHostID(ctx, live.HostID)
	if err != nil {
		return Result{}, err
	}

	replace := s.ReplaceMode()
	gd := diffGroups(groups, liveGroups, replace)
	td := diffTemplates(templateIDs, liveTemplateIDs, replace)

	details := append([]string{}, gd.details...)
	details = append(details, td.details...)

	statusChanged := live.Status != s.StatusCode()
	if statusChanged {
		details = append(details,
			fmt.Sprintf("status: %s -> %s", statusName(live.Status), statusName(s.StatusCode())))
	}

	liveProxy := live.ProxyHostID
	if liveProxy == "" {
		liveProxy = zabbix.NoProxy
	}
	proxyChanged := liveProxy != proxyID
	if proxyChanged {
		details = append(details, fmt.Sprintf("proxy_hostid: %s -> %s", liveProxy, proxyID))
	}

	// An empty desired interface list leaves live interfaces unmanaged.
	id := interfaceDiff{}
	if len(s.Interfaces) > 0 {
		liveInterfaces, err := r.api.InterfacesByHostID(ctx, live.HostID)
		if err != nil {
			return Result{}, err
		}
		desired := make([]zabbix.HostInterface, 0, len(s.Interfaces))
		for _, iface := range s.Interfaces {
			desired = append(desired, iface.WireInterface())
		}
		id = diffInterfaces(desired, liveInterfaces, replace)
		details = append(details, id.details...)
	}

	if !gd.changed && !td.changed && !statusChanged && !proxyChanged && !id.changed {
		return unchanged(s.Host, fmt.Sprintf("host %s is up to date", s.Host)), nil
	}

	result := Result{
		Host:    s.Host,
		Action:  ActionUpdated,
		Changed: true,
		Check:   r.check,
		Message: fmt.Sprintf("updated host %s", s.Host),
		Details: details,
	}
	if r.check {
		result.Message = fmt.Sprintf("would update host %s", s.Host)
		return result, nil
	}

	if td.changed {
		if err := r.api.LinkTemplates(ctx, live.HostID, td.linkIDs, td.clearIDs); err != nil {
			return Result{}, fmt.Errorf("failed to link templates to host %s: %w", s.Host, err)
		}
	}
	if gd.changed || statusChanged || proxyChanged {
		params := zabbix.NewUpdateHostParams(live.HostID, gd.updateIDs, s.StatusCode(), proxyID)
		if err := r.api.UpdateHost(ctx, params); err != nil {
			return Result{}, fmt.Errorf("failed to update host %s: %w", s.Host, err)
		}
	}
	for _, iface := range id.updates {
		if err := r.api.UpdateInterface(ctx, iface); err != nil {
			return Result{}, fmt.Errorf("failed to update %s interface of host %s: %w", iface.Type, s.Host, err)
		}
	}
	for _, iface := range id.creates {
		iface.HostID = live.HostID
		if err := r.api.CreateInterface(ctx, iface); err != nil {
			return Result{}, fmt.Errorf("failed to create %s interface on host %s: %w", iface.Type, s.Host, err)
		}
	}
	if err := r.api.DeleteInterfaces(ctx, id.deleteIDs); err != nil {
		return Result{}, fmt.Errorf("failed to remove interfaces of host %s: %w", s.Host, err)
	}

	r.log.Info().Str("host", s.Host).Strs("details", details).Msg("host updated")
	return result, nil
}
