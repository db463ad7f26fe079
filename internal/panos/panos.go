// Package panos talks to the PAN-OS XML API of a firewall or Panorama and
// implements inventory.Client on top of it.
package panos

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/agentstation/addrename/internal/transport"
	"github.com/agentstation/addrename/pkg/errors"
	"github.com/agentstation/addrename/pkg/inventory"
	"github.com/agentstation/addrename/pkg/logging"
)

const (
	apiPath = "/api/"

	xpathDeviceGroups   = "/config/devices/entry/device-group"
	xpathFirewallAddr   = "/config/devices/entry/vsys/entry/address"
	xpathVsysAddr       = "/config/devices/entry/vsys/entry[@name='%s']/address"
	xpathDeviceGroupAdr = "/config/devices/entry/device-group/entry[@name='%s']/address"

	cmdHierarchy = "<show><dg-hierarchy></dg-hierarchy></show>"

	// codeNoSuchNode is returned when a config xpath does not exist.
	codeNoSuchNode = "7"
)

// DeviceType is the kind of device behind a session.
type DeviceType string

const (
	// Firewall is a standalone firewall.
	Firewall DeviceType = "firewall"
	// Panorama is a Panorama management server.
	Panorama DeviceType = "panorama"
)

// Options configures a Session.
type Options struct {
	Timeout  time.Duration
	Insecure bool
	// Vsys limits firewall queries to one vsys. Empty means every vsys.
	Vsys string
	// KeyInHeader sends the API key in the X-PAN-KEY header instead of the
	// query string, keeping it out of device and proxy access logs.
	KeyInHeader bool
}

// keyHeader is the request header PAN-OS reads the API key from.
const keyHeader = "X-PAN-KEY"

// Session is an authenticated connection to one device.
type Session struct {
	client *transport.Client
	vsys   string
}

var _ inventory.Client = (*Session)(nil)

// NewSession creates an unauthenticated session. host may be a bare
// hostname or a full URL.
func NewSession(host string, opts Options) (*Session, error) {
	base := host
	if !strings.Contains(host, "://") {
		base = "https://" + host
	}
	var auth transport.Authenticator = &transport.QueryAuth{Param: "key"}
	if opts.KeyInHeader {
		auth = &transport.HeaderAuth{Header: keyHeader}
	}
	client, err := transport.New(base, auth, transport.Options{
		Timeout:  opts.Timeout,
		Insecure: opts.Insecure,
	})
	if err != nil {
		return nil, err
	}
	return &Session{client: client, vsys: opts.Vsys}, nil
}

// Host returns the device host.
func (s *Session) Host() string {
	return s.client.Host()
}

// SetAPIKey authenticates the session with an existing key.
func (s *Session) SetAPIKey(key string) {
	s.client.SetAPIKey(key)
}

// Keygen exchanges credentials for an API key and stores it on the session.
func (s *Session) Keygen(ctx context.Context, username, password string) (string, error) {
	resp, err := s.client.Get(ctx, apiPath, url.Values{
		"type":     {"keygen"},
		"user":     {username},
		"password": {password},
	})
	if err != nil {
		return "", err
	}

	var out keygenResult
	if err := decode("keygen", resp, &out); err != nil {
		var apiErr *errors.APIError
		if stderrors.As(err, &apiErr) {
			return "", &errors.AuthenticationError{Host: s.Host(), Message: "incorrect username or password", Err: err}
		}
		return "", err
	}
	if out.Key == "" {
		return "", &errors.AuthenticationError{Host: s.Host(), Message: "no key in keygen response"}
	}

	s.client.SetAPIKey(out.Key)
	logging.FromContext(ctx).Debug().Str("host", s.Host()).Msg("API key generated")
	return out.Key, nil
}

// DeviceGroups returns the device groups configured on the device in
// configuration order. Firewalls have none.
func (s *Session) DeviceGroups(ctx context.Context) ([]string, error) {
	var out deviceGroupResult
	if err := s.configGet(ctx, xpathDeviceGroups, &out); err != nil {
		var apiErr *errors.APIError
		if stderrors.As(err, &apiErr) && apiErr.Code == codeNoSuchNode {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(out.Entries))
	for _, e := range out.Entries {
		names = append(names, e.Name)
	}
	return names, nil
}

// DetectDeviceType reports Panorama when any device group exists and
// returns the device groups found.
func (s *Session) DetectDeviceType(ctx context.Context) (DeviceType, []string, error) {
	groups, err := s.DeviceGroups(ctx)
	if err != nil {
		return "", nil, err
	}
	if len(groups) > 0 {
		return Panorama, groups, nil
	}
	return Firewall, nil, nil
}

// List returns the address objects of scope in configuration order.
func (s *Session) List(ctx context.Context, scope inventory.ScopeRef) ([]inventory.LiveObject, error) {
	var out addressResult
	if err := s.configGet(ctx, s.addressXPath(scope), &out); err != nil {
		var apiErr *errors.APIError
		if stderrors.As(err, &apiErr) && apiErr.Code == codeNoSuchNode {
			return nil, nil
		}
		return nil, err
	}

	objs := make([]inventory.LiveObject, 0, len(out.Entries))
	for _, e := range out.Entries {
		value, kind := e.value()
		objs = append(objs, inventory.LiveObject{
			Identity: e.Name,
			Value:    value,
			Kind:     kind,
			Scope:    inventory.ScopeRef{Kind: scope.Kind, Name: scope.Name},
		})
	}
	return objs, nil
}

// Rename renames the object identity in scope to newName.
func (s *Session) Rename(ctx context.Context, scope inventory.ScopeRef, identity, newName string) error {
	xpath := fmt.Sprintf("%s/entry[@name='%s']", s.addressXPath(scope), identity)
	resp, err := s.client.Get(ctx, apiPath, url.Values{
		"type":    {"config"},
		"action":  {"rename"},
		"xpath":   {xpath},
		"newname": {newName},
	})
	if err != nil {
		return err
	}
	return decode("rename", resp, nil)
}

// AncestorChain returns the parent device groups of scope, nearest first.
// The shared location is never included.
func (s *Session) AncestorChain(ctx context.Context, scope inventory.ScopeRef) ([]inventory.ScopeRef, error) {
	if scope.Kind != inventory.ScopeDeviceGroup {
		return nil, nil
	}
	resp, err := s.client.Get(ctx, apiPath, url.Values{
		"type": {"op"},
		"cmd":  {cmdHierarchy},
	})
	if err != nil {
		return nil, err
	}

	var out hierarchyResult
	if err := decode("op", resp, &out); err != nil {
		return nil, err
	}

	path, ok := findPath(out.Roots, scope.Name, nil)
	if !ok {
		return nil, fmt.Errorf("device group %q not in hierarchy: %w", scope.Name, errors.ErrNotFound)
	}
	chain := make([]inventory.ScopeRef, 0, len(path))
	for i := len(path) - 1; i >= 0; i-- {
		chain = append(chain, inventory.DeviceGroup(path[i]))
	}
	return chain, nil
}

func (s *Session) configGet(ctx context.Context, xpath string, v any) error {
	resp, err := s.client.Get(ctx, apiPath, url.Values{
		"type":   {"config"},
		"action": {"get"},
		"xpath":  {xpath},
	})
	if err != nil {
		return err
	}
	return decode("get", resp, v)
}

func (s *Session) addressXPath(scope inventory.ScopeRef) string {
	if scope.Kind == inventory.ScopeDeviceGroup {
		return fmt.Sprintf(xpathDeviceGroupAdr, scope.Name)
	}
	if s.vsys != "" {
		return fmt.Sprintf(xpathVsysAddr, s.vsys)
	}
	return xpathFirewallAddr
}
