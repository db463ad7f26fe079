// Package inventory defines the address-object model shared by the
// reconciliation core and the device clients, and the contract a device
// client has to satisfy.
package inventory

import (
	"context"
	"fmt"
)

// ScopeKind tells a firewall vsys apart from a Panorama device group.
type ScopeKind string

const (
	// ScopeFirewall is the address table of a standalone firewall.
	ScopeFirewall ScopeKind = "firewall"
	// ScopeDeviceGroup is a device group on Panorama.
	ScopeDeviceGroup ScopeKind = "device-group"
)

// ScopeRef identifies where address objects live.
type ScopeRef struct {
	Kind ScopeKind `json:"kind" yaml:"kind"`
	Name string    `json:"name,omitempty" yaml:"name,omitempty"`
	// Ancestors is ordered nearest parent first. Empty for firewalls and
	// top-level device groups.
	Ancestors []ScopeRef `json:"ancestors,omitempty" yaml:"ancestors,omitempty"`
}

// Firewall returns the scope of a standalone firewall.
func Firewall() ScopeRef {
	return ScopeRef{Kind: ScopeFirewall}
}

// DeviceGroup returns the scope of the named device group.
func DeviceGroup(name string) ScopeRef {
	return ScopeRef{Kind: ScopeDeviceGroup, Name: name}
}

// IsHierarchical reports whether the scope inherits from other scopes.
func (s ScopeRef) IsHierarchical() bool {
	return len(s.Ancestors) > 0
}

// String returns a human-readable scope label.
func (s ScopeRef) String() string {
	if s.Kind == ScopeDeviceGroup {
		return fmt.Sprintf("device-group %s", s.Name)
	}
	if s.Name != "" {
		return fmt.Sprintf("firewall %s", s.Name)
	}
	return "firewall"
}

// LiveObject is an address object as currently stored on the device.
type LiveObject struct {
	Identity string   `json:"name" yaml:"name"`
	Value    string   `json:"value" yaml:"value"`
	Kind     string   `json:"type,omitempty" yaml:"type,omitempty"`
	Scope    ScopeRef `json:"-" yaml:"-"`
}

// DesiredRename is one requested rename loaded from user input.
type DesiredRename struct {
	NewName  string `json:"new_name" yaml:"new_name"`
	MatchKey string `json:"match_key" yaml:"match_key"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
}

// Client lists and renames address objects on a device.
//
// List must reflect the state of the device at call time. Rename targets the
// object's exact current identity in the given scope.
type Client interface {
	List(ctx context.Context, scope ScopeRef) ([]LiveObject, error)
	Rename(ctx context.Context, scope ScopeRef, identity, newName string) error
	AncestorChain(ctx context.Context, scope ScopeRef) ([]ScopeRef, error)
}

// Names returns the identities of objs in order.
func Names(objs []LiveObject) []string {
	names := make([]string, len(objs))
	for i, o := range objs {
		names[i] = o.Identity
	}
	return names
}
