// Package memory provides an in-memory inventory.Client. It backs the
// reconciliation tests and lets the CLI exercise a plan without a device.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/agentstation/addrename/pkg/errors"
	"github.com/agentstation/addrename/pkg/inventory"
)

// Store is a thread-safe inventory keyed by scope.
type Store struct {
	mu        sync.RWMutex
	objects   map[string][]inventory.LiveObject
	parents   map[string]string
	failures  map[string]error
	renames   []RenameCall
	listCalls int
}

// RenameCall records one Rename invocation.
type RenameCall struct {
	Scope    string
	Identity string
	NewName  string
}

// New creates an empty store.
func New() *Store {
	return &Store{
		objects:  make(map[string][]inventory.LiveObject),
		parents:  make(map[string]string),
		failures: make(map[string]error),
	}
}

func key(scope inventory.ScopeRef) string {
	return string(scope.Kind) + "/" + scope.Name
}

// Add appends objects to a scope in order.
func (s *Store) Add(scope inventory.ScopeRef, objs ...inventory.LiveObject) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range objs {
		o.Scope = inventory.ScopeRef{Kind: scope.Kind, Name: scope.Name}
		s.objects[key(scope)] = append(s.objects[key(scope)], o)
	}
	return s
}

// SetParent declares parent as the parent device group of child.
func (s *Store) SetParent(child, parent string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parents[child] = parent
	return s
}

// FailRename makes every rename of identity fail with err.
func (s *Store) FailRename(identity string, err error) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[identity] = err
	return s
}

// List implements inventory.Client.
func (s *Store) List(_ context.Context, scope inventory.ScopeRef) ([]inventory.LiveObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	objs := s.objects[key(scope)]
	out := make([]inventory.LiveObject, len(objs))
	copy(out, objs)
	return out, nil
}

// Rename implements inventory.Client.
func (s *Store) Rename(_ context.Context, scope inventory.ScopeRef, identity, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renames = append(s.renames, RenameCall{Scope: scope.Name, Identity: identity, NewName: newName})

	if err, ok := s.failures[identity]; ok {
		return err
	}
	objs := s.objects[key(scope)]
	for i := range objs {
		if objs[i].Identity == newName {
			return &errors.APIError{Action: "rename", Message: fmt.Sprintf("%s already exists", newName)}
		}
	}
	for i := range objs {
		if objs[i].Identity == identity {
			objs[i].Identity = newName
			return nil
		}
	}
	return &errors.APIError{Action: "rename", Message: fmt.Sprintf("object %s does not exist", identity)}
}

// AncestorChain implements inventory.Client.
func (s *Store) AncestorChain(_ context.Context, scope inventory.ScopeRef) ([]inventory.ScopeRef, error) {
	if scope.Kind != inventory.ScopeDeviceGroup {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var chain []inventory.ScopeRef
	seen := map[string]bool{scope.Name: true}
	for p, ok := s.parents[scope.Name]; ok && p != ""; p, ok = s.parents[p] {
		if seen[p] {
			return nil, fmt.Errorf("device group hierarchy loops at %s", p)
		}
		seen[p] = true
		chain = append(chain, inventory.DeviceGroup(p))
	}
	return chain, nil
}

// Renames returns the rename calls received so far.
func (s *Store) Renames() []RenameCall {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]RenameCall, len(s.renames))
	copy(out, s.renames)
	return out
}

// ListCalls returns how many times List was called.
func (s *Store) ListCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listCalls
}

var _ inventory.Client = (*Store)(nil)
