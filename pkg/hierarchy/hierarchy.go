// Package hierarchy resolves the ancestor chain of a scope and the set of
// object identities those ancestors define.
package hierarchy

import (
	"context"
	"fmt"

	"github.com/agentstation/addrename/pkg/inventory"
	"github.com/agentstation/addrename/pkg/logging"
)

// Resolver looks up scope ancestry through an inventory client.
type Resolver struct {
	client inventory.Client
}

// New returns a Resolver backed by client.
func New(client inventory.Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve returns scope with its Ancestors filled in. Firewalls never have
// ancestors.
func (r *Resolver) Resolve(ctx context.Context, scope inventory.ScopeRef) (inventory.ScopeRef, error) {
	scope.Ancestors = nil
	if scope.Kind != inventory.ScopeDeviceGroup {
		return scope, nil
	}

	chain, err := r.client.AncestorChain(ctx, scope)
	if err != nil {
		return scope, fmt.Errorf("resolve ancestors of %s: %w", scope, err)
	}
	scope.Ancestors = chain

	logging.FromContext(ctx).Debug().
		Int("ancestors", len(chain)).
		Msg("Resolved scope hierarchy")
	return scope, nil
}

// AncestorIdentities returns the union of identities defined in every
// ancestor of scope. When includeSelf is set the scope's own identities are
// added too. A scope without ancestors yields an empty set.
func (r *Resolver) AncestorIdentities(ctx context.Context, scope inventory.ScopeRef, includeSelf bool) (map[string]struct{}, error) {
	ids := make(map[string]struct{})
	if !scope.IsHierarchical() {
		return ids, nil
	}

	scopes := append([]inventory.ScopeRef(nil), scope.Ancestors...)
	if includeSelf {
		scopes = append(scopes, inventory.ScopeRef{Kind: scope.Kind, Name: scope.Name})
	}

	for _, s := range scopes {
		objs, err := r.client.List(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("list objects of %s: %w", s, err)
		}
		for _, o := range objs {
			ids[o.Identity] = struct{}{}
		}
	}
	return ids, nil
}
