package reconcile

import (
	"github.com/agentstation/addrename/pkg/inventory"
	"github.com/agentstation/addrename/pkg/resultlog"
)

// OverrideReason is the skip reason recorded for filtered entries.
const OverrideReason = "object is defined in an ancestor scope"

// OverridePolicy controls which identities the override filter excludes.
type OverridePolicy struct {
	// IncludeCurrentScope adds the target scope's own identities to the
	// excluded set alongside every ancestor's.
	IncludeCurrentScope bool `json:"include_current_scope" yaml:"include_current_scope" mapstructure:"include_current_scope"`
}

// DefaultOverridePolicy keeps the current scope in the excluded set.
func DefaultOverridePolicy() OverridePolicy {
	return OverridePolicy{IncludeCurrentScope: true}
}

// FilterOverrides drops entries whose target identity is in excluded. It is
// a no-op for scopes without ancestors.
func FilterOverrides(scope inventory.ScopeRef, entries []PlanEntry, excluded map[string]struct{}, log *resultlog.Log) (kept, skipped []PlanEntry) {
	if !scope.IsHierarchical() {
		return entries, nil
	}
	for _, e := range entries {
		if _, ok := excluded[e.Target.Identity]; ok {
			log.Skip(e.Target.Identity, e.NewName, OverrideReason)
			skipped = append(skipped, e)
			continue
		}
		kept = append(kept, e)
	}
	return kept, skipped
}
