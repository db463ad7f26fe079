package reconcile

import (
	"github.com/agentstation/addrename/pkg/inventory"
	"github.com/agentstation/addrename/pkg/resultlog"
)

// Plan is the validated rename plan for one scope.
type Plan struct {
	Scope inventory.ScopeRef `json:"scope" yaml:"scope"`
	// Entries reach the executor.
	Entries []PlanEntry `json:"entries" yaml:"entries"`
	// Skipped were removed by the override filter.
	Skipped []PlanEntry `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	// NoOps already carry their desired name.
	NoOps []inventory.LiveObject `json:"noops,omitempty" yaml:"noops,omitempty"`
	// Duplicates counts entries renamed by the deduplicator.
	Duplicates int `json:"duplicates" yaml:"duplicates"`
}

// Input bundles everything Build needs for one scope.
type Input struct {
	Scope   inventory.ScopeRef
	Desired []inventory.DesiredRename
	Live    []inventory.LiveObject
	Mode    MatchMode
	// Excluded holds the identities the override filter removes.
	Excluded map[string]struct{}
}

// Build runs the Matcher, a fresh Deduplicator, and the override filter.
func Build(in Input, log *resultlog.Log) Plan {
	matched := Match(in.Desired, in.Live, in.Mode, log)

	dedup := NewDeduplicator(in.Live, log)
	entries := dedup.Resolve(matched.Entries)

	kept, skipped := FilterOverrides(in.Scope, entries, in.Excluded, log)

	plan := Plan{
		Scope:   in.Scope,
		Entries: kept,
		Skipped: skipped,
		NoOps:   matched.NoOps,
	}
	for _, e := range entries {
		if e.Duplicate {
			plan.Duplicates++
		}
	}
	return plan
}

// IsEmpty reports whether nothing is left to rename.
func (p Plan) IsEmpty() bool {
	return len(p.Entries) == 0
}
