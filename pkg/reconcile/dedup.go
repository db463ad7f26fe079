package reconcile

import (
	"strconv"

	"github.com/agentstation/addrename/pkg/constants"
	"github.com/agentstation/addrename/pkg/inventory"
	"github.com/agentstation/addrename/pkg/resultlog"
)

// Deduplicator makes plan names unique against each other and against the
// live inventory. Its suffix counter starts at 1 and only ever grows, so a
// Deduplicator must not be shared between scope iterations.
type Deduplicator struct {
	claimed map[string]struct{}
	counter int
	log     *resultlog.Log
}

// NewDeduplicator claims every live name up front.
func NewDeduplicator(live []inventory.LiveObject, log *resultlog.Log) *Deduplicator {
	claimed := make(map[string]struct{}, len(live))
	for _, obj := range live {
		claimed[obj.Identity] = struct{}{}
	}
	return &Deduplicator{claimed: claimed, log: log}
}

// Resolve returns entries with colliding names rewritten to
// <name>_DUPLICATE_<n>. Entries keep their order.
func (d *Deduplicator) Resolve(entries []PlanEntry) []PlanEntry {
	if len(entries) == 0 {
		d.log.NoMatches()
		return nil
	}

	out := make([]PlanEntry, 0, len(entries))
	for _, e := range entries {
		if d.isClaimed(e.NewName) {
			renamed := d.next(e.NewName)
			d.log.Duplicate(e.NewName, e.OriginalValue, renamed)
			e.NewName = renamed
			e.Duplicate = true
		}
		d.claimed[e.NewName] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Counter returns the last suffix number handed out.
func (d *Deduplicator) Counter() int {
	return d.counter
}

func (d *Deduplicator) isClaimed(name string) bool {
	_, ok := d.claimed[name]
	return ok
}

func (d *Deduplicator) next(base string) string {
	for {
		d.counter++
		candidate := base + constants.DuplicateSuffix + strconv.Itoa(d.counter)
		if !d.isClaimed(candidate) {
			return candidate
		}
	}
}
