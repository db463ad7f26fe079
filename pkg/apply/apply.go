// Package apply pushes a rename plan to the device through a bounded worker
// pool. Failures are recorded per entry and never stop the batch.
package apply

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/agentstation/addrename/pkg/constants"
	"github.com/agentstation/addrename/pkg/inventory"
	"github.com/agentstation/addrename/pkg/logging"
	"github.com/agentstation/addrename/pkg/reconcile"
	"github.com/agentstation/addrename/pkg/resultlog"
)

// State is the lifecycle state of one plan entry.
type State string

const (
	// Pending entries were not sent; dry runs leave every entry here.
	Pending State = "pending"
	// Skipped entries were removed by the override filter.
	Skipped State = "skipped"
	// Applied entries were renamed on the device.
	Applied State = "applied"
	// Failed entries were rejected by the device or not attempted.
	Failed State = "failed"
)

// ReasonDryRun marks entries left pending by a dry run.
const ReasonDryRun = "dry run"

// ReasonAlreadyTargeted marks entries whose object an earlier entry renames.
const ReasonAlreadyTargeted = "object already targeted by an earlier entry"

// Result is the outcome for one plan entry.
type Result struct {
	Entry  reconcile.PlanEntry `json:"entry" yaml:"entry"`
	State  State               `json:"state" yaml:"state"`
	Reason string              `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Options configures an Executor.
type Options struct {
	// Workers bounds concurrent rename calls.
	Workers int
	// DryRun suppresses every rename call.
	DryRun bool
}

// Executor applies plans against an inventory client.
type Executor struct {
	client inventory.Client
	opts   Options
	log    *resultlog.Log
}

// New returns an Executor. A non-positive worker count uses the default.
func New(client inventory.Client, opts Options, log *resultlog.Log) *Executor {
	if opts.Workers <= 0 {
		opts.Workers = constants.DefaultWorkers
	}
	return &Executor{client: client, opts: opts, log: log}
}

// Execute renames every entry and returns one result per entry in plan
// order. The first entry for an identity is dispatched; later ones fail
// without a call so each object is renamed at most once. Cancelling ctx
// after Execute starts does not abort dispatched or queued calls. Result
// log lines are written in plan order once every call has returned.
func (e *Executor) Execute(ctx context.Context, scope inventory.ScopeRef, entries []reconcile.PlanEntry) []Result {
	results := make([]Result, len(entries))
	logger := logging.FromContext(ctx)
	ctx = context.WithoutCancel(ctx)

	targeted := make(map[string]bool, len(entries))
	p := pool.New().WithMaxGoroutines(e.opts.Workers)

	for i, entry := range entries {
		results[i].Entry = entry

		if targeted[entry.Target.Identity] {
			results[i].State = Failed
			results[i].Reason = ReasonAlreadyTargeted
			continue
		}
		targeted[entry.Target.Identity] = true

		if e.opts.DryRun {
			results[i].State = Pending
			results[i].Reason = ReasonDryRun
			continue
		}

		p.Go(func() {
			err := e.client.Rename(ctx, scope, entry.Target.Identity, entry.NewName)
			if err != nil {
				results[i].State = Failed
				results[i].Reason = err.Error()
				logger.Warn().Err(err).
					Str("object", entry.Target.Identity).
					Str("new_name", entry.NewName).
					Msg("Rename failed")
				return
			}
			results[i].State = Applied
			logger.Debug().
				Str("object", entry.Target.Identity).
				Str("new_name", entry.NewName).
				Msg("Renamed")
		})
	}

	p.Wait()
	e.record(results)
	return results
}

func (e *Executor) record(results []Result) {
	for _, r := range results {
		identity, newName := r.Entry.Target.Identity, r.Entry.NewName
		switch r.State {
		case Applied:
			e.log.Applied(identity, newName)
		case Failed:
			e.log.Failed(identity, newName, r.Reason)
		case Pending:
			e.log.Pending(identity, newName)
		}
	}
}

// SkippedResults converts override-filtered entries into Skipped results.
func SkippedResults(entries []reconcile.PlanEntry) []Result {
	out := make([]Result, len(entries))
	for i, entry := range entries {
		out[i] = Result{Entry: entry, State: Skipped, Reason: reconcile.OverrideReason}
	}
	return out
}

// Counts tallies results by state.
func Counts(results []Result) map[State]int {
	counts := map[State]int{}
	for _, r := range results {
		counts[r.State]++
	}
	return counts
}
