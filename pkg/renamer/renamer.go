// Package renamer runs one reconciliation pass for a single scope: fetch the
// live inventory, build the plan, ask for confirmation and push the renames.
package renamer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agentstation/addrename/pkg/apply"
	"github.com/agentstation/addrename/pkg/errors"
	"github.com/agentstation/addrename/pkg/hierarchy"
	"github.com/agentstation/addrename/pkg/inventory"
	"github.com/agentstation/addrename/pkg/logging"
	"github.com/agentstation/addrename/pkg/reconcile"
	"github.com/agentstation/addrename/pkg/resultlog"
)

// ErrAborted is returned when the confirmation gate declines the plan.
var ErrAborted = fmt.Errorf("run aborted before any rename: %w", errors.ErrCanceled)

// Runner reconciles desired renames against one inventory client.
type Runner struct {
	client   inventory.Client
	resolver *hierarchy.Resolver
	log      *resultlog.Log
	confirm  ConfirmFunc
	mode     reconcile.MatchMode
	policy   reconcile.OverridePolicy
	workers  int
	dryRun   bool
}

// New creates a Runner with value matching and the default override policy.
func New(client inventory.Client, opts ...Option) *Runner {
	r := &Runner{
		client:   client,
		resolver: hierarchy.New(client),
		mode:     reconcile.MatchByValue,
		policy:   reconcile.DefaultOverridePolicy(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report describes one completed scope iteration.
type Report struct {
	RunID    string             `json:"run_id" yaml:"run_id"`
	Scope    inventory.ScopeRef `json:"scope" yaml:"scope"`
	DryRun   bool               `json:"dry_run" yaml:"dry_run"`
	Plan     reconcile.Plan     `json:"plan" yaml:"plan"`
	Results  []apply.Result     `json:"results" yaml:"results"`
	Started  time.Time          `json:"started" yaml:"started"`
	Duration time.Duration      `json:"duration" yaml:"duration"`
}

// Count returns the number of results in state.
func (r *Report) Count(state apply.State) int {
	return apply.Counts(r.Results)[state]
}

// Run executes one scope iteration. Every phase before execution honors ctx;
// once renames are dispatched they run to completion. A declined
// confirmation returns ErrAborted together with the report built so far.
func (r *Runner) Run(ctx context.Context, scope inventory.ScopeRef, desired []inventory.DesiredRename) (*Report, error) {
	report := &Report{
		RunID:   uuid.NewString(),
		Scope:   scope,
		DryRun:  r.dryRun,
		Started: time.Now(),
	}
	ctx = logging.WithRunID(ctx, report.RunID)
	ctx = logging.WithScope(ctx, scope.String())
	logger := logging.FromContext(ctx)

	r.log.Header(report.RunID, scope, r.dryRun)

	resolved, err := r.resolver.Resolve(ctx, scope)
	if err != nil {
		return report, err
	}
	report.Scope = resolved

	live, err := r.client.List(ctx, resolved)
	if err != nil {
		return report, fmt.Errorf("list address objects of %s: %w", resolved, err)
	}
	logger.Info().Int("objects", len(live)).Int("desired", len(desired)).Msg("Fetched live inventory")

	excluded, err := r.resolver.AncestorIdentities(ctx, resolved, r.policy.IncludeCurrentScope)
	if err != nil {
		return report, err
	}

	report.Plan = reconcile.Build(reconcile.Input{
		Scope:    resolved,
		Desired:  desired,
		Live:     live,
		Mode:     r.mode,
		Excluded: excluded,
	}, r.log)
	logger.Info().
		Int("entries", len(report.Plan.Entries)).
		Int("skipped", len(report.Plan.Skipped)).
		Int("noops", len(report.Plan.NoOps)).
		Int("duplicates", report.Plan.Duplicates).
		Msg("Built rename plan")

	report.Results = apply.SkippedResults(report.Plan.Skipped)

	if !report.Plan.IsEmpty() && !r.dryRun && r.confirm != nil {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("%w: %w", errors.ErrCanceled, err)
		}
		ok, err := r.confirm(ctx, report.Plan)
		if err != nil {
			return report, err
		}
		if !ok {
			logger.Warn().Msg("Plan declined, nothing was renamed")
			return report, ErrAborted
		}
	}

	if !report.Plan.IsEmpty() {
		exec := apply.New(r.client, apply.Options{Workers: r.workers, DryRun: r.dryRun}, r.log)
		report.Results = append(exec.Execute(ctx, resolved, report.Plan.Entries), report.Results...)
	}

	report.Duration = time.Since(report.Started)
	r.log.Summary(
		report.Count(apply.Applied),
		report.Count(apply.Failed),
		report.Count(apply.Pending),
		report.Count(apply.Skipped),
		len(report.Plan.NoOps),
	)
	logger.Info().
		Int("applied", report.Count(apply.Applied)).
		Int("failed", report.Count(apply.Failed)).
		Dur("duration", report.Duration).
		Msg("Scope iteration finished")

	return report, r.log.Err()
}
