package renamer

import (
	"context"

	"github.com/agentstation/addrename/pkg/reconcile"
	"github.com/agentstation/addrename/pkg/resultlog"
)

// ConfirmFunc is asked before the plan is pushed. Returning false aborts the
// run without any rename call.
type ConfirmFunc func(ctx context.Context, plan reconcile.Plan) (bool, error)

// Option is a function that configures a Runner
type Option func(*Runner)

// WithMatchMode sets the field desired entries are matched on
func WithMatchMode(mode reconcile.MatchMode) Option {
	return func(r *Runner) {
		r.mode = mode
	}
}

// WithOverridePolicy sets which identities the override filter excludes
func WithOverridePolicy(policy reconcile.OverridePolicy) Option {
	return func(r *Runner) {
		r.policy = policy
	}
}

// WithWorkers bounds concurrent rename calls
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.workers = n
	}
}

// WithDryRun builds and reports the plan without renaming anything
func WithDryRun(enabled bool) Option {
	return func(r *Runner) {
		r.dryRun = enabled
	}
}

// WithConfirm installs the gate consulted before execution
func WithConfirm(fn ConfirmFunc) Option {
	return func(r *Runner) {
		r.confirm = fn
	}
}

// WithResultLog sets the log every phase writes to
func WithResultLog(log *resultlog.Log) Option {
	return func(r *Runner) {
		r.log = log
	}
}
