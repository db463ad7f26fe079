// Package resultlog writes the human-readable per-run result log. One log is
// opened per scope iteration in truncate mode. Writes are serialized so the
// rename workers can append concurrently.
package resultlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/agentstation/addrename/pkg/constants"
	"github.com/agentstation/addrename/pkg/errors"
	"github.com/agentstation/addrename/pkg/inventory"
)

// Log is an append-only, concurrency-safe result log. A nil *Log discards
// everything.
type Log struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	path   string
	err    error
}

// New returns a Log writing to w.
func New(w io.Writer) *Log {
	return &Log{w: w}
}

// Open truncates path and returns a Log writing to it and to every extra writer.
func Open(path string, extra ...io.Writer) (*Log, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	writers := append([]io.Writer{f}, extra...)
	return &Log{w: io.MultiWriter(writers...), closer: f, path: path}, nil
}

// Header writes the run banner.
func (l *Log) Header(runID string, scope inventory.ScopeRef, dryRun bool) {
	mode := "live"
	if dryRun {
		mode = "dry run"
	}
	l.printf("Address object rename run %s\nScope: %s\nMode: %s\nStarted: %s\n\n",
		runID, scope, mode, time.Now().Format(time.RFC3339))
}

// Match records a live object that will be renamed.
func (l *Log) Match(obj inventory.LiveObject, newName string) {
	l.printf("***** Match found: PAN object: %s: %s\n                -- Changed to: %s: %s\n",
		obj.Identity, obj.Value, newName, obj.Value)
}

// NoOp records a live object that already carries the desired name.
func (l *Log) NoOp(obj inventory.LiveObject) {
	l.printf("***** Match found: PAN object: %s: %s\n   -- No change required, since the name already matches the list entry\n",
		obj.Identity, obj.Value)
}

// Duplicate records a name collision and the name picked instead.
func (l *Log) Duplicate(name, value, renamed string) {
	l.printf(" ^^-- There was a duplicate - %s: %s - Already in use...\n      The duplicate object will be named %s\n",
		name, value, renamed)
}

// Skip records a plan entry dropped before execution.
func (l *Log) Skip(identity, newName, reason string) {
	l.printf("----- Skipped: %s -> %s (%s)\n", identity, newName, reason)
}

// NoMatches records that nothing needs renaming.
func (l *Log) NoMatches() {
	l.printf("There were no matches between the list provided and the set of address objects on the Panorama/firewall, or there were no changes required\n")
}

// Applied records a successful rename.
func (l *Log) Applied(identity, newName string) {
	l.printf("API push for %s change to %s was successful\n", identity, newName)
}

// Failed records a rename the device rejected.
func (l *Log) Failed(identity, newName, reason string) {
	l.printf("***** API push error for %s change to %s ***** %s\n", identity, newName, reason)
}

// Pending records a rename suppressed by dry run.
func (l *Log) Pending(identity, newName string) {
	l.printf("Dry run: %s would change to %s\n", identity, newName)
}

// Summary writes the closing counts.
func (l *Log) Summary(applied, failed, pending, skipped, noop int) {
	l.printf("\nSummary: %d applied, %d failed, %d pending, %d skipped, %d already named\n",
		applied, failed, pending, skipped, noop)
}

// Err returns the first write error, if any.
func (l *Log) Err() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close closes the underlying file, if Open created one.
func (l *Log) Close() error {
	if l == nil || l.closer == nil {
		return l.Err()
	}
	if err := l.closer.Close(); err != nil {
		return errors.WrapIO("close", l.path, err)
	}
	return l.Err()
}

func (l *Log) printf(format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := fmt.Fprintf(l.w, format, args...); err != nil && l.err == nil {
		l.err = errors.WrapIO("write", "result log", err)
	}
}
