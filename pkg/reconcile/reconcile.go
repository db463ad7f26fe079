// Package reconcile turns a desired-rename list and a live inventory snapshot
// into a rename plan. Matching, duplicate resolution and override filtering
// are pure functions of their inputs; the only side effect is the result log.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/agentstation/addrename/pkg/errors"
	"github.com/agentstation/addrename/pkg/inventory"
)

// MatchMode selects which live attribute a desired match key is compared with.
type MatchMode string

const (
	// MatchByValue compares the match key with the object's address value.
	MatchByValue MatchMode = "value"
	// MatchByName compares the match key with the object's current name.
	MatchByName MatchMode = "name"
)

// ParseMatchMode converts s to a MatchMode.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchByValue:
		return MatchByValue, nil
	case MatchByName:
		return MatchByName, nil
	default:
		return "", errors.NewValidationError("match_by", fmt.Sprintf("unknown match mode %q (want value or name)", s))
	}
}

// key returns the attribute of obj compared in this mode.
func (m MatchMode) key(obj inventory.LiveObject) string {
	if m == MatchByName {
		return obj.Identity
	}
	return obj.Value
}

// PlanEntry is one pending rename.
type PlanEntry struct {
	Target        inventory.LiveObject `json:"target" yaml:"target"`
	NewName       string               `json:"new_name" yaml:"new_name"`
	OriginalValue string               `json:"original_value" yaml:"original_value"`
	// Duplicate is set when NewName carries a collision suffix.
	Duplicate bool `json:"duplicate,omitempty" yaml:"duplicate,omitempty"`
}

// String returns "identity -> new name".
func (e PlanEntry) String() string {
	return fmt.Sprintf("%s -> %s", e.Target.Identity, e.NewName)
}
