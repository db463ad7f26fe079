package reconcile

import (
	"github.com/agentstation/addrename/pkg/inventory"
	"github.com/agentstation/addrename/pkg/resultlog"
)

// MatchResult is the Matcher output.
type MatchResult struct {
	// Entries are the candidate renames in desired-list order.
	Entries []PlanEntry
	// NoOps are live objects that already carry the desired name.
	NoOps []inventory.LiveObject
}

// Match pairs every desired rename with the first live object whose key
// equals the desired match key. Later live objects with the same key are
// ignored. A match whose current name already equals the desired name is a
// no-op and is not planned.
func Match(desired []inventory.DesiredRename, live []inventory.LiveObject, mode MatchMode, log *resultlog.Log) MatchResult {
	var res MatchResult
	for _, d := range desired {
		obj, ok := firstMatch(live, d.MatchKey, mode)
		if !ok {
			continue
		}
		if obj.Identity == d.NewName {
			log.NoOp(obj)
			res.NoOps = append(res.NoOps, obj)
			continue
		}
		log.Match(obj, d.NewName)
		res.Entries = append(res.Entries, PlanEntry{
			Target:        obj,
			NewName:       d.NewName,
			OriginalValue: obj.Value,
		})
	}
	return res
}

func firstMatch(live []inventory.LiveObject, matchKey string, mode MatchMode) (inventory.LiveObject, bool) {
	for _, obj := range live {
		k := mode.key(obj)
		if k == "" {
			continue
		}
		if k == matchKey {
			return obj, true
		}
	}
	return inventory.LiveObject{}, false
}
