package output

import (
	"fmt"
	"strconv"

	"github.com/agentstation/addrename/pkg/apply"
	"github.com/agentstation/addrename/pkg/inventory"
	"github.com/agentstation/addrename/pkg/reconcile"
)

// ObjectsTable renders live address objects.
func ObjectsTable(objs []inventory.LiveObject, wide bool) Data {
	headers := []string{"NAME", "VALUE"}
	if wide {
		headers = append(headers, "TYPE", "SCOPE")
	}
	rows := make([][]string, 0, len(objs))
	for _, o := range objs {
		row := []string{o.Identity, o.Value}
		if wide {
			row = append(row, o.Kind, o.Scope.String())
		}
		rows = append(rows, row)
	}
	return Data{Headers: headers, Rows: rows, Footer: fmt.Sprintf("%d object(s)", len(objs))}
}

// GroupsTable renders a numbered device-group list with each group's
// parent. Groups without a parent sit directly under shared.
func GroupsTable(groups []string, parents map[string]string) Data {
	rows := make([][]string, 0, len(groups))
	for i, g := range groups {
		parent := parents[g]
		if parent == "" {
			parent = "shared"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), g, parent})
	}
	return Data{
		Headers:         []string{"#", "DEVICE GROUP", "PARENT"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft},
	}
}

// PlanTable renders the entries of a rename plan, skipped entries last.
func PlanTable(plan reconcile.Plan) Data {
	rows := make([][]string, 0, len(plan.Entries)+len(plan.Skipped))
	for _, e := range plan.Entries {
		rows = append(rows, []string{e.Target.Identity, e.NewName, e.OriginalValue, duplicateMark(e), ""})
	}
	for _, e := range plan.Skipped {
		rows = append(rows, []string{e.Target.Identity, e.NewName, e.OriginalValue, duplicateMark(e), reconcile.OverrideReason})
	}
	return Data{
		Headers: []string{"CURRENT NAME", "NEW NAME", "VALUE", "DUPLICATE", "SKIPPED"},
		Rows:    rows,
	}
}

// ResultsTable renders executor results.
func ResultsTable(results []apply.Result) Data {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Entry.Target.Identity, r.Entry.NewName, string(r.State), r.Reason})
	}
	counts := apply.Counts(results)
	return Data{
		Headers: []string{"CURRENT NAME", "NEW NAME", "STATE", "REASON"},
		Rows:    rows,
		Footer: fmt.Sprintf("%d applied, %d failed, %d skipped, %d pending",
			counts[apply.Applied], counts[apply.Failed], counts[apply.Skipped], counts[apply.Pending]),
	}
}

func duplicateMark(e reconcile.PlanEntry) string {
	if e.Duplicate {
		return "yes"
	}
	return ""
}
