package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/addrename/pkg/apply"
	"github.com/agentstation/addrename/pkg/inventory"
	"github.com/agentstation/addrename/pkg/reconcile"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"wide", FormatWide, false},
		{"", "", false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestTableFormatterObjects(t *testing.T) {
	objs := []inventory.LiveObject{
		{Identity: "web1", Value: "10.0.0.1", Kind: "ip-netmask", Scope: inventory.Firewall()},
	}
	var buf bytes.Buffer

	require.NoError(t, NewFormatter(FormatWide).Format(&buf, ObjectsTable(objs, true)))
	out := buf.String()
	assert.Contains(t, out, "web1")
	assert.Contains(t, out, "10.0.0.1")
	assert.Contains(t, out, "ip-netmask")
}

func TestJSONAndYAMLFormatters(t *testing.T) {
	obj := inventory.LiveObject{Identity: "web1", Value: "10.0.0.1"}

	var js bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&js, obj))
	assert.Contains(t, js.String(), `"name": "web1"`)

	var ym bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&ym, obj))
	assert.Contains(t, ym.String(), "name: web1")
}

func TestPlanAndResultsTables(t *testing.T) {
	plan := reconcile.Plan{
		Entries: []reconcile.PlanEntry{
			{Target: inventory.LiveObject{Identity: "A"}, NewName: "C", OriginalValue: "10.0.0.1"},
			{Target: inventory.LiveObject{Identity: "B"}, NewName: "D_DUPLICATE_1", Duplicate: true},
		},
		Skipped: []reconcile.PlanEntry{{Target: inventory.LiveObject{Identity: "S"}, NewName: "T"}},
	}

	data := PlanTable(plan)
	require.Len(t, data.Rows, 3)
	assert.Equal(t, "yes", data.Rows[1][3])
	assert.Equal(t, reconcile.OverrideReason, data.Rows[2][4])

	results := ResultsTable([]apply.Result{{Entry: plan.Entries[0], State: apply.Applied}})
	assert.Equal(t, []string{"A", "C", "applied", ""}, results.Rows[0])
	assert.Equal(t, "1 applied, 0 failed, 0 skipped, 0 pending", results.Footer)

	groups := GroupsTable([]string{"HQ", "Branch"}, map[string]string{"Branch": "HQ"})
	assert.Equal(t, []string{"1", "HQ", "shared"}, groups.Rows[0])
	assert.Equal(t, []string{"2", "Branch", "HQ"}, groups.Rows[1])
}

func TestTableFormatterRejectsRawValues(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(FormatTable).Format(&buf, []inventory.LiveObject{{Identity: "web1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-o json")
}

func TestTableFormatterShortensUnlessWide(t *testing.T) {
	long := strings.Repeat("a", MaxCellWidth+10)
	data := Data{Headers: []string{"name"}, Rows: [][]string{{long}}, Footer: "1 object(s)"}

	var narrow bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&narrow, data))
	assert.NotContains(t, narrow.String(), long)
	assert.Contains(t, narrow.String(), strings.Repeat("a", MaxCellWidth-3)+"...")
	assert.Contains(t, narrow.String(), "NAME")
	assert.Contains(t, narrow.String(), "1 object(s)")

	var wide bytes.Buffer
	require.NoError(t, NewFormatter(FormatWide).Format(&wide, &data))
	assert.Contains(t, wide.String(), long)
}

func TestFormatStructured(t *testing.T) {
	assert.True(t, FormatJSON.Structured())
	assert.True(t, FormatYAML.Structured())
	assert.False(t, FormatTable.Structured())
	assert.False(t, FormatWide.Structured())
}
