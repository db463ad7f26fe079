package hierarchy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/addrename/pkg/inventory"
	"github.com/agentstation/addrename/pkg/inventory/memory"
)

func newStore() *memory.Store {
	return memory.New().
		SetParent("branch", "region").
		SetParent("region", "global").
		Add(inventory.DeviceGroup("global"), inventory.LiveObject{Identity: "dns", Value: "10.0.0.53"}).
		Add(inventory.DeviceGroup("region"), inventory.LiveObject{Identity: "ntp", Value: "10.0.0.123"}).
		Add(inventory.DeviceGroup("branch"), inventory.LiveObject{Identity: "web", Value: "10.0.0.80"})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	r := New(newStore())

	scope, err := r.Resolve(ctx, inventory.DeviceGroup("branch"))
	require.NoError(t, err)
	assert.Equal(t, []inventory.ScopeRef{inventory.DeviceGroup("region"), inventory.DeviceGroup("global")}, scope.Ancestors)

	fw, err := r.Resolve(ctx, inventory.Firewall())
	require.NoError(t, err)
	assert.False(t, fw.IsHierarchical())
}

func TestAncestorIdentities(t *testing.T) {
	ctx := context.Background()
	r := New(newStore())

	scope, err := r.Resolve(ctx, inventory.DeviceGroup("branch"))
	require.NoError(t, err)

	ids, err := r.AncestorIdentities(ctx, scope, false)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"dns": {}, "ntp": {}}, ids)

	ids, err = r.AncestorIdentities(ctx, scope, true)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"dns": {}, "ntp": {}, "web": {}}, ids)

	top, err := r.Resolve(ctx, inventory.DeviceGroup("global"))
	require.NoError(t, err)
	ids, err = r.AncestorIdentities(ctx, top, true)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
