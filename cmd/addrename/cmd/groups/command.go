// Package groups implements the groups command.
package groups

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/addrename/internal/appcontext"
	"github.com/agentstation/addrename/internal/cmd/globals"
	"github.com/agentstation/addrename/internal/cmd/output"
	"github.com/agentstation/addrename/pkg/hierarchy"
	"github.com/agentstation/addrename/pkg/inventory"
	"github.com/agentstation/addrename/pkg/logging"
)

// Group is one device group with its ancestors, nearest first.
type Group struct {
	Name      string   `json:"name" yaml:"name"`
	Ancestors []string `json:"ancestors,omitempty" yaml:"ancestors,omitempty"`
}

// NewCommand creates the groups command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		GroupID: "device",
		Short:   "List Panorama device groups and their parents",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := globals.Bind(cmd, app.Viper()); err != nil {
				return err
			}
			settings, err := app.Settings()
			if err != nil {
				return err
			}

			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			client, err := app.Connect(ctx, settings)
			if err != nil {
				return err
			}

			names, err := client.DeviceGroups(ctx)
			if err != nil {
				return err
			}

			resolver := hierarchy.New(client)
			groups := make([]Group, 0, len(names))
			parents := make(map[string]string, len(names))
			for _, name := range names {
				scope, err := resolver.Resolve(ctx, inventory.DeviceGroup(name))
				if err != nil {
					return err
				}
				g := Group{Name: name}
				for _, a := range scope.Ancestors {
					g.Ancestors = append(g.Ancestors, a.Name)
				}
				if len(g.Ancestors) > 0 {
					parents[name] = g.Ancestors[0]
				}
				groups = append(groups, g)
			}

			format := output.DetectFormat(app.OutputFormat())
			if format.Structured() {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), groups)
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), output.GroupsTable(names, parents))
		},
	}
	globals.AddDeviceFlags(cmd)
	return cmd
}
