// Package list implements the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/addrename/internal/appcontext"
	"github.com/agentstation/addrename/internal/cmd/globals"
	"github.com/agentstation/addrename/internal/cmd/output"
	"github.com/agentstation/addrename/pkg/inventory"
	"github.com/agentstation/addrename/pkg/logging"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "device",
		Short:   "List the address objects of a scope",
		Long: `List prints the address objects of the firewall, or of the device group
given with --device-group on Panorama, in configuration order.`,
		Example: `  addrename list --host fw.example.com
  addrename list --host panorama.example.com -g Branch -o wide`,
		Args: cobra.NoArgs,
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

			scope := inventory.Firewall()
			if settings.DeviceGroup != "" {
				scope = inventory.DeviceGroup(settings.DeviceGroup)
			}
			objs, err := client.List(ctx, scope)
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			if format.Structured() {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), objs)
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), output.ObjectsTable(objs, format == output.FormatWide))
		},
	}
	globals.AddDeviceFlags(cmd)
	return cmd
}
