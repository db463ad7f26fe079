// Package validate implements the validate command.
package validate

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/addrename/internal/appcontext"
	"github.com/agentstation/addrename/internal/cmd/output"
	"github.com/agentstation/addrename/pkg/desired"
)

// NewCommand creates the validate command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "validate <list.csv>",
		GroupID: "core",
		Short:   "Check a rename list without contacting a device",
		Long: `Validate parses a CSV list of new_name,match_key records and reports every
line that does not have exactly two fields or whose new name is not a valid
address object name.`,
		Example: `  addrename validate objects.csv
  addrename validate objects.csv -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := desired.Load(args[0])
			if err != nil {
				return err
			}
			app.Logger().Debug().Int("records", len(list)).Str("file", args[0]).Msg("List is valid")

			format := output.DetectFormat(app.OutputFormat())
			if format.Structured() {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), list)
			}

			rows := make([][]string, 0, len(list))
			for _, d := range list {
				rows = append(rows, []string{strconv.Itoa(d.Line), d.NewName, d.MatchKey})
			}
			data := output.Data{
				Headers:         []string{"LINE", "NEW NAME", "MATCH KEY"},
				Rows:            rows,
				ColumnAlignment: []output.Align{output.AlignRight},
				Footer:          fmt.Sprintf("%d record(s) OK", len(list)),
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}
}
