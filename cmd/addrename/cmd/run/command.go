// Package run implements the run command: the interactive rename session.
package run

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/addrename/internal/appcontext"
	"github.com/agentstation/addrename/internal/cmd/globals"
	"github.com/agentstation/addrename/internal/cmd/output"
	"github.com/agentstation/addrename/internal/config"
	"github.com/agentstation/addrename/internal/panos"
	"github.com/agentstation/addrename/pkg/desired"
	"github.com/agentstation/addrename/pkg/inventory"
	"github.com/agentstation/addrename/pkg/logging"
	"github.com/agentstation/addrename/pkg/renamer"
	"github.com/agentstation/addrename/pkg/resultlog"
)

// NewCommand creates the run command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run <list.csv>",
		GroupID: "core",
		Short:   "Rename address objects to the names in a CSV list",
		Long: `Run connects to a firewall or Panorama, matches the objects of the chosen
scope against the list and renames them after confirmation.

On Panorama a device group is chosen from a menu, and after each group you
can continue with another group and, optionally, another list.

Every scope iteration truncates and rewrites the result log.`,
		Example: `  addrename run objects.csv
  addrename run objects.csv --host panorama.example.com --device-group Branch --yes
  addrename run objects.csv --dry-run -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := globals.Bind(cmd, app.Viper()); err != nil {
				return err
			}
			return execute(cmd, app, args[0])
		},
	}
	globals.AddDeviceFlags(cmd)
	globals.AddRunFlags(cmd)
	return cmd
}

// session carries the state of one interactive run across scope iterations.
type session struct {
	app      appcontext.Interface
	cmd      *cobra.Command
	settings *config.Settings
	client   *panos.Session
	desired  []inventory.DesiredRename
	format   output.Format
}

func execute(cmd *cobra.Command, app appcontext.Interface, listPath string) error {
	// The whole list is validated before anything touches the device.
	list, err := desired.Load(listPath)
	if err != nil {
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

	s := &session{
		app:      app,
		cmd:      cmd,
		settings: settings,
		client:   client,
		desired:  list,
		format:   output.DetectFormat(app.OutputFormat()),
	}

	kind, groups, err := client.DetectDeviceType(ctx)
	if err != nil {
		return err
	}

	if kind == panos.Firewall {
		s.printf("\n\n...Auto-detected device type to be a firewall...\n\n")
		if err := s.iterate(inventory.Firewall()); err != nil {
			return err
		}
		s.goodbye()
		return nil
	}

	s.printf("\n\n...Auto-detected device type to be Panorama...\n\n")
	if settings.DeviceGroup != "" {
		if err := s.iterate(inventory.DeviceGroup(settings.DeviceGroup)); err != nil {
			return err
		}
		s.goodbye()
		return nil
	}

	return s.loop(groups)
}

// loop runs one iteration per chosen device group until the user stops.
func (s *session) loop(groups []string) error {
	p := s.app.Prompter()
	for {
		dg, err := p.ChooseDeviceGroup(groups)
		if err != nil {
			return err
		}
		if err := s.iterate(inventory.DeviceGroup(dg)); err != nil {
			return err
		}

		again, err := p.Another()
		if err != nil {
			return err
		}
		if !again {
			break
		}

		path, err := p.ListPath()
		if err != nil {
			return err
		}
		if path != "" {
			list, err := desired.Load(path)
			if err != nil {
				return err
			}
			s.desired = list
		}
	}
	s.goodbye()
	return nil
}

// iterate runs the renamer for one scope with a freshly truncated result log.
func (s *session) iterate(scope inventory.ScopeRef) error {
	ctx := logging.WithLogger(s.cmd.Context(), s.app.Logger())

	var tee []io.Writer
	if !s.structured() {
		tee = append(tee, s.cmd.OutOrStdout())
	}
	log, err := resultlog.Open(s.settings.ResultLog, tee...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := log.Close(); cerr != nil {
			s.app.Logger().Warn().Err(cerr).Msg("Closing result log failed")
		}
	}()

	mode, err := s.settings.MatchMode()
	if err != nil {
		return err
	}

	opts := []renamer.Option{
		renamer.WithResultLog(log),
		renamer.WithMatchMode(mode),
		renamer.WithOverridePolicy(s.settings.Override),
		renamer.WithWorkers(s.settings.Workers),
		renamer.WithDryRun(s.settings.DryRun),
	}
	if !s.settings.Yes {
		opts = append(opts, renamer.WithConfirm(s.app.Prompter().ConfirmPush))
	}

	report, err := renamer.New(s.client, opts...).Run(ctx, scope, s.desired)
	if stderrors.Is(err, renamer.ErrAborted) {
		s.printf("\nNothing was pushed for %s.\n", scope)
		return nil
	}
	if err != nil {
		return err
	}

	switch {
	case s.structured():
		return output.NewFormatter(s.format).Format(s.cmd.OutOrStdout(), report)
	case s.format == output.FormatWide:
		return s.printTables(report)
	}
	return nil
}

// printTables writes the plan and results of one iteration as tables.
func (s *session) printTables(report *renamer.Report) error {
	f := output.NewFormatter(output.FormatWide)
	s.printf("\nPlan for %s:\n", report.Scope)
	if err := f.Format(s.cmd.OutOrStdout(), output.PlanTable(report.Plan)); err != nil {
		return err
	}
	s.printf("\nResults:\n")
	return f.Format(s.cmd.OutOrStdout(), output.ResultsTable(report.Results))
}

// structured reports whether stdout carries machine-readable output only.
func (s *session) structured() bool {
	return s.format.Structured()
}

func (s *session) goodbye() {
	if !s.structured() {
		s.app.Prompter().Goodbye()
	}
}

func (s *session) printf(format string, args ...any) {
	if s.structured() {
		return
	}
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
