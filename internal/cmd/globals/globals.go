// Package globals provides the flag sets shared by the device commands and
// binds them to Viper keys so flags win over environment and config file.
package globals

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// binding ties one flag to its Viper key.
type binding struct {
	flag string
	key  string
}

var deviceBindings = []binding{
	{"host", "host"},
	{"username", "username"},
	{"api-key", "api_key"},
	{"insecure", "insecure"},
	{"timeout", "timeout"},
	{"vsys", "vsys"},
	{"device-group", "device_group"},
	{"key-header", "key_header"},
}

var runBindings = []binding{
	{"workers", "workers"},
	{"match-by", "match_by"},
	{"dry-run", "dry_run"},
	{"yes", "yes"},
	{"include-current-scope", "override.include_current_scope"},
	{"result-log", "result_log"},
}

// AddDeviceFlags adds the connection flags to cmd.
func AddDeviceFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("host", "", "Panorama or firewall IP/FQDN (prompted when empty)")
	f.String("username", "", "admin user name (prompted when empty)")
	f.String("api-key", "", "existing API key, skips keygen")
	f.Bool("insecure", false, "skip TLS certificate verification")
	f.Duration("timeout", 0, "per-request timeout (default 30s)")
	f.String("vsys", "", "limit firewall queries to one vsys")
	f.StringP("device-group", "g", "", "device group to use instead of the menu")
	f.Bool("key-header", false, "send the API key in the X-PAN-KEY header instead of the query string")
}

// AddRunFlags adds the reconciliation flags to cmd.
func AddRunFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("workers", 0, "concurrent rename calls (default 16)")
	f.String("match-by", "", "match desired entries on: value, name")
	f.Bool("dry-run", false, "build and report the plan without renaming")
	f.BoolP("yes", "y", false, "push without the confirmation prompt")
	f.Bool("include-current-scope", true, "exclude the device group's own objects too when it has ancestors")
	f.String("result-log", "", "result log path (default address_object_rename_results.txt)")
}

// Bind binds every changed flag of cmd that has a known key to v. Flags left
// at their zero value do not shadow environment or file settings.
func Bind(cmd *cobra.Command, v *viper.Viper) error {
	for _, set := range [][]binding{deviceBindings, runBindings} {
		for _, b := range set {
			fl := cmd.Flags().Lookup(b.flag)
			if fl == nil || !fl.Changed {
				continue
			}
			if err := v.BindPFlag(b.key, fl); err != nil {
				return err
			}
		}
	}
	return nil
}
