package helper

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"github.com/GottfriedHerold/mont381/bls12381/fieldElements"
	"github.com/GottfriedHerold/mont381/command"
)

// FormatList formats a list, using a specific blank value replacement
func FormatList(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"

	return columnize.Format(in, columnConf)
}

// FormatKV formats key value pairs:
//
// Key = Value
//
// Key = <none>
func FormatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	columnConf.Glue = " = "

	return columnize.Format(in, columnConf)
}

// RegisterJSONOutputFlag registers the --json output setting for all child commands
func RegisterJSONOutputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(
		command.JSONOutputFlag,
		false,
		"get all outputs in json format (default false)",
	)
}

// RegisterLogLevelFlag registers the --log-level setting for all child commands
func RegisterLogLevelFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String(
		command.LogLevelFlag,
		command.DefaultLogLevel,
		"the log level for console output (TRACE, DEBUG, INFO, WARN, ERROR, OFF)",
	)
}

// RegisterTierFlag registers a repeatable --tier flag. An empty list means all available tiers.
func RegisterTierFlag(cmd *cobra.Command, target *[]string) {
	cmd.Flags().StringSliceVar(
		target,
		command.TierFlag,
		nil,
		fmt.Sprintf("the multiplication tiers to use, any of %s (default: all available)", strings.Join(fieldElements.TierNames(), ", ")),
	)
}

// NewLogger creates the command logger. Logs go to the command's error stream, so they never mix with (json) output.
func NewLogger(cmd *cobra.Command) hclog.Logger {
	level := command.DefaultLogLevel

	if flag := cmd.Flag(command.LogLevelFlag); flag != nil {
		level = flag.Value.String()
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "mont381",
		Level:  hclog.LevelFromString(level),
		Output: cmd.ErrOrStderr(),
	})
}

// ResolveTiers looks up the named tiers. Without names, it returns all tiers available on this machine.
func ResolveTiers(names []string) ([]*fieldElements.MontgomeryTier, error) {
	if len(names) == 0 {
		return fieldElements.AvailableTiers(), nil
	}

	tiers := make([]*fieldElements.MontgomeryTier, 0, len(names))

	for _, name := range names {
		tier, err := fieldElements.TierByName(name)
		if err != nil {
			return nil, err
		}

		tiers = append(tiers, tier)
	}

	return tiers, nil
}
