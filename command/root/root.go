package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GottfriedHerold/mont381/command"
	"github.com/GottfriedHerold/mont381/command/bench"
	"github.com/GottfriedHerold/mont381/command/convert"
	"github.com/GottfriedHerold/mont381/command/helper"
	"github.com/GottfriedHerold/mont381/command/tiers"
	"github.com/GottfriedHerold/mont381/command/verify"
	"github.com/GottfriedHerold/mont381/command/version"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Use:   "mont381",
			Short: "mont381 inspects and verifies the BLS12-381 base field Montgomery arithmetic kernel",
			// errors are already written by the command outputters
			SilenceErrors: true,
			SilenceUsage:  true,
		},
	}

	helper.RegisterJSONOutputFlag(rootCommand.baseCmd)
	helper.RegisterLogLevelFlag(rootCommand.baseCmd)

	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		version.GetCommand(),
		tiers.GetCommand(),
		verify.GetCommand(),
		convert.GetCommand(),
		bench.GetCommand(),
	)
}

// Command exposes the underlying cobra command, e.g. to set arguments and output streams in tests.
func (rc *RootCommand) Command() *cobra.Command {
	return rc.baseCmd
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		// argument and flag parsing errors do not reach an outputter
		if !command.IsReported(err) {
			_, _ = fmt.Fprintln(os.Stderr, err)
		}

		os.Exit(1)
	}
}
