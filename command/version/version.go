package version

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/GottfriedHerold/mont381/command"
)

var (
	// Version is the release version. It is meant to be set at link time via -ldflags "-X ...".
	Version = "0.1.0-dev"

	// Commit is the git commit that was compiled. Falls back to the VCS information embedded by the go tool.
	Commit string
)

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Returns the current mont381 version",
		Args:  cobra.NoArgs,
		Run:   runCommand,
	}
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	outputter.SetCommandResult(&VersionResult{
		Version:   Version,
		Commit:    commit(),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	})
}

func commit() string {
	if Commit != "" {
		return Commit
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	return ""
}
