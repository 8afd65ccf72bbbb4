package tiers

import (
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/GottfriedHerold/mont381/bls12381/fieldElements"
	"github.com/GottfriedHerold/mont381/command"
)

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "Lists the Montgomery multiplication tiers and whether this machine can run them",
		Args:  cobra.NoArgs,
		Run:   runCommand,
	}
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	outputter.SetCommandResult(buildResult())
}

func buildResult() *TiersResult {
	result := &TiersResult{
		Default:          fieldElements.DefaultTier().Name(),
		AssemblyCompiled: fieldElements.AssemblyCompiled(),
		CPU: CPUFeatures{
			Arch: runtime.GOARCH,
			BMI2: cpu.X86.HasBMI2,
			ADX:  cpu.X86.HasADX,
			AVX2: cpu.X86.HasAVX2,
		},
	}

	for _, tier := range fieldElements.AllTiers() {
		result.Tiers = append(result.Tiers, TierInfo{
			Name:        tier.Name(),
			Description: tier.Description(),
			Available:   tier.Available(),
			Default:     tier == fieldElements.DefaultTier(),
		})
	}

	return result
}
