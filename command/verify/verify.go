package verify

import (
	"github.com/spf13/cobra"

	"github.com/GottfriedHerold/mont381/bls12381/selfcheck"
	"github.com/GottfriedHerold/mont381/command"
	"github.com/GottfriedHerold/mont381/command/helper"
)

func GetCommand() *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Runs the known-answer vectors and a differential check against math/big on the multiplication tiers",
		Long: "Runs the 1000-iteration rotation vectors for add, sub and Montgomery multiplication as well as a seeded " +
			"differential run against math/big on each selected tier. Exits with a non-zero status on any mismatch.",
		Args: cobra.NoArgs,
		RunE: runCommand,
	}

	setFlags(verifyCmd)

	return verifyCmd
}

func setFlags(cmd *cobra.Command) {
	helper.RegisterTierFlag(cmd, &params.tierNames)

	cmd.Flags().IntVar(
		&params.samples,
		samplesFlag,
		selfcheck.DefaultConfig.Samples,
		"the number of random input pairs for the differential check",
	)

	cmd.Flags().Int64Var(
		&params.seed,
		command.SeedFlag,
		selfcheck.DefaultConfig.Seed,
		"the seed for the random inputs",
	)
}

func runCommand(cmd *cobra.Command, _ []string) error {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	if err := params.validateFlags(); err != nil {
		outputter.SetError(err)

		return command.Reported(err)
	}

	if err := params.initTiers(); err != nil {
		outputter.SetError(err)

		return command.Reported(err)
	}

	cfg := params.config()
	cfg.Logger = helper.NewLogger(cmd).Named("verify")

	reports, err := selfcheck.Run(selfcheck.AsTiers(params.tiers), cfg)

	outputter.SetCommandResult(newVerifyResult(reports, cfg))

	if err != nil {
		outputter.SetError(err)

		return command.Reported(err)
	}

	return nil
}
