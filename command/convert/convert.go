package convert

import (
	"github.com/spf13/cobra"

	"github.com/GottfriedHerold/mont381/command"
)

func GetCommand() *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert [literal...]",
		Short: "Converts integers into Montgomery form and back",
		Long: "Converts each argument (decimal or 0x-prefixed hex, smaller than the BLS12-381 base field modulus) " +
			"into its Montgomery representation a*2^384 mod p, or with --to normal, back into the plain integer.",
		Args: cobra.MinimumNArgs(1),
		RunE: runCommand,
	}

	setFlags(convertCmd)

	return convertCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&params.direction,
		directionFlag,
		toMontgomery,
		"the conversion direction: montgomery or normal",
	)

	cmd.Flags().StringVar(
		&params.endiannessRaw,
		endiannessFlag,
		"big",
		"the byte order of the printed 48-byte encoding: big or little",
	)

	cmd.Flags().StringVar(
		&params.tierName,
		command.TierFlag,
		"",
		"the multiplication tier to use (default: the fastest available)",
	)
}

func runCommand(cmd *cobra.Command, args []string) error {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	if err := params.initRawParams(args); err != nil {
		outputter.SetError(err)

		return command.Reported(err)
	}

	outputter.SetCommandResult(params.convert())

	return nil
}
