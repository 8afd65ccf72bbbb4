package bench

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/GottfriedHerold/mont381/bls12381/fieldElements"
	"github.com/GottfriedHerold/mont381/command"
	"github.com/GottfriedHerold/mont381/command/helper"
)

func GetCommand() *cobra.Command {
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Measures the throughput of the multiplication tiers on this machine",
		Args:  cobra.NoArgs,
		RunE:  runCommand,
	}

	setFlags(benchCmd)

	return benchCmd
}

func setFlags(cmd *cobra.Command) {
	helper.RegisterTierFlag(cmd, &params.tierNames)

	cmd.Flags().Int64Var(
		&params.seed,
		command.SeedFlag,
		1,
		"the seed for the random inputs",
	)

	cmd.Flags().BoolVar(
		&params.includeAddSub,
		includeAddSubFlag,
		false,
		"also measure modular addition and subtraction",
	)
}

func runCommand(cmd *cobra.Command, _ []string) error {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	if err := params.initRawParams(); err != nil {
		outputter.SetError(err)

		return command.Reported(err)
	}

	logger := helper.NewLogger(cmd).Named("bench")
	result := &BenchResult{Seed: params.seed}

	for _, tier := range params.tiers {
		result.Entries = append(result.Entries, measure(logger, "mul/"+tier.Name(), tier.MulMontgomery))
	}

	if params.includeAddSub {
		result.Entries = append(result.Entries,
			measure(logger, "add", fieldElements.Add),
			measure(logger, "sub", fieldElements.Sub),
		)
	}

	outputter.SetCommandResult(result)

	return nil
}

// measure runs op through testing.Benchmark on the prepared inputs.
func measure(logger hclog.Logger, name string, op func(z, x, y *fieldElements.Uint384)) BenchEntry {
	xs, ys := params.xs, params.ys
	var sink [inputCount]fieldElements.Uint384

	logger.Debug("benchmarking", "op", name)

	res := testing.Benchmark(func(b *testing.B) {
		for n := 0; n < b.N; n++ {
			op(&sink[n%inputCount], &xs[n%inputCount], &ys[n%inputCount])
		}
	})

	entry := newBenchEntry(name, res)
	logger.Info("benchmark done", "op", name, "iterations", entry.Iterations, "ns_per_op", entry.NsPerOp)

	return entry
}
