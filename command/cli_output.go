package command

import (
	"fmt"
)

type CLIOutput struct {
	commonOutputFormatter
}

// WriteOutput writes the result (if any) to out and the error (if any) to err.
// Unlike a plain error, a failed verification still has a result worth showing.
func (cli *CLIOutput) WriteOutput() {
	if cli.commandOutput != nil {
		_, _ = fmt.Fprintln(cli.out, cli.getCommandOutput())
	}

	if cli.errorOutput != nil {
		_, _ = fmt.Fprintln(cli.err, cli.getErrorOutput())
	}
}

func (cli *CLIOutput) getErrorOutput() string {
	return cli.errorOutput.Error()
}

func (cli *CLIOutput) getCommandOutput() string {
	return cli.commandOutput.GetOutput()
}
