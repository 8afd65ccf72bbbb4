package command

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

type testResult struct {
	Value int `json:"value"`
}

func (r *testResult) GetOutput() string {
	return fmt.Sprintf("value is %d", r.Value)
}

func newTestCommand(json bool) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer

	cmd := &cobra.Command{Use: "test"}
	cmd.PersistentFlags().Bool(JSONOutputFlag, false, "")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	if json {
		_ = cmd.PersistentFlags().Set(JSONOutputFlag, "true")
	}

	return cmd, &stdout, &stderr
}

func TestCLIOutput(t *testing.T) {
	cmd, stdout, stderr := newTestCommand(false)
	outputter := InitializeOutputter(cmd)
	require.IsType(t, &CLIOutput{}, outputter)

	outputter.SetCommandResult(&testResult{Value: 3})
	outputter.SetError(errors.New("boom"))
	outputter.WriteOutput()

	require.Equal(t, "value is 3\n", stdout.String())
	require.Equal(t, "boom\n", stderr.String())
}

func TestJSONOutput(t *testing.T) {
	cmd, stdout, stderr := newTestCommand(true)
	outputter := InitializeOutputter(cmd)
	require.IsType(t, &JSONOutput{}, outputter)

	outputter.SetCommandResult(&testResult{Value: 3})
	outputter.WriteOutput()
	require.JSONEq(t, `{"value": 3}`, stdout.String())
	require.Empty(t, stderr.String())

	outputter = InitializeOutputter(cmd)
	outputter.SetError(errors.New("boom"))
	outputter.WriteOutput()
	require.JSONEq(t, `{"error": "boom"}`, stderr.String())
}

func TestReported(t *testing.T) {
	require.Nil(t, Reported(nil))

	base := errors.New("base")
	err := Reported(fmt.Errorf("wrapped: %w", base))
	require.True(t, IsReported(err))
	require.ErrorIs(t, err, base)
	require.False(t, IsReported(base))
	require.True(t, IsReported(fmt.Errorf("outer: %w", err)))
}
