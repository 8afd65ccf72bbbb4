package command

import (
	"encoding/json"
	"fmt"
)

type JSONOutput struct {
	commonOutputFormatter
}

func (jo *JSONOutput) WriteOutput() {
	if jo.commandOutput != nil {
		_, _ = fmt.Fprintln(jo.out, jo.getCommandOutput())
	}

	if jo.errorOutput != nil {
		_, _ = fmt.Fprintln(jo.err, jo.getErrorOutput())
	}
}

func (jo *JSONOutput) getErrorOutput() string {
	return marshalJSONToString(
		struct {
			Err string `json:"error"`
		}{
			Err: jo.errorOutput.Error(),
		},
	)
}

func (jo *JSONOutput) getCommandOutput() string {
	return marshalJSONToString(jo.commandOutput)
}

func marshalJSONToString(input interface{}) string {
	bytes, err := json.Marshal(input)
	if err != nil {
		return err.Error()
	}

	return string(bytes)
}
