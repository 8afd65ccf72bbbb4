package version

import (
	"bytes"
	"fmt"

	"github.com/GottfriedHerold/mont381/command/helper"
)

type VersionResult struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func (r *VersionResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[VERSION INFO]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Release version|%s", r.Version),
		fmt.Sprintf("Commit hash|%s", r.Commit),
		fmt.Sprintf("Go version|%s", r.GoVersion),
		fmt.Sprintf("Platform|%s", r.Platform),
	}))

	return buffer.String()
}
