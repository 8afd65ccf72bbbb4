package bench

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/GottfriedHerold/mont381/command/helper"
)

type BenchEntry struct {
	Name       string  `json:"name"`
	Iterations int     `json:"iterations"`
	NsPerOp    float64 `json:"ns_per_op"`
	MOpsPerSec float64 `json:"mops_per_sec"`
}

type BenchResult struct {
	Seed    int64        `json:"seed"`
	Entries []BenchEntry `json:"entries"`
}

func newBenchEntry(name string, res testing.BenchmarkResult) BenchEntry {
	entry := BenchEntry{Name: name, Iterations: res.N}

	if res.N > 0 {
		entry.NsPerOp = float64(res.T.Nanoseconds()) / float64(res.N)
	}

	if entry.NsPerOp > 0 {
		entry.MOpsPerSec = 1e3 / entry.NsPerOp
	}

	return entry
}

func (r *BenchResult) GetOutput() string {
	var buffer bytes.Buffer

	rows := make([]string, len(r.Entries)+1)
	rows[0] = "Operation|Iterations|ns/op|Mops/s"

	for i, e := range r.Entries {
		rows[i+1] = fmt.Sprintf("%s|%d|%.2f|%.2f", e.Name, e.Iterations, e.NsPerOp, e.MOpsPerSec)
	}

	buffer.WriteString("\n[BENCHMARK]\n")
	buffer.WriteString(helper.FormatList(rows))
	buffer.WriteString("\n")

	return buffer.String()
}
