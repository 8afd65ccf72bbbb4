package convert

import (
	"bytes"
	"fmt"

	"github.com/GottfriedHerold/mont381/command/helper"
)

type Conversion struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	Decimal string `json:"decimal"`
	Bytes   string `json:"bytes"`
}

type ConvertResult struct {
	Direction   string       `json:"direction"`
	Tier        string       `json:"tier"`
	Endianness  string       `json:"endianness"`
	Conversions []Conversion `json:"conversions"`
}

func (r *ConvertResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString(fmt.Sprintf("\n[CONVERT TO %s FORM]\n", r.Direction))

	for i, c := range r.Conversions {
		if i > 0 {
			buffer.WriteString("\n")
		}

		buffer.WriteString(helper.FormatKV([]string{
			fmt.Sprintf("Input|%s", c.Input),
			fmt.Sprintf("Output|%s", c.Output),
			fmt.Sprintf("Decimal|%s", c.Decimal),
			fmt.Sprintf("Bytes (%s)|%s", r.Endianness, c.Bytes),
		}))
		buffer.WriteString("\n")
	}

	return buffer.String()
}
