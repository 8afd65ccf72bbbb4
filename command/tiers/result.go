package tiers

import (
	"bytes"
	"fmt"

	"github.com/GottfriedHerold/mont381/command/helper"
)

type TierInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	Default     bool   `json:"default"`
}

type CPUFeatures struct {
	Arch string `json:"arch"`
	BMI2 bool   `json:"bmi2"`
	ADX  bool   `json:"adx"`
	AVX2 bool   `json:"avx2"`
}

type TiersResult struct {
	Tiers            []TierInfo  `json:"tiers"`
	Default          string      `json:"default"`
	AssemblyCompiled bool        `json:"assembly_compiled"`
	CPU              CPUFeatures `json:"cpu"`
}

func (r *TiersResult) GetOutput() string {
	var buffer bytes.Buffer

	rows := make([]string, len(r.Tiers)+1)
	rows[0] = "Tier|Available|Default|Description"

	for i, tier := range r.Tiers {
		rows[i+1] = fmt.Sprintf("%s|%t|%t|%s", tier.Name, tier.Available, tier.Default, tier.Description)
	}

	buffer.WriteString("\n[MULTIPLICATION TIERS]\n")
	buffer.WriteString(helper.FormatList(rows))
	buffer.WriteString("\n\n[MACHINE]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Architecture|%s", r.CPU.Arch),
		fmt.Sprintf("Assembly compiled|%t", r.AssemblyCompiled),
		fmt.Sprintf("BMI2|%t", r.CPU.BMI2),
		fmt.Sprintf("ADX|%t", r.CPU.ADX),
		fmt.Sprintf("AVX2|%t", r.CPU.AVX2),
	}))
	buffer.WriteString("\n")

	return buffer.String()
}
