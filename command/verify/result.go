package verify

import (
	"bytes"
	"fmt"

	"github.com/GottfriedHerold/mont381/bls12381/selfcheck"
	"github.com/GottfriedHerold/mont381/command/helper"
)

type TierVerification struct {
	Tier         string `json:"tier"`
	Available    bool   `json:"available"`
	KnownAnswers int    `json:"known_answers"`
	Samples      int    `json:"samples"`
	Passed       bool   `json:"passed"`
	Error        string `json:"error,omitempty"`
}

type VerifyResult struct {
	Seed   int64              `json:"seed"`
	Passed bool               `json:"passed"`
	Tiers  []TierVerification `json:"tiers"`
}

func newVerifyResult(reports []selfcheck.TierReport, cfg selfcheck.Config) *VerifyResult {
	result := &VerifyResult{
		Seed:   cfg.Seed,
		Passed: true,
		Tiers:  make([]TierVerification, 0, len(reports)),
	}

	for _, report := range reports {
		entry := TierVerification{
			Tier:         report.Tier,
			Available:    report.Available,
			KnownAnswers: report.KnownAnswers,
			Samples:      report.Samples,
			Passed:       report.Passed(),
		}

		if report.Err != nil {
			entry.Error = report.Err.Error()
			result.Passed = false
		}

		result.Tiers = append(result.Tiers, entry)
	}

	return result
}

func (r *VerifyResult) GetOutput() string {
	var buffer bytes.Buffer

	rows := make([]string, len(r.Tiers)+1)
	rows[0] = "Tier|Available|Known answers|Samples|Result"

	for i, tier := range r.Tiers {
		status := "ok"
		if !tier.Passed {
			status = "FAILED"
		}

		rows[i+1] = fmt.Sprintf("%s|%t|%d|%d|%s", tier.Tier, tier.Available, tier.KnownAnswers, tier.Samples, status)
	}

	buffer.WriteString("\n[VERIFY]\n")
	buffer.WriteString(helper.FormatList(rows))
	buffer.WriteString("\n")

	if r.Passed {
		buffer.WriteString(fmt.Sprintf("All tiers passed (seed %d)\n", r.Seed))
	} else {
		buffer.WriteString(fmt.Sprintf("Verification FAILED (seed %d)\n", r.Seed))
	}

	return buffer.String()
}
