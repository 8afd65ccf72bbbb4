package verify

import (
	"fmt"

	"github.com/GottfriedHerold/mont381/bls12381/fieldElements"
	"github.com/GottfriedHerold/mont381/bls12381/selfcheck"
	"github.com/GottfriedHerold/mont381/command/helper"
)

const (
	samplesFlag = "samples"
)

var (
	params = &verifyParams{}
)

type verifyParams struct {
	tierNames []string
	samples   int
	seed      int64

	tiers []*fieldElements.MontgomeryTier
}

func (p *verifyParams) validateFlags() error {
	if p.samples < 0 {
		return fmt.Errorf("invalid --%s value %d: must not be negative", samplesFlag, p.samples)
	}

	return nil
}

func (p *verifyParams) initTiers() error {
	tiers, err := helper.ResolveTiers(p.tierNames)
	if err != nil {
		return err
	}

	p.tiers = tiers

	return nil
}

func (p *verifyParams) config() selfcheck.Config {
	return selfcheck.Config{
		Samples: p.samples,
		Seed:    p.seed,
	}
}
