package bench

import (
	"math/big"
	"math/rand"

	"github.com/GottfriedHerold/mont381/bls12381/fieldElements"
	"github.com/GottfriedHerold/mont381/command/helper"
)

const (
	includeAddSubFlag = "add-sub"
)

// inputCount is the number of distinct input pairs cycled through in each benchmark.
const inputCount = 1 << 8

var (
	params = &benchParams{}
)

type benchParams struct {
	tierNames     []string
	seed          int64
	includeAddSub bool

	tiers  []*fieldElements.MontgomeryTier
	xs, ys []fieldElements.Uint384
}

func (p *benchParams) initRawParams() error {
	tiers, err := helper.ResolveTiers(p.tierNames)
	if err != nil {
		return err
	}

	p.tiers = tiers
	p.initInputs()

	return nil
}

func (p *benchParams) initInputs() {
	rng := rand.New(rand.NewSource(p.seed))
	p.xs = make([]fieldElements.Uint384, inputCount)
	p.ys = make([]fieldElements.Uint384, inputCount)

	for i := 0; i < inputCount; i++ {
		p.xs[i] = fieldElements.BigIntToUint384(new(big.Int).Rand(rng, fieldElements.BaseFieldSize_Int))
		p.ys[i] = fieldElements.BigIntToUint384(new(big.Int).Rand(rng, fieldElements.BaseFieldSize_Int))
	}
}
