// Package selfcheck verifies Montgomery multiplication tiers at runtime.
//
// A check consists of the known-answer rotation vectors and a seeded differential run against math/big.
// This is what the verify command runs; it is meant to catch miscompiled or miswired tiers on a given machine,
// not to replace the package tests.
package selfcheck

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/GottfriedHerold/mont381/bls12381/common"
	fe "github.com/GottfriedHerold/mont381/bls12381/fieldElements"
)

// ErrorPrefix is the prefix used by all error message strings originating from this package.
const ErrorPrefix = "mont381 / selfcheck: "

var (
	// ErrMismatch is wrapped by every error reporting a wrong result.
	ErrMismatch = errors.New(ErrorPrefix + "result mismatch")
	// ErrInvalidConfig is returned (wrapped) for unusable [Config] values.
	ErrInvalidConfig = errors.New(ErrorPrefix + "invalid configuration")
)

// maxMismatchesPerTier bounds the number of mismatches we collect for a single tier before giving up on it.
const maxMismatchesPerTier = 8

// Tier is what we need from a multiplication tier. *fieldElements.MontgomeryTier satisfies it.
type Tier interface {
	Name() string
	Available() bool
	MulMontgomery(z, x, y *fe.Uint384)
	ToMontgomery(out *fe.Uint384, a *[6]uint64)
	ToNormal(out *[6]uint64, a *fe.Uint384)
}

// Config controls a run of [Run] or [CheckTier].
type Config struct {
	Samples int          // number of random input pairs for the differential run. 0 disables it.
	Seed    int64        // seed for the random inputs
	Logger  hclog.Logger // may be nil
}

// DefaultConfig is used by the verify command unless overridden by flags.
var DefaultConfig = Config{Samples: 1000, Seed: 1}

func (c *Config) validate() error {
	if c.Samples < 0 {
		return fmt.Errorf("%w: negative number of samples %d", ErrInvalidConfig, c.Samples)
	}
	return nil
}

func (c *Config) logger() hclog.Logger {
	if c.Logger == nil {
		return hclog.NewNullLogger()
	}
	return c.Logger
}

// TierReport summarizes the checks of a single tier.
type TierReport struct {
	Tier         string
	Available    bool
	KnownAnswers int   // number of known-answer vectors checked
	Samples      int   // number of random samples checked
	Err          error // nil if everything matched
}

// Passed tells whether all checks for this tier matched.
func (r *TierReport) Passed() bool {
	return r.Err == nil
}

// Run checks all given tiers. The returned error is a *multierror.Error collecting all mismatches of all tiers, or nil.
// Reports are returned in the order of tiers, also if some of them failed.
func Run(tiers []Tier, cfg Config) ([]TierReport, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	var result *multierror.Error
	reports := make([]TierReport, 0, len(tiers))
	for _, tier := range tiers {
		report := CheckTier(tier, cfg)
		if report.Err != nil {
			result = multierror.Append(result, report.Err)
		}
		reports = append(reports, report)
	}
	return reports, result.ErrorOrNil()
}

// CheckTier runs the known-answer vectors and the differential run on a single tier.
// The Err field of the report is a *multierror.Error if there were mismatches.
func CheckTier(tier Tier, cfg Config) TierReport {
	log := cfg.logger().With("tier", tier.Name())
	report := TierReport{Tier: tier.Name(), Available: tier.Available()}
	if !tier.Available() {
		log.Warn("tier is not available on this machine; checking its fallback")
	}
	var errs *multierror.Error
	if err := cfg.validate(); err != nil {
		report.Err = multierror.Append(errs, err)
		return report
	}

	for _, ka := range fe.KnownAnswers() {
		got, err := fe.RunKnownAnswer(tier.MulMontgomery, ka)
		report.KnownAnswers++
		switch {
		case err != nil:
			errs = multierror.Append(errs, fmt.Errorf("tier %s: %w", tier.Name(), err))
		case got != ka.Expected:
			log.Error("known-answer mismatch", "op", ka.Op, "got", got, "expected", ka.Expected)
			errs = multierror.Append(errs, fmt.Errorf("%w: tier %s: known answer for %s: got %v, expected %v", ErrMismatch, tier.Name(), ka.Op, got, ka.Expected))
		default:
			log.Debug("known-answer ok", "op", ka.Op)
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	mismatches := 0
	for i := 0; i < cfg.Samples && mismatches < maxMismatchesPerTier; i++ {
		x, y := randomReduced(rng), randomReduced(rng)
		report.Samples++
		for _, err := range checkSample(tier, &x, &y) {
			mismatches++
			log.Error("differential mismatch", "sample", i, "error", err)
			errs = multierror.Append(errs, err)
		}
	}
	if mismatches >= maxMismatchesPerTier {
		log.Warn("too many mismatches, stopped early", "samples", report.Samples)
	}
	log.Info("tier checked", "known_answers", report.KnownAnswers, "samples", report.Samples, "mismatches", mismatches)
	report.Err = errs.ErrorOrNil()
	return report
}

var (
	modulus   = new(big.Int).Set(common.BaseFieldSize_Int)
	rInverse  = new(big.Int).ModInverse(common.TwoTo384_Int, common.BaseFieldSize_Int)
	rModulusN = new(big.Int).Mod(common.TwoTo384_Int, common.BaseFieldSize_Int)
)

func randomReduced(rng *rand.Rand) fe.Uint384 {
	return fe.BigIntToUint384(new(big.Int).Rand(rng, modulus))
}

// checkSample compares all kernel operations on (x, y) against math/big.
func checkSample(tier Tier, x, y *fe.Uint384) (errs []error) {
	xInt, yInt := x.ToBigInt(), y.ToBigInt()
	mismatch := func(op string, got fe.Uint384, expected *big.Int) {
		if got.ToBigInt().Cmp(expected) != 0 {
			errs = append(errs, fmt.Errorf("%w: tier %s: %s(%v, %v) = %v, expected 0x%x", ErrMismatch, tier.Name(), op, *x, *y, got, expected))
		}
	}

	var z fe.Uint384
	fe.Add(&z, x, y)
	expected := new(big.Int).Add(xInt, yInt)
	mismatch("add", z, expected.Mod(expected, modulus))

	fe.Sub(&z, x, y)
	expected = new(big.Int).Sub(xInt, yInt)
	mismatch("sub", z, expected.Mod(expected, modulus))

	tier.MulMontgomery(&z, x, y)
	expected = new(big.Int).Mul(xInt, yInt)
	expected.Mul(expected, rInverse)
	mismatch("mul", z, expected.Mod(expected, modulus))

	tier.ToMontgomery(&z, (*[6]uint64)(x))
	expected = new(big.Int).Mul(xInt, rModulusN)
	mismatch("to_montgomery", z, expected.Mod(expected, modulus))

	var back [6]uint64
	tier.ToNormal(&back, &z)
	mismatch("to_normal", fe.Uint384(back), xInt)
	return
}

// AsTiers converts a slice of *fieldElements.MontgomeryTier into a slice of [Tier].
func AsTiers(tiers []*fe.MontgomeryTier) []Tier {
	ret := make([]Tier, len(tiers))
	for i, tier := range tiers {
		ret[i] = tier
	}
	return ret
}
