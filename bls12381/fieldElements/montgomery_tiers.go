package fieldElements

import (
	"fmt"
	"strings"

	"github.com/GottfriedHerold/mont381/internal/callcounters"
)

// A MontgomeryTier is one implementation of Montgomery multiplication.
//
// All tiers compute bit-identical results for reduced inputs, so they can be substituted for each other freely.
// They differ in how they are written (and thus in speed and portability):
//
//   - reference:  loop-based CIOS with double-width products (uint128.go)
//   - flattened:  unrolled CIOS with the accumulator in named variables and portable carry computation
//   - intrinsic:  unrolled CIOS on math/bits intrinsics with two interleaved carry chains
//   - asm:        amd64 assembly using MULX/ADCX/ADOX (requires BMI2 and ADX)
//
// The asm tier is always listed. On CPUs (or builds) without it, Available() reports false and
// calls are routed to the intrinsic tier, so calling it is never an error.
type MontgomeryTier struct {
	name        string
	description string
	available   bool
	mul         func(z, x, y *Uint384)
	counter     callcounters.Id
}

// Names of the tiers, as accepted by [TierByName].
const (
	TierNameReference = "reference"
	TierNameFlattened = "flattened"
	TierNameIntrinsic = "intrinsic"
	TierNameAssembly  = "asm"
)

var (
	tierReference = MontgomeryTier{
		name:        TierNameReference,
		description: "loop-based CIOS, double-width products",
		available:   true,
		mul:         mulMontgomery_Reference,
		counter:     "MulMontgomery_reference",
	}
	tierFlattened = MontgomeryTier{
		name:        TierNameFlattened,
		description: "unrolled CIOS, portable carries",
		available:   true,
		mul:         mulMontgomery_Flattened,
		counter:     "MulMontgomery_flattened",
	}
	tierIntrinsic = MontgomeryTier{
		name:        TierNameIntrinsic,
		description: "unrolled CIOS on math/bits, two carry chains",
		available:   true,
		mul:         mulMontgomery_Intrinsic,
		counter:     "MulMontgomery_intrinsic",
	}
	tierAssembly = MontgomeryTier{
		name:        TierNameAssembly,
		description: "amd64 assembly, MULX/ADCX/ADOX",
		available:   supportAdx,
		mul:         assemblyOrFallback(),
		counter:     "MulMontgomery_asm",
	}
)

// allTiers lists the tiers from slowest (simplest) to fastest.
var allTiers = []*MontgomeryTier{&tierReference, &tierFlattened, &tierIntrinsic, &tierAssembly}

// defaultTier is the fastest available tier. It is selected once during package initialization.
var defaultTier *MontgomeryTier = selectDefaultTier()

// defaultMulMontgomery caches defaultTier.mul.
var defaultMulMontgomery func(z, x, y *Uint384) = defaultTier.mul

func assemblyOrFallback() func(z, x, y *Uint384) {
	if supportAdx {
		return mulMontgomeryADX
	}
	return mulMontgomery_Intrinsic
}

func selectDefaultTier() *MontgomeryTier {
	if tierAssembly.available {
		return &tierAssembly
	}
	return &tierIntrinsic
}

// Name returns the short name of the tier, as accepted by [TierByName].
func (tier *MontgomeryTier) Name() string {
	return tier.name
}

// Description returns a one-line human-readable description.
func (tier *MontgomeryTier) Description() string {
	return tier.description
}

// Available tells whether the tier runs its own code on this machine and build.
// Unavailable tiers fall back to another tier.
func (tier *MontgomeryTier) Available() bool {
	return tier.available
}

// String returns the name of the tier.
func (tier *MontgomeryTier) String() string {
	return tier.name
}

// MulMontgomery computes z = x*y*R^{-1} mod BaseFieldSize with R = 2^384 using this tier.
// x and y must be reduced. Aliasing between z, x and y is allowed.
func (tier *MontgomeryTier) MulMontgomery(z, x, y *Uint384) {
	IncrementCallCounter(tier.counter)
	tier.mul(z, x, y)
}

// AllTiers returns all tiers, including unavailable ones, from the simplest to the fastest.
// The returned slice is a fresh copy.
func AllTiers() []*MontgomeryTier {
	ret := make([]*MontgomeryTier, len(allTiers))
	copy(ret, allTiers)
	return ret
}

// AvailableTiers returns the tiers that run their own code on this machine.
func AvailableTiers() (ret []*MontgomeryTier) {
	for _, tier := range allTiers {
		if tier.available {
			ret = append(ret, tier)
		}
	}
	return
}

// DefaultTier returns the tier used by the package-level [MulMontgomery], [ToMontgomery] and [ToNormal].
func DefaultTier() *MontgomeryTier {
	return defaultTier
}

// TierByName looks up a tier by its (case-insensitive) name. The returned error wraps [ErrUnknownTier].
func TierByName(name string) (*MontgomeryTier, error) {
	for _, tier := range allTiers {
		if strings.EqualFold(tier.name, name) {
			return tier, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (known tiers: %v)", ErrUnknownTier, name, TierNames())
}

// TierNames returns the names of all tiers.
func TierNames() []string {
	ret := make([]string, len(allTiers))
	for i, tier := range allTiers {
		ret[i] = tier.name
	}
	return ret
}

// MulMontgomery computes out = a*b*R^{-1} mod BaseFieldSize with R = 2^384, using the default tier.
// a and b must be reduced. Aliasing between the arguments is allowed.
func MulMontgomery(out, a, b *Uint384) {
	IncrementCallCounter("MulMontgomery_default")
	defaultMulMontgomery(out, a, b)
}

// MulMontgomery sets z = x*y*R^{-1} mod BaseFieldSize, using the default tier.
func (z *Uint384) MulMontgomery(x, y *Uint384) {
	MulMontgomery(z, x, y)
}

// AssemblyCompiled tells whether this build contains the assembly tier at all (amd64 without the purego tag).
// Whether it is used additionally depends on the CPU; see [MontgomeryTier.Available].
func AssemblyCompiled() bool {
	return asmCompiled
}
