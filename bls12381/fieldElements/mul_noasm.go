//go:build !amd64 || purego

package fieldElements

const supportAdx = false

const asmCompiled = false

// mulMontgomeryADX stands in for the assembly tier on builds without it. It is never selected as the default tier.
func mulMontgomeryADX(z, x, y *Uint384) {
	mulMontgomery_Intrinsic(z, x, y)
}
