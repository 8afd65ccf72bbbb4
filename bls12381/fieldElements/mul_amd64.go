//go:build amd64 && !purego

package fieldElements

import "golang.org/x/sys/cpu"

// supportAdx tells whether the CPU supports the instructions used by mulMontgomeryADX.
var supportAdx = cpu.X86.HasADX && cpu.X86.HasBMI2

// asmCompiled is true if this build contains the assembly tier at all.
const asmCompiled = true

// mulMontgomeryADX is the assembly tier, see mul_amd64.s. It must only be called if supportAdx is true.
//
//go:noescape
func mulMontgomeryADX(z, x, y *Uint384)
