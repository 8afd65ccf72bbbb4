package fieldElements

import "github.com/GottfriedHerold/mont381/internal/callcounters"

// Call counters for the exported arithmetic. These are only incremented in builds with tags=callcounters.
// Per-tier counters sit below MulMontgomery_tiers; note that the package-level functions call into a tier,
// so e.g. a call to ToMontgomery also counts towards the default tier's counter.
func init() {
	callcounters.CreateHierarchicalCallCounter("FieldOps", "Field operations", "")
	callcounters.CreateHierarchicalCallCounter("AddFe", "Add", "FieldOps")
	callcounters.CreateHierarchicalCallCounter("SubFe", "Sub", "FieldOps")
	callcounters.CreateHierarchicalCallCounter("ToMontgomery", "ToMontgomery", "FieldOps")
	callcounters.CreateHierarchicalCallCounter("ToNormal", "ToNormal", "FieldOps")
	callcounters.CreateHierarchicalCallCounter("MulMontgomery_default", "MulMontgomery (package-level)", "FieldOps")
	callcounters.CreateHierarchicalCallCounter("MulMontgomery_tiers", "MulMontgomery (by tier)", "")
	for _, tier := range allTiers {
		callcounters.CreateHierarchicalCallCounter(tier.counter, "MulMontgomery "+tier.name, "MulMontgomery_tiers")
	}
}
