package command

const (
	JSONOutputFlag = "json"
	LogLevelFlag   = "log-level"
	TierFlag       = "tier"
	SeedFlag       = "seed"
)

// DefaultLogLevel is used when --log-level is not given.
const DefaultLogLevel = "INFO"
