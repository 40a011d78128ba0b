package sinks

// CmdOpts specifies the storage configuration of synchronized metrics
type CmdOpts struct {
	Sinks       []string `long:"sink" mapstructure:"sink" description:"URI where metrics will be stored, can be used multiple times" default:"jsonfile://src/data/metrics.json" env:"SS_SINK" env-delim:","`
	OnDuplicate string   `long:"on-duplicate" mapstructure:"on-duplicate" description:"What to do when two index rows share a slug" choice:"warn" choice:"error" default:"warn" env:"SS_ON_DUPLICATE"`
}
