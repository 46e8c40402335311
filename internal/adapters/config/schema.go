package config

// Configfile is the structure of artcache.yaml.
type Configfile struct {
	Version          string      `yaml:"version"`
	Root             string      `yaml:"root"`
	SourceRoot       string      `yaml:"sourceRoot"`
	Mode             string      `yaml:"mode"`
	Persist          *bool       `yaml:"persist"`
	RestartThreshold *int        `yaml:"restartThreshold"`
	Prefixes         PrefixesDTO `yaml:"prefixes"`
	Memory           MemoryDTO   `yaml:"memory"`
	SweepInterval    string      `yaml:"sweepInterval"`
	Metrics          MetricsDTO  `yaml:"metrics"`
	Log              LogDTO      `yaml:"log"`
	ShadowCopyDir    string      `yaml:"shadowCopyDir"`
}

// PrefixesDTO holds the module name prefixes.
type PrefixesDTO struct {
	Graph     string `yaml:"graph"`
	Removable string `yaml:"removable"`
}

// MemoryDTO configures the memory layer.
type MemoryDTO struct {
	IdleTTL string `yaml:"idleTTL"`
}

// MetricsDTO configures the metrics endpoint.
type MetricsDTO struct {
	Addr string `yaml:"addr"`
}

// LogDTO configures logging.
type LogDTO struct {
	JSON bool `yaml:"json"`
}
