package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging and adjacency trace")
	flagTrace  = flag.Bool("trace", false, "Log every discovered adjacency")
	flagFormat = flag.String("format", "", "Report format: text, json or yaml")
	flagOut    = flag.String("out", "", "Write the report to this file instead of stdout")
	flagAddr   = flag.String("addr", "", "HTTP listen address for serve")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Analysis.Trace = true
	}
	if *flagTrace {
		cfg.Analysis.Trace = true
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
	if *flagAddr != "" {
		cfg.Server.Addr = *flagAddr
	}
}
