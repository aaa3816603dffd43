// Package config handles meshfold configuration loading and management.
package config

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// Output formats understood by the report renderer.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all settings.
type Config struct {
	Mesh     MeshConfig     `yaml:"mesh"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// MeshConfig holds input settings.
type MeshConfig struct {
	Path string   `yaml:"path"` // Default STL file when none is given on the command line
	Dirs []string `yaml:"dirs"` // Directories served by GET /v1/meshes, last one wins
}

// AnalysisConfig holds adjacency walk settings.
type AnalysisConfig struct {
	Trace          bool `yaml:"trace"`            // Log one line per discovered adjacency
	CountVertices  bool `yaml:"count_vertices"`   // Deduplicate vertices for the report
	IncludeEvents  bool `yaml:"include_events"`   // Put adjacency events in the report
	MinGroupReport int  `yaml:"min_group_report"` // Leave groups smaller than this out of the report
}

// OutputConfig holds report settings.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json or yaml
	Path   string `yaml:"path"`   // Empty writes to stdout
}

// ServerConfig holds HTTP front end settings.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	MaxUploadMB  int           `yaml:"max_upload_mb"` // Applies to the body before and after gzip
	MaxTriangles int           `yaml:"max_triangles"` // Larger meshes are rejected before the walk
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Trace:          false,
			CountVertices:  true,
			IncludeEvents:  true,
			MinGroupReport: 0,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			MaxUploadMB:  16,
			MaxTriangles: 50000,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		err = multierr.Append(err, fmt.Errorf("output.format: unknown format %q", c.Output.Format))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}

	if c.Server.Addr == "" {
		err = multierr.Append(err, fmt.Errorf("server.addr: must not be empty"))
	}
	if c.Server.MaxUploadMB <= 0 {
		err = multierr.Append(err, fmt.Errorf("server.max_upload_mb: must be positive, got %d", c.Server.MaxUploadMB))
	}
	if c.Server.MaxTriangles <= 0 {
		err = multierr.Append(err, fmt.Errorf("server.max_triangles: must be positive, got %d", c.Server.MaxTriangles))
	}
	if c.Analysis.MinGroupReport < 0 {
		err = multierr.Append(err, fmt.Errorf("analysis.min_group_report: must not be negative, got %d", c.Analysis.MinGroupReport))
	}

	return err
}
