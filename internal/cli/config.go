package cli

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/hikaridb/proxygen/internal/utils"
)

// DefaultConfigFile is the config file looked up at the project root
const DefaultConfigFile = "proxygen.yml"

// Config holds the optional file-based configuration. Everything has a
// default; a missing config file is not an error.
type Config struct {
	// Output is the output root; generated artifacts land under
	// <output>/target/classes
	Output string `yaml:"output"`
	// Classpath lists the directories scanned for typedef files
	Classpath []string `yaml:"classpath"`
	// Imports lists packages used to resolve simple type names
	Imports []string `yaml:"imports"`
}

// LoadConfig reads and parses a config file
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.WrapLoadError("config file "+path, err)
	}

	var config Config
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, utils.WrapParseError("config file "+path, err)
	}

	return &config, nil
}

// LoadConfigIfPresent loads the config file when it exists and returns an
// empty config otherwise
func LoadConfigIfPresent(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadConfig(path)
}

// ApplyDefaults fills unset fields relative to the project root
func (c *Config) ApplyDefaults(projectRoot string) {
	if c.Output == "" {
		c.Output = projectRoot
	}
	if len(c.Classpath) == 0 {
		c.Classpath = []string{filepath.Join(projectRoot, "typedefs")}
	}
	if len(c.Imports) == 0 {
		c.Imports = []string{"java.sql"}
	}
}
