package dbusgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries generation settings that are fixed for the lifetime
// of a run. All fields are optional; zero values fall back to
// defaults.
type Config struct {
	// ObjectPathTypename is the C++ typename substituted for the
	// object path type code. Empty means DefaultObjectPathTypename.
	ObjectPathTypename string `yaml:"object_path_typename"`
	// Namespace is the C++ namespace wrapping generated
	// declarations, e.g. "org::chromium". Empty means no namespace.
	Namespace string `yaml:"namespace"`
	// IncludeGuard overrides the include guard symbol otherwise
	// derived from the output filename.
	IncludeGuard string `yaml:"include_guard"`
	// Interfaces restricts generation to the named interfaces. Empty
	// means every interface in the input.
	Interfaces []string `yaml:"interfaces"`
}

// LoadConfig reads a YAML service configuration file.
func LoadConfig(path string) (*Config, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var ret Config
	if err := yaml.Unmarshal(bs, &ret); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &ret, nil
}

// Parser returns a signature Parser configured per c.
func (c *Config) Parser() *Parser {
	ret := NewParser()
	if c.ObjectPathTypename != "" {
		ret.SetObjectPathTypename(c.ObjectPathTypename)
	}
	return ret
}

// WantInterface reports whether generation is enabled for the named
// interface.
func (c *Config) WantInterface(name string) bool {
	if len(c.Interfaces) == 0 {
		return true
	}
	for _, n := range c.Interfaces {
		if n == name {
			return true
		}
	}
	return false
}
