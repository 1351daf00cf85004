package config

import (
	"io/ioutil"
	"path/filepath"
)

import (
	"github.com/timtadh/data-structures/errors"
	"gopkg.in/yaml.v3"
)

import (
	"github.com/timtadh/cspan/closure"
)

type Config struct {
	Output    string  `yaml:"output"`
	Support   float64 `yaml:"support"`
	Policy    string  `yaml:"policy"`
	Delimiter string  `yaml:"delimiter"`

	// MinSupport is the absolute support derived from Support once the
	// database size is known.
	MinSupport int `yaml:"-"`
}

func Default() *Config {
	return &Config{
		Policy:    "prefix",
		Delimiter: " ",
	}
}

// Load reads a yaml config file. Keys missing from the file keep their
// Default values.
func Load(path string) (*Config, error) {
	bytes, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(bytes, c); err != nil {
		return nil, errors.Errorf("could not parse config %v: %v", path, err)
	}
	return c, nil
}

func (c *Config) Copy() *Config {
	return &Config{
		Output:     c.Output,
		Support:    c.Support,
		Policy:     c.Policy,
		Delimiter:  c.Delimiter,
		MinSupport: c.MinSupport,
	}
}

func (c *Config) ClosurePolicy() (closure.Policy, error) {
	if c.Policy == "" {
		return closure.Prefix, nil
	}
	return closure.Parse(c.Policy)
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}
