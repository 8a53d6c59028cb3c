package hits

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the file form of Options, e.g.
//
//	tolerance: 1.0e-8
//	max_iterations: 100
//	normalize: true
//	workers: 4
//	attributes:
//	  hub: h
//	  authority: a
//
// Zero-valued or absent fields keep the defaults.
type Config struct {
	Tolerance     float64          `yaml:"tolerance"`
	MaxIterations int              `yaml:"max_iterations"`
	Normalize     *bool            `yaml:"normalize"`
	Workers       int              `yaml:"workers"`
	Attributes    AttributesConfig `yaml:"attributes"`
}

// AttributesConfig names the attribute keys used by Assign.
type AttributesConfig struct {
	Hub       string `yaml:"hub"`
	Authority string `yaml:"authority"`
}

// LoadConfig decodes a YAML Config from r. Unknown keys are rejected.
// An empty document yields the zero Config (all defaults).
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("hits: decode config: %w", err)
	}

	return cfg, nil
}

// WithConfig applies every non-zero field of c. Later options still override it.
func WithConfig(c Config) Option {
	return func(o *Options) {
		if c.Tolerance != 0 {
			o.Tolerance = c.Tolerance
		}
		if c.MaxIterations != 0 {
			o.MaxIterations = c.MaxIterations
		}
		if c.Normalize != nil {
			o.Normalize = *c.Normalize
		}
		if c.Workers != 0 {
			o.Workers = c.Workers
		}
		if c.Attributes.Hub != "" {
			o.HubAttr = c.Attributes.Hub
		}
		if c.Attributes.Authority != "" {
			o.AuthorityAttr = c.Attributes.Authority
		}
	}
}
