package export

import (
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the on-disk shape of a gltfwriter run, mirroring the shape
// of converter.Config (converter/vrmconfig.go) but YAML instead of
// JSON, per SPEC_FULL.md §5.
type Config struct {
	Binary         bool            `yaml:"binary"`
	TRS            bool            `yaml:"trs"`
	OnlyVisible    *bool           `yaml:"onlyVisible"`
	MaxTextureSize int             `yaml:"maxTextureSize"`
	Generator      string          `yaml:"generator"`
	Extensions     map[string]bool `yaml:"extensions"` // name -> enabled, overrides DefaultRegistry's built-in set
}

// LoadConfig reads a YAML config file. A missing or unreadable file is
// returned as an error; cmd/gltfwriter decides whether that's fatal.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeConfig(f)
}

func DecodeConfig(r io.Reader) (*Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Apply merges c onto a base Options, returning the result.
func (c *Config) Apply(opts *Options) *Options {
	if c == nil {
		return opts
	}
	opts.Binary = c.Binary
	opts.TRS = c.TRS
	if c.OnlyVisible != nil {
		opts.OnlyVisible = *c.OnlyVisible
	}
	if c.MaxTextureSize > 0 {
		opts.MaxTextureSize = c.MaxTextureSize
	}
	if c.Generator != "" {
		opts.Generator = c.Generator
	}
	return opts
}
