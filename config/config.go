// Package config loads the generator configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mitchellh/go-homedir"
	"github.com/n9te9/graphql-operation-generator/generator"
	"github.com/n9te9/graphql-operation-generator/introspection"
	"github.com/n9te9/graphql-operation-generator/telemetry"
)

// DefaultPath is the config file read when none is given explicitly.
const DefaultPath = "./.gqlgen.yaml"

// ErrNoSource is returned when neither an endpoint nor a schema file is configured.
var ErrNoSource = errors.New("please provide graphql endpoint or schema")

type Config struct {
	Endpoint          string                         `yaml:"endpoint"`
	Schema            StringList                     `yaml:"schema"`
	Dir               string                         `yaml:"dir"`
	GenDir            string                         `yaml:"gen_dir"`
	DepthLimit        int                            `yaml:"depth_limit"`
	Indent            int                            `yaml:"indent"`
	EmptySelection    string                         `yaml:"empty_selection"`
	ValidateDocuments bool                           `yaml:"validate"`
	Headers           map[string]string              `yaml:"headers"`
	Retry             introspection.RetryOption      `yaml:"retry"`
	LogLevel          string                         `yaml:"log_level"`
	Opentelemetry     telemetry.OpentelemetrySetting `yaml:"opentelemetry"`
}

// StringList decodes from either a single string or a list of strings.
type StringList []string

func (l *StringList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var one string
	if err := unmarshal(&one); err == nil {
		*l = StringList{one}
		return nil
	}

	var many []string
	if err := unmarshal(&many); err != nil {
		return err
	}
	*l = many
	return nil
}

// Default returns a Config holding every default value.
func Default() *Config {
	return &Config{
		Dir:            "./gql",
		GenDir:         "generated",
		DepthLimit:     generator.DefaultDepthLimit,
		Indent:         generator.DefaultIndentWidth,
		EmptySelection: generator.OmitEmptySelection.String(),
		Retry: introspection.RetryOption{
			Attempts: 3,
			Timeout:  "5s",
		},
		LogLevel: "info",
	}
}

// Load reads the config file at path over the defaults. JSON files are
// accepted since JSON is valid YAML.
func Load(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields the defaults.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// ExpandPaths replaces a leading ~ in every configured path.
func (c *Config) ExpandPaths() error {
	dir, err := homedir.Expand(c.Dir)
	if err != nil {
		return err
	}
	c.Dir = dir

	for i, p := range c.Schema {
		expanded, err := homedir.Expand(p)
		if err != nil {
			return err
		}
		c.Schema[i] = expanded
	}
	return nil
}

// Validate checks the configuration before a run.
func (c *Config) Validate() error {
	if c.Endpoint == "" && len(c.Schema) == 0 {
		return ErrNoSource
	}
	if c.DepthLimit < 1 {
		return fmt.Errorf("depth_limit must be at least 1, got %d", c.DepthLimit)
	}
	if c.Indent < 1 {
		return fmt.Errorf("indent must be at least 1, got %d", c.Indent)
	}
	if c.GenDir == "" {
		return errors.New("gen_dir must not be empty")
	}
	if _, err := generator.ParseEmptySelectionPolicy(c.EmptySelection); err != nil {
		return err
	}
	return nil
}

// GeneratorOptions returns the generation options described by c.
func (c *Config) GeneratorOptions() (generator.Options, error) {
	policy, err := generator.ParseEmptySelectionPolicy(c.EmptySelection)
	if err != nil {
		return generator.Options{}, err
	}
	return generator.Options{
		DepthLimit:     c.DepthLimit,
		IndentWidth:    c.Indent,
		EmptySelection: policy,
	}, nil
}

// FetchOption returns the introspection fetch options described by c.
func (c *Config) FetchOption() introspection.FetchOption {
	return introspection.FetchOption{
		Headers: c.Headers,
		Retry:   c.Retry,
	}
}
