package config_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/n9te9/graphql-operation-generator/config"
	"github.com/n9te9/graphql-operation-generator/generator"
	"github.com/n9te9/graphql-operation-generator/introspection"
	"github.com/n9te9/graphql-operation-generator/telemetry"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		path string
		want *config.Config
	}{
		{
			name: "every option",
			path: "testdata/full.yaml",
			want: &config.Config{
				Endpoint:          "http://localhost:4000/graphql",
				Dir:               "./out",
				GenDir:            "ops",
				DepthLimit:        7,
				Indent:            4,
				EmptySelection:    "typename",
				ValidateDocuments: true,
				Headers:           map[string]string{"Authorization": "Bearer secret"},
				Retry:             introspection.RetryOption{Attempts: 5, Timeout: "2s"},
				LogLevel:          "debug",
				Opentelemetry: telemetry.OpentelemetrySetting{
					ServiceName: "ops-gen",
					TracingSetting: telemetry.OpentelemetryTracingSetting{
						Enable:   true,
						Endpoint: "http://localhost:4318",
					},
				},
			},
		},
		{
			name: "schema list keeps defaults",
			path: "testdata/schemas.yaml",
			want: func() *config.Config {
				c := config.Default()
				c.Schema = config.StringList{"schema/users.graphql", "schema/posts.graphql"}
				return c
			}(),
		},
		{
			name: "json file with a single schema",
			path: "testdata/legacy.json",
			want: func() *config.Config {
				c := config.Default()
				c.Schema = config.StringList{"./schema.graphql"}
				return c
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := config.Load(tt.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for an explicitly named missing file")
	}

	cfg, err := config.LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
		is      error
	}{
		{
			name:    "no source",
			mutate:  func(c *config.Config) {},
			wantErr: true,
			is:      config.ErrNoSource,
		},
		{
			name:   "endpoint",
			mutate: func(c *config.Config) { c.Endpoint = "http://localhost/graphql" },
		},
		{
			name:   "schema",
			mutate: func(c *config.Config) { c.Schema = config.StringList{"schema.graphql"} },
		},
		{
			name: "zero depth",
			mutate: func(c *config.Config) {
				c.Endpoint = "http://localhost/graphql"
				c.DepthLimit = 0
			},
			wantErr: true,
		},
		{
			name: "zero indent",
			mutate: func(c *config.Config) {
				c.Endpoint = "http://localhost/graphql"
				c.Indent = 0
			},
			wantErr: true,
		},
		{
			name: "unknown policy",
			mutate: func(c *config.Config) {
				c.Endpoint = "http://localhost/graphql"
				c.EmptySelection = "fragment"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.Default()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestConfig_GeneratorOptions(t *testing.T) {
	c := config.Default()
	c.DepthLimit = 4
	c.Indent = 3
	c.EmptySelection = "bare"

	got, err := c.GeneratorOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := generator.Options{DepthLimit: 4, IndentWidth: 3, EmptySelection: generator.KeepBareField}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_ExpandPaths(t *testing.T) {
	c := config.Default()
	c.Dir = "./relative"
	c.Schema = config.StringList{"/abs/schema.graphql"}

	if err := c.ExpandPaths(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Dir != "./relative" || c.Schema[0] != "/abs/schema.graphql" {
		t.Errorf("paths without ~ must be kept: %+v", c)
	}
}
