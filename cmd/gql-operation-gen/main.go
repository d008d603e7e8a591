package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/n9te9/graphql-operation-generator/config"
	"github.com/n9te9/graphql-operation-generator/runner"
	"github.com/n9te9/graphql-operation-generator/telemetry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "v0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gql-operation-gen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "gql-operation-gen "+version)
	},
}

type generateFlags struct {
	configPath     string
	endpoint       string
	schema         []string
	dir            string
	genDir         string
	depthLimit     int
	indent         int
	emptySelection string
	validate       bool
	headers        []string
}

func newGenerateCmd(f *generateFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate an operation document for every root field of a schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			return generate(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", config.DefaultPath, "config file path")
	flags.StringVarP(&f.endpoint, "endpoint", "e", "", "GraphQL endpoint to introspect")
	flags.StringSliceVarP(&f.schema, "schema", "s", nil, "schema files (SDL, or a single introspection .json)")
	flags.StringVarP(&f.dir, "dir", "d", "", "output directory")
	flags.StringVarP(&f.genDir, "gen-dir", "g", "", "generated directory inside the output directory")
	flags.IntVar(&f.depthLimit, "depth-limit", 0, "maximum selection depth")
	flags.IntVar(&f.indent, "indent", 0, "spaces per nesting level")
	flags.StringVar(&f.emptySelection, "empty-selection", "", "handling of empty selections: omit, bare or typename")
	flags.BoolVar(&f.validate, "validate", false, "parse every generated document before writing it")
	flags.StringArrayVar(&f.headers, "header", nil, "extra introspection request header as Name: value")

	return cmd
}

// load reads the config file and applies the flags that were set on top of it.
func (f *generateFlags) load(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(f.configPath)
	} else {
		cfg, err = config.LoadOptional(f.configPath)
	}
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("endpoint") {
		cfg.Endpoint = f.endpoint
	}
	if changed("schema") {
		cfg.Schema = f.schema
	}
	if changed("dir") {
		cfg.Dir = f.dir
	}
	if changed("gen-dir") {
		cfg.GenDir = f.genDir
	}
	if changed("depth-limit") {
		cfg.DepthLimit = f.depthLimit
	}
	if changed("indent") {
		cfg.Indent = f.indent
	}
	if changed("empty-selection") {
		cfg.EmptySelection = f.emptySelection
	}
	if changed("validate") {
		cfg.ValidateDocuments = f.validate
	}
	for _, h := range f.headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok {
			return nil, fmt.Errorf("invalid header %q, expected Name: value", h)
		}
		if cfg.Headers == nil {
			cfg.Headers = make(map[string]string)
		}
		cfg.Headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	if err := cfg.ExpandPaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func generate(ctx context.Context, cfg *config.Config) error {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	shutdown, err := telemetry.Setup(ctx, cfg.Opentelemetry)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	if _, err := runner.Run(ctx, cfg, logger); err != nil {
		logger.Error("generation failed", zap.Error(err))
		return err
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", level, err)
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.DisableStacktrace = true
	zc.DisableCaller = true
	return zc.Build()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gql-operation-gen",
		Short:         "Generate GraphQL operation documents from a schema",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("gql-operation-gen {{.Version}}\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newGenerateCmd(&generateFlags{}))
	return rootCmd
}

func main() {
	rootCmd := newRootCmd()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
