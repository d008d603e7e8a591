// Package runner performs one generation run: it loads the schema, generates
// an operation document for every root field and writes the documents to disk.
package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/n9te9/graphql-operation-generator/config"
	"github.com/n9te9/graphql-operation-generator/generator"
	"github.com/n9te9/graphql-operation-generator/introspection"
	"github.com/n9te9/graphql-operation-generator/output"
	"github.com/n9te9/graphql-operation-generator/sdl"
	"github.com/n9te9/graphql-operation-generator/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// Summary describes the outcome of a run.
type Summary struct {
	Written []string
	Skipped int
}

// Run generates the documents described by cfg. Fields whose document cannot
// be generated are logged and skipped; schema loading and write failures
// abort the run.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Summary, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "runner.Run")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := cfg.GeneratorOptions()
	if err != nil {
		return nil, err
	}

	graph, err := LoadSchema(ctx, cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	w := output.NewWriter(cfg.Dir, cfg.GenDir, cfg.ValidateDocuments)
	if err := w.Prepare(); err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, kind := range generator.OperationKinds {
		if generator.RootTypeName(graph, kind) == "" {
			continue
		}

		logger.Info(fmt.Sprintf("Generating %s...", kind.Plural()))
		docs, errs := generator.GenerateKind(graph, kind, opts)
		for _, err := range errs {
			logger.Warn("skipped field", zap.Error(err))
		}
		summary.Skipped += len(errs)

		for _, doc := range docs {
			path, err := w.Write(doc)
			if err != nil {
				return summary, err
			}
			logger.Debug("wrote document", zap.String("path", path), zap.Int("variables", len(doc.Variables)))
			summary.Written = append(summary.Written, path)
		}
	}

	span.SetAttributes(
		attribute.Int("generator.written", len(summary.Written)),
		attribute.Int("generator.skipped", summary.Skipped),
	)
	logger.Info("Done!", zap.Int("written", len(summary.Written)), zap.Int("skipped", summary.Skipped))
	return summary, nil
}

// LoadSchema builds the type graph from the endpoint when one is configured,
// otherwise from the schema files. A .json schema file holds an introspection
// result and must be the only file given; any other file is read as SDL.
func LoadSchema(ctx context.Context, cfg *config.Config) (*generator.Schema, error) {
	if cfg.Endpoint != "" {
		fetcher := introspection.NewFetcher(telemetry.HTTPClient(cfg.Opentelemetry), cfg.FetchOption())
		s, err := fetcher.Fetch(ctx, cfg.Endpoint)
		if err != nil {
			return nil, err
		}
		return s.TypeGraph()
	}

	if len(cfg.Schema) == 0 {
		return nil, config.ErrNoSource
	}

	var jsonFiles int
	for _, p := range cfg.Schema {
		if isIntrospectionFile(p) {
			jsonFiles++
		}
	}

	switch {
	case jsonFiles == 0:
		return sdl.Load(cfg.Schema...)
	case len(cfg.Schema) == 1:
		s, err := introspection.DecodeFile(cfg.Schema[0])
		if err != nil {
			return nil, err
		}
		return s.TypeGraph()
	default:
		return nil, errors.New("an introspection result (.json) schema must be the only schema file")
	}
}

func isIntrospectionFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
