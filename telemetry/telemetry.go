// Package telemetry wires OpenTelemetry tracing for a generator run.
package telemetry

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName         = "github.com/n9te9/graphql-operation-generator"
	defaultServiceName = "gql-operation-gen"
)

type OpentelemetrySetting struct {
	ServiceName    string                      `yaml:"service_name"`
	TracingSetting OpentelemetryTracingSetting `yaml:"tracing"`
}

type OpentelemetryTracingSetting struct {
	Enable bool `yaml:"enable"`
	// Endpoint is the OTLP/HTTP collector URL, e.g. http://localhost:4318.
	// The exporter's environment defaults apply when empty.
	Endpoint string `yaml:"endpoint"`
}

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

// Setup installs a global tracer provider exporting over OTLP/HTTP when
// tracing is enabled. Otherwise it does nothing and returns a no-op shutdown.
func Setup(ctx context.Context, setting OpentelemetrySetting) (ShutdownFunc, error) {
	if !setting.TracingSetting.Enable {
		return func(context.Context) error { return nil }, nil
	}

	var opts []otlptracehttp.Option
	if setting.TracingSetting.Endpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpointURL(setting.TracingSetting.Endpoint))
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	serviceName := setting.ServiceName
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// Tracer returns the tracer used for run level spans.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// HTTPClient returns a client for introspection requests. Its transport is
// instrumented when tracing is enabled.
func HTTPClient(setting OpentelemetrySetting) *http.Client {
	httpClient := &http.Client{}
	if setting.TracingSetting.Enable {
		httpClient.Transport = otelhttp.NewTransport(http.DefaultTransport)
	}
	return httpClient
}
