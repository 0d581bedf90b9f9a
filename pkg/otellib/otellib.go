package otellib

import (
	"context"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

// JaegerConfig for configuring the jaeger collector exporter.
type JaegerConfig struct {
	Enabled  bool    `mapstructure:"enabled"`
	Endpoint string  `mapstructure:"endpoint"`
	Ratio    float64 `mapstructure:"ratio"`
}

// InitOtel returns the tracer provider and a shutdown function.
func InitOtel(serviceName string, environment string, conf JaegerConfig) (trace.TracerProvider, func()) {
	if !conf.Enabled {
		return trace.NewNoopTracerProvider(), func() {}
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(
		jaeger.WithEndpoint(conf.Endpoint),
	))
	if err != nil {
		panic(err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(conf.Ratio)),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.DeploymentEnvironment(environment),
		)),
	)

	shutdown := func() {
		_ = provider.Shutdown(context.Background())
	}
	return provider, shutdown
}

// UnaryServerInterceptor ...
func UnaryServerInterceptor(provider trace.TracerProvider) grpc.UnaryServerInterceptor {
	//nolint:staticcheck
	return otelgrpc.UnaryServerInterceptor(otelgrpc.WithTracerProvider(provider))
}
