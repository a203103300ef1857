package observability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/janhq/agent-memory-store/internal/config"
	"github.com/janhq/agent-memory-store/internal/infrastructure/metrics"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

// TracerName identifies spans and instruments created by this service.
const TracerName = "github.com/janhq/agent-memory-store"

// Shutdown is a function that releases telemetry resources.
type Shutdown func(ctx context.Context) error

// Setup installs the global propagator and, when enabled, the OTLP tracer and meter providers.
func Setup(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Shutdown, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	var shutdownFuncs []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		for _, fn := range shutdownFuncs {
			if err := fn(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	if cfg.OTLPEndpoint == "" || (!cfg.EnableTracing && !cfg.EnableOTLPMetrics) {
		log.Info().Msg("opentelemetry export disabled")
		return shutdown, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if cfg.EnableTracing {
		tp, err := newTracerProvider(ctx, cfg, res)
		if err != nil {
			return nil, fmt.Errorf("failed to init tracer: %w", err)
		}
		otel.SetTracerProvider(tp)
		shutdownFuncs = append(shutdownFuncs, tp.Shutdown)
		log.Info().Str("endpoint", cfg.OTLPEndpoint).Float64("sample_ratio", cfg.TraceSampleRatio).Msg("tracing enabled")
	}

	if cfg.EnableOTLPMetrics {
		mp, err := newMeterProvider(ctx, cfg, res)
		if err != nil {
			_ = shutdown(ctx)
			return nil, fmt.Errorf("failed to init meter: %w", err)
		}
		otel.SetMeterProvider(mp)
		shutdownFuncs = append(shutdownFuncs, mp.Shutdown)
		log.Info().Str("endpoint", cfg.OTLPEndpoint).Dur("interval", cfg.MetricInterval).Msg("otlp metrics enabled")
	}

	return shutdown, nil
}

func newTracerProvider(ctx context.Context, cfg *config.Config, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.OTLPEndpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.TraceSampleRatio))),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}

func newMeterProvider(ctx context.Context, cfg *config.Config, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetrichttp.New(ctx,
		otlpmetrichttp.WithEndpoint(cfg.OTLPEndpoint),
		otlpmetrichttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.MetricInterval))),
		sdkmetric.WithResource(res),
	), nil
}

// Tracer returns the service tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

var (
	instrumentsOnce   sync.Once
	operationDuration metric.Float64Histogram
)

// operationHistogram is created against the global meter, which forwards to the
// provider installed by Setup even when it is installed later.
func operationHistogram() metric.Float64Histogram {
	instrumentsOnce.Do(func() {
		h, err := otel.Meter(TracerName).Float64Histogram(
			"memory_store.repository.duration",
			metric.WithUnit("s"),
			metric.WithDescription("Repository operation duration"),
		)
		if err != nil {
			otel.Handle(err)
			return
		}
		operationDuration = h
	})
	return operationDuration
}

// Operation tracks one repository call: a client span plus the repository metrics.
type Operation struct {
	ctx       context.Context
	span      trace.Span
	entity    string
	operation string
	started   time.Time
}

// StartOperation opens a span named "<entity>.<operation>" and starts the clock.
func StartOperation(ctx context.Context, entity, operation string, attrs ...attribute.KeyValue) (context.Context, *Operation) {
	attrs = append(attrs,
		attribute.String("db.entity", entity),
		attribute.String("db.operation", operation),
	)
	ctx, span := Tracer().Start(ctx, entity+"."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	return ctx, &Operation{ctx: ctx, span: span, entity: entity, operation: operation, started: time.Now()}
}

// End records the outcome of err and closes the span. It returns err unchanged.
func (o *Operation) End(err error) error {
	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
		o.span.SetStatus(codes.Ok, "")
	case platformerrors.IsNotFound(err):
		outcome = metrics.OutcomeNotFound
	case platformerrors.IsAlreadyExists(err):
		outcome = metrics.OutcomeConflict
		o.span.SetStatus(codes.Error, "conflict")
	default:
		outcome = metrics.OutcomeError
		o.span.RecordError(err)
		o.span.SetStatus(codes.Error, err.Error())
	}
	o.span.SetAttributes(attribute.String("db.outcome", outcome))
	o.span.End()

	metrics.RecordRepositoryOperation(o.entity, o.operation, outcome, o.started)
	if h := operationHistogram(); h != nil {
		h.Record(o.ctx, time.Since(o.started).Seconds(), metric.WithAttributes(
			attribute.String("entity", o.entity),
			attribute.String("operation", o.operation),
			attribute.String("outcome", outcome),
		))
	}
	return err
}
