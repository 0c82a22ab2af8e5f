package boundary

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/joshuapare/axkit/internal/logger"
	"github.com/joshuapare/axkit/pkg/types"
)

type options struct {
	policy StringPolicy
	logger *slog.Logger
	meter  metric.MeterProvider
	tracer trace.TracerProvider
	limits types.Limits
}

// Option configures a Boundary.
type Option func(*options)

// WithStringPolicy selects how strings that cannot cross the boundary are
// handled. The default is StringAbsent.
func WithStringPolicy(p StringPolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithLogger sets the logger. The default is the package-global logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMeterProvider sets the provider of the handle and call metrics. The
// default is the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meter = mp }
}

// WithTracerProvider is passed on to the adapters created by AdapterNew.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracer = tp }
}

// WithLimits bounds the lengths read from boundary records.
func WithLimits(l types.Limits) Option {
	return func(o *options) { o.limits = l }
}

func buildOptions(opts []Option) options {
	o := options{policy: StringAbsent, limits: types.DefaultLimits()}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = logger.Or(o.logger)
	if o.meter == nil {
		o.meter = otel.GetMeterProvider()
	}
	if o.tracer == nil {
		o.tracer = otel.GetTracerProvider()
	}
	o.limits = o.limits.Normalize()
	return o
}
