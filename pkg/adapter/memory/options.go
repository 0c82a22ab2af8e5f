package memory

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/joshuapare/axkit/internal/logger"
	"github.com/joshuapare/axkit/pkg/types"
)

const instrumentationName = "github.com/joshuapare/axkit/pkg/adapter/memory"

// historyLimit bounds the raised-event history kept for inspection.
const historyLimit = 256

type options struct {
	logger *slog.Logger
	tracer trace.TracerProvider
	limits types.Limits
}

// Option configures an Adapter.
type Option func(*options)

// WithLogger sets the logger. The default is the package-global logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTracerProvider sets the provider of the spans recorded around
// updates and action dispatch. The default is the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracer = tp }
}

// WithLimits bounds the updates the adapter accepts.
func WithLimits(l types.Limits) Option {
	return func(o *options) { o.limits = l }
}

func buildOptions(opts []Option) options {
	o := options{limits: types.DefaultLimits()}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = logger.Or(o.logger)
	if o.tracer == nil {
		o.tracer = otel.GetTracerProvider()
	}
	o.limits = o.limits.Normalize()
	return o
}
