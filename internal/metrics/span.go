package metrics

import (
	"context"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/san-kum/quadlab/internal/quad"
)

const tracerName = "github.com/san-kum/quadlab/internal/quad"

// SpanObserver emits one span per report, timed by the report itself.
type SpanObserver struct {
	ctx    context.Context
	tracer trace.Tracer
}

func NewSpanObserver(ctx context.Context, tp trace.TracerProvider) *SpanObserver {
	return &SpanObserver{
		ctx:    ctx,
		tracer: tp.Tracer(tracerName),
	}
}

func (s *SpanObserver) OnReport(r *quad.Report) {
	_, span := s.tracer.Start(s.ctx, "quad.Integrate",
		trace.WithTimestamp(r.Start),
		trace.WithAttributes(
			attribute.String("quad.method", r.Method),
			attribute.Int("quad.evals", r.Evals),
			attribute.Int("quad.iterations", r.Iterations),
			attribute.Float64("quad.output", r.Output),
		),
	)
	if math.IsNaN(r.Output) || math.IsInf(r.Output, 0) {
		span.SetStatus(codes.Error, "non-finite output")
	}
	span.End(trace.WithTimestamp(r.End))
}
