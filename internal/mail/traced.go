package mail

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/scoutclear/scout/internal/mail"

// TracedSender wraps a Sender in a client span
type TracedSender struct {
	next   Sender
	tracer trace.Tracer
}

func NewTracedSender(next Sender) *TracedSender {
	return &TracedSender{
		next:   next,
		tracer: otel.Tracer(tracerName),
	}
}

func (s *TracedSender) Name() string {
	return s.next.Name()
}

func (s *TracedSender) Send(ctx context.Context, msg Message) (string, error) {
	ctx, span := s.tracer.Start(ctx, "mail.send",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("mail.provider", s.next.Name())),
	)
	defer span.End()

	id, err := s.next.Send(ctx, msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		return "", err
	}

	span.SetAttributes(attribute.String("mail.message_id", id))
	return id, nil
}
