package observability

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TracingPublisherDecorator opens a span per publish and propagates the trace
// context through message metadata.
type TracingPublisherDecorator struct {
	message.Publisher
}

func (d TracingPublisherDecorator) Publish(topic string, messages ...*message.Message) error {
	for i := range messages {
		ctx, span := otel.Tracer("storefront").Start(
			messages[i].Context(),
			"publish "+topic,
			trace.WithSpanKind(trace.SpanKindProducer),
			trace.WithAttributes(attribute.String("messaging.destination", topic)),
		)
		otel.GetTextMapPropagator().Inject(ctx, propagationCarrier(messages[i].Metadata))
		messages[i].SetContext(ctx)
		span.End()
	}
	return d.Publisher.Publish(topic, messages...)
}

type propagationCarrier message.Metadata

func (c propagationCarrier) Get(key string) string {
	return message.Metadata(c).Get(key)
}

func (c propagationCarrier) Set(key string, value string) {
	message.Metadata(c).Set(key, value)
}

func (c propagationCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}
