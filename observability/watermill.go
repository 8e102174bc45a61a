package observability

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/sirupsen/logrus"
)

// NewWatermillLogger adapts a logrus entry to watermill's logger interface.
func NewWatermillLogger(logger *logrus.Entry) watermill.LoggerAdapter {
	return watermillLogger{logger: logger}
}

type watermillLogger struct {
	logger *logrus.Entry
}

func (l watermillLogger) Error(msg string, err error, fields watermill.LogFields) {
	l.logger.WithError(err).WithFields(logrus.Fields(fields)).Error(msg)
}

func (l watermillLogger) Info(msg string, fields watermill.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l watermillLogger) Debug(msg string, fields watermill.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l watermillLogger) Trace(msg string, fields watermill.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Trace(msg)
}

func (l watermillLogger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return watermillLogger{logger: l.logger.WithFields(logrus.Fields(fields))}
}

// CorrelationPublisherDecorator stamps the correlation id from the context
// onto every outgoing message's metadata.
type CorrelationPublisherDecorator struct {
	message.Publisher
}

func (d CorrelationPublisherDecorator) Publish(topic string, messages ...*message.Message) error {
	for i := range messages {
		if messages[i].Metadata.Get("correlation_id") != "" {
			continue
		}
		messages[i].Metadata.Set("correlation_id", correlationID(messages[i].Context()))
	}
	return d.Publisher.Publish(topic, messages...)
}

func correlationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	return CorrelationIDFromContext(ctx)
}
