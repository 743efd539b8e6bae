package rabbitmq

import (
	"context"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/port"
)

// NoopBroker stands in when event publishing is disabled.
type NoopBroker struct{}

var _ port.Broker = NoopBroker{}

func (NoopBroker) Publish(context.Context, domain.Event) error { return nil }
func (NoopBroker) Close() error                                { return nil }
