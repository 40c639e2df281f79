package events

import "context"

// NoopConsumer keeps the catalog consumer loop idle in deployments
// without a broker; the playlist catalog then changes only via the
// database.
type NoopConsumer struct{}

func NewNoopConsumer() *NoopConsumer {
	return &NoopConsumer{}
}

func (n *NoopConsumer) Poll(_ context.Context, _ int) ([]Message, error) {
	return nil, nil
}
