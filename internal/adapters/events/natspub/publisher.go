package natspub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"petcare-registry/internal/ports/events"
)

// Publisher publica cambios JSON en subjects de NATS.
type Publisher struct {
	conn *nats.Conn
}

var _ events.Publisher = (*Publisher)(nil)

// New conecta a NATS con reconexión automática.
// Se pueden agregar nats.Option extra (handlers de desconexión, nombre, etc).
func New(url string, opts ...nats.Option) (*Publisher, error) {
	defaults := []nats.Option{
		nats.Name("petcare-registry"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	}
	nc, err := nats.Connect(url, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}
	return &Publisher{conn: nc}, nil
}

func (p *Publisher) Publish(ctx context.Context, subject string, event any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}
	return p.conn.Publish(subject, data)
}

func (p *Publisher) Close() error {
	return p.conn.Drain()
}
