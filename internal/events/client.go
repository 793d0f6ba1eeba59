package events

import (
	"context"
	"fmt"
	"time"

	"hackathon-registration-backend/internal/logger"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Config holds the NATS connection settings
type Config struct {
	URL           string
	Stream        string
	MaxReconnect  int
	ReconnectWait time.Duration
	Timeout       time.Duration
}

// Client owns the NATS connection and its JetStream context
type Client struct {
	conn *nats.Conn
	js   jetstream.JetStream
	cfg  *Config
}

// NewClient connects to NATS and creates a JetStream context
func NewClient(cfg *Config) (*Client, error) {
	log := logger.New().WithField("nats_url", cfg.URL)

	opts := []nats.Option{
		nats.Name("hackathon-registration-backend"),
		nats.MaxReconnects(cfg.MaxReconnect),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.Timeout(cfg.Timeout),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.WithError(err).Warn("NATS disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.WithField("connected_url", nc.ConnectedUrl()).Info("NATS reconnected")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Client{conn: nc, js: js, cfg: cfg}, nil
}

// EnsureStream creates or updates the stream that captures every roster subject
func (c *Client) EnsureStream(ctx context.Context) error {
	stream := jetstream.StreamConfig{
		Name:     c.cfg.Stream,
		Subjects: []string{SubjectWildcard},
	}
	if _, err := c.js.CreateOrUpdateStream(ctx, stream); err != nil {
		return fmt.Errorf("failed to create stream %s: %w", stream.Name, err)
	}
	logger.WithContext(ctx).WithField("stream", stream.Name).Info("Stream ready")
	return nil
}

// JetStream returns the JetStream context
func (c *Client) JetStream() jetstream.JetStream {
	return c.js
}

// IsConnected reports whether the underlying connection is up
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}

// Close drains the connection
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Drain()
}
