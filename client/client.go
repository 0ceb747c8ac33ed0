// Package client talks to the maze servers: one dial, one request, one
// reply per call.
package client

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/compress"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/server"
)

// ErrNilGrid is returned by RequestSolution for a nil grid.
var ErrNilGrid = errors.New("client: nil grid")

// DefaultDialTimeout bounds connection setup.
const DefaultDialTimeout = 5 * time.Second

// Strategy runs one exchange over an open connection.
type Strategy interface {
	Exchange(ctx context.Context, r io.Reader, w io.Writer) error
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(ctx context.Context, r io.Reader, w io.Writer) error

// Exchange calls f.
func (f StrategyFunc) Exchange(ctx context.Context, r io.Reader, w io.Writer) error {
	return f(ctx, r, w)
}

// Client dials one server address.
type Client struct {
	addr   string
	dialer net.Dialer
	log    *logrus.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithDialTimeout overrides DefaultDialTimeout. Panics if d <= 0.
func WithDialTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("client: WithDialTimeout requires d > 0")
	}
	return func(c *Client) { c.dialer.Timeout = d }
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a client for addr (host:port).
func New(addr string, opts ...Option) *Client {
	c := &Client{addr: addr, dialer: net.Dialer{Timeout: DefaultDialTimeout}, log: logrus.New()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Communicate dials the server, runs strategy and closes the connection.
// The context deadline, if any, bounds the whole exchange.
func (c *Client) Communicate(ctx context.Context, strategy Strategy) error {
	conn, err := c.dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.addr, err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	c.log.WithField("addr", c.addr).Debug("connected to server")

	return strategy.Exchange(ctx, conn, conn)
}

// RequestMaze asks a generation server for a rows×cols maze.
func (c *Client) RequestMaze(ctx context.Context, rows, cols int) (*maze.Grid, error) {
	var packed []byte
	err := c.Communicate(ctx, StrategyFunc(func(_ context.Context, r io.Reader, w io.Writer) error {
		if err := gob.NewEncoder(w).Encode(server.GenerateRequest{Rows: rows, Cols: cols}); err != nil {
			return fmt.Errorf("send request: %w", err)
		}
		if err := gob.NewDecoder(r).Decode(&packed); err != nil {
			return fmt.Errorf("read reply: %w", err)
		}
		return nil
	}))
	if err != nil {
		return nil, fmt.Errorf("RequestMaze(%d, %d): %w", rows, cols, err)
	}

	layout, err := compress.Decompress(packed, server.WireCodec)
	if err != nil {
		return nil, fmt.Errorf("RequestMaze(%d, %d): %w", rows, cols, err)
	}
	return maze.Decode(layout)
}

// RequestSolution asks a solving server to solve g.
func (c *Client) RequestSolution(ctx context.Context, g *maze.Grid) (*server.SolutionReply, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	layout, err := g.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("RequestSolution: %w", err)
	}

	reply := new(server.SolutionReply)
	err = c.Communicate(ctx, StrategyFunc(func(_ context.Context, r io.Reader, w io.Writer) error {
		if err := gob.NewEncoder(w).Encode(layout); err != nil {
			return fmt.Errorf("send layout: %w", err)
		}
		if err := gob.NewDecoder(r).Decode(reply); err != nil {
			return fmt.Errorf("read reply: %w", err)
		}
		return nil
	}))
	if err != nil {
		return nil, fmt.Errorf("RequestSolution: %w", err)
	}
	return reply, nil
}
