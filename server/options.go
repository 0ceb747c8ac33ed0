package server

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Defaults.
const (
	DefaultListeningInterval = time.Second
	DefaultPoolSize          = 4
)

type serverConfig struct {
	interval  time.Duration
	poolSize  int
	ioTimeout time.Duration
	log       *logrus.Logger
}

func newServerConfig(opts []Option) serverConfig {
	cfg := serverConfig{
		interval: DefaultListeningInterval,
		poolSize: DefaultPoolSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = logrus.New()
	}
	return cfg
}

// Option configures a Server.
type Option func(*serverConfig)

// WithListeningInterval sets how often the accept loop checks for Stop.
// Panics if d <= 0.
func WithListeningInterval(d time.Duration) Option {
	if d <= 0 {
		panic("server: WithListeningInterval requires d > 0")
	}
	return func(c *serverConfig) { c.interval = d }
}

// WithPoolSize bounds the number of connections handled at once.
// Panics if n < 1.
func WithPoolSize(n int) Option {
	if n < 1 {
		panic("server: WithPoolSize requires n >= 1")
	}
	return func(c *serverConfig) { c.poolSize = n }
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *logrus.Logger) Option {
	return func(c *serverConfig) { c.log = l }
}

// WithIOTimeout sets a deadline for the whole exchange on each connection.
// Zero disables it. Panics if d < 0.
func WithIOTimeout(d time.Duration) Option {
	if d < 0 {
		panic("server: WithIOTimeout requires d >= 0")
	}
	return func(c *serverConfig) { c.ioTimeout = d }
}
