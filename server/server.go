package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
)

// Sentinel errors.
var (
	ErrServerClosed  = errors.New("server: closed")
	ErrServerRunning = errors.New("server: already running")
	ErrBadRequest    = errors.New("server: bad request")
)

type state int

const (
	stateIdle state = iota
	stateRunning
	stateClosed
)

// Server accepts connections on one address and serves each with a Strategy.
type Server struct {
	addr     string
	strategy Strategy
	cfg      serverConfig

	mu    sync.Mutex
	state state
	ln    *net.TCPListener
	done  chan struct{}
	stop  atomic.Bool
}

// New returns an idle server for addr (host:port, port 0 picks a free one).
// Panics if strategy is nil.
func New(addr string, strategy Strategy, opts ...Option) *Server {
	if strategy == nil {
		panic("server: New requires a strategy")
	}
	return &Server{addr: addr, strategy: strategy, cfg: newServerConfig(opts)}
}

// Start binds the listener and runs the accept loop in the background.
// Returns ErrServerRunning or ErrServerClosed when called out of order.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case stateRunning:
		return fmt.Errorf("Start %s: %w", s.addr, ErrServerRunning)
	case stateClosed:
		return fmt.Errorf("Start %s: %w", s.addr, ErrServerClosed)
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("Start %s: %w", s.addr, err)
	}
	s.ln = ln.(*net.TCPListener)
	s.done = make(chan struct{})
	s.state = stateRunning

	s.cfg.log.WithFields(logrus.Fields{
		"addr":     s.ln.Addr().String(),
		"strategy": s.strategy.Name(),
		"workers":  s.cfg.poolSize,
	}).Info("server started")
	go s.serve()
	return nil
}

// Addr returns the bound address, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Stop stops accepting and blocks until every in-flight handler returns.
// It may take up to one listening interval to notice. Safe to call twice.
func (s *Server) Stop() {
	s.mu.Lock()
	prev := s.state
	s.state = stateClosed
	done := s.done
	s.mu.Unlock()

	if prev != stateRunning {
		return
	}
	s.stop.Store(true)
	<-done
}

func (s *Server) serve() {
	defer close(s.done)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	workers := pool.New().WithMaxGoroutines(s.cfg.poolSize)

	for !s.stop.Load() {
		// 1) wake up after one interval even when nobody connects
		if err := s.ln.SetDeadline(time.Now().Add(s.cfg.interval)); err != nil {
			s.cfg.log.WithError(err).Error("set accept deadline")
			break
		}
		conn, err := s.ln.Accept()
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			if errors.Is(err, net.ErrClosed) {
				break
			}
			s.cfg.log.WithError(err).Warn("accept")
			continue
		}
		// 2) blocks while every worker is busy
		workers.Go(func() { s.handle(ctx, conn) })
	}

	// 3) no new connections; drain the pool
	_ = s.ln.Close()
	workers.Wait()
	s.cfg.log.WithField("strategy", s.strategy.Name()).Info("server stopped")
}

func (s *Server) handle(ctx context.Context, conn net.Conn) {
	start := time.Now()
	entry := s.cfg.log.WithFields(logrus.Fields{
		"conn_id":  uuid.NewString(),
		"remote":   conn.RemoteAddr().String(),
		"strategy": s.strategy.Name(),
	})
	defer conn.Close()
	defer func() {
		if r := recover(); r != nil {
			entry.WithField("panic", r).Error("strategy panicked")
		}
	}()

	if s.cfg.ioTimeout > 0 {
		_ = conn.SetDeadline(start.Add(s.cfg.ioTimeout))
	}
	entry.Debug("connection accepted")

	if err := s.strategy.Serve(ctx, entry, conn, conn); err != nil {
		entry.WithError(err).WithField("elapsed", time.Since(start)).Warn("request failed")
		return
	}
	entry.WithField("elapsed", time.Since(start)).Info("request served")
}
