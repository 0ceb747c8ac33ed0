package server_test

import (
	"bytes"
	"context"
	"encoding/gob"
	"io"
	"net"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/compress"
	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/internal/cache"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/search"
	"github.com/katalvlaran/lvmaze/server"
)

const tick = 10 * time.Millisecond

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// startServer runs strategy on a loopback ephemeral port until the test ends.
func startServer(t *testing.T, strategy server.Strategy, opts ...server.Option) *server.Server {
	t.Helper()
	opts = append([]server.Option{
		server.WithListeningInterval(tick),
		server.WithLogger(quietLogger()),
	}, opts...)
	srv := server.New("127.0.0.1:0", strategy, opts...)
	require.NoError(t, srv.Start())
	t.Cleanup(srv.Stop)
	return srv
}

// exchange sends one gob request and decodes one gob reply.
func exchange(t *testing.T, srv *server.Server, req, reply any) error {
	t.Helper()
	conn, err := net.Dial("tcp", srv.Addr().String())
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, gob.NewEncoder(conn).Encode(req))
	return gob.NewDecoder(conn).Decode(reply)
}

func seededMaze(t *testing.T, rows, cols int) (*maze.Grid, []byte) {
	t.Helper()
	g, err := generator.NewSpanningTree(generator.WithSeed(3)).Generate(rows, cols)
	require.NoError(t, err)
	layout, err := g.MarshalBinary()
	require.NoError(t, err)
	return g, layout
}

// TestGenerateMaze returns a decodable, solvable maze of the asked size.
func TestGenerateMaze(t *testing.T) {
	srv := startServer(t, server.NewGenerateMaze(generator.NewSpanningTree(generator.WithSeed(1))))

	var packed []byte
	require.NoError(t, exchange(t, srv, server.GenerateRequest{Rows: 5, Cols: 7}, &packed))

	layout, err := compress.Decompress(packed, server.WireCodec)
	require.NoError(t, err)
	g, err := maze.Decode(layout)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Rows())
	assert.Equal(t, 7, g.Cols())
	assert.Equal(t, maze.Pos(0, 0), g.Start())
	assert.Equal(t, maze.Pos(4, 6), g.Goal())
	assert.True(t, g.Connected(g.Start(), g.Goal()))
}

// TestGenerateMaze_BadRequest closes the connection without a reply.
func TestGenerateMaze_BadRequest(t *testing.T) {
	srv := startServer(t, server.NewGenerateMaze(generator.NewEmpty()))

	var packed []byte
	assert.Error(t, exchange(t, srv, server.GenerateRequest{Rows: 0, Cols: 3}, &packed))
	assert.Error(t, exchange(t, srv, server.GenerateRequest{Rows: 300, Cols: 3}, &packed))
}

// TestGenerateMaze_Serve runs the strategy over in-memory streams.
func TestGenerateMaze_Serve(t *testing.T) {
	var in, out bytes.Buffer
	require.NoError(t, gob.NewEncoder(&in).Encode(server.GenerateRequest{Rows: 2, Cols: 3}))

	s := server.NewGenerateMaze(generator.NewEmpty())
	assert.Equal(t, server.NameGenerate, s.Name())
	require.NoError(t, s.Serve(context.Background(), logrus.NewEntry(quietLogger()), &in, &out))

	var packed []byte
	require.NoError(t, gob.NewDecoder(&out).Decode(&packed))
	// header, first value 0, one run of six
	assert.Equal(t, []byte{2, 3, 0, 0, 1, 2, 0, 6}, packed)
}

// TestSolveMaze_Cache answers the second identical request from the cache.
func TestSolveMaze_Cache(t *testing.T) {
	store, err := cache.Open(filepath.Join(t.TempDir(), "solutions.db"), quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	strategy, err := server.NewSolveMaze(search.KeyBreadthFirst, store)
	require.NoError(t, err)
	srv := startServer(t, strategy)
	g, layout := seededMaze(t, 9, 9)

	var first, second server.SolutionReply
	require.NoError(t, exchange(t, srv, layout, &first))
	require.True(t, first.Solved())
	assert.False(t, first.CacheHit)
	assert.Equal(t, search.NameBreadthFirst, first.Solver)
	assert.Positive(t, first.NodesEvaluated)
	assert.Equal(t, g.Start(), first.Path[0])
	assert.Equal(t, g.Goal(), first.Path[len(first.Path)-1])

	require.NoError(t, exchange(t, srv, layout, &second))
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.Path, second.Path)
	assert.Equal(t, first.NodesEvaluated, second.NodesEvaluated)
}

// TestSolveMaze_OtherSolverMisses ignores entries written by another solver.
func TestSolveMaze_OtherSolverMisses(t *testing.T) {
	store, err := cache.Open(filepath.Join(t.TempDir(), "solutions.db"), quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	_, layout := seededMaze(t, 7, 7)

	bfs, err := server.NewSolveMaze(search.KeyBreadthFirst, store)
	require.NoError(t, err)
	dfs, err := server.NewSolveMaze(search.KeyDepthFirst, store)
	require.NoError(t, err)

	var reply server.SolutionReply
	require.NoError(t, exchange(t, startServer(t, bfs), layout, &reply))
	require.NoError(t, exchange(t, startServer(t, dfs), layout, &reply))
	assert.False(t, reply.CacheHit)
	assert.Equal(t, search.NameDepthFirst, reply.Solver)
}

// TestSolveMaze_Unreachable replies with an empty path.
func TestSolveMaze_Unreachable(t *testing.T) {
	g, err := maze.FromCells([][]maze.Cell{
		{maze.Free, maze.Wall},
		{maze.Wall, maze.Free},
	})
	require.NoError(t, err)
	layout, err := g.MarshalBinary()
	require.NoError(t, err)

	strategy, err := server.NewSolveMaze(search.KeyBestFirst, nil)
	require.NoError(t, err)
	assert.Equal(t, server.NameSolve, strategy.Name())
	srv := startServer(t, strategy)

	var reply server.SolutionReply
	require.NoError(t, exchange(t, srv, layout, &reply))
	assert.False(t, reply.Solved())
	assert.Empty(t, reply.Path)
	assert.Equal(t, 1, reply.NodesEvaluated)
}

// TestSolveMaze_BadLayout drops a corrupt layout.
func TestSolveMaze_BadLayout(t *testing.T) {
	strategy, err := server.NewSolveMaze(search.KeyBestFirst, nil)
	require.NoError(t, err)
	srv := startServer(t, strategy)

	var reply server.SolutionReply
	assert.Error(t, exchange(t, srv, []byte{1, 2, 3}, &reply))
}

// TestNewSolveMaze_UnknownSolver rejects unregistered keys.
func TestNewSolveMaze_UnknownSolver(t *testing.T) {
	_, err := server.NewSolveMaze("a-star", nil)
	assert.ErrorIs(t, err, search.ErrUnknownSolver)
}

// TestServer_Lifecycle checks Start/Stop ordering errors.
func TestServer_Lifecycle(t *testing.T) {
	srv := server.New("127.0.0.1:0", server.NewGenerateMaze(generator.NewEmpty()),
		server.WithListeningInterval(tick), server.WithLogger(quietLogger()))
	assert.Nil(t, srv.Addr())

	require.NoError(t, srv.Start())
	assert.NotNil(t, srv.Addr())
	assert.ErrorIs(t, srv.Start(), server.ErrServerRunning)

	srv.Stop()
	srv.Stop()
	assert.ErrorIs(t, srv.Start(), server.ErrServerClosed)

	_, err := net.DialTimeout("tcp", srv.Addr().String(), 100*time.Millisecond)
	assert.Error(t, err, "listener must be closed")
}

// blocker parks every connection until release is closed.
type blocker struct {
	entered chan struct{}
	release chan struct{}
}

func (*blocker) Name() string { return "blocker" }

func (b *blocker) Serve(_ context.Context, _ *logrus.Entry, _ io.Reader, w io.Writer) error {
	b.entered <- struct{}{}
	<-b.release
	_, err := w.Write([]byte("ok"))
	return err
}

// TestServer_StopWaitsForHandlers blocks Stop until the handler finishes.
func TestServer_StopWaitsForHandlers(t *testing.T) {
	b := &blocker{entered: make(chan struct{}, 1), release: make(chan struct{})}
	srv := startServer(t, b)

	conn, err := net.Dial("tcp", srv.Addr().String())
	require.NoError(t, err)
	defer conn.Close()
	<-b.entered

	stopped := make(chan struct{})
	go func() {
		srv.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while a handler was running")
	case <-time.After(5 * tick):
	}

	close(b.release)
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}

	got, err := io.ReadAll(conn)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(got))
}

// counter records the peak number of concurrent handlers.
type counter struct {
	active, peak, served atomic.Int64
}

func (*counter) Name() string { return "counter" }

func (c *counter) Serve(_ context.Context, _ *logrus.Entry, _ io.Reader, w io.Writer) error {
	n := c.active.Add(1)
	for {
		p := c.peak.Load()
		if n <= p || c.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(2 * tick)
	c.active.Add(-1)
	c.served.Add(1)
	_, err := w.Write([]byte{1})
	return err
}

// TestServer_PoolSize never runs more handlers than the pool allows.
func TestServer_PoolSize(t *testing.T) {
	c := &counter{}
	srv := startServer(t, c, server.WithPoolSize(2))

	const clients = 8
	var wg sync.WaitGroup
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn, err := net.Dial("tcp", srv.Addr().String())
			if !assert.NoError(t, err) {
				return
			}
			defer conn.Close()
			buf := make([]byte, 1)
			_, err = io.ReadFull(conn, buf)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, clients, c.served.Load())
	assert.LessOrEqual(t, c.peak.Load(), int64(2))
}

type panicker struct{}

func (panicker) Name() string { return "panicker" }

func (panicker) Serve(context.Context, *logrus.Entry, io.Reader, io.Writer) error {
	panic("boom")
}

// TestServer_RecoversPanics keeps serving after a strategy panic.
func TestServer_RecoversPanics(t *testing.T) {
	srv := startServer(t, panicker{})
	for i := 0; i < 2; i++ {
		conn, err := net.Dial("tcp", srv.Addr().String())
		require.NoError(t, err)
		_, err = io.ReadAll(conn)
		assert.NoError(t, err)
		conn.Close()
	}
}

// TestOptions_Panic rejects invalid option values.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { server.WithListeningInterval(0) })
	assert.Panics(t, func() { server.WithPoolSize(0) })
	assert.Panics(t, func() { server.WithIOTimeout(-time.Second) })
	assert.Panics(t, func() { server.New(":0", nil) })
	assert.Panics(t, func() { server.NewGenerateMaze(nil) })
}
