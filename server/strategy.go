package server

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/compress"
	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/internal/cache"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/search"
)

// WireCodec compresses maze layouts sent by GenerateMaze.
const WireCodec = compress.Alternating

// Strategy names.
const (
	NameGenerate = "generate"
	NameSolve    = "solve"
)

// Strategy serves one request. r and w are the client connection; log
// already carries the connection fields.
type Strategy interface {
	Name() string
	Serve(ctx context.Context, log *logrus.Entry, r io.Reader, w io.Writer) error
}

// GenerateRequest asks for a rows×cols maze.
type GenerateRequest struct {
	Rows, Cols int
}

// SolutionReply answers a solve request. An empty Path means the goal is
// unreachable.
type SolutionReply struct {
	Solver         string
	NodesEvaluated int
	Path           []maze.Position
	CacheHit       bool
}

// Solved reports whether a path was found.
func (r *SolutionReply) Solved() bool { return len(r.Path) > 0 }

// GenerateMaze builds mazes with one generator.
type GenerateMaze struct {
	gen generator.Generator
}

// NewGenerateMaze panics if gen is nil.
func NewGenerateMaze(gen generator.Generator) *GenerateMaze {
	if gen == nil {
		panic("server: NewGenerateMaze requires a generator")
	}
	return &GenerateMaze{gen: gen}
}

// Name returns NameGenerate.
func (*GenerateMaze) Name() string { return NameGenerate }

// Serve reads a GenerateRequest and writes the compressed layout as a gob
// []byte. Invalid dimensions wrap ErrBadRequest and get no reply.
func (s *GenerateMaze) Serve(_ context.Context, log *logrus.Entry, r io.Reader, w io.Writer) error {
	var req GenerateRequest
	if err := gob.NewDecoder(r).Decode(&req); err != nil {
		return fmt.Errorf("%w: decode request: %w", ErrBadRequest, err)
	}
	log = log.WithFields(logrus.Fields{"rows": req.Rows, "cols": req.Cols, "generator": s.gen.Name()})

	g, err := s.gen.Generate(req.Rows, req.Cols)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	layout, err := g.MarshalBinary()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	packed, err := compress.Compress(layout, WireCodec)
	if err != nil {
		return err
	}
	log.WithField("bytes", len(packed)).Debug("maze generated")

	return gob.NewEncoder(w).Encode(packed)
}

// SolveMaze solves layouts with one registered solver, consulting an
// optional cache first.
type SolveMaze struct {
	solverKey string
	store     *cache.Store
}

// NewSolveMaze returns a strategy using the solver registered under key.
// store may be nil to disable caching.
// Returns search.ErrUnknownSolver for an unregistered key.
func NewSolveMaze(key string, store *cache.Store) (*SolveMaze, error) {
	if _, err := search.New(key); err != nil {
		return nil, err
	}
	return &SolveMaze{solverKey: key, store: store}, nil
}

// Name returns NameSolve.
func (*SolveMaze) Name() string { return NameSolve }

// Serve reads a gob []byte layout and writes a SolutionReply.
// A cached entry is reused only when it was produced by the same solver.
func (s *SolveMaze) Serve(ctx context.Context, log *logrus.Entry, r io.Reader, w io.Writer) error {
	var layout []byte
	if err := gob.NewDecoder(r).Decode(&layout); err != nil {
		return fmt.Errorf("%w: decode request: %w", ErrBadRequest, err)
	}
	g, err := maze.Decode(layout)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	// a fresh solver per request keeps NodesEvaluated per connection
	solver, err := search.New(s.solverKey)
	if err != nil {
		return err
	}
	log = log.WithFields(logrus.Fields{"rows": g.Rows(), "cols": g.Cols(), "solver": solver.Name()})
	key := cache.Key(layout)

	// 1) cache lookup
	if s.store != nil {
		e, err := s.store.Get(ctx, key)
		switch {
		case err == nil && e.Solver == solver.Name():
			log.WithField("cache_hit", true).Debug("maze solved")
			return gob.NewEncoder(w).Encode(SolutionReply{
				Solver:         e.Solver,
				NodesEvaluated: e.NodesEvaluated,
				Path:           e.Path,
				CacheHit:       true,
			})
		case err != nil && !errors.Is(err, cache.ErrNotFound):
			log.WithError(err).Warn("cache lookup failed")
		}
	}

	// 2) search
	sol, err := solver.Solve(search.NewSearchableMaze(g))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	reply := SolutionReply{
		Solver:         solver.Name(),
		NodesEvaluated: solver.NodesEvaluated(),
		Path:           sol.Positions(),
	}

	// 3) remember it
	if s.store != nil {
		if _, err := s.store.Put(ctx, key, cache.Entry{
			Solver:         reply.Solver,
			NodesEvaluated: reply.NodesEvaluated,
			Path:           reply.Path,
		}); err != nil {
			log.WithError(err).Warn("cache store failed")
		}
	}
	log.WithFields(logrus.Fields{"cache_hit": false, "nodes": reply.NodesEvaluated}).Debug("maze solved")

	return gob.NewEncoder(w).Encode(reply)
}
