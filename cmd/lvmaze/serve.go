package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/internal/cache"
	"github.com/katalvlaran/lvmaze/server"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the maze generation and solving servers",
		Long: `Serve starts the generation server on server.port and the solving
server on server.solve_port, and runs until interrupted.

Example:
  lvmaze serve --config ./lvmaze.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

// serve starts both servers and blocks until ctx is done.
func (a *app) serve(ctx context.Context) error {
	gen, err := a.cfg.Generator()
	if err != nil {
		return err
	}

	var store *cache.Store
	if a.cfg.Cache.Enabled {
		if store, err = cache.Open(a.cfg.CachePath(), a.log); err != nil {
			return err
		}
		defer store.Close()
	}
	solve, err := server.NewSolveMaze(a.cfg.Maze.Solver, store)
	if err != nil {
		return err
	}

	opts := []server.Option{
		server.WithListeningInterval(a.cfg.Server.ListeningInterval),
		server.WithPoolSize(a.cfg.Server.ThreadPoolSize),
		server.WithLogger(a.log),
	}
	servers := []*server.Server{
		server.New(a.cfg.GenerateAddr(), server.NewGenerateMaze(gen), opts...),
		server.New(a.cfg.SolveAddr(), solve, opts...),
	}
	for _, srv := range servers {
		if err := srv.Start(); err != nil {
			stopAll(servers)
			return err
		}
	}

	a.log.WithFields(logrus.Fields{
		"generator": gen.Name(),
		"solver":    a.cfg.Maze.Solver,
		"cache":     a.cfg.Cache.Enabled,
	}).Info("lvmaze serving")
	<-ctx.Done()
	a.log.Info("shutting down")
	stopAll(servers)
	return nil
}

func stopAll(servers []*server.Server) {
	for _, srv := range servers {
		srv.Stop()
	}
}
