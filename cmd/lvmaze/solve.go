package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/client"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/search"
	"github.com/katalvlaran/lvmaze/server"
)

type solveFlags struct {
	in         string
	solver     string
	compressed bool
	remote     string
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a maze stored as a byte layout",
		Long: `Solve reads a maze layout and prints the solver, the number of
evaluated nodes and the path from start to goal.

Example:
  lvmaze solve --in maze.bin --compressed --solver breadth-first
  lvmaze solve --in maze.bin --remote localhost:5401`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSolve(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.in, "in", "i", "", "maze layout file")
	cmd.Flags().StringVar(&f.solver, "solver", "", fmt.Sprintf("solver %v (default from config)", search.Keys()))
	cmd.Flags().BoolVar(&f.compressed, "compressed", false, "the input layout is compressed")
	cmd.Flags().StringVar(&f.remote, "remote", "", "solving server address (host:port)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, f *solveFlags) error {
	g, err := readGrid(f.in, f.compressed)
	if err != nil {
		return err
	}

	var reply *server.SolutionReply
	began := time.Now()
	if f.remote != "" {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		reply, err = client.New(f.remote, client.WithLogger(a.log)).RequestSolution(ctx, g)
	} else {
		var (
			solver search.Solver
			sol    *search.Solution
		)
		if solver, sol, err = a.runSolver(g, f.solver); err == nil {
			reply = &server.SolutionReply{
				Solver:         solver.Name(),
				NodesEvaluated: solver.NodesEvaluated(),
				Path:           sol.Positions(),
			}
		}
	}
	if err != nil {
		return err
	}

	a.log.WithFields(logrus.Fields{
		"solver":    reply.Solver,
		"rows":      g.Rows(),
		"cols":      g.Cols(),
		"cache_hit": reply.CacheHit,
		"elapsed":   time.Since(began),
	}).Debug("maze solved")
	printSolution(cmd.OutOrStdout(), reply)
	return nil
}

// runSolver runs the solver registered under key, or the configured one, on g.
func (a *app) runSolver(g *maze.Grid, key string, opts ...search.Option) (search.Solver, *search.Solution, error) {
	if key == "" {
		key = a.cfg.Maze.Solver
	}
	solver, err := search.New(key, opts...)
	if err != nil {
		return nil, nil, err
	}
	sol, err := solver.Solve(search.NewSearchableMaze(g))
	if err != nil {
		return nil, nil, err
	}
	return solver, sol, nil
}

func printSolution(w io.Writer, r *server.SolutionReply) {
	fmt.Fprintf(w, "solver: %s\n", r.Solver)
	fmt.Fprintf(w, "nodes evaluated: %d\n", r.NodesEvaluated)
	if !r.Solved() {
		fmt.Fprintln(w, "no path")
		return
	}
	fmt.Fprintf(w, "path length: %d\n", len(r.Path))
	fmt.Fprintf(w, "path: %v\n", r.Path)
}
