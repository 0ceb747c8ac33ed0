package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/render"
	"github.com/katalvlaran/lvmaze/search"
)

type renderFlags struct {
	in         string
	out        string
	compressed bool
	solve      bool
	solver     string
	cell       int
}

func newRenderCmd(a *app) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a maze layout to PNG",
		Long: `Render draws walls, free cells, the start and goal arrows and,
with --solve, the solution path and the cells the solver evaluated.

Example:
  lvmaze render --in maze.bin --out maze.png --solve --cell 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRender(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.in, "in", "i", "", "maze layout file")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "PNG output file")
	cmd.Flags().BoolVar(&f.compressed, "compressed", false, "the input layout is compressed")
	cmd.Flags().BoolVar(&f.solve, "solve", false, "overlay the solution")
	cmd.Flags().StringVar(&f.solver, "solver", "", "solver used with --solve (default from config)")
	cmd.Flags().IntVar(&f.cell, "cell", render.DefaultCellSize, "cell size in pixels")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (a *app) runRender(cmd *cobra.Command, f *renderFlags) (err error) {
	if f.cell < 1 {
		return fmt.Errorf("--cell must be at least 1, got %d", f.cell)
	}
	g, err := readGrid(f.in, f.compressed)
	if err != nil {
		return err
	}

	opts := []render.Option{render.WithCellSize(f.cell)}
	var sol *search.Solution
	if f.solve {
		var explored []maze.Position
		onVisit := func(s search.State) {
			if ms, ok := s.(search.MazeState); ok {
				explored = append(explored, ms.Position)
			}
		}
		if _, sol, err = a.runSolver(g, f.solver, search.WithOnVisit(onVisit)); err != nil {
			return err
		}
		opts = append(opts, render.WithExplored(explored))
	}

	out, err := os.Create(f.out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if err = render.WritePNG(out, g, sol, opts...); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f.out)
	return nil
}
