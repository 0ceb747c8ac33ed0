package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/client"
	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/maze"
)

type generateFlags struct {
	rows, cols int
	generator  string
	seed       int64
	out        string
	compressed bool
	remote     string
}

func newGenerateCmd(a *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze",
		Long: `Generate a rows×cols maze with start (0,0) and goal (rows-1, cols-1).

Without --out the maze is printed as text (S start, E goal, 1 wall, 0 free).
With --remote the maze is requested from a generation server instead.

Example:
  lvmaze generate --rows 15 --cols 21
  lvmaze generate --rows 50 --cols 50 --seed 7 --out maze.bin --compressed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd, f)
		},
	}
	cmd.Flags().IntVar(&f.rows, "rows", 10, "number of rows (1..255)")
	cmd.Flags().IntVar(&f.cols, "cols", 10, "number of columns (1..255)")
	cmd.Flags().StringVar(&f.generator, "generator", "", fmt.Sprintf("generator %v (default from config)", generator.Names()))
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (default: time based)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write the byte layout to this file")
	cmd.Flags().BoolVar(&f.compressed, "compressed", false, "compress the written layout")
	cmd.Flags().StringVar(&f.remote, "remote", "", "generation server address (host:port)")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, f *generateFlags) error {
	var (
		g       *maze.Grid
		err     error
		name    string
		elapsed time.Duration
	)
	began := time.Now()
	if f.remote != "" {
		name = "remote " + f.remote
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		g, err = client.New(f.remote, client.WithLogger(a.log)).RequestMaze(ctx, f.rows, f.cols)
	} else {
		var gen generator.Generator
		if gen, err = a.generator(cmd, f); err != nil {
			return err
		}
		name = gen.Name()
		g, err = gen.Generate(f.rows, f.cols)
	}
	if err != nil {
		return err
	}
	elapsed = time.Since(began)

	a.log.WithFields(logrus.Fields{
		"generator": name,
		"rows":      g.Rows(),
		"cols":      g.Cols(),
		"elapsed":   elapsed,
	}).Debug("maze generated")

	if f.out == "" {
		fmt.Fprint(cmd.OutOrStdout(), g.String())
		return nil
	}
	if err := writeGrid(f.out, g, f.compressed); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %dx%d maze to %s\n", g.Rows(), g.Cols(), f.out)
	return nil
}

// generator resolves --generator and --seed against the configuration.
func (a *app) generator(cmd *cobra.Command, f *generateFlags) (generator.Generator, error) {
	var opts []generator.Option
	if cmd.Flags().Changed("seed") {
		opts = append(opts, generator.WithSeed(f.seed))
	}
	if f.generator == "" {
		return a.cfg.Generator(opts...)
	}
	opts = append([]generator.Option{generator.WithWallProbability(a.cfg.Maze.WallProbability)}, opts...)
	return generator.New(f.generator, opts...)
}
