package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/internal/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries the global flags and the state PersistentPreRunE resolves
// from them.
type app struct {
	configPath string
	verbose    bool

	cfg *config.Config
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lvmaze",
		Short:         "Generate, solve and serve grid mazes",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./lvmaze.yaml or ~/.lvmaze/lvmaze.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newGenerateCmd(a),
		newSolveCmd(a),
		newRenderCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

// init loads the configuration and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = cfg.Logger()
	a.log.SetOutput(cmd.ErrOrStderr())
	if a.verbose {
		a.log.SetLevel(logrus.DebugLevel)
	}
	return nil
}
