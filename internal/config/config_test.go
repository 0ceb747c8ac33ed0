package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvmaze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestLoad_Defaults uses an empty file so no ambient config leaks in.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 5400, cfg.Server.Port)
	assert.Equal(t, 5401, cfg.Server.SolvePort)
	assert.Equal(t, ":5400", cfg.GenerateAddr())
	assert.Equal(t, ":5401", cfg.SolveAddr())
	assert.Equal(t, time.Second, cfg.Server.ListeningInterval)
	assert.Equal(t, 4, cfg.Server.ThreadPoolSize)
	assert.Equal(t, "spanning-tree", cfg.Maze.Generator)
	assert.Equal(t, "best-first", cfg.Maze.Solver)
	assert.Equal(t, filepath.Join(os.TempDir(), "lvmaze", "solutions.db"), cfg.CachePath())
}

// TestLoad_File reads YAML overrides.
func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
server:
  port: 6000
  solve_port: 6001
  listening_interval: 250ms
  thread_pool_size: 2
maze:
  generator: random-fill
  solver: breadth-first
  wall_probability: 0.1
cache:
  path: /tmp/x.db
  enabled: false
log_level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, 6001, cfg.Server.SolvePort)
	assert.Equal(t, 250*time.Millisecond, cfg.Server.ListeningInterval)
	assert.Equal(t, 2, cfg.Server.ThreadPoolSize)
	assert.Equal(t, "random-fill", cfg.Maze.Generator)
	assert.Equal(t, "breadth-first", cfg.Maze.Solver)
	assert.InDelta(t, 0.1, cfg.Maze.WallProbability, 1e-9)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "/tmp/x.db", cfg.CachePath())
	assert.Equal(t, logrus.DebugLevel, cfg.Logger().GetLevel())

	gen, err := cfg.Generator()
	require.NoError(t, err)
	assert.Equal(t, "random-fill", gen.Name())
	sol, err := cfg.Solver()
	require.NoError(t, err)
	assert.Equal(t, "Breadth First Search", sol.Name())
}

// TestLoad_Env applies LVMAZE_* overrides on top of the file.
func TestLoad_Env(t *testing.T) {
	t.Setenv("LVMAZE_SERVER_PORT", "7001")
	t.Setenv("LVMAZE_MAZE_SOLVER", "depth-first")
	cfg, err := config.Load(writeFile(t, "server:\n  port: 6000\n"))
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Server.Port)
	assert.Equal(t, "depth-first", cfg.Maze.Solver)
}

// TestSolvePort keeps the solving server on its own port, from defaults,
// file and environment alike.
func TestSolvePort(t *testing.T) {
	d := config.Default()
	assert.Equal(t, config.DefaultSolvePort, d.Server.SolvePort)
	assert.NotEqual(t, d.GenerateAddr(), d.SolveAddr())

	t.Setenv("LVMAZE_SERVER_SOLVE_PORT", "7002")
	cfg, err := config.Load(writeFile(t, "server:\n  solve_port: 6001\n"))
	require.NoError(t, err)
	assert.Equal(t, 7002, cfg.Server.SolvePort)
	assert.Equal(t, ":7002", cfg.SolveAddr())
}

// TestLoad_MissingExplicitFile fails.
func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// TestValidate rejects each out-of-range field.
func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"Port", func(c *config.Config) { c.Server.Port = 70000 }},
		{"SolvePort", func(c *config.Config) { c.Server.SolvePort = -1 }},
		{"Interval", func(c *config.Config) { c.Server.ListeningInterval = 0 }},
		{"Pool", func(c *config.Config) { c.Server.ThreadPoolSize = 0 }},
		{"Probability", func(c *config.Config) { c.Maze.WallProbability = 2 }},
		{"Generator", func(c *config.Config) { c.Maze.Generator = "kruskal" }},
		{"Solver", func(c *config.Config) { c.Maze.Solver = "a-star" }},
		{"LogLevel", func(c *config.Config) { c.LogLevel = "loud" }},
	}
	require.NoError(t, config.Default().Validate())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := config.Default()
			tc.mutate(c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}
}

// TestLoad_InvalidFile surfaces validation errors from Load.
func TestLoad_InvalidFile(t *testing.T) {
	_, err := config.Load(writeFile(t, "server:\n  thread_pool_size: 0\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
