// Package config loads the explicit configuration value handed to the
// server, the cache and the CLI. There is no package-level state: every
// caller gets its own *Config from Load.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/search"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

const (
	configFileName = "lvmaze"
	configFileType = "yaml"
	envPrefix      = "LVMAZE"

	KeyServerPort              = "server.port"
	KeyServerSolvePort         = "server.solve_port"
	KeyServerListeningInterval = "server.listening_interval"
	KeyServerThreadPoolSize    = "server.thread_pool_size"
	KeyMazeGenerator           = "maze.generator"
	KeyMazeSolver              = "maze.solver"
	KeyMazeWallProbability     = "maze.wall_probability"
	KeyCachePath               = "cache.path"
	KeyCacheEnabled            = "cache.enabled"
	KeyLogLevel                = "log_level"
)

// Defaults.
const (
	DefaultPort              = 5400
	DefaultSolvePort         = 5401
	DefaultListeningInterval = time.Second
	DefaultThreadPoolSize    = 4
	DefaultGenerator         = generator.NameSpanningTree
	DefaultSolver            = search.KeyBestFirst
	DefaultLogLevel          = "info"
)

// Config is the resolved configuration.
type Config struct {
	Server   ServerConfig
	Maze     MazeConfig
	Cache    CacheConfig
	LogLevel string
}

// ServerConfig controls the TCP servers.
type ServerConfig struct {
	Port              int           // maze generation server
	SolvePort         int           // maze solving server
	ListeningInterval time.Duration // accept loop wake-up period
	ThreadPoolSize    int
}

// MazeConfig selects the strategies the servers use.
type MazeConfig struct {
	Generator       string
	Solver          string
	WallProbability float64
}

// CacheConfig controls the persistent solution cache.
type CacheConfig struct {
	Path    string // empty means <TempDir>/lvmaze/solutions.db
	Enabled bool
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              DefaultPort,
			SolvePort:         DefaultSolvePort,
			ListeningInterval: DefaultListeningInterval,
			ThreadPoolSize:    DefaultThreadPoolSize,
		},
		Maze: MazeConfig{
			Generator:       DefaultGenerator,
			Solver:          DefaultSolver,
			WallProbability: generator.DefaultWallProbability,
		},
		Cache:    CacheConfig{Enabled: true},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads configuration from path, or from lvmaze.yaml in the working
// directory and $HOME/.lvmaze when path is empty, then applies LVMAZE_*
// environment overrides. A missing default file is not an error; a missing
// explicit path is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".lvmaze"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:              v.GetInt(KeyServerPort),
			SolvePort:         v.GetInt(KeyServerSolvePort),
			ListeningInterval: v.GetDuration(KeyServerListeningInterval),
			ThreadPoolSize:    v.GetInt(KeyServerThreadPoolSize),
		},
		Maze: MazeConfig{
			Generator:       v.GetString(KeyMazeGenerator),
			Solver:          v.GetString(KeyMazeSolver),
			WallProbability: v.GetFloat64(KeyMazeWallProbability),
		},
		Cache: CacheConfig{
			Path:    v.GetString(KeyCachePath),
			Enabled: v.GetBool(KeyCacheEnabled),
		},
		LogLevel: v.GetString(KeyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyServerPort, d.Server.Port)
	v.SetDefault(KeyServerSolvePort, d.Server.SolvePort)
	v.SetDefault(KeyServerListeningInterval, d.Server.ListeningInterval)
	v.SetDefault(KeyServerThreadPoolSize, d.Server.ThreadPoolSize)
	v.SetDefault(KeyMazeGenerator, d.Maze.Generator)
	v.SetDefault(KeyMazeSolver, d.Maze.Solver)
	v.SetDefault(KeyMazeWallProbability, d.Maze.WallProbability)
	v.SetDefault(KeyCachePath, d.Cache.Path)
	v.SetDefault(KeyCacheEnabled, d.Cache.Enabled)
	v.SetDefault(KeyLogLevel, d.LogLevel)
}

// Validate checks ranges and that strategy names resolve in their registries.
func (c *Config) Validate() error {
	switch {
	case c.Server.Port < 0 || c.Server.Port > 65535:
		return fmt.Errorf("%w: %s=%d", ErrInvalidConfig, KeyServerPort, c.Server.Port)
	case c.Server.SolvePort < 0 || c.Server.SolvePort > 65535:
		return fmt.Errorf("%w: %s=%d", ErrInvalidConfig, KeyServerSolvePort, c.Server.SolvePort)
	case c.Server.ListeningInterval <= 0:
		return fmt.Errorf("%w: %s=%v", ErrInvalidConfig, KeyServerListeningInterval, c.Server.ListeningInterval)
	case c.Server.ThreadPoolSize < 1:
		return fmt.Errorf("%w: %s=%d", ErrInvalidConfig, KeyServerThreadPoolSize, c.Server.ThreadPoolSize)
	case c.Maze.WallProbability < generator.MinProbability || c.Maze.WallProbability > generator.MaxProbability:
		return fmt.Errorf("%w: %s=%v", ErrInvalidConfig, KeyMazeWallProbability, c.Maze.WallProbability)
	}
	if _, err := generator.New(c.Maze.Generator); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyMazeGenerator, err)
	}
	if _, err := search.New(c.Maze.Solver); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyMazeSolver, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyLogLevel, err)
	}
	return nil
}

// Generator builds the configured maze generator.
func (c *Config) Generator(opts ...generator.Option) (generator.Generator, error) {
	opts = append([]generator.Option{generator.WithWallProbability(c.Maze.WallProbability)}, opts...)
	return generator.New(c.Maze.Generator, opts...)
}

// Solver builds the configured solver.
func (c *Config) Solver(opts ...search.Option) (search.Solver, error) {
	return search.New(c.Maze.Solver, opts...)
}

// CachePath returns the solution cache location, defaulting under the
// system temp directory.
func (c *Config) CachePath() string {
	if c.Cache.Path != "" {
		return c.Cache.Path
	}
	return filepath.Join(os.TempDir(), "lvmaze", "solutions.db")
}

// GenerateAddr is the listen address of the generation server.
func (c *Config) GenerateAddr() string { return fmt.Sprintf(":%d", c.Server.Port) }

// SolveAddr is the listen address of the solving server.
func (c *Config) SolveAddr() string { return fmt.Sprintf(":%d", c.Server.SolvePort) }

// Logger returns a logrus logger at the configured level.
func (c *Config) Logger() *logrus.Logger {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	return log
}
