package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/knighttour/render"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid value")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "KNIGHTTOUR"

// Config is the full set of knighttour settings.
type Config struct {
	Board  BoardConfig  `mapstructure:"board"`
	Search SearchConfig `mapstructure:"search"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// BoardConfig holds the default side length and the range the CLI accepts.
type BoardConfig struct {
	Size    int `mapstructure:"size"`
	MinSize int `mapstructure:"min_size"`
	MaxSize int `mapstructure:"max_size"`
}

// SearchConfig holds search bounds and batch settings.
type SearchConfig struct {
	MaxMoves    int           `mapstructure:"max_moves"`
	StopAtFirst bool          `mapstructure:"stop_at_first"`
	MaxPaths    int           `mapstructure:"max_paths"`
	Warnsdorff  bool          `mapstructure:"warnsdorff"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Parallelism int           `mapstructure:"parallelism"`
}

// OutputConfig selects the result encoding.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Board:  BoardConfig{Size: 8, MinSize: 6, MaxSize: 16},
		Search: SearchConfig{MaxMoves: 3, Timeout: 30 * time.Second, Parallelism: 4},
		Output: OutputConfig{Format: string(render.FormatText)},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads settings from defaults, the config file and the environment,
// then validates them. An empty path searches the working directory for
// knighttour.* and tolerates its absence; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("knighttour")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("board.size", d.Board.Size)
	v.SetDefault("board.min_size", d.Board.MinSize)
	v.SetDefault("board.max_size", d.Board.MaxSize)
	v.SetDefault("search.max_moves", d.Search.MaxMoves)
	v.SetDefault("search.stop_at_first", d.Search.StopAtFirst)
	v.SetDefault("search.max_paths", d.Search.MaxPaths)
	v.SetDefault("search.warnsdorff", d.Search.Warnsdorff)
	v.SetDefault("search.timeout", d.Search.Timeout)
	v.SetDefault("search.parallelism", d.Search.Parallelism)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Validate checks ranges and names. The board size must lie within
// [MinSize, MaxSize].
func (c *Config) Validate() error {
	switch {
	case c.Board.MinSize < 1:
		return fmt.Errorf("%w: board.min_size %d < 1", ErrInvalidConfig, c.Board.MinSize)
	case c.Board.MaxSize < c.Board.MinSize:
		return fmt.Errorf("%w: board.max_size %d < board.min_size %d", ErrInvalidConfig, c.Board.MaxSize, c.Board.MinSize)
	case c.Board.Size < c.Board.MinSize || c.Board.Size > c.Board.MaxSize:
		return fmt.Errorf("%w: board.size %d outside [%d, %d]", ErrInvalidConfig, c.Board.Size, c.Board.MinSize, c.Board.MaxSize)
	case c.Search.MaxMoves < 0:
		return fmt.Errorf("%w: search.max_moves %d < 0", ErrInvalidConfig, c.Search.MaxMoves)
	case c.Search.MaxPaths < 0:
		return fmt.Errorf("%w: search.max_paths %d < 0", ErrInvalidConfig, c.Search.MaxPaths)
	case c.Search.Timeout < 0:
		return fmt.Errorf("%w: search.timeout %s < 0", ErrInvalidConfig, c.Search.Timeout)
	case c.Search.Parallelism < 1:
		return fmt.Errorf("%w: search.parallelism %d < 1", ErrInvalidConfig, c.Search.Parallelism)
	}
	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: output.format: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// CheckBoardSize reports whether n is within the configured board range.
func (c *Config) CheckBoardSize(n int) error {
	if n < c.Board.MinSize || n > c.Board.MaxSize {
		return fmt.Errorf("%w: board size %d outside [%d, %d]", ErrInvalidConfig, n, c.Board.MinSize, c.Board.MaxSize)
	}

	return nil
}
