package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/dshills/gochunk/internal/chunker"
	"github.com/dshills/gochunk/internal/pipeline"
	"github.com/dshills/gochunk/internal/segment"
	"github.com/dshills/gochunk/internal/tokenizer"
	"github.com/dshills/gochunk/pkg/types"
)

const (
	// EnvPrefix prefixes every environment override, e.g. GOCHUNK_CHUNK_SIZE
	EnvPrefix = "GOCHUNK"

	// ConfigName is the config file searched for when none is given
	ConfigName = ".gochunk"
)

// Config is the complete runtime configuration
type Config struct {
	ChunkSize       int `mapstructure:"chunk_size" validate:"gt=0"`
	ChunkOverlap    int `mapstructure:"chunk_overlap" validate:"gte=0"`
	MaxUnitTokens   int `mapstructure:"max_unit_tokens" validate:"gtefield=ChunkSize"`
	SeparatorTokens int `mapstructure:"separator_tokens" validate:"gte=0"`

	Encoding       string `mapstructure:"encoding" validate:"required"`
	CountCacheSize int    `mapstructure:"count_cache_size" validate:"gte=0"`
	WordsOnly      bool   `mapstructure:"words_only"`

	Segmenter string `mapstructure:"segmenter" validate:"oneof=heuristic uax29"`

	Workers       int   `mapstructure:"workers" validate:"gt=0"`
	MaxFileBytes  int64 `mapstructure:"max_file_bytes" validate:"gt=0"`
	IncludeVendor bool  `mapstructure:"include_vendor"`

	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// SetDefaults registers every key with its default. Keys must be known to
// viper for environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("chunk_size", chunker.DefaultChunkSize)
	v.SetDefault("chunk_overlap", chunker.DefaultChunkOverlap)
	v.SetDefault("max_unit_tokens", chunker.DefaultMaxUnitTokens)
	v.SetDefault("separator_tokens", 0)

	v.SetDefault("encoding", tokenizer.DefaultEncoding)
	v.SetDefault("count_cache_size", tokenizer.DefaultCacheSize)
	v.SetDefault("words_only", false)

	v.SetDefault("segmenter", segment.NameHeuristic)

	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("max_file_bytes", pipeline.DefaultMaxFileBytes)
	v.SetDefault("include_vendor", false)

	v.SetDefault("log_level", "info")
}

// Load resolves configuration from, in increasing precedence: defaults, the
// config file, and GOCHUNK_* environment variables. An empty configFile
// searches the working directory for .gochunk.yaml and tolerates its
// absence; a named file must exist.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrInvalidConfig, err)
	}
	cfg.Segmenter = strings.ToLower(strings.TrimSpace(cfg.Segmenter))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", types.ErrInvalidConfig, err)
	}
	return nil
}

// LoadDotEnv loads environment files into the process environment without
// overriding variables already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// Chunker returns the chunk budgets
func (c *Config) Chunker() chunker.Config {
	return chunker.Config{
		ChunkSize:       c.ChunkSize,
		ChunkOverlap:    c.ChunkOverlap,
		MaxUnitTokens:   c.MaxUnitTokens,
		SeparatorTokens: c.SeparatorTokens,
	}
}

// Tokenizer returns the counter settings
func (c *Config) Tokenizer() tokenizer.Config {
	return tokenizer.Config{
		Encoding:  c.Encoding,
		CacheSize: c.CountCacheSize,
		WordsOnly: c.WordsOnly,
	}
}

// Pipeline returns the file discovery settings
func (c *Config) Pipeline() pipeline.Config {
	return pipeline.Config{
		Workers:       c.Workers,
		MaxFileBytes:  c.MaxFileBytes,
		IncludeVendor: c.IncludeVendor,
	}
}

// Level maps LogLevel to a slog level
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
