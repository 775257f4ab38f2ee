package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dshills/gochunk/internal/chunker"
	"github.com/dshills/gochunk/internal/config"
	"github.com/dshills/gochunk/internal/pipeline"
	"github.com/dshills/gochunk/internal/segment"
	"github.com/dshills/gochunk/internal/tokenizer"
)

// app holds the components built from configuration for one invocation
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	logger  *slog.Logger
	counter tokenizer.Counter
	chunker *chunker.Chunker
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	var (
		cfgFile string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "gochunk",
		Short: "Split documents into token-budgeted chunks for embedding",
		Long: `gochunk splits text and source files into ordered chunks that fit an
embedding model's token budget. Prose is packed by sentence with overlap;
Go source is packed by top-level declaration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, cfgFile, verbose)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.gochunk.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.Int("chunk-size", chunker.DefaultChunkSize, "token budget per chunk")
	flags.Int("chunk-overlap", chunker.DefaultChunkOverlap, "tokens repeated between prose chunks")
	flags.Int("max-unit-tokens", chunker.DefaultMaxUnitTokens, "hard ceiling for a single unit (>= chunk size)")
	flags.String("segmenter", segment.NameHeuristic, "sentence segmenter (heuristic, uax29)")
	flags.Bool("words", false, "count whitespace-delimited words instead of subword tokens")

	_ = a.v.BindPFlag("chunk_size", flags.Lookup("chunk-size"))
	_ = a.v.BindPFlag("chunk_overlap", flags.Lookup("chunk-overlap"))
	_ = a.v.BindPFlag("max_unit_tokens", flags.Lookup("max-unit-tokens"))
	_ = a.v.BindPFlag("segmenter", flags.Lookup("segmenter"))
	_ = a.v.BindPFlag("words_only", flags.Lookup("words"))

	root.AddCommand(
		newChunkCmd(a),
		newCountCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration and builds the shared components
func (a *app) setup(cmd *cobra.Command, cfgFile string, verbose bool) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(a.v, cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	level := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	sentences, err := segment.ByName(cfg.Segmenter)
	if err != nil {
		return err
	}

	a.counter = tokenizer.New(cfg.Tokenizer(), a.logger)
	a.chunker, err = chunker.New(cfg.Chunker(),
		chunker.WithCounter(a.counter),
		chunker.WithSegmenter(sentences),
		chunker.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}
	return nil
}

func (a *app) pipeline() *pipeline.Pipeline {
	return pipeline.New(a.chunker, a.cfg.Pipeline(), a.logger)
}

// logCacheStats reports how many distinct texts the count cache holds
func (a *app) logCacheStats() {
	if cached, ok := a.counter.(*tokenizer.Cached); ok {
		a.logger.Debug("token count cache", "entries", cached.Size())
	}
}
