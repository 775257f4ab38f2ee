package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dshills/gochunk/internal/pipeline"
	"github.com/dshills/gochunk/pkg/types"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func newChunkCmd(a *app) *cobra.Command {
	var (
		format   string
		language string
	)

	cmd := &cobra.Command{
		Use:   "chunk [paths...]",
		Short: "Chunk files, directories or stdin",
		Long: `Chunk every text file under the given paths and print the chunks.

With no paths, stdin is read as a single document; --language sets its
content type (for example "go" to enable declaration-level chunking).
JSON output is one chunk per line. YAML output is one entry per document.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatJSON && format != formatYAML {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatJSON, formatYAML)
			}

			p := a.pipeline()

			var docs []pipeline.Document
			if len(args) == 0 {
				content, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				meta := types.Metadata{}
				if language != "" {
					meta[types.MetaLanguage] = language
				}
				doc, err := p.Process("stdin", content, meta)
				if err != nil {
					return err
				}
				docs = append(docs, doc)
			} else {
				res, err := p.Run(cmd.Context(), args...)
				if err != nil {
					return err
				}
				for _, msg := range res.Stats.ErrorMessages {
					a.logger.Warn("file failed", "error", msg)
				}
				docs = res.Documents
			}

			a.logCacheStats()
			return writeDocuments(cmd.OutOrStdout(), format, docs)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format (json, yaml)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "content type of stdin (e.g. go, md)")
	return cmd
}

func writeDocuments(w io.Writer, format string, docs []pipeline.Document) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	for _, doc := range docs {
		for _, ch := range doc.Chunks {
			if err := enc.Encode(ch); err != nil {
				return fmt.Errorf("failed to encode chunk: %w", err)
			}
		}
	}
	return nil
}
