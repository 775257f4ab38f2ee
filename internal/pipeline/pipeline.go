package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/gochunk/internal/chunker"
	"github.com/dshills/gochunk/pkg/types"
)

// DefaultMaxFileBytes is the size limit applied when Config leaves it unset
const DefaultMaxFileBytes int64 = 10 << 20

// Config controls file discovery and concurrency
type Config struct {
	Workers       int   // concurrent files (default: runtime.NumCPU())
	MaxFileBytes  int64 // larger files are skipped (default: 10 MiB)
	IncludeVendor bool  // descend into vendor directories
}

// Statistics summarises a Run
type Statistics struct {
	FilesProcessed int
	FilesSkipped   int
	FilesFailed    int
	ChunksCreated  int
	TokensCounted  int
	Duration       time.Duration
	ErrorMessages  []string
}

// Result holds the documents of a Run in discovery order
type Result struct {
	Documents []Document
	Stats     *Statistics
}

// Pipeline reads files, chunks them and attaches document metadata
type Pipeline struct {
	chunker *chunker.Chunker
	cfg     Config
	logger  *slog.Logger
	lock    runLock
}

// New creates a Pipeline around a configured chunker
func New(c *chunker.Chunker, cfg Config, logger *slog.Logger) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.MaxFileBytes <= 0 {
		cfg.MaxFileBytes = DefaultMaxFileBytes
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{chunker: c, cfg: cfg, logger: logger}
}

// Process chunks already-decoded content. A content type missing from meta
// is derived from the source path extension. Every chunk receives
// document_id, filename, source_path and total_chunks, and is validated
// before the document is returned.
func (p *Pipeline) Process(sourcePath string, content []byte, meta types.Metadata) (Document, error) {
	meta = meta.Clone()
	if meta.ContentType() == "" {
		if lang := LanguageFromPath(sourcePath); lang != "" {
			meta[types.MetaLanguage] = lang
		}
	}

	doc := Document{
		ID:         DocumentID(sourcePath, content),
		SourcePath: sourcePath,
		Language:   meta.ContentType(),
	}

	doc.Chunks = p.chunker.ChunkText(strings.ToValidUTF8(string(content), ""), meta)
	enrich(doc.Chunks, doc.ID, sourcePath)
	for i := range doc.Chunks {
		if err := doc.Chunks[i].Validate(); err != nil {
			return Document{}, fmt.Errorf("chunk %d of %s: %w", i, sourcePath, err)
		}
		doc.Tokens += doc.Chunks[i].TokenCount
	}
	return doc, nil
}

// ProcessFile reads one file and chunks it. Files that are too large or not
// text are rejected with ErrFileTooLarge or ErrNotText.
func (p *Pipeline) ProcessFile(path string, meta types.Metadata) (Document, error) {
	content, err := p.readText(path)
	if err != nil {
		return Document{}, err
	}
	return p.Process(path, content, meta)
}

// Run chunks every text file under the given roots. Files that cannot be read
// are recorded in the statistics and do not stop the run; cancelling ctx
// does. Only one Run may be active per Pipeline.
func (p *Pipeline) Run(ctx context.Context, roots ...string) (*Result, error) {
	if !p.lock.tryAcquire() {
		return nil, types.ErrRunInProgress
	}
	defer p.lock.release()

	startTime := time.Now()

	var files []string
	for _, root := range roots {
		found, err := p.discoverFiles(root)
		if err != nil {
			return nil, fmt.Errorf("failed to discover files: %w", err)
		}
		files = append(files, found...)
	}
	p.logger.Info("chunking files", "files", len(files), "workers", p.cfg.Workers)

	var (
		processed, skipped, failed atomic.Int32
		chunks, tokens             atomic.Int64

		mu       sync.Mutex // protects errMsgs
		errMsgs  []string
		docs     = make([]Document, len(files))
		produced = make([]bool, len(files))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			doc, err := p.ProcessFile(path, nil)
			switch {
			case err == nil:
			case isSkip(err):
				skipped.Add(1)
				p.logger.Debug("skipping file", "path", path, "error", err)
				return nil
			default:
				failed.Add(1)
				p.logger.Warn("failed to chunk file", "path", path, "error", err)
				mu.Lock()
				errMsgs = append(errMsgs, fmt.Sprintf("%s: %v", path, err))
				mu.Unlock()
				return nil
			}

			if len(doc.Chunks) == 0 {
				skipped.Add(1)
				return nil
			}

			docs[i], produced[i] = doc, true
			processed.Add(1)
			chunks.Add(int64(len(doc.Chunks)))
			tokens.Add(int64(doc.Tokens))
			p.logger.Debug("chunked file", "path", path, "chunks", len(doc.Chunks))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Documents: make([]Document, 0, processed.Load()),
		Stats: &Statistics{
			FilesProcessed: int(processed.Load()),
			FilesSkipped:   int(skipped.Load()),
			FilesFailed:    int(failed.Load()),
			ChunksCreated:  int(chunks.Load()),
			TokensCounted:  int(tokens.Load()),
			Duration:       time.Since(startTime),
			ErrorMessages:  errMsgs,
		},
	}
	for i, ok := range produced {
		if ok {
			result.Documents = append(result.Documents, docs[i])
		}
	}

	p.logger.Info("chunking complete",
		"files", result.Stats.FilesProcessed,
		"skipped", result.Stats.FilesSkipped,
		"failed", result.Stats.FilesFailed,
		"chunks", result.Stats.ChunksCreated,
		"duration", result.Stats.Duration)
	return result, nil
}

// discoverFiles lists regular files under root in lexical order. A root that
// is itself a file is returned as-is.
func (p *Pipeline) discoverFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			// Skip vendor unless explicitly included
			if !p.cfg.IncludeVendor && d.Name() == "vendor" {
				return filepath.SkipDir
			}
			// Skip hidden directories
			if strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		files = append(files, path)
		return nil
	})

	return files, err
}

// readText loads a file if it is within the size limit and detected as text
func (p *Pipeline) readText(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > p.cfg.MaxFileBytes {
		return nil, fmt.Errorf("%w: %d bytes", types.ErrFileTooLarge, info.Size())
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, types.ErrEmptyContent
	}
	if mt := mimetype.Detect(content); !isText(mt) {
		return nil, fmt.Errorf("%w: %s", types.ErrNotText, mt.String())
	}
	return content, nil
}

// isText reports whether mt is text/plain or one of its descendants
func isText(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

func isSkip(err error) bool {
	return errors.Is(err, types.ErrFileTooLarge) ||
		errors.Is(err, types.ErrNotText) ||
		errors.Is(err, types.ErrEmptyContent)
}
