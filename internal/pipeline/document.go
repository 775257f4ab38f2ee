package pipeline

import (
	"bytes"
	"crypto/sha256"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/gochunk/pkg/types"
)

// Document is one decoded source and the chunks produced from it
type Document struct {
	ID         string        `json:"document_id" yaml:"document_id"`
	SourcePath string        `json:"source_path" yaml:"source_path"`
	Language   string        `json:"language,omitempty" yaml:"language,omitempty"`
	Tokens     int           `json:"tokens" yaml:"tokens"`
	Chunks     []types.Chunk `json:"chunks" yaml:"chunks"`
}

// DocumentID derives a stable id from the source path and its content, so
// re-chunking an unchanged file yields the same id.
func DocumentID(sourcePath string, content []byte) string {
	sum := sha256.Sum256(content)

	buf := new(bytes.Buffer)
	buf.WriteString(filepath.ToSlash(sourcePath))
	buf.WriteByte('\n')
	buf.Write(sum[:])
	return uuid.NewSHA1(uuid.NameSpaceOID, buf.Bytes()).String()
}

// LanguageFromPath returns the lower-cased file extension without its dot,
// or "" when the path has none
func LanguageFromPath(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// enrich stamps document-level metadata onto every chunk. Chunk metadata is
// already a per-chunk copy.
func enrich(chunks []types.Chunk, id, sourcePath string) {
	for i := range chunks {
		if chunks[i].Metadata == nil {
			chunks[i].Metadata = types.Metadata{}
		}
		chunks[i].Metadata[types.MetaDocumentID] = id
		chunks[i].Metadata[types.MetaFilename] = filepath.Base(sourcePath)
		chunks[i].Metadata[types.MetaSourcePath] = sourcePath
		chunks[i].Metadata[types.MetaTotalChunks] = len(chunks)
	}
}
