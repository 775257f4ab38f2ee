package types

import "strings"

// Well-known metadata keys
const (
	MetaLanguage    = "language"
	MetaContentType = "content_type"
	MetaDocumentID  = "document_id"
	MetaFilename    = "filename"
	MetaSourcePath  = "source_path"
	MetaTotalChunks = "total_chunks"
)

// Metadata is caller-supplied context propagated into every chunk
type Metadata map[string]any

// Clone returns an independent copy. Nested maps and slices are cloned
// recursively so enriching one chunk never leaks into another.
func (m Metadata) Clone() Metadata {
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Metadata:
		return t.Clone()
	case map[string]any:
		return map[string]any(Metadata(t).Clone())
	case map[string]string:
		cp := make(map[string]string, len(t))
		for k, s := range t {
			cp[k] = s
		}
		return cp
	case []any:
		cp := make([]any, len(t))
		for i, e := range t {
			cp[i] = cloneValue(e)
		}
		return cp
	case []string:
		cp := make([]string, len(t))
		copy(cp, t)
		return cp
	default:
		return v
	}
}

// ContentType returns the declared content type used for dispatch.
// The "language" key wins over "content_type"; values are lower-cased and
// a leading dot (".go") is stripped.
func (m Metadata) ContentType() string {
	for _, key := range []string{MetaLanguage, MetaContentType} {
		if s, ok := m[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
		}
	}
	return ""
}
