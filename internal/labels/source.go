package labels

import (
	"context"
	"encoding/json"
)

// SourceStatus is the outcome of loading one label source.
type SourceStatus int

const (
	// SourceLoaded means the source was read and its labels take part in the merge.
	SourceLoaded SourceStatus = iota
	// SourceSkipped means an optional source failed to load and was treated as empty.
	SourceSkipped
)

func (s SourceStatus) String() string {
	switch s {
	case SourceLoaded:
		return "loaded"
	case SourceSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// SourceResult records how one source contributed to a build.
type SourceResult struct {
	Path     string
	Status   SourceStatus
	Labels   []Label
	Optional bool
	Err      error // cause when Status is SourceSkipped
}

// LoadSource reads the file at path and decodes it as a JSON array of labels.
// Any failure is returned as a *ParseError naming path.
func (b *Builder) LoadSource(ctx context.Context, path string) ([]Label, error) {
	data, err := b.fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	labels, err := DecodeSource(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	b.logger.Debug("loaded label source", "path", path, "labels", len(labels))
	return labels, nil
}

// DecodeSource parses raw source content. The top-level JSON value must be an
// array; objects, scalars and null are rejected. Elements are taken as-is.
func DecodeSource(data []byte) ([]Label, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 || raw[0] != '[' {
		return nil, errNotArray
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, err
	}
	labels := make([]Label, len(elements))
	for i, element := range elements {
		labels[i] = NewLabel(element)
	}
	return labels, nil
}

// loadOptional loads an optional source. A failure never aborts the build: it
// is logged as a warning and reported as a skipped, empty source.
func (b *Builder) loadOptional(ctx context.Context, path string) SourceResult {
	labels, err := b.LoadSource(ctx, path)
	if err != nil {
		b.logger.Warn("optional scopes not included", "path", path, "err", err)
		return SourceResult{Path: path, Status: SourceSkipped, Optional: true, Err: err}
	}
	return SourceResult{Path: path, Status: SourceLoaded, Labels: labels, Optional: true}
}
