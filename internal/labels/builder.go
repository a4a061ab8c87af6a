package labels

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// outputMode is the file mode used when writing the label set.
const outputMode = 0o644

// Paths locates the sources and the output of a run.
type Paths struct {
	Core     string
	Optional string
	Output   string
}

// BuildOptions selects the sources taking part in a build.
type BuildOptions struct {
	CorePath        string
	IncludeOptional bool
	OptionalPath    string
}

// BuildResult is a validated label set together with how each source fared.
type BuildResult struct {
	Labels  []Label
	Sources []SourceResult
}

// Skipped returns the sources that were requested but not merged.
func (r *BuildResult) Skipped() []SourceResult {
	var skipped []SourceResult
	for _, src := range r.Sources {
		if src.Status == SourceSkipped {
			skipped = append(skipped, src)
		}
	}
	return skipped
}

// Report summarizes a completed run.
type Report struct {
	Count      int
	OutputPath string
	Skipped    []SourceResult
}

// Builder loads, merges, validates and writes label sets.
type Builder struct {
	fs     afs.Service
	logger *log.Logger
}

// NewBuilder creates a Builder on top of fs. A nil logger discards diagnostics.
func NewBuilder(fs afs.Service, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Builder{fs: fs, logger: logger}
}

// Build loads the core source, optionally the secondary source, merges them
// by name and validates the result. Nothing is written.
func (b *Builder) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	core, err := b.LoadSource(ctx, opts.CorePath)
	if err != nil {
		return nil, err
	}

	result := &BuildResult{
		Sources: []SourceResult{{Path: opts.CorePath, Status: SourceLoaded, Labels: core}},
	}
	if opts.IncludeOptional {
		result.Sources = append(result.Sources, b.loadOptional(ctx, opts.OptionalPath))
	}

	parts := make([][]Label, 0, len(result.Sources))
	for _, src := range result.Sources {
		if src.Status == SourceLoaded {
			parts = append(parts, src.Labels)
		}
	}
	merged := Merge(parts...)

	result.Labels = merged.Labels()
	if err := Validate(result.Labels); err != nil {
		return nil, err
	}
	return result, nil
}

// Encode renders labels as a JSON array indented by two spaces and ending in
// a newline. Output is byte-stable for equal input.
func Encode(labels []Label) ([]byte, error) {
	if labels == nil {
		labels = []Label{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(labels); err != nil {
		return nil, fmt.Errorf("marshaling labels: %w", err)
	}
	return buf.Bytes(), nil
}

// Write replaces the content of path with the encoded label set. The parent
// directory must already exist.
func (b *Builder) Write(ctx context.Context, labels []Label, path string) error {
	data, err := Encode(labels)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	parent, _ := url.Split(path, file.Scheme)
	exists, err := b.fs.Exists(ctx, parent)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if !exists {
		return &WriteError{Path: path, Err: fmt.Errorf("%w: %s", errNoParentDir, parent)}
	}
	if err := b.fs.Upload(ctx, path, outputMode, bytes.NewReader(data)); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Run builds the label set described by paths and writes it to paths.Output.
// The output is only written once the whole set has validated.
func (b *Builder) Run(ctx context.Context, paths Paths, includeOptional bool) (*Report, error) {
	result, err := b.Build(ctx, BuildOptions{
		CorePath:        paths.Core,
		IncludeOptional: includeOptional,
		OptionalPath:    paths.Optional,
	})
	if err != nil {
		return nil, err
	}

	if err := b.Write(ctx, result.Labels, paths.Output); err != nil {
		return nil, err
	}
	b.logger.Debug("wrote label set", "path", paths.Output, "labels", len(result.Labels))

	return &Report{
		Count:      len(result.Labels),
		OutputPath: paths.Output,
		Skipped:    result.Skipped(),
	}, nil
}
