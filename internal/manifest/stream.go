package manifest

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"

	"go.uber.org/zap"
	yamlutil "k8s.io/apimachinery/pkg/util/yaml"
)

// ErrMissingNamespace is returned when no target namespace is supplied.
var ErrMissingNamespace = errors.New("namespace argument is required")

// ParseError reports a document that is not valid YAML. It aborts the
// whole stream.
type ParseError struct {
	// Index is the 0-based position of the document in the stream.
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse document %d: %v", e.Index, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Chunk is the raw text of one document in a stream.
type Chunk struct {
	Index int
	Data  []byte
}

// Chunks splits a multi-document YAML stream on "---" lines. The sequence
// reads r as it is iterated, so it can only be ranged over once.
func Chunks(r io.Reader) iter.Seq2[Chunk, error] {
	return func(yield func(Chunk, error) bool) {
		reader := yamlutil.NewYAMLReader(bufio.NewReader(r))
		for index := 0; ; index++ {
			data, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Chunk{Index: index}, &ParseError{Index: index, Err: err})
				return
			}
			if !yield(Chunk{Index: index, Data: data}, nil) {
				return
			}
		}
	}
}

// Stats counts what a Processor did to a stream.
type Stats struct {
	Documents int
	Skipped   int
	Injected  int
	Stripped  int
}

// Processor runs documents through an Injector.
type Processor struct {
	injector *Injector
	logger   *zap.Logger
}

// NewProcessor creates a Processor. A nil logger discards log output.
func NewProcessor(injector *Injector, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{injector: injector, logger: logger}
}

// Process reads the whole stream from r and writes every non-empty
// document, separator first, to w.
//
// Output is buffered until the last document has been processed. If any
// document fails to parse nothing is written to w.
func (p *Processor) Process(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats

	data, err := io.ReadAll(r)
	if err != nil {
		return stats, fmt.Errorf("read input: %w", err)
	}

	var out bytes.Buffer
	for chunk, err := range Chunks(bytes.NewReader(data)) {
		if err != nil {
			return stats, err
		}
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		docs, err := ParseDocuments(chunk.Data)
		if err != nil {
			return stats, &ParseError{Index: chunk.Index, Err: err}
		}
		for _, doc := range docs {
			if err := p.emit(&out, &stats, chunk.Index, doc); err != nil {
				return stats, err
			}
		}
	}

	if _, err := out.WriteTo(w); err != nil {
		return stats, fmt.Errorf("write output: %w", err)
	}
	return stats, nil
}

// emit runs doc through the injector and appends it to out, or counts it as
// skipped when it is empty.
func (p *Processor) emit(out *bytes.Buffer, stats *Stats, index int, doc *Document) error {
	if doc.IsEmpty() {
		stats.Skipped++
		p.logger.Debug("skipping empty document", zap.Int("index", index))
		return nil
	}

	result := p.injector.Apply(doc)
	stats.Documents++
	if result.Injected {
		stats.Injected++
	}
	if result.StrippedReplicas {
		stats.Stripped++
	}
	p.logger.Debug("processed document",
		zap.Int("index", index),
		zap.String("kind", result.Kind),
		zap.Bool("injected", result.Injected),
		zap.Bool("strippedReplicas", result.StrippedReplicas),
	)

	out.WriteString(Separator + "\n")
	if err := doc.Encode(out); err != nil {
		return fmt.Errorf("encode document %d: %w", index, err)
	}
	return nil
}
