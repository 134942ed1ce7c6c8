package bindgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/ffigen/clang"
	"github.com/teranos/ffigen/errors"
	"github.com/teranos/ffigen/logger"
)

// StdoutPath makes WriteOutput print instead of writing a file
const StdoutPath = "-"

// Options configures one generation run
type Options struct {
	// Headers are parsed in order; their blocks are concatenated in that order
	Headers []string
	// Args are passed to the provider for every header (-I flags included)
	Args []string
	// StructSuffix is appended to emitted struct names
	StructSuffix string
	// MainFileOnly skips structs declared in included files
	MainFileOnly bool
	// MaxPointerDepth bounds pointer nesting during type resolution
	MaxPointerDepth int
	// Strict makes Run fail with ErrDeclarationsFailed when any struct failed
	Strict bool
	// TraceFields logs every resolved field at debug level
	TraceFields bool
}

// Failure is one struct that could not be extracted
type Failure struct {
	Header string
	Struct string
	Err    error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %s: %v", f.Header, f.Struct, f.Err)
}

// Result is the outcome of one run
type Result struct {
	// RunID identifies the run in logs only; it never reaches Output
	RunID   string
	Output  string
	Structs []*StructDescriptor
	// Skipped counts forward declarations, structs from included files and
	// structs already emitted for an earlier header
	Skipped  int
	Failures []Failure
}

// Pipeline drives parse, collect, extract and emit over a header set
type Pipeline struct {
	parser    clang.Parser
	opts      Options
	extractor *Extractor
	emitter   *Emitter
	log       *zap.SugaredLogger
}

// New creates a pipeline. A nil log discards all output.
func New(parser clang.Parser, opts Options, log *zap.SugaredLogger) *Pipeline {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Pipeline{
		parser:    parser,
		opts:      opts,
		extractor: NewExtractor(NewResolver(opts.MaxPointerDepth), NewCommentRenderer(log.Named("comment"))),
		emitter:   NewEmitter(opts.StructSuffix),
		log:       log,
	}
}

// Run generates the output for every configured header. Per-struct errors
// are recorded in Result.Failures; provider errors abort the run.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: uuid.NewString()}
	log := logger.ChildLogger(p.log, logger.FieldRunID, result.RunID)

	if len(p.opts.Headers) == 0 {
		return nil, errors.WithHint(errors.New("no headers to generate from"),
			"set generate.headers in ffigen.toml")
	}

	var blocks []string
	seen := make(map[string]bool)
	for _, header := range p.opts.Headers {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "generation cancelled")
		}
		headerBlocks, err := p.header(ctx, header, seen, result, log)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, headerBlocks...)
	}
	result.Output = JoinBlocks(blocks)

	log.Infow("Generation complete",
		logger.FieldStructs, len(result.Structs),
		logger.FieldFailed, len(result.Failures),
		logger.FieldSkipped, result.Skipped,
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	if p.opts.Strict && len(result.Failures) > 0 {
		err := errors.Wrapf(errors.ErrDeclarationsFailed, "%d struct(s) failed", len(result.Failures))
		for _, f := range result.Failures {
			err = errors.WithDetail(err, f.Error())
		}
		return result, err
	}
	return result, nil
}

func (p *Pipeline) header(ctx context.Context, header string, seen map[string]bool, result *Result, log *zap.SugaredLogger) ([]string, error) {
	log = logger.ChildLogger(log, logger.FieldHeader, header)

	tu, err := p.parser.Parse(ctx, header, p.opts.Args)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", header)
	}
	defer tu.Dispose()

	for _, d := range tu.Diagnostics() {
		log.Debugw("Parse diagnostic", logger.FieldSeverity, d.Severity.String(), logger.FieldMessage, d.Message)
	}

	decls := Collect(tu.Cursor())
	log.Debugw("Collected declarations",
		logger.FieldStructs, len(decls.Structs),
		logger.FieldTypedefs, len(decls.Typedefs),
		logger.FieldFunctions, len(decls.Functions),
		logger.FieldIgnored, decls.Ignored)

	var blocks []string
	for _, c := range decls.Structs {
		if p.opts.MainFileOnly && !c.IsFromMainFile() {
			result.Skipped++
			continue
		}
		if !c.IsDefinition() {
			log.Debugw("Skipping forward declaration", logger.FieldStruct, c.Spelling())
			result.Skipped++
			continue
		}

		desc, err := p.extractor.Extract(c)
		if err != nil {
			name := c.Type().Spelling()
			if name == "" {
				name = c.DisplayName()
			}
			result.Failures = append(result.Failures, Failure{Header: header, Struct: name, Err: err})
			log.Errorw("Failed to extract struct",
				logger.FieldStruct, name,
				logger.FieldKind, c.KindSpelling(),
				logger.FieldError, err.Error())
			continue
		}

		if seen[desc.Name] {
			log.Debugw("Struct already emitted", logger.FieldStruct, desc.Name)
			result.Skipped++
			continue
		}
		seen[desc.Name] = true

		log.Debugw("Extracted struct",
			logger.FieldStruct, desc.Name,
			logger.FieldFields, len(desc.Fields),
			logger.FieldSize, desc.Size)
		if p.opts.TraceFields {
			for _, f := range desc.Fields {
				log.Debugw("Resolved field",
					logger.FieldStruct, desc.Name,
					logger.FieldField, f.Name,
					logger.FieldOffset, f.Offset,
					logger.FieldType, f.Type)
			}
		}
		result.Structs = append(result.Structs, desc)
		blocks = append(blocks, p.emitter.Emit(desc))
	}
	return blocks, nil
}

// WriteOutput persists the run's artifact once. StdoutPath prints it.
func WriteOutput(path string, result *Result) error {
	if path == StdoutPath {
		_, err := os.Stdout.WriteString(result.Output)
		return errors.Wrap(err, "failed to write output to stdout")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create output directory %s", dir)
		}
	}
	if err := os.WriteFile(path, []byte(result.Output), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
