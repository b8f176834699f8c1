package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/erraggy/oas2ir/ast"
	"github.com/erraggy/oas2ir/ir"
	"github.com/erraggy/oas2ir/oaserrors"
)

// DefaultMaxFileSize is the input size limit used when MaxFileSize is 0.
const DefaultMaxFileSize int64 = 10 << 20

// Parser converts OpenAPI 2.0 documents. The zero value is usable but has
// collision diagnostics disabled; New returns the recommended defaults.
type Parser struct {
	// Logger receives debug output. Nil disables logging.
	Logger Logger
	// MaxFileSize limits the size of the input in bytes.
	// Default: 10 MiB
	MaxFileSize int64
	// CollisionDiagnostics reports a violation when two structurally
	// different schemas are given the same synthesized name.
	// Default (via New): true
	CollisionDiagnostics bool
}

// New creates a Parser with default settings.
func New() *Parser {
	return &Parser{CollisionDiagnostics: true}
}

func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return DefaultMaxFileSize
}

// Result is a converted document.
type Result struct {
	// Service is the IR of the document.
	Service *ir.Service
	// Violations are the non-fatal problems found, in discovery order.
	Violations []ir.Violation
	// SourcePath is the path stamped on the service and its violations.
	SourcePath string
	// SourceFormat is the detected input format.
	SourceFormat SourceFormat
	// SourceSize is the input size in bytes.
	SourceSize int64
	// LoadTime is the time spent reading the input.
	LoadTime time.Duration
	// ConvertTime is the time spent building the IR.
	ConvertTime time.Duration
}

// HasViolations reports whether any violations were collected.
func (r *Result) HasViolations() bool {
	return len(r.Violations) > 0
}

// Parse reads and converts the document at path.
func (p *Parser) Parse(path string) (*Result, error) {
	return p.parseFile(path, path)
}

// ParseReader reads and converts a document from r. The result has an empty
// source path.
func (p *Parser) ParseReader(r io.Reader) (*Result, error) {
	return p.parseReader(r, "")
}

// ParseBytes converts a document held in memory. The result has an empty
// source path.
func (p *Parser) ParseBytes(data []byte) (*Result, error) {
	return p.parseBytes(data, "")
}

func (p *Parser) parseFile(path, sourcePath string) (*Result, error) {
	if info, err := os.Stat(path); err == nil && info.Size() > p.maxFileSize() {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        p.maxFileSize(),
			Actual:       info.Size(),
			Message:      path,
		}
	}

	loadStart := time.Now()
	data, err := os.ReadFile(path)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to read file", Cause: err}
	}

	res, err := p.parseBytes(data, sourcePath)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	res.SourceFormat = detectFormat(path, data)
	return res, nil
}

func (p *Parser) parseReader(r io.Reader, sourcePath string) (*Result, error) {
	limit := p.maxFileSize()
	loadStart := time.Now()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "failed to read data", Cause: err}
	}
	if int64(len(data)) > limit {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "input_size",
			Limit:        limit,
			Message:      "reader exceeds the maximum input size",
		}
	}

	res, err := p.parseBytes(data, sourcePath)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

func (p *Parser) parseBytes(data []byte, sourcePath string) (*Result, error) {
	if int64(len(data)) > p.maxFileSize() {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "input_size",
			Limit:        p.maxFileSize(),
			Actual:       int64(len(data)),
		}
	}

	stamped := relativePath(sourcePath)
	log := p.log().With("source", stamped)
	log.Debug("converting document", "size", FormatBytes(int64(len(data))))

	root, err := ast.Parse(data)
	if errors.Is(err, ast.ErrNodeBudget) {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "document_nodes",
			Limit:        int64(ast.NodeBudget(len(data))),
			Message:      "alias expansion produces too many nodes",
		}
	}
	if err != nil {
		pe := &oaserrors.ParseError{Path: stamped, Message: "invalid document", Cause: err}
		if errors.Is(err, ast.ErrEmptyDocument) {
			pe.Message = "empty document"
		}
		return nil, pe
	}

	start := time.Now()
	ctx := newRunContext(root, stamped, log, p.CollisionDiagnostics)
	service, err := ctx.service()
	if err != nil {
		log.Debug("conversion failed", "error", err)
		return nil, err
	}

	res := &Result{
		Service:      service,
		Violations:   ctx.issues.Items(),
		SourcePath:   stamped,
		SourceFormat: detectFormat("", data),
		SourceSize:   int64(len(data)),
		ConvertTime:  time.Since(start),
	}
	for _, v := range res.Violations {
		log.Warn("violation", "code", v.Code, "location", v.Location(), "message", v.Message)
	}
	log.Debug("converted document",
		"interfaces", len(service.Interfaces),
		"types", len(service.Types),
		"enums", len(service.Enums),
		"violations", len(res.Violations),
		"elapsed", res.ConvertTime)
	return res, nil
}

// relativePath expresses path relative to the working directory. Paths that
// cannot be made relative are returned unchanged.
func relativePath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, abs)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// String summarizes the result for logs.
func (r *Result) String() string {
	if r.Service == nil {
		return "<empty result>"
	}
	return fmt.Sprintf("%s v%d: %d interfaces, %d types, %d enums, %d violations",
		r.Service.Title.Value, r.Service.MajorVersion.Value,
		len(r.Service.Interfaces), len(r.Service.Types), len(r.Service.Enums), len(r.Violations))
}
