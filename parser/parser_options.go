package parser

import (
	"io"

	"github.com/erraggy/oas2ir/internal/options"
	"github.com/erraggy/oas2ir/oaserrors"
)

// Option configures a single conversion.
type Option func(*parseConfig) error

type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger               Logger
	maxFileSize          int64
	collisionDiagnostics bool

	// Overrides the path stamped on the service and violations
	sourcePath *string
}

// ParseWithOptions converts a document selected and configured by options.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("petstore.json"),
//	    parser.WithLogger(parser.NewSlogAdapter(slog.Default())),
//	)
func ParseWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	p := &Parser{
		Logger:               cfg.logger,
		MaxFileSize:          cfg.maxFileSize,
		CollisionDiagnostics: cfg.collisionDiagnostics,
	}

	switch {
	case cfg.filePath != nil:
		sourcePath := *cfg.filePath
		if cfg.sourcePath != nil {
			sourcePath = *cfg.sourcePath
		}
		return p.parseFile(*cfg.filePath, sourcePath)
	case cfg.reader != nil:
		return p.parseReader(cfg.reader, deref(cfg.sourcePath))
	default:
		return p.parseBytes(cfg.bytes, deref(cfg.sourcePath))
	}
}

func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		collisionDiagnostics: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("input",
		"must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath reads the document from a file. The path is also the default
// source path.
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		if path == "" {
			return &oaserrors.ConfigError{Option: "WithFilePath", Message: "path cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithReader reads the document from r.
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "WithReader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes converts a document held in memory.
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "WithBytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithSourcePath sets the path stamped on the service and on every
// violation. It is made relative to the working directory.
func WithSourcePath(path string) Option {
	return func(cfg *parseConfig) error {
		if path == "" {
			return &oaserrors.ConfigError{Option: "WithSourcePath", Message: "source path cannot be empty"}
		}
		cfg.sourcePath = &path
		return nil
	}
}

// WithLogger sets a structured logger for debug output.
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxFileSize sets the maximum input size in bytes.
// A value of 0 means use the default (10 MiB).
func WithMaxFileSize(size int64) Option {
	return func(cfg *parseConfig) error {
		if size < 0 {
			return &oaserrors.ConfigError{Option: "WithMaxFileSize", Value: size, Message: "cannot be negative"}
		}
		cfg.maxFileSize = size
		return nil
	}
}

// WithCollisionDiagnostics enables or disables the type-name-collision
// violation.
// Default: true
func WithCollisionDiagnostics(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.collisionDiagnostics = enabled
		return nil
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
