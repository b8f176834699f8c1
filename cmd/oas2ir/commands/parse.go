package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/oas2ir/internal/cliutil"
	"github.com/erraggy/oas2ir/internal/fileutil"
	"github.com/erraggy/oas2ir/internal/pathutil"
	"github.com/erraggy/oas2ir/parser"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ParseConfig captures all inputs that influence the parse command after
// merging defaults, environment variables, and CLI overrides.
type ParseConfig struct {
	Input                  string
	Format                 string
	Indent                 int
	Output                 string
	SourcePath             string
	MaxFileSize            int64
	Violations             bool
	NoCollisionDiagnostics bool
	Quiet                  bool
}

func defaultParseConfig() ParseConfig {
	return ParseConfig{
		Format:      FormatJSON,
		Indent:      envInt(EnvIndent, 2),
		MaxFileSize: envInt64(EnvMaxFileSize, parser.DefaultMaxFileSize),
		Violations:  true,
	}
}

func newParseCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file|->",
		Short: "Convert an OpenAPI 2.0 document to IR",
		Long: "Convert an OpenAPI 2.0 document (JSON or YAML) to the service IR. " +
			"The IR is written to stdout or --output; violations and the summary go to stderr.",
		Example: strings.TrimSpace(`  oas2ir parse petstore.json
  oas2ir parse --format yaml --indent 4 api.yaml
  oas2ir parse -o petstore.ir.json petstore.json
  cat swagger.yaml | oas2ir parse -q --source-path api/swagger.yaml -`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveParseConfig(cmd.Flags(), args)
			if err != nil {
				return err
			}
			return runParse(cmd, opts, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringP("format", "f", FormatJSON, "Output format (json|yaml)")
	flags.Int("indent", 2, "Indentation width; 0 gives compact JSON (default $OAS2IR_INDENT or 2)")
	flags.StringP("output", "o", "", "Write the IR to this file instead of stdout")
	flags.String("source-path", "", "Path recorded in the IR and violations (defaults to the input path)")
	flags.Int64("max-file-size", parser.DefaultMaxFileSize, "Maximum input size in bytes (default $OAS2IR_MAX_FILE_SIZE or 10 MiB)")
	flags.Bool("violations", true, "Print violations to stderr")
	flags.Bool("no-collision-diagnostics", false, "Do not report structurally different types sharing a name")
	flags.BoolP("quiet", "q", false, "Only output the IR, no summary")

	return cmd
}

func resolveParseConfig(flags *pflag.FlagSet, args []string) (*ParseConfig, error) {
	if len(args) != 1 {
		return nil, newUsageError("parse: requires exactly one file path or '-' for stdin")
	}

	cfg := defaultParseConfig()
	cfg.Input = strings.TrimSpace(args[0])

	if err := applyParseFlagOverrides(flags, &cfg); err != nil {
		return nil, err
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if err := ValidateOutputFormat(cfg.Format); err != nil {
		return nil, err
	}
	if cfg.Indent < 0 || cfg.Indent > 8 {
		return nil, newUsageError(fmt.Sprintf("parse: --indent must be between 0 and 8, got %d", cfg.Indent))
	}
	if cfg.MaxFileSize < 0 {
		return nil, newUsageError("parse: --max-file-size cannot be negative")
	}
	return &cfg, nil
}

func applyParseFlagOverrides(flags *pflag.FlagSet, cfg *ParseConfig) error {
	if flags.Changed("format") {
		value, err := flags.GetString("format")
		if err != nil {
			return err
		}
		cfg.Format = value
	}
	if flags.Changed("indent") {
		value, err := flags.GetInt("indent")
		if err != nil {
			return err
		}
		cfg.Indent = value
	}
	if flags.Changed("output") {
		value, err := flags.GetString("output")
		if err != nil {
			return err
		}
		cfg.Output = strings.TrimSpace(value)
	}
	if flags.Changed("source-path") {
		value, err := flags.GetString("source-path")
		if err != nil {
			return err
		}
		cfg.SourcePath = strings.TrimSpace(value)
	}
	if flags.Changed("max-file-size") {
		value, err := flags.GetInt64("max-file-size")
		if err != nil {
			return err
		}
		cfg.MaxFileSize = value
	}
	if flags.Changed("violations") {
		value, err := flags.GetBool("violations")
		if err != nil {
			return err
		}
		cfg.Violations = value
	}
	if flags.Changed("no-collision-diagnostics") {
		value, err := flags.GetBool("no-collision-diagnostics")
		if err != nil {
			return err
		}
		cfg.NoCollisionDiagnostics = value
	}
	if flags.Changed("quiet") {
		value, err := flags.GetBool("quiet")
		if err != nil {
			return err
		}
		cfg.Quiet = value
	}
	return nil
}

func runParse(cmd *cobra.Command, opts *rootOptions, cfg *ParseConfig) error {
	stderr := cmd.ErrOrStderr()

	parseOpts := []parser.Option{
		parser.WithMaxFileSize(cfg.MaxFileSize),
		parser.WithCollisionDiagnostics(!cfg.NoCollisionDiagnostics),
	}
	if opts.logger != nil {
		parseOpts = append(parseOpts, parser.WithLogger(parser.NewSlogAdapter(opts.logger)))
	}
	if cfg.Input == StdinFilePath {
		parseOpts = append(parseOpts, parser.WithReader(cmd.InOrStdin()))
	} else {
		parseOpts = append(parseOpts, parser.WithFilePath(cfg.Input))
	}
	if cfg.SourcePath != "" {
		parseOpts = append(parseOpts, parser.WithSourcePath(cfg.SourcePath))
	}

	result, err := parser.ParseWithOptions(parseOpts...)
	if err != nil {
		return fmt.Errorf("converting %s: %w", FormatSpecPath(cfg.Input), err)
	}

	if !cfg.Quiet {
		OutputSummary(stderr, cfg.Input, result)
	}
	if cfg.Violations {
		cliutil.WriteViolations(stderr, result.Violations)
	}

	data, err := MarshalIR(result.Service, cfg.Format, cfg.Indent)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), cfg, data)
}

func writeOutput(stdout io.Writer, cfg *ParseConfig, data []byte) error {
	if cfg.Output == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		if len(data) > 0 && data[len(data)-1] != '\n' {
			cliutil.Writef(stdout, "\n")
		}
		return nil
	}

	if err := ValidateOutputPath(cfg.Output, []string{cfg.Input}); err != nil {
		return err
	}
	cleaned, err := pathutil.SanitizeOutputPath(cfg.Output)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cleaned, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
