package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/mizukyf/minque"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "json" | "text"
	Config    string // lexer options file (.yaml, .yml, .json, .cue)
	Normalize bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the minque CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "minque",
		Short: "minque - filter records with query expressions",
		Long: `Compile SQL-like filter expressions and evaluate them against records.

Records come from a YAML, JSON or CUE file, or from a SQLite table.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "lexer options file")
	cmd.PersistentFlags().BoolVar(&opts.Normalize, "normalize", false, "compare strings in Unicode NFC form")

	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewSelectCommand(opts))
	cmd.AddCommand(NewFirstCommand(opts))
	cmd.AddCommand(NewCountCommand(opts))
	cmd.AddCommand(NewTablesCommand(opts))

	return cmd
}

// Logger returns a Debug-level slog logger on w when verbose, and a
// discarding one otherwise. JSON output gets a JSON handler.
func (o *RootOptions) Logger(w io.Writer) *slog.Logger {
	if !o.Verbose {
		return slog.New(slog.DiscardHandler)
	}
	hopts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if o.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

// newFactory builds a map-record factory from the global flags.
func newFactory(o *RootOptions, logger *slog.Logger) (*minque.Factory[map[string]any], error) {
	lex := minque.DefaultLexOptions()
	if o.Config != "" {
		cfg, err := LoadConfig(o.Config)
		if err != nil {
			return nil, err
		}
		if lex, err = cfg.Options(); err != nil {
			return nil, fmt.Errorf("%s: %w", o.Config, err)
		}
	}

	fopts := []minque.Option{minque.WithLexOptions(lex), minque.WithLogger(logger)}
	if o.Normalize {
		fopts = append(fopts, minque.WithNormalization())
	}
	return minque.NewMapFactory(fopts...), nil
}

func newFormatter(o *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // verbose logs go to stderr to keep JSON clean
		Verbose:   o.Verbose,
	}
}
