package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"github.com/spf13/cobra"

	"github.com/mizukyf/minque/internal/source"
)

type selectMode int

const (
	modeSelect selectMode = iota
	modeFirst
	modeCount
)

// SelectOptions holds flags for the select, first and count commands.
type SelectOptions struct {
	*RootOptions
	Records string   // record file
	DB      string   // SQLite database
	Table   string   // table within DB
	Bind    []string // placeholder values, in order
}

// Record is a map record as read from a file or table.
type Record = map[string]any

// selector is satisfied by both *minque.Query and *minque.Bound.
type selector interface {
	SelectAll(records iter.Seq[Record]) ([]Record, error)
	SelectFirst(records iter.Seq[Record]) (Record, bool, error)
	Count(records iter.Seq[Record]) (int, error)
}

// CountResult is the JSON payload of count.
type CountResult struct {
	Count int `json:"count"`
}

// NewSelectCommand creates the select command.
func NewSelectCommand(rootOpts *RootOptions) *cobra.Command {
	return newSelectionCommand(rootOpts, modeSelect, "select <query>",
		"Print every record matching a query")
}

// NewFirstCommand creates the first command. It exits with ExitFailure
// when nothing matches.
func NewFirstCommand(rootOpts *RootOptions) *cobra.Command {
	return newSelectionCommand(rootOpts, modeFirst, "first <query>",
		"Print the first record matching a query")
}

// NewCountCommand creates the count command.
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	return newSelectionCommand(rootOpts, modeCount, "count <query>",
		"Count the records matching a query")
}

func newSelectionCommand(rootOpts *RootOptions, mode selectMode, use, short string) *cobra.Command {
	opts := &SelectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.

Records are read from --records (a YAML or JSON list of mappings, or a
CUE file with a "records" list) or from --db and --table (a SQLite
table, in rowid order). Each --bind fills the next "?" placeholder.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelection(cmd.Context(), opts, mode, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Records, "records", "", "record file (.yaml, .yml, .json, .cue)")
	cmd.Flags().StringVar(&opts.DB, "db", "", "SQLite database path")
	cmd.Flags().StringVar(&opts.Table, "table", "", "table to read from --db")
	cmd.Flags().StringArrayVar(&opts.Bind, "bind", nil, "placeholder value (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("records", "db")
	cmd.MarkFlagsOneRequired("records", "db")
	cmd.MarkFlagsRequiredTogether("db", "table")

	return cmd
}

func runSelection(ctx context.Context, opts *SelectOptions, mode selectMode, text string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	factory, err := newFactory(opts.RootOptions, opts.Logger(cmd.ErrOrStderr()))
	if err != nil {
		return outputError(formatter, loadErrorCode(err, ErrCodeConfig), err.Error(), err)
	}

	q, err := factory.Compile(text)
	if err != nil {
		return outputQueryError(formatter, err)
	}

	var sel selector = q
	if len(opts.Bind) > 0 {
		values := make([]any, len(opts.Bind))
		for i, v := range opts.Bind {
			values[i] = v
		}
		b, err := q.Bind(values...)
		if err != nil {
			return outputQueryError(formatter, err)
		}
		sel = b
	}

	records, err := loadRecordSet(ctx, opts)
	if err != nil {
		return outputError(formatter, loadErrorCode(err, ErrCodeRecords), err.Error(), err)
	}
	formatter.VerboseLog("Loaded %d record(s)", len(records))

	seq := slices.Values(records)
	switch mode {
	case modeFirst:
		rec, ok, err := sel.SelectFirst(seq)
		if err != nil {
			return outputQueryError(formatter, err)
		}
		if !ok {
			_ = formatter.Error(ErrCodeNoMatch, "no matching record", nil)
			return NewExitError(ExitFailure, "no matching record")
		}
		return outputRecords(formatter, []Record{rec})

	case modeCount:
		n, err := sel.Count(seq)
		if err != nil {
			return outputQueryError(formatter, err)
		}
		if formatter.Format == "json" {
			return formatter.Success(CountResult{Count: n})
		}
		return formatter.Success(n)

	default:
		matched, err := sel.SelectAll(seq)
		if err != nil {
			return outputQueryError(formatter, err)
		}
		formatter.VerboseLog("Matched %d of %d record(s)", len(matched), len(records))
		return outputRecords(formatter, matched)
	}
}

// loadRecordSet reads records from whichever source the flags name. Flag
// groups on the command guarantee exactly one source.
func loadRecordSet(ctx context.Context, opts *SelectOptions) ([]Record, error) {
	if opts.Records != "" {
		return LoadRecords(opts.Records)
	}

	src, err := source.Open(opts.DB)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return src.Records(ctx, opts.Table)
}

// outputRecords writes records as a JSON array in JSON mode and as JSON
// lines in text mode.
func outputRecords(f *OutputFormatter, records []Record) error {
	if f.Format == "json" {
		return f.Success(records)
	}
	enc := json.NewEncoder(f.Writer)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
	return nil
}
