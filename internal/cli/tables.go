package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mizukyf/minque/internal/source"
)

// NewTablesCommand creates the tables command, which lists the tables
// that --table accepts.
func NewTablesCommand(rootOpts *RootOptions) *cobra.Command {
	var db string

	cmd := &cobra.Command{
		Use:           "tables --db PATH",
		Short:         "List the tables of a SQLite database",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			src, err := source.Open(db)
			if err != nil {
				return outputError(formatter, ErrCodeRecords, err.Error(), err)
			}
			defer src.Close()

			tables, err := src.Tables(cmd.Context())
			if err != nil {
				return outputError(formatter, ErrCodeRecords, err.Error(), err)
			}
			if formatter.Format == "json" {
				return formatter.Success(tables)
			}
			if len(tables) > 0 {
				return formatter.Success(strings.Join(tables, "\n"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&db, "db", "", "SQLite database path")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}
