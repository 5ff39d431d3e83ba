package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizukyf/minque"
)

// CheckResult describes a compiled query.
type CheckResult struct {
	Query        string            `json:"query"`
	Canonical    string            `json:"canonical"`
	Placeholders int               `json:"placeholders"`
	Tree         minque.Expression `json:"tree"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <query>",
		Short: "Parse a query and print its canonical form",
		Long: `Parse a query without evaluating it.

Text output shows the fully parenthesized canonical form and the number
of placeholders. JSON output adds the expression tree.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runCheck(opts *RootOptions, text string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	factory, err := newFactory(opts, opts.Logger(cmd.ErrOrStderr()))
	if err != nil {
		return outputError(formatter, loadErrorCode(err, ErrCodeConfig), err.Error(), err)
	}

	q, err := factory.Compile(text)
	if err != nil {
		return outputQueryError(formatter, err)
	}

	result := CheckResult{
		Query:        text,
		Canonical:    q.String(),
		Placeholders: q.Placeholders(),
		Tree:         q.Expression(),
	}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "canonical: %s\n", result.Canonical)
	fmt.Fprintf(formatter.Writer, "placeholders: %d\n", result.Placeholders)
	return nil
}
