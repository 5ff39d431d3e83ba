package harness

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"

	"github.com/mizukyf/minque"
	"github.com/mizukyf/minque/internal/value"
)

// selector is implemented by both *minque.Query and *minque.Bound.
type selector interface {
	SelectAll(iter.Seq[map[string]any]) ([]map[string]any, error)
	SelectFirst(iter.Seq[map[string]any]) (map[string]any, bool, error)
	Count(iter.Seq[map[string]any]) (int, error)
}

// Harness executes the cases of one scenario.
type Harness struct {
	factory *minque.Factory[map[string]any]
	records []map[string]any
	logger  *slog.Logger
}

// Run executes every case of scenario and returns the result.
// An error is returned only when the scenario itself cannot be set up;
// failed expectations are reported in Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	opts, err := scenario.Options.Options()
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	// Suppress logs in tests.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := &Harness{
		factory: minque.NewMapFactory(minque.WithLexOptions(opts), minque.WithLogger(logger)),
		records: scenario.Records,
		logger:  logger,
	}

	result := NewResult(scenario.Name)
	for _, c := range scenario.Cases {
		cr := h.runCase(c)
		msgs := checkCase(c, cr)
		for _, msg := range msgs {
			result.AddError(fmt.Sprintf("case %q: %s", c.Name, msg))
		}
		cr.Pass = len(msgs) == 0
		result.Cases = append(result.Cases, cr)
	}
	return result, nil
}

// runCase compiles, binds and executes one case. Failures are captured in
// CaseResult.Error rather than returned.
func (h *Harness) runCase(c Case) CaseResult {
	cr := CaseResult{Name: c.Name, Query: c.Query, Matched: []string{}}

	q, err := h.factory.Compile(c.Query)
	if err != nil {
		cr.Error = errorCode(err)
		return cr
	}
	cr.Canonical = q.String()

	var sel selector = q
	if c.Bind != nil {
		bound, err := q.Bind(c.Bind...)
		if err != nil {
			cr.Error = errorCode(err)
			return cr
		}
		sel = bound
	}

	all, err := sel.SelectAll(slices.Values(h.records))
	if err != nil {
		cr.Error = errorCode(err)
		return cr
	}
	for _, rec := range all {
		cr.Matched = append(cr.Matched, recordID(rec))
	}

	if cr.Count, err = sel.Count(slices.Values(h.records)); err != nil {
		cr.Error = errorCode(err)
		return cr
	}

	first, ok, err := sel.SelectFirst(slices.Values(h.records))
	if err != nil {
		cr.Error = errorCode(err)
		return cr
	}
	if ok {
		cr.First = recordID(first)
	}

	h.logger.Debug("case executed",
		"case", c.Name,
		"matched", len(cr.Matched))
	return cr
}

func recordID(rec map[string]any) string {
	return value.Stringify(rec["id"])
}

func errorCode(err error) string {
	var qe *minque.Error
	if errors.As(err, &qe) {
		return string(qe.Code)
	}
	return err.Error()
}
