package harness

import (
	"fmt"
	"slices"
)

// checkCase compares an observed case outcome with its expectations and
// returns one message per mismatch.
func checkCase(c Case, cr CaseResult) []string {
	var errs []string

	if c.Error != "" {
		if cr.Error != c.Error {
			errs = append(errs, fmt.Sprintf("expected error %s, got %s", c.Error, describeError(cr.Error)))
		}
		return errs
	}
	if cr.Error != "" {
		return append(errs, fmt.Sprintf("unexpected error %s", cr.Error))
	}

	if c.Expect != nil && !slices.Equal(c.Expect, cr.Matched) {
		errs = append(errs, fmt.Sprintf("expected %v, got %v", c.Expect, cr.Matched))
	}
	if c.Count != nil && *c.Count != cr.Count {
		errs = append(errs, fmt.Sprintf("expected count %d, got %d", *c.Count, cr.Count))
	}
	if c.First != nil && *c.First != cr.First {
		errs = append(errs, fmt.Sprintf("expected first %q, got %q", *c.First, cr.First))
	}
	if len(cr.Matched) != cr.Count {
		errs = append(errs, fmt.Sprintf("SelectAll returned %d records but Count returned %d", len(cr.Matched), cr.Count))
	}
	return errs
}

func describeError(code string) string {
	if code == "" {
		return "success"
	}
	return code
}
