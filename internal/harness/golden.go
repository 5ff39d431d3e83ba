package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Report renders a result as stable text for golden comparison:
//
//	scenario: keyed
//	case prefix: PASS
//	  query: key0 ^= f
//	  canonical: key0 ^= f
//	  matched: [map0 map1]
//	  first: map0
//
// A failing case lists its mismatches; a case that errored prints the
// error code in place of matched and first.
func Report(r *Result, scenario *Scenario) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", r.Scenario)
	for i, cr := range r.Cases {
		status := "PASS"
		if !cr.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "case %s: %s\n", cr.Name, status)
		fmt.Fprintf(&b, "  query: %s\n", cr.Query)
		if cr.Canonical != "" {
			fmt.Fprintf(&b, "  canonical: %s\n", cr.Canonical)
		}
		if cr.Error != "" {
			fmt.Fprintf(&b, "  error: %s\n", cr.Error)
		} else {
			fmt.Fprintf(&b, "  matched: [%s]\n", strings.Join(cr.Matched, " "))
			fmt.Fprintf(&b, "  first: %s\n", orNone(cr.First))
		}
		if !cr.Pass && scenario != nil {
			for _, msg := range checkCase(scenario.Cases[i], cr) {
				fmt.Fprintf(&b, "  mismatch: %s\n", msg)
			}
		}
	}
	return []byte(b.String())
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// RunWithGolden executes a scenario and compares its report against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, Report(result, scenario))
	return result, nil
}
