package harness

// Result contains the outcome of running a scenario.
type Result struct {
	// Scenario is the scenario name.
	Scenario string

	// Pass is true if every case met its expectations.
	Pass bool

	// Cases holds one entry per case, in scenario order.
	Cases []CaseResult

	// Errors lists every failed expectation.
	Errors []string
}

// CaseResult is the observed outcome of one case.
type CaseResult struct {
	Name      string
	Query     string
	Canonical string   // canonical query text, empty when compilation failed
	Matched   []string // ids returned by SelectAll
	Count     int
	First     string // id returned by SelectFirst, "" when none
	Error     string // error code, "" on success
	Pass      bool
}

// NewResult creates a passing result with no cases.
func NewResult(name string) *Result {
	return &Result{
		Scenario: name,
		Pass:     true,
		Cases:    []CaseResult{},
		Errors:   []string{},
	}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
