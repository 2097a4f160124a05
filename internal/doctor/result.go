// Package doctor inspects an installed loader and reports problems with remediation hints.
package doctor

// Status is the outcome of a single check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one line of the health report.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// HasFailure reports whether any result failed.
func HasFailure(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
