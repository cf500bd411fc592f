// Package types defines the result shapes shared by the scanner packages.
package types

import "strconv"

// Hit is one rule violation at a location in the corpus. Line is 1-based and
// always refers to the original file's newline structure, even when the match
// was found on a blanked projection.
type Hit struct {
	// Path is relative to the corpus root, slash-separated.
	Path string
	Line int
	// Note carries extra text appended to the rendered hit, used by
	// line-limit rules to record the actual count and the ceiling.
	Note string
}

// String renders the hit in the report format: "path:line", with the
// annotation appended when present.
func (h Hit) String() string {
	s := h.Path + ":" + strconv.Itoa(h.Line)
	if h.Note != "" {
		s += " " + h.Note
	}
	return s
}

// FailureGroup is the ordered, duplicate-free hit list of one failed rule.
type FailureGroup struct {
	Name string   `json:"name"`
	Hits []string `json:"hits"`
}

// Verdict is the final pass/fail result of one invocation.
type Verdict struct {
	Status    string         `json:"status"`
	TotalHits int            `json:"total_hits"`
	Failures  []FailureGroup `json:"failures"`
}

const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)
