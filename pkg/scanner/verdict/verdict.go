// Package verdict aggregates rule results into the final pass/fail report.
package verdict

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tszlabs/archlint/pkg/scanner/types"
)

// Hits rendered per group in the human-readable listing before eliding.
const maxRenderedHits = 200

// Build merges the ordered failure groups into one Verdict. Group order is
// preserved; status is failed exactly when any group carries a hit.
func Build(groups []types.FailureGroup) types.Verdict {
	v := types.Verdict{
		Status:   types.StatusPassed,
		Failures: []types.FailureGroup{},
	}
	for _, g := range groups {
		v.TotalHits += len(g.Hits)
		v.Failures = append(v.Failures, g)
	}
	if v.TotalHits > 0 {
		v.Status = types.StatusFailed
	}
	return v
}

// Marshal renders the machine-readable form of the verdict.
func Marshal(v types.Verdict) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// Write persists the verdict to path, creating parent directories as needed.
// A write failure here is an unexpected fault: callers must abort rather
// than report a result that was never recorded.
func Write(v types.Verdict, path string) error {
	data, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("marshalling verdict: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating verdict directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing verdict: %w", err)
	}
	return nil
}

// Render writes the human-readable listing to w. Each group's hits are
// capped at 200 entries with a note for the remainder.
func Render(v types.Verdict, w io.Writer) {
	if v.Status == types.StatusPassed {
		fmt.Fprintln(w, "PASSED: no boundary violations found")
		return
	}

	fmt.Fprintf(w, "FAILED: %d violation(s)\n", v.TotalHits)
	for _, g := range v.Failures {
		fmt.Fprintf(w, "\n%s (%d)\n", g.Name, len(g.Hits))
		hits := g.Hits
		elided := 0
		if len(hits) > maxRenderedHits {
			elided = len(hits) - maxRenderedHits
			hits = hits[:maxRenderedHits]
		}
		for _, h := range hits {
			fmt.Fprintf(w, "  %s\n", h)
		}
		if elided > 0 {
			fmt.Fprintf(w, "  ... and %d more\n", elided)
		}
	}
}
