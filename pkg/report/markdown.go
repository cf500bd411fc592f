// Package report renders a persisted verdict file as a Markdown document,
// combined with size statistics recomputed from the corpus. It only reads
// the verdict JSON; the scan core never depends on this package.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tszlabs/archlint/pkg/corpus"
	"github.com/tszlabs/archlint/pkg/format"
)

type moduleStats struct {
	files int
	lines int
	bytes int64
}

// WriteMarkdown reads the verdict at verdictPath, gathers per-module size
// statistics for ext files under root, and writes the combined Markdown
// report to outPath.
func WriteMarkdown(root, verdictPath, outPath, ext string) error {
	raw, err := os.ReadFile(verdictPath)
	if err != nil {
		return fmt.Errorf("reading verdict: %w", err)
	}
	if !gjson.ValidBytes(raw) {
		return fmt.Errorf("verdict file %s is not valid JSON", verdictPath)
	}

	stats, err := gatherStats(root, ext)
	if err != nil {
		return err
	}

	var b strings.Builder
	renderVerdict(&b, raw)
	renderStats(&b, stats)

	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func renderVerdict(b *strings.Builder, raw []byte) {
	status := gjson.GetBytes(raw, "status").String()
	total := gjson.GetBytes(raw, "total_hits").Int()

	b.WriteString("# Boundary check report\n\n")
	if status == "passed" {
		b.WriteString("**Status: PASSED** ✅\n\n")
	} else {
		fmt.Fprintf(b, "**Status: FAILED** ❌ — %d violation(s)\n\n", total)
	}

	failures := gjson.GetBytes(raw, "failures")
	if !failures.Exists() || len(failures.Array()) == 0 {
		return
	}

	b.WriteString("## Violations\n\n")
	failures.ForEach(func(_, group gjson.Result) bool {
		name := group.Get("name").String()
		hits := group.Get("hits").Array()
		fmt.Fprintf(b, "### %s (%d)\n\n", name, len(hits))
		for _, hit := range hits {
			fmt.Fprintf(b, "- `%s`\n", hit.String())
		}
		b.WriteString("\n")
		return true
	})
}

func renderStats(b *strings.Builder, stats map[string]moduleStats) {
	if len(stats) == 0 {
		return
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString("## Corpus size\n\n")
	b.WriteString("| Module | Files | Lines | Size |\n")
	b.WriteString("|--------|------:|------:|-----:|\n")
	var total moduleStats
	for _, name := range names {
		s := stats[name]
		fmt.Fprintf(b, "| %s | %d | %d | %s |\n", name, s.files, s.lines, format.HumanSize(s.bytes))
		total.files += s.files
		total.lines += s.lines
		total.bytes += s.bytes
	}
	fmt.Fprintf(b, "| **total** | %d | %d | %s |\n", total.files, total.lines, format.HumanSize(total.bytes))
}

// gatherStats groups source files by module: the crate directory for files
// under crates/, the first path segment otherwise.
func gatherStats(root, ext string) (map[string]moduleStats, error) {
	files, err := corpus.Files(root, ext)
	if err != nil {
		return nil, err
	}

	stats := map[string]moduleStats{}
	for _, rel := range files {
		text, ok := corpus.ReadFileLossy(filepath.Join(root, filepath.FromSlash(rel)))
		if !ok {
			continue
		}
		name := moduleName(rel)
		s := stats[name]
		s.files++
		s.lines += format.CountLines(text)
		s.bytes += int64(len(text))
		stats[name] = s
	}
	return stats, nil
}

func moduleName(rel string) string {
	parts := strings.Split(rel, "/")
	if len(parts) >= 2 && parts[0] == "crates" {
		return parts[0] + "/" + parts[1]
	}
	return parts[0]
}
