// Package engine evaluates configured rules against a file corpus.
package engine

import (
	"context"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tszlabs/archlint/pkg/corpus"
	"github.com/tszlabs/archlint/pkg/format"
	"github.com/tszlabs/archlint/pkg/rules"
	"github.com/tszlabs/archlint/pkg/scanner/quarantine"
	"github.com/tszlabs/archlint/pkg/scanner/types"
	"github.com/wandb/parallel"
)

// Run evaluates every rule in cfg against the corpus under root and returns
// the non-empty failure groups in configuration order: content rules first,
// then manifest rules, then line limits, then the quarantine scan. Rules run
// concurrently up to maxWorkers; the returned ordering is deterministic
// regardless.
func Run(root string, cfg rules.Config, maxWorkers int) ([]types.FailureGroup, error) {
	type task struct {
		name string
		run  func() ([]types.Hit, error)
	}

	var tasks []task
	for _, rule := range cfg.Content {
		rule := rule
		tasks = append(tasks, task{rule.Name, func() ([]types.Hit, error) {
			return EvaluateContent(root, rule, cfg.Extension)
		}})
	}
	for _, rule := range cfg.Manifests {
		rule := rule
		tasks = append(tasks, task{rule.Name, func() ([]types.Hit, error) {
			return EvaluateManifest(root, rule)
		}})
	}
	for _, rule := range cfg.LineLimits {
		rule := rule
		tasks = append(tasks, task{rule.Name, func() ([]types.Hit, error) {
			return EvaluateLineLimit(root, rule, cfg.Extension)
		}})
	}
	if q := cfg.Quarantine; q != nil {
		tasks = append(tasks, task{q.Name, func() ([]types.Hit, error) {
			return quarantine.Scan(root, *q, cfg.Extension)
		}})
	}

	if maxWorkers < 1 {
		maxWorkers = 1
	}

	results := make([][]types.Hit, len(tasks))
	errs := make([]error, len(tasks))
	group := parallel.Limited(context.Background(), maxWorkers)
	for i, t := range tasks {
		i, t := i, t
		group.Go(func(ctx context.Context) {
			results[i], errs[i] = t.run()
		})
	}
	group.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	var groups []types.FailureGroup
	for i, t := range tasks {
		if len(results[i]) == 0 {
			continue
		}
		hits := make([]string, 0, len(results[i]))
		for _, h := range results[i] {
			hits = append(hits, h.String())
		}
		log.Debug().Str("rule", t.name).Int("hits", len(hits)).Msg("Rule produced hits")
		groups = append(groups, types.FailureGroup{Name: t.name, Hits: hits})
	}

	return groups, nil
}

// EvaluateContent walks matching files under the rule root, applies the
// exclusion policy, and matches the rule pattern per physical line. Hit paths
// are relative to the corpus root; line numbers are 1-based.
func EvaluateContent(root string, rule rules.ContentRule, ext string) ([]types.Hit, error) {
	ruleRoot := filepath.Join(root, filepath.FromSlash(rule.Root))
	files, err := corpus.Files(ruleRoot, ext)
	if err != nil {
		return nil, err
	}

	var hits []types.Hit
	for _, rel := range files {
		if rule.Exclude.Excludes(rel) {
			continue
		}
		text, ok := corpus.ReadFileLossy(filepath.Join(ruleRoot, filepath.FromSlash(rel)))
		if !ok {
			log.Debug().Str("file", rel).Msg("Skipping unreadable file")
			continue
		}
		full := path.Join(rule.Root, rel)
		for n, line := range strings.Split(text, "\n") {
			if rule.Exclude.SkipLineComments && strings.HasPrefix(strings.TrimSpace(line), "//") {
				continue
			}
			if rule.Pattern.MatchString(line) {
				hits = append(hits, types.Hit{Path: full, Line: n + 1})
			}
		}
	}

	return hits, nil
}

// EvaluateManifest matches the rule pattern against every line of one fixed
// manifest file. A missing manifest contributes zero hits.
func EvaluateManifest(root string, rule rules.ManifestRule) ([]types.Hit, error) {
	text, ok := corpus.ReadFileLossy(filepath.Join(root, filepath.FromSlash(rule.Manifest)))
	if !ok {
		return nil, nil
	}

	var hits []types.Hit
	for n, line := range strings.Split(text, "\n") {
		if rule.Pattern.MatchString(line) {
			hits = append(hits, types.Hit{Path: rule.Manifest, Line: n + 1})
		}
	}
	return hits, nil
}

// EvaluateLineLimit flags every matching file under the rule root whose
// physical line count strictly exceeds the configured ceiling. The hit line
// carries the count; the annotation records the ceiling.
func EvaluateLineLimit(root string, rule rules.LineLimitRule, ext string) ([]types.Hit, error) {
	ruleRoot := filepath.Join(root, filepath.FromSlash(rule.Root))
	files, err := corpus.Files(ruleRoot, ext)
	if err != nil {
		return nil, err
	}

	var hits []types.Hit
	for _, rel := range files {
		text, ok := corpus.ReadFileLossy(filepath.Join(ruleRoot, filepath.FromSlash(rel)))
		if !ok {
			continue
		}
		count := format.CountLines(text)
		if count > rule.MaxLines {
			hits = append(hits, types.Hit{
				Path: path.Join(rule.Root, rel),
				Line: count,
				Note: "lines (limit " + strconv.Itoa(rule.MaxLines) + ")",
			})
		}
	}
	return hits, nil
}
