// Package quarantine detects construction of a sensitive type outside its
// approved sites, following local renames of the type through import aliases
// and type aliases.
package quarantine

import (
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tszlabs/archlint/pkg/corpus"
	"github.com/tszlabs/archlint/pkg/rules"
	"github.com/tszlabs/archlint/pkg/scanner/types"
	"github.com/tszlabs/archlint/pkg/tokenizer"
)

// Scan walks every matching file under the rule roots and reports each
// construction-call site of the quarantined type, resolved through any local
// aliases. Hits are deduplicated as path:line identifiers and returned in
// lexicographically sorted order.
func Scan(root string, rule rules.QuarantineRule, ext string) ([]types.Hit, error) {
	importAlias := regexp.MustCompile(`\b` + regexp.QuoteMeta(rule.TypeName) + `\s+as\s+([A-Za-z_][A-Za-z0-9_]*)`)
	typeAlias := regexp.MustCompile(`\btype\s+([A-Za-z_][A-Za-z0-9_]*)\s*(?:<[^=]*>)?\s*=[^;]*\b` + regexp.QuoteMeta(rule.TypeName) + `\b`)

	seen := map[string]types.Hit{}
	for _, scanRoot := range rule.Roots {
		dir := filepath.Join(root, filepath.FromSlash(scanRoot))
		files, err := corpus.Files(dir, ext)
		if err != nil {
			return nil, err
		}

		for _, rel := range files {
			full := path.Join(scanRoot, rel)
			if exempt(full, rule) {
				continue
			}
			text, ok := corpus.ReadFileLossy(filepath.Join(dir, filepath.FromSlash(rel)))
			if !ok {
				log.Debug().Str("file", full).Msg("Skipping unreadable file")
				continue
			}

			projection := tokenizer.Blank(text)
			for _, alias := range collectAliases(projection, rule.TypeName, importAlias, typeAlias) {
				for _, line := range constructionLines(projection, rule.SinkMethod, alias) {
					hit := types.Hit{Path: full, Line: line}
					seen[hit.String()] = hit
				}
			}
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	hits := make([]types.Hit, 0, len(keys))
	for _, k := range keys {
		hits = append(hits, seen[k])
	}
	return hits, nil
}

func exempt(rel string, rule rules.QuarantineRule) bool {
	for _, suffix := range rule.AllowedSuffixes {
		if strings.HasSuffix(rel, suffix) {
			return true
		}
	}
	if rule.TestSegment != "" {
		for _, seg := range strings.Split(rel, "/") {
			if seg == rule.TestSegment {
				return true
			}
		}
	}
	return false
}

// collectAliases seeds the alias set with the canonical type name and adds
// every local spelling found in the projection: rename imports of the form
// "Name as Alias" and type-alias statements with the name on the right-hand
// side. Statements are delimited by semicolons with internal whitespace
// collapsed before matching, so multi-line aliases are still found.
func collectAliases(projection, typeName string, importAlias, typeAlias *regexp.Regexp) []string {
	aliases := []string{typeName}
	have := map[string]bool{typeName: true}

	for _, m := range importAlias.FindAllStringSubmatch(projection, -1) {
		if !have[m[1]] {
			have[m[1]] = true
			aliases = append(aliases, m[1])
		}
	}

	for _, stmt := range strings.Split(projection, ";") {
		stmt = strings.Join(strings.Fields(stmt), " ")
		m := typeAlias.FindStringSubmatch(stmt)
		if m != nil && !have[m[1]] {
			have[m[1]] = true
			aliases = append(aliases, m[1])
		}
	}

	return aliases
}

// constructionLines returns the 1-based line of every "sink( Alias::" call in
// the projection. The line is computed by counting newlines up to the match
// start, so a call spread over several lines reports the line of the sink.
func constructionLines(projection, sink, alias string) []int {
	re := regexp.MustCompile(regexp.QuoteMeta(sink) + `\(\s*` + regexp.QuoteMeta(alias) + `::`)
	var lines []int
	for _, loc := range re.FindAllStringIndex(projection, -1) {
		lines = append(lines, tokenizer.Line(projection, loc[0]))
	}
	return lines
}
