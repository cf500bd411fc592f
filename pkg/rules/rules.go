// Package rules holds the descriptors a scan is configured from.
//
// A descriptor is immutable once constructed: the engine and the quarantine
// scanner only ever read from it. The full rule set for one invocation is a
// Config value, built either from the compiled-in registry or from a YAML
// rules file.
package rules

import "regexp"

// ExclusionPolicy decides which files a content rule never looks at.
// Directory exclusion wins over everything: a file under an excluded
// directory segment is skipped even if its content would match.
type ExclusionPolicy struct {
	// Dirs are directory names excluded wherever they appear on a path.
	Dirs []string
	// Files are exact relative paths excluded from the rule.
	Files []string
	// SkipLineComments drops lines whose trimmed content starts with a
	// line-comment marker. This is a cheap single-line heuristic and
	// deliberately narrower than full tokenization: trailing same-line
	// comments and block comments are still matched.
	SkipLineComments bool
}

// ContentRule matches a pattern against every eligible line under a root.
type ContentRule struct {
	Name    string
	Root    string
	Pattern *regexp.Regexp
	Exclude ExclusionPolicy
}

// ManifestRule matches a pattern against the raw text of one manifest file.
// No exclusion policy and no comment awareness apply.
type ManifestRule struct {
	Name     string
	Manifest string
	Pattern  *regexp.Regexp
}

// LineLimitRule flags files under a root whose physical line count strictly
// exceeds MaxLines.
type LineLimitRule struct {
	Name     string
	Root     string
	MaxLines int
}

// QuarantineRule restricts construction of one sensitive type to an approved
// set of files, following local renames through import and type aliases.
type QuarantineRule struct {
	Name string
	// Roots are the directories scanned for construction sites.
	Roots []string
	// TypeName is the canonical name of the quarantined type.
	TypeName string
	// SinkMethod is the call through which the type is constructed.
	SinkMethod string
	// AllowedSuffixes exempt files whose relative path ends in one of them.
	AllowedSuffixes []string
	// TestSegment exempts any file with this path segment.
	TestSegment string
}

// Config is the complete ordered rule set for one scan invocation.
type Config struct {
	// Extension selects the source files content, line-limit and quarantine
	// rules run over.
	Extension  string
	Content    []ContentRule
	Manifests  []ManifestRule
	LineLimits []LineLimitRule
	Quarantine *QuarantineRule
}
