package rules

import "regexp"

// Default returns the compiled-in rule set for the compiler workspace. The
// order here is the order failure groups appear in the verdict.
func Default() Config {
	return Config{
		Extension: ".rs",
		Content: []ContentRule{
			{
				Name:    "solver-no-parser-imports",
				Root:    "crates/tsz-solver/src",
				Pattern: regexp.MustCompile(`\buse\s+tsz_parser\b|\btsz_parser::`),
				Exclude: ExclusionPolicy{Dirs: []string{"tests"}, SkipLineComments: true},
			},
			{
				Name:    "solver-no-checker-imports",
				Root:    "crates/tsz-solver/src",
				Pattern: regexp.MustCompile(`\buse\s+tsz_checker\b|\btsz_checker::`),
				Exclude: ExclusionPolicy{Dirs: []string{"tests"}, SkipLineComments: true},
			},
			{
				Name:    "solver-no-binder-imports",
				Root:    "crates/tsz-solver/src",
				Pattern: regexp.MustCompile(`\buse\s+tsz_binder\b|\btsz_binder::`),
				Exclude: ExclusionPolicy{Dirs: []string{"tests"}, SkipLineComments: true},
			},
			{
				Name:    "parser-no-upper-layer-imports",
				Root:    "crates/tsz-parser/src",
				Pattern: regexp.MustCompile(`\buse\s+tsz_(solver|checker|emitter|lsp)\b|\btsz_(solver|checker|emitter|lsp)::`),
				Exclude: ExclusionPolicy{Dirs: []string{"tests"}, SkipLineComments: true},
			},
			{
				Name:    "checker-no-emitter-imports",
				Root:    "crates/tsz-checker/src",
				Pattern: regexp.MustCompile(`\buse\s+tsz_emitter\b|\btsz_emitter::`),
				Exclude: ExclusionPolicy{Dirs: []string{"tests"}, SkipLineComments: true},
			},
			{
				Name:    "binder-no-solver-imports",
				Root:    "crates/tsz-binder/src",
				Pattern: regexp.MustCompile(`\buse\s+tsz_solver\b|\btsz_solver::`),
				Exclude: ExclusionPolicy{Dirs: []string{"tests"}, SkipLineComments: true},
			},
			{
				Name:    "lsp-no-emitter-internals",
				Root:    "crates/tsz-lsp/src",
				Pattern: regexp.MustCompile(`\btsz_emitter::(lowering_pass|declaration_emitter)\b`),
				Exclude: ExclusionPolicy{Dirs: []string{"tests"}, SkipLineComments: true},
			},
		},
		Manifests: []ManifestRule{
			{
				Name:     "solver-manifest-no-checker-dep",
				Manifest: "crates/tsz-solver/Cargo.toml",
				Pattern:  regexp.MustCompile(`tsz-(checker|parser|binder|emitter)`),
			},
			{
				Name:     "parser-manifest-no-solver-dep",
				Manifest: "crates/tsz-parser/Cargo.toml",
				Pattern:  regexp.MustCompile(`tsz-(solver|checker|emitter|lsp)`),
			},
		},
		LineLimits: []LineLimitRule{
			{Name: "src-file-length", Root: "src", MaxLines: 2000},
			{Name: "crates-file-length", Root: "crates", MaxLines: 2000},
		},
		Quarantine: &QuarantineRule{
			Name:       "typekey-quarantine",
			Roots:      []string{"src", "crates"},
			TypeName:   "TypeKey",
			SinkMethod: "intern",
			AllowedSuffixes: []string{
				"_test.rs",
				"_tests.rs",
				"solver/intern.rs",
				"solver/intern_normalize.rs",
				"solver/intern_intersection.rs",
				"solver/intern_template.rs",
				"solver/lower.rs",
				"solver/lower_advanced.rs",
			},
			TestSegment: "tests",
		},
	}
}
