package rules

import "strings"

// Excludes reports whether the file at rel (slash-separated, relative to the
// rule root) is dropped before any pattern evaluation. Directory segments are
// tested first, then the exact relative path.
func (p ExclusionPolicy) Excludes(rel string) bool {
	if len(p.Dirs) > 0 {
		for _, seg := range strings.Split(rel, "/") {
			for _, dir := range p.Dirs {
				if seg == dir {
					return true
				}
			}
		}
	}
	for _, f := range p.Files {
		if rel == f {
			return true
		}
	}
	return false
}
