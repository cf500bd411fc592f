package rules

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

type configFile struct {
	Extension string `yaml:"extension"`
	Content   []struct {
		Name             string   `yaml:"name"`
		Root             string   `yaml:"root"`
		Pattern          string   `yaml:"pattern"`
		ExcludeDirs      []string `yaml:"exclude_dirs"`
		ExcludeFiles     []string `yaml:"exclude_files"`
		SkipLineComments bool     `yaml:"skip_line_comments"`
	} `yaml:"content"`
	Manifests []struct {
		Name     string `yaml:"name"`
		Manifest string `yaml:"manifest"`
		Pattern  string `yaml:"pattern"`
	} `yaml:"manifests"`
	LineLimits []struct {
		Name     string `yaml:"name"`
		Root     string `yaml:"root"`
		MaxLines int    `yaml:"max_lines"`
	} `yaml:"line_limits"`
	Quarantine *struct {
		Name            string   `yaml:"name"`
		Roots           []string `yaml:"roots"`
		TypeName        string   `yaml:"type_name"`
		SinkMethod      string   `yaml:"sink_method"`
		AllowedSuffixes []string `yaml:"allowed_suffixes"`
		TestSegment     string   `yaml:"test_segment"`
	} `yaml:"quarantine"`
}

// Load reads a YAML rules file and builds the Config it describes. The file
// replaces the compiled-in registry entirely; unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading rules file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Config, error) {
	var raw configFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return Config{}, fmt.Errorf("unmarshalling rules file: %w", err)
	}

	cfg := Config{Extension: raw.Extension}
	if cfg.Extension == "" {
		cfg.Extension = ".rs"
	}

	for _, c := range raw.Content {
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			return Config{}, fmt.Errorf("content rule %q: %w", c.Name, err)
		}
		cfg.Content = append(cfg.Content, ContentRule{
			Name:    c.Name,
			Root:    c.Root,
			Pattern: re,
			Exclude: ExclusionPolicy{
				Dirs:             c.ExcludeDirs,
				Files:            c.ExcludeFiles,
				SkipLineComments: c.SkipLineComments,
			},
		})
	}

	for _, m := range raw.Manifests {
		re, err := regexp.Compile(m.Pattern)
		if err != nil {
			return Config{}, fmt.Errorf("manifest rule %q: %w", m.Name, err)
		}
		cfg.Manifests = append(cfg.Manifests, ManifestRule{
			Name:     m.Name,
			Manifest: m.Manifest,
			Pattern:  re,
		})
	}

	for _, l := range raw.LineLimits {
		if l.MaxLines <= 0 {
			return Config{}, fmt.Errorf("line limit rule %q: max_lines must be positive", l.Name)
		}
		cfg.LineLimits = append(cfg.LineLimits, LineLimitRule{
			Name:     l.Name,
			Root:     l.Root,
			MaxLines: l.MaxLines,
		})
	}

	if q := raw.Quarantine; q != nil {
		if q.TypeName == "" || q.SinkMethod == "" {
			return Config{}, fmt.Errorf("quarantine rule %q: type_name and sink_method are required", q.Name)
		}
		cfg.Quarantine = &QuarantineRule{
			Name:            q.Name,
			Roots:           q.Roots,
			TypeName:        q.TypeName,
			SinkMethod:      q.SinkMethod,
			AllowedSuffixes: q.AllowedSuffixes,
			TestSegment:     q.TestSegment,
		}
	}

	return cfg, nil
}
