package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	doc := []byte(`
extension: .rs
content:
  - name: no-parser-in-solver
    root: crates/tsz-solver/src
    pattern: 'tsz_parser::'
    exclude_dirs: [tests]
    exclude_files: [visitor.rs]
    skip_line_comments: true
manifests:
  - name: solver-manifest
    manifest: crates/tsz-solver/Cargo.toml
    pattern: 'tsz-checker'
line_limits:
  - name: file-length
    root: crates
    max_lines: 2000
quarantine:
  name: typekey
  roots: [src, crates]
  type_name: TypeKey
  sink_method: intern
  allowed_suffixes: [solver/intern.rs]
  test_segment: tests
`)

	cfg, err := parse(doc)
	require.NoError(t, err)

	assert.Equal(t, ".rs", cfg.Extension)

	require.Len(t, cfg.Content, 1)
	c := cfg.Content[0]
	assert.Equal(t, "no-parser-in-solver", c.Name)
	assert.Equal(t, "crates/tsz-solver/src", c.Root)
	assert.True(t, c.Pattern.MatchString("use tsz_parser::node;"))
	assert.Equal(t, []string{"tests"}, c.Exclude.Dirs)
	assert.Equal(t, []string{"visitor.rs"}, c.Exclude.Files)
	assert.True(t, c.Exclude.SkipLineComments)

	require.Len(t, cfg.Manifests, 1)
	assert.Equal(t, "crates/tsz-solver/Cargo.toml", cfg.Manifests[0].Manifest)

	require.Len(t, cfg.LineLimits, 1)
	assert.Equal(t, 2000, cfg.LineLimits[0].MaxLines)

	require.NotNil(t, cfg.Quarantine)
	assert.Equal(t, "TypeKey", cfg.Quarantine.TypeName)
	assert.Equal(t, "intern", cfg.Quarantine.SinkMethod)
	assert.Equal(t, []string{"src", "crates"}, cfg.Quarantine.Roots)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown key rejected",
			doc:  "extension: .rs\nbogus: true\n",
		},
		{
			name: "invalid content pattern",
			doc:  "content:\n  - name: bad\n    root: src\n    pattern: '('\n",
		},
		{
			name: "invalid manifest pattern",
			doc:  "manifests:\n  - name: bad\n    manifest: Cargo.toml\n    pattern: '['\n",
		},
		{
			name: "non positive line limit",
			doc:  "line_limits:\n  - name: bad\n    root: src\n    max_lines: 0\n",
		},
		{
			name: "quarantine missing type name",
			doc:  "quarantine:\n  name: q\n  sink_method: intern\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseConfigDefaultExtension(t *testing.T) {
	cfg, err := parse([]byte("content: []\n"))
	require.NoError(t, err)
	assert.Equal(t, ".rs", cfg.Extension)
}

func TestDefaultRegistry(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ".rs", cfg.Extension)
	assert.NotEmpty(t, cfg.Content)
	assert.NotEmpty(t, cfg.Manifests)
	assert.NotEmpty(t, cfg.LineLimits)
	require.NotNil(t, cfg.Quarantine)
	assert.Equal(t, "TypeKey", cfg.Quarantine.TypeName)

	for _, c := range cfg.Content {
		assert.NotEmpty(t, c.Name)
		assert.NotNil(t, c.Pattern)
	}
}
