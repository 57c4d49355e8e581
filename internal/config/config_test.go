package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"overload-resolver/internal/diagnostic"
)

func TestParseSourceLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    SourceLevel
		wantErr bool
	}{
		{"1.4", Source14, false},
		{"1.5", Source15, false},
		{"5", Source15, false},
		{"1.8", 8, false},
		{"17", 17, false},
		{"1.3", 0, true},
		{"1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSourceLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSourceLevel_String(t *testing.T) {
	assert.Equal(t, "1.4", Source14.String())
	assert.Equal(t, "1.8", SourceLevel(8).String())
	assert.Equal(t, "17", SourceLevel(17).String())
	assert.Equal(t, SourceLatest.String(), SourceLevel(0).String())
}

func TestConfig_Features(t *testing.T) {
	assert.True(t, Config{}.Boxing())
	assert.True(t, Default().Varargs())
	assert.False(t, Config{SourceLevel: Source14}.Boxing())
	assert.False(t, Config{SourceLevel: Source14}.Varargs())
}

func TestParse_YAML(t *testing.T) {
	data := `
source: 1.4
jobs: 3
severities:
  boxing: warning
`

	cfg, err := Parse([]byte(data), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Source14, cfg.SourceLevel)
	assert.Equal(t, 3, cfg.Jobs)

	policy, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, diagnostic.DiagnosticWarning, policy.Severity(diagnostic.BoxingPerformed))
	assert.Equal(t, diagnostic.DiagnosticIgnore, policy.Severity(diagnostic.UnboxingPerformed))
}

func TestParse_YAMLDefaults(t *testing.T) {
	cfg, err := Parse(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_TOML(t *testing.T) {
	data := `
source = "1.5"
jobs = 2

[severities]
unboxing = "info"
`

	cfg, err := Parse([]byte(data), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, Source15, cfg.SourceLevel)
	assert.Equal(t, 2, cfg.Jobs)
	assert.Equal(t, map[string]string{"unboxing": "info"}, cfg.Severities)

	cfg, err = Parse([]byte("source = 17\n"), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, SourceLevel(17), cfg.SourceLevel)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"unknown yaml key", "sauce: 1.5\n", FormatYAML},
		{"unknown toml key", "sauce = 1\n", FormatTOML},
		{"bad level", "source: 1.2\n", FormatYAML},
		{"negative jobs", "jobs: -1\n", FormatYAML},
		{"fatal downgrade", "severities:\n  ambiguous_method: ignore\n", FormatYAML},
		{"bad severity", "[severities]\nboxing = \"loud\"\n", FormatTOML},
		{"unknown format", "", Format("json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "resolver.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("jobs: 4\n"), 0o644))

	cfg, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, SourceLatest, cfg.SourceLevel)

	tomlPath := filepath.Join(dir, "resolver.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("source = 1.4\n"), 0o644))

	cfg, err = LoadFile(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, Source14, cfg.SourceLevel)

	_, err = LoadFile(filepath.Join(dir, "resolver.json"))
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Merge(t *testing.T) {
	base := Config{SourceLevel: Source14, Jobs: 2, Severities: map[string]string{"boxing": "info"}}
	got := base.Merge(Config{Jobs: 8, Severities: map[string]string{"unboxing": "warning"}})

	assert.Equal(t, Source14, got.SourceLevel)
	assert.Equal(t, 8, got.Jobs)
	assert.Equal(t, map[string]string{"boxing": "info", "unboxing": "warning"}, got.Severities)
	assert.Equal(t, map[string]string{"boxing": "info"}, base.Severities)
}

func TestSourceLevel_YAMLRoundTrip(t *testing.T) {
	out, err := yaml.Marshal(Config{SourceLevel: Source15})
	require.NoError(t, err)
	assert.Equal(t, "source: \"1.5\"\n", string(out))

	var cfg Config
	require.NoError(t, yaml.Unmarshal(out, &cfg))
	assert.Equal(t, Source15, cfg.SourceLevel)
}
