package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"input": "resume.txt",
		"template": "modern",
		"provider": "openai",
		"model": "gpt-4o-mini",
		"output_pdf": true,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "resume.txt", cfg.Input)
	assert.Equal(t, "modern", cfg.Template)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.True(t, cfg.OutputPDF)
	assert.False(t, cfg.OutputDOCX)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"input": `)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "empty config", config: Config{}},
		{name: "known provider", config: Config{Provider: "gemini"}},
		{name: "openai provider", config: Config{Provider: "openai"}},
		{name: "groq provider", config: Config{Provider: "groq"}},
		{name: "unknown provider", config: Config{Provider: "bedrock"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Input: "mine.txt", Verbose: false}
	defaults := Config{
		Input:    "default.txt",
		Template: "minimal",
		Provider: "gemini",
		Verbose:  true,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "mine.txt", merged.Input, "explicit value wins over default")
	assert.Equal(t, "minimal", merged.Template)
	assert.Equal(t, "gemini", merged.Provider)
	assert.True(t, merged.Verbose)
}
