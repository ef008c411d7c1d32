package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
)

func newTestLoader(dir string) *TOMLLoader {
	return &TOMLLoader{
		globalPath: filepath.Join(dir, "global", "config.toml"),
		localName:  LocalFileName,
	}
}

func TestTOMLLoader_LoadGlobal(t *testing.T) {
	ctx := context.Background()

	t.Run("missing global config is not created", func(t *testing.T) {
		tmpDir := t.TempDir()
		loader := newTestLoader(tmpDir)

		config, err := loader.LoadGlobal(ctx)
		require.NoError(t, err)
		assert.Nil(t, config)

		_, err = os.Stat(loader.GetGlobalPath())
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("loads existing config", func(t *testing.T) {
		tmpDir := t.TempDir()
		loader := newTestLoader(tmpDir)

		configContent := `
[deck]
template = "brand/corporate.pptx"
default_output = "out/deck.pptx"

[layouts]
title = "Cover"
content = "Bullets"

[style]
title_font_size = 40
image_width = 6.5

[metadata]
author = "Jane Doe"

[logging]
level = "warn"
json_format = true
`
		require.NoError(t, os.MkdirAll(filepath.Dir(loader.GetGlobalPath()), 0o750))
		require.NoError(t, os.WriteFile(loader.GetGlobalPath(), []byte(configContent), 0o644))

		config, err := loader.LoadGlobal(ctx)
		require.NoError(t, err)
		require.NotNil(t, config)

		assert.Equal(t, "brand/corporate.pptx", config.Deck.Template)
		assert.Equal(t, "out/deck.pptx", config.Deck.DefaultOutput)
		assert.Equal(t, "Cover", config.Layouts.Title)
		assert.Equal(t, "Bullets", config.Layouts.Content)
		assert.Equal(t, 40, config.Style.TitleFontSize)
		assert.Equal(t, 6.5, config.Style.ImageWidth)
		assert.Equal(t, "Jane Doe", config.Metadata.Author)
		assert.Equal(t, "warn", config.Logging.Level)
		assert.True(t, config.Logging.JSONFormat)
	})
}

func TestTOMLLoader_LoadLocal(t *testing.T) {
	ctx := context.Background()

	t.Run("returns nil when no local config", func(t *testing.T) {
		loader := newTestLoader(t.TempDir())

		config, err := loader.LoadLocal(ctx, t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, config)
	})

	t.Run("loads local config", func(t *testing.T) {
		projectDir := t.TempDir()
		loader := newTestLoader(t.TempDir())

		content := "[style]\ntext_font_size = 20\nbackground_color = \"#F5F5F5\"\ntitle_color = \"1f4e79\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(projectDir, LocalFileName), []byte(content), 0o644))

		config, err := loader.LoadLocal(ctx, projectDir)
		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, 20, config.Style.TextFontSize)
		assert.Equal(t, "#F5F5F5", config.Style.BackgroundColor)
		assert.Equal(t, "1f4e79", config.Style.TitleColor)
	})

	t.Run("rejects malformed TOML", func(t *testing.T) {
		projectDir := t.TempDir()
		loader := newTestLoader(t.TempDir())

		require.NoError(t, os.WriteFile(filepath.Join(projectDir, LocalFileName), []byte("[style\n"), 0o644))

		_, err := loader.LoadLocal(ctx, projectDir)
		require.Error(t, err)
		assert.True(t, entities.IsKind(err, entities.ErrorKindFormat))
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		projectDir := t.TempDir()
		loader := newTestLoader(t.TempDir())

		require.NoError(t, os.WriteFile(filepath.Join(projectDir, LocalFileName), []byte("[style]\ncolour = \"red\"\n"), 0o644))

		_, err := loader.LoadLocal(ctx, projectDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "style.colour")
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		projectDir := t.TempDir()
		loader := newTestLoader(t.TempDir())

		require.NoError(t, os.WriteFile(filepath.Join(projectDir, LocalFileName), []byte("[logging]\nlevel = \"loud\"\n"), 0o644))

		_, err := loader.LoadLocal(ctx, projectDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})
}

func TestTOMLLoader_LoadFile(t *testing.T) {
	ctx := context.Background()
	loader := newTestLoader(t.TempDir())

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.LoadFile(ctx, filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.True(t, entities.IsKind(err, entities.ErrorKindNotFound))
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.toml")
		require.NoError(t, os.WriteFile(path, []byte("[metadata]\nauthor = \"CI\"\n"), 0o644))

		config, err := loader.LoadFile(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "CI", config.Metadata.Author)
	})
}

func TestTOMLLoader_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	loader := newTestLoader(t.TempDir())

	require.NoError(t, loader.CreateDefaults(ctx, loader.GetGlobalPath()))

	config, err := loader.LoadGlobal(ctx)
	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, GetDefaultConfig(), config)
}

func TestTOMLLoader_Paths(t *testing.T) {
	loader := NewTOMLLoader()

	global := loader.GetGlobalPath()
	assert.Equal(t, "config.toml", filepath.Base(global))
	assert.Equal(t, "pptxgen", filepath.Base(filepath.Dir(global)))
	assert.Equal(t, filepath.Join("/work", LocalFileName), loader.GetLocalPath("/work"))
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, GetDefaultConfig()))

	out := buf.String()
	assert.Contains(t, out, "[deck]")
	assert.Contains(t, out, `default_output = "presentation.pptx"`)
	assert.Contains(t, out, "title_font_size = 32")
}
