package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/donate"
	"github.com/fwojciec/donate/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	assert.Equal(t, config.FormatAuto, cfg.Format)
	assert.Equal(t, "instagram-html", cfg.Fallback)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, config.EngineGoquery, cfg.Engine)
	assert.Equal(t, config.OutputTable, cfg.Output)
	assert.True(t, strings.HasSuffix(cfg.DBPath, filepath.Join(config.AppName, "donate.db")))
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*config.Config)
	}{
		{"unknown engine", func(c *config.Config) { c.Engine = "lxml" }},
		{"unknown output", func(c *config.Config) { c.Output = "csv" }},
		{"unknown format", func(c *config.Config) { c.Format = "facebook" }},
		{"unknown fallback", func(c *config.Config) { c.Fallback = "facebook" }},
		{"missing database", func(c *config.Config) { c.DBPath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			tt.modify(&cfg)

			assert.Equal(t, donate.EINVALID, donate.ErrorCode(cfg.Validate()))
		})
	}
}

func TestConfig_ExportFormat(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	got, err := cfg.ExportFormat()
	require.NoError(t, err)
	assert.Equal(t, donate.FormatUnknown, got)

	cfg.Format = "instagram-html"
	got, err = cfg.ExportFormat()
	require.NoError(t, err)
	assert.Equal(t, donate.FormatInstagramHTML, got)
}

func TestConfig_FallbackFormat(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	got, err := cfg.FallbackFormat()
	require.NoError(t, err)
	assert.Equal(t, donate.FormatInstagramHTML, got)

	cfg.Fallback = config.FallbackNone
	got, err = cfg.FallbackFormat()
	require.NoError(t, err)
	assert.Equal(t, donate.FormatUnknown, got)

	cfg.Fallback = "tiktok"
	got, err = cfg.FallbackFormat()
	require.NoError(t, err)
	assert.Equal(t, donate.FormatTikTok, got)
}

func TestLocalPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("etc", "config.local.json5"), config.LocalPath(filepath.Join("etc", "config.json5")))
	assert.Equal(t, "config.local", config.LocalPath("config"))
}

func TestRead(t *testing.T) {
	t.Parallel()

	type settings struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	t.Run("reads json5 with comments", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "app.json5")
		writeFile(t, path, `{
			// who we are
			name: "donate",
			count: 2,
		}`)

		got, err := config.Read[settings](path)

		require.NoError(t, err)
		assert.Equal(t, settings{Name: "donate", Count: 2}, got)
	})

	t.Run("local override wins", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "app.json5"), `{name: "donate", count: 2}`)
		writeFile(t, filepath.Join(dir, "app.local.json5"), `{count: 5}`)

		got, err := config.Read[settings](filepath.Join(dir, "app.json5"))

		require.NoError(t, err)
		assert.Equal(t, settings{Name: "donate", Count: 5}, got)
	})

	t.Run("local override alone is enough", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "app.local.json5"), `{name: "local"}`)

		got, err := config.Read[settings](filepath.Join(dir, "app.json5"))

		require.NoError(t, err)
		assert.Equal(t, "local", got.Name)
	})

	t.Run("returns not exist when both files are missing", func(t *testing.T) {
		t.Parallel()

		_, err := config.Read[settings](filepath.Join(t.TempDir(), "app.json5"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("returns parse errors", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "app.json5")
		writeFile(t, path, `{name: `)

		_, err := config.Read[settings](path)

		require.Error(t, err)
		assert.NotErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()

		got, err := config.Load(filepath.Join(t.TempDir(), "config.json5"))

		require.NoError(t, err)
		assert.Equal(t, config.Default(), got)
	})

	t.Run("file settings override defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.json5")
		writeFile(t, path, `{
			locale: "nl",
			engine: "html",
			titles: {
				"tiktok.likes": {en: "Liked", nl: "Geliket"},
			},
		}`)

		got, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, "nl", got.Locale)
		assert.Equal(t, config.EngineHTML, got.Engine)
		assert.Equal(t, config.OutputTable, got.Output, "unset fields keep defaults")
		assert.Equal(t, "Geliket", got.Titles["tiktok.likes"].Get("nl"))
	})
}

func TestMatchLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		requested string
		want      string
	}{
		{"nl", "nl"},
		{"nl-BE", "nl"},
		{"en-GB", "en"},
		{"de", "en"},
		{"", "en"},
		{"not a tag!", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.requested, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, config.MatchLocale(tt.requested))
		})
	}
}
