// Package config loads donate settings from json5 files.
//
// A settings file may be accompanied by a local override next to it:
// donate.json5 is merged with donate.local.json5, the local file winning
// field by field. Values not set in either file keep their defaults.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/fwojciec/donate"
)

// AppName names the XDG directories.
const AppName = "donate"

// Engines, outputs and the automatic format accepted by Validate.
const (
	EngineGoquery = "goquery"
	EngineHTML    = "html"

	OutputTable    = "table"
	OutputMarkdown = "markdown"
	OutputJSON     = "json"

	FormatAuto   = "auto"
	FallbackNone = "none"
)

// Config holds the settings shared by the donate commands.
type Config struct {
	// Format forces an export format; "auto" detects it per archive.
	Format string `json:"format,omitempty"`
	// Fallback is the format assumed for archives that are not recognized.
	Fallback string `json:"fallback,omitempty"`
	// Locale selects the language of titles and prompts.
	Locale string `json:"locale,omitempty"`
	// Engine selects the DOM backend for Instagram HTML exports.
	Engine string `json:"engine,omitempty"`
	// Output selects the review presentation of the extract command.
	Output string `json:"output,omitempty"`
	// DBPath is the SQLite database storing donations.
	DBPath string `json:"db,omitempty"`
	// OutDir, when set, receives a JSON file per donation.
	OutDir string `json:"outDir,omitempty"`
	// Titles overrides table titles by extractor name.
	Titles map[string]donate.Translatable `json:"titles,omitempty"`
}

// Default returns the settings used when no file sets them.
func Default() Config {
	return Config{
		Format:   FormatAuto,
		Fallback: string(donate.FormatInstagramHTML),
		Locale:   donate.DefaultLanguage,
		Engine:   EngineGoquery,
		Output:   OutputTable,
		DBPath:   DefaultDBPath(),
	}
}

// DataDir returns the XDG data directory for donate.
func DataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// ConfigDir returns the XDG config directory for donate.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultDBPath returns the default database location.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "donate.db")
}

// DefaultPath returns the default settings file location.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.json5")
}

// Validate returns EINVALID for unknown engines, outputs or formats.
func (c Config) Validate() error {
	switch c.Engine {
	case EngineGoquery, EngineHTML:
	default:
		return donate.Errorf(donate.EINVALID, "unknown engine %q", c.Engine)
	}
	switch c.Output {
	case OutputTable, OutputMarkdown, OutputJSON:
	default:
		return donate.Errorf(donate.EINVALID, "unknown output %q", c.Output)
	}
	if _, err := c.ExportFormat(); err != nil {
		return err
	}
	if _, err := c.FallbackFormat(); err != nil {
		return err
	}
	if c.DBPath == "" {
		return donate.Errorf(donate.EINVALID, "database path required")
	}
	return nil
}

// ExportFormat returns the forced format, or FormatUnknown for "auto".
func (c Config) ExportFormat() (donate.Format, error) {
	if c.Format == "" || c.Format == FormatAuto {
		return donate.FormatUnknown, nil
	}
	return donate.ParseFormat(c.Format)
}

// FallbackFormat returns the format assumed for unrecognized archives, or
// FormatUnknown when the fallback is disabled with "none".
func (c Config) FallbackFormat() (donate.Format, error) {
	if c.Fallback == "" || c.Fallback == FallbackNone {
		return donate.FormatUnknown, nil
	}
	return donate.ParseFormat(c.Fallback)
}
