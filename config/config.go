// Package config defines the configuration data consumed by the naming and
// processing packages. Values ship with compiled-in defaults matching the
// production naming conventions and can be overridden from a TOML file, which
// keeps the hand-maintained client roster (account codes, acronym lists) out
// of the parsing logic itself.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Public types (alphabetical)

// Config is the top-level configuration aggregate. Zero values are never used
// directly; obtain an instance through Default or Load.
type Config struct {
	// Encoding holds the ffmpeg output settings shared by every encode path.
	Encoding EncodingConfig `toml:"encoding"`

	// Naming holds the client-roster data used by name parsing and generation.
	Naming NamingConfig `toml:"naming"`

	// Transitions holds the default transition selection.
	Transitions TransitionsConfig `toml:"transitions"`
}

// EncodingConfig collects the fixed encoder knobs applied to every output.
type EncodingConfig struct {
	// AudioBitrate is the AAC bitrate passed to ffmpeg (e.g. "192k").
	AudioBitrate string `toml:"audio_bitrate"`

	// CRF is the libx264 constant rate factor.
	CRF int `toml:"crf"`

	// SampleRate is the audio sample rate every output is normalized to.
	SampleRate int `toml:"sample_rate"`
}

// NamingConfig carries the enumerations that drive project-name cleaning and
// account-prefix stripping. These lists track a specific client roster and
// must stay byte-compatible with the historical output during migration.
type NamingConfig struct {
	// AccountCodes are the 2-4 letter codes stripped from the front of
	// project names before composing output filenames.
	AccountCodes []string `toml:"account_codes"`

	// CleanPrefixes are literal prefixes removed from raw project names.
	CleanPrefixes []string `toml:"clean_prefixes"`

	// PreserveCaps are words kept fully uppercase during title-casing.
	PreserveCaps []string `toml:"preserve_caps"`

	// RemoveSuffixes are trailing words stripped from cleaned names.
	RemoveSuffixes []string `toml:"remove_suffixes"`
}

// TransitionsConfig selects the transition style used when the caller does
// not specify one.
type TransitionsConfig struct {
	// DefaultDuration is the transition length in seconds.
	DefaultDuration float64 `toml:"default_duration"`

	// DefaultType names the transition style (e.g. "fade").
	DefaultType string `toml:"default_type"`
}

// Public functions (alphabetical)

// Default returns the compiled-in configuration matching the production
// naming conventions and encode settings.
func Default() *Config {
	return &Config{
		Encoding: EncodingConfig{
			AudioBitrate: "192k",
			CRF:          23,
			SampleRate:   44100,
		},
		Naming: NamingConfig{
			AccountCodes: []string{
				"AGMD", "BC3", "TR", "OO", "MCT", "DS", "NB", "MK",
				"DRC", "PC", "GD", "MC", "PP", "SPC", "MA", "KA", "BLR",
				"GMD", "TOTAL", "RESTORE", "BIO", "COMPLETE", "OLIVE", "OIL",
				"FB", "YT", "IG", "TT", "SNAP",
			},
			CleanPrefixes: []string{
				"Copy of OO_", "Copy of ", "OO_", "GH ", "OO ", "TR ",
				"Draft_", "Final_", "Test_",
			},
			PreserveCaps: []string{
				"VTD", "STOR", "ACT", "AD", "GH", "FB", "YT", "IG", "TT",
				"UGC", "API", "UI", "URL", "CEO", "CTO", "AI", "ML", "SEO",
				"ROI", "KPI", "FAQ", "PDF", "CSV", "JSON", "XML", "HTML",
				"CSS", "JS", "SQL", "DB", "ID", "USA", "UK", "EU",
			},
			RemoveSuffixes: []string{
				"Ad", "Advertisement", "Video", "Content", "Campaign",
				"Quiz", "Test", "Final", "Draft",
			},
		},
		Transitions: TransitionsConfig{
			DefaultDuration: 0.25,
			DefaultType:     "fade",
		},
	}
}

// Load reads a TOML file over the compiled-in defaults. Fields absent from
// the file keep their default values, so a config file only needs to name
// what it changes.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("error loading config from %s: %w", path, err)
	}

	return cfg, nil
}
