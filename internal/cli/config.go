package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	apperr "github.com/matzehuels/flowtower/pkg/errors"
	"github.com/matzehuels/flowtower/pkg/pipeline"
)

// Config holds user defaults read from config.toml. Command-line flags
// take precedence over these values.
type Config struct {
	Threshold      int64    `toml:"threshold"`
	Decomposition  string   `toml:"decomposition"`
	Formats        []string `toml:"formats"`
	UnboundedLabel string   `toml:"unbounded_label"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Threshold:      pipeline.DefaultThreshold,
		Decomposition:  pipeline.DefaultDecomposition,
		Formats:        []string{pipeline.FormatSVG},
		UnboundedLabel: pipeline.DefaultUnboundedLabel,
	}
}

// Validate checks that every configured value is usable.
func (c Config) Validate() error {
	if err := apperr.ValidateThreshold(c.Threshold); err != nil {
		return err
	}
	if err := pipeline.ValidateDecomposition(c.Decomposition); err != nil {
		return err
	}
	if len(c.Formats) == 0 {
		return apperr.New(apperr.ErrCodeInvalidInput, "formats must not be empty")
	}
	if err := pipeline.ValidateFormats(c.Formats); err != nil {
		return err
	}
	if strings.TrimSpace(c.UnboundedLabel) == "" {
		return apperr.New(apperr.ErrCodeInvalidInput, "unbounded_label must not be empty")
	}
	return nil
}

// configPath returns the default config file location using the XDG
// standard (~/.config/flowtower/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// LoadConfig reads the config file at path on top of [DefaultConfig].
//
// An empty path selects the default location, where a missing file is not
// an error. An explicitly given path must exist. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		if explicit {
			return cfg, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return DefaultConfig(), nil
	}
	if err != nil {
		return cfg, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, apperr.New(apperr.ErrCodeInvalidInput, "config file %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}
